package models

type CountryFramework struct {
	Model
	CountryID int `json:"countryId" gorm:"not null;index"`

	FrameworkType string `json:"frameworkType" gorm:"type:varchar(60);not null"`
	Status        string `json:"status" gorm:"type:varchar(30);not null"`

	Name        string `json:"name" gorm:"type:varchar(180);not null"`
	Description string `json:"description" gorm:"type:text;not null"`

	WhyItMatters *string `json:"whyItMatters" gorm:"type:text"`
	SourceURL    *string `json:"sourceUrl" gorm:"type:varchar(500)"`
}

func (m CountryFramework) TableName() string {
	return "country_frameworks"
}
