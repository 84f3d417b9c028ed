package models

type CountryPolicy struct {
	Model
	CountryID int `json:"countryId" gorm:"not null;index"`

	PolicyType string `json:"policyType" gorm:"type:varchar(50);not null"`
	Status     string `json:"status" gorm:"type:varchar(30);not null"`

	Title   string `json:"title" gorm:"type:varchar(180);not null"`
	Summary string `json:"summary" gorm:"type:text;not null"`

	WhyItMatters *string `json:"whyItMatters" gorm:"type:text"`
	SourceURL    *string `json:"sourceUrl" gorm:"type:varchar(500)"`
}

func (m CountryPolicy) TableName() string {
	return "country_policies"
}
