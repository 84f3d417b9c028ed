package models

import "time"

// Resource is library/reference material submitted by visitors and reviewed
// by an admin. Unlike NewsItem the URL is required but not unique.
type Resource struct {
	CountryID *int     `json:"countryId" gorm:"index"`
	Country   *Country `json:"-" gorm:"foreignKey:CountryID;constraint:OnDelete:SET NULL;"`

	ID     int          `json:"id" gorm:"primaryKey;autoIncrement"`
	Status ReviewStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`

	ResourceType string `json:"resourceType" gorm:"type:varchar(30);not null"`
	Title        string `json:"title" gorm:"type:varchar(220);not null"`
	Abstract     string `json:"abstract" gorm:"type:text;not null"`

	URL  string  `json:"url" gorm:"type:varchar(700);not null"`
	Tags *string `json:"tags" gorm:"type:varchar(400)"`

	PublishedAt *time.Time `json:"publishedAt"`

	SubmittedByName  *string   `json:"submittedByName" gorm:"type:varchar(120)"`
	SubmittedByEmail *string   `json:"submittedByEmail" gorm:"type:varchar(180)"`
	SubmittedAt      time.Time `json:"submittedAt" gorm:"autoCreateTime"`
}

func (m Resource) TableName() string {
	return "resources"
}
