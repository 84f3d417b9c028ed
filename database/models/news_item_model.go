package models

import "time"

type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

// NewsItem rows are the output of the GDELT ingestion pipeline as well as
// manual admin submissions. The unique index on source_url is the dedup
// anchor for idempotent ingestion: a nil source_url may repeat, a non-nil
// one may not.
type NewsItem struct {
	Model
	CountryID *int     `json:"countryId" gorm:"index"`
	Country   *Country `json:"-" gorm:"foreignKey:CountryID;constraint:OnDelete:SET NULL;"`

	Status ReviewStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`

	ImpactType  string `json:"impactType" gorm:"type:varchar(30);not null"`
	ImpactScore int    `json:"impactScore" gorm:"not null;default:0"`

	Title   string `json:"title" gorm:"type:varchar(220);not null"`
	Summary string `json:"summary" gorm:"type:text;not null"`

	Tags       *string `json:"tags" gorm:"type:varchar(400)"`
	SourceName *string `json:"sourceName" gorm:"type:varchar(120)"`
	SourceURL  *string `json:"sourceUrl" gorm:"type:varchar(600);uniqueIndex"`
	ImageURL   *string `json:"imageUrl" gorm:"type:varchar(600)"`

	PublishedAt time.Time `json:"publishedAt" gorm:"not null"`
}

func (m NewsItem) TableName() string {
	return "news_items"
}
