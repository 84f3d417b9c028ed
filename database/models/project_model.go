package models

type ProjectKind string

const (
	ProjectKindProject ProjectKind = "project"
	ProjectKindStartup ProjectKind = "startup"
)

// Project covers both infrastructure projects and startups, discriminated by
// Kind. Titles are not unique in the database; the CSV import layer dedupes
// on (title, country, kind) instead.
type Project struct {
	Model
	Kind      ProjectKind `json:"kind" gorm:"type:varchar(20);not null;index"`
	CountryID int         `json:"countryId" gorm:"not null;index"`
	Country   Country     `json:"country" gorm:"foreignKey:CountryID"`

	Title   string `json:"title" gorm:"type:varchar(200);not null;index"`
	Summary string `json:"summary" gorm:"type:text;not null"`

	Sector  *string `json:"sector" gorm:"type:varchar(60);index"`
	Stage   *string `json:"stage" gorm:"type:varchar(40);index"`
	Website *string `json:"website" gorm:"type:varchar(300)"`
}

func (m Project) TableName() string {
	return "projects"
}
