package models

type Country struct {
	Model
	Name   string  `json:"name" gorm:"type:varchar(120);not null;uniqueIndex"`
	ISO2   string  `json:"iso2" gorm:"type:varchar(2);not null;uniqueIndex"`
	Region *string `json:"region" gorm:"type:varchar(120)"`

	Briefing        *string `json:"briefing" gorm:"type:text"`
	PotentialNotes  *string `json:"potentialNotes" gorm:"type:text"`
	ActionPlanNotes *string `json:"actionPlanNotes" gorm:"type:text"`

	Policies     []CountryPolicy      `json:"policies,omitempty" gorm:"foreignKey:CountryID;constraint:OnDelete:CASCADE;"`
	Frameworks   []CountryFramework   `json:"frameworks,omitempty" gorm:"foreignKey:CountryID;constraint:OnDelete:CASCADE;"`
	Indicators   []CountryIndicator   `json:"indicators,omitempty" gorm:"foreignKey:CountryID;constraint:OnDelete:CASCADE;"`
	Institutions []CountryInstitution `json:"institutions,omitempty" gorm:"foreignKey:CountryID;constraint:OnDelete:CASCADE;"`
	Targets      []CountryTarget      `json:"targets,omitempty" gorm:"foreignKey:CountryID;constraint:OnDelete:CASCADE;"`

	Investors []Investor `json:"-" gorm:"many2many:investor_countries;"`
}

func (m Country) TableName() string {
	return "countries"
}
