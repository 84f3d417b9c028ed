package models

// CountryIndicator stores one normalized [0,1] data point per (country, key)
// pair. Method and details carry provenance for the ranking breakdown.
type CountryIndicator struct {
	Model
	CountryID int `json:"countryId" gorm:"not null;uniqueIndex:uq_country_indicator_key"`

	Key   string  `json:"key" gorm:"type:varchar(80);not null;uniqueIndex:uq_country_indicator_key"`
	Value float64 `json:"value" gorm:"not null"`

	Method  *string `json:"method" gorm:"type:varchar(120)"`
	Details *string `json:"details" gorm:"type:text"`
}

func (m CountryIndicator) TableName() string {
	return "country_indicators"
}
