package models

type CountryTarget struct {
	Model
	CountryID int `json:"countryId" gorm:"not null;index"`

	Year       *int    `json:"year"`
	TargetType string  `json:"targetType" gorm:"type:varchar(60);not null"` // renewables_share/capacity_gw/emissions/efficiency
	Title      string  `json:"title" gorm:"type:varchar(200);not null"`
	Value      *string `json:"value" gorm:"type:varchar(60)"` // "30%", "15 GW", "-20%"
	Unit       *string `json:"unit" gorm:"type:varchar(30)"`
	Notes      *string `json:"notes" gorm:"type:text"`
	SourceURL  *string `json:"sourceUrl" gorm:"type:varchar(500)"`
}

func (m CountryTarget) TableName() string {
	return "country_targets"
}
