package models

type CountryInstitution struct {
	Model
	CountryID int `json:"countryId" gorm:"not null;index"`

	Name            string  `json:"name" gorm:"type:varchar(200);not null"`
	InstitutionType string  `json:"institutionType" gorm:"type:varchar(40);not null"` // ministry/regulator/tso/utility/agency
	Description     *string `json:"description" gorm:"type:text"`
	Website         *string `json:"website" gorm:"type:varchar(300)"`
	ContactEmail    *string `json:"contactEmail" gorm:"type:varchar(200)"`
}

func (m CountryInstitution) TableName() string {
	return "country_institutions"
}
