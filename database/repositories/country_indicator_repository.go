package repositories

import (
	"github.com/cececo-dev/cececo-hub/database/models"
	"gorm.io/gorm"
)

type countryIndicatorRepository struct {
	db *gorm.DB
	GormRepository[models.CountryIndicator]
}

func NewCountryIndicatorRepository(db *gorm.DB) *countryIndicatorRepository {
	return &countryIndicatorRepository{
		db:             db,
		GormRepository: newGormRepository[models.CountryIndicator](db),
	}
}
