package repositories

import (
	"github.com/cececo-dev/cececo-hub/database/models"
	"gorm.io/gorm"
)

type countryRepository struct {
	db *gorm.DB
	GormRepository[models.Country]
}

func NewCountryRepository(db *gorm.DB) *countryRepository {
	return &countryRepository{
		db:             db,
		GormRepository: newGormRepository[models.Country](db),
	}
}

func (g *countryRepository) All() ([]models.Country, error) {
	var countries []models.Country
	err := g.db.Order("id asc").Find(&countries).Error
	return countries, err
}

// Read loads a country with its full knowledge hub: policies, frameworks,
// indicators, institutions, and targets.
func (g *countryRepository) Read(id int) (models.Country, error) {
	var country models.Country
	err := g.db.
		Preload("Policies").
		Preload("Frameworks").
		Preload("Indicators").
		Preload("Institutions").
		Preload("Targets").
		First(&country, id).Error
	return country, err
}

func (g *countryRepository) FindByIDs(ids []int) ([]models.Country, error) {
	var countries []models.Country
	err := g.db.Where("id IN ?", ids).Find(&countries).Error
	return countries, err
}

func (g *countryRepository) FindByName(name string) (models.Country, error) {
	var country models.Country
	err := g.db.Where("LOWER(name) = LOWER(?)", name).First(&country).Error
	return country, err
}
