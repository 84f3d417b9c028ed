package repositories

import (
	"github.com/cececo-dev/cececo-hub/database/models"
	"github.com/cececo-dev/cececo-hub/dtos"
	"gorm.io/gorm"
)

type investorRepository struct {
	db *gorm.DB
	GormRepository[models.Investor]
}

func NewInvestorRepository(db *gorm.DB) *investorRepository {
	return &investorRepository{
		db:             db,
		GormRepository: newGormRepository[models.Investor](db),
	}
}

func (g *investorRepository) List(filter dtos.InvestorFilter) ([]models.Investor, error) {
	query := g.db.Preload("Countries")

	if filter.InvestorType != "" {
		query = query.Where("investor_type = ?", filter.InvestorType)
	}

	if filter.Q != "" {
		like := "%" + filter.Q + "%"
		query = query.Where("name ILIKE ? OR focus_sectors ILIKE ? OR stages ILIKE ?", like, like, like)
	}

	if filter.CountryID != nil {
		query = query.
			Joins("JOIN investor_countries ic ON ic.investor_id = investors.id").
			Where("ic.country_id = ?", *filter.CountryID)
	}

	var investors []models.Investor
	err := query.Order("name asc").Find(&investors).Error
	return investors, err
}

// AllWithCountries is what the matching engine reads: every investor with
// its associated country set preloaded.
func (g *investorRepository) AllWithCountries() ([]models.Investor, error) {
	var investors []models.Investor
	err := g.db.Preload("Countries").Find(&investors).Error
	return investors, err
}

func (g *investorRepository) FindByName(name string) (models.Investor, error) {
	var investor models.Investor
	err := g.db.Preload("Countries").Where("name = ?", name).First(&investor).Error
	return investor, err
}

// FindByNameAndType is the dedupe key of the CSV importer.
func (g *investorRepository) FindByNameAndType(name string, investorType models.InvestorType) (models.Investor, error) {
	var investor models.Investor
	err := g.db.Preload("Countries").
		Where("name = ? AND investor_type = ?", name, investorType).
		First(&investor).Error
	return investor, err
}

func (g *investorRepository) ReplaceCountries(investor *models.Investor, countries []models.Country) error {
	return g.db.Model(investor).Association("Countries").Replace(countries)
}
