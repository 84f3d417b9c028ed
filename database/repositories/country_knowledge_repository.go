package repositories

import (
	"github.com/cececo-dev/cececo-hub/database/models"
	"gorm.io/gorm"
)

// countryKnowledgeRepository serves the cross-entity search over the
// descriptive country records. Writes go through the country detail seed and
// admin tooling, so only lookups live here.
type countryKnowledgeRepository struct {
	db *gorm.DB
}

func NewCountryKnowledgeRepository(db *gorm.DB) *countryKnowledgeRepository {
	return &countryKnowledgeRepository{db: db}
}

func (g *countryKnowledgeRepository) SearchPolicies(q string, countryID *int, limit int) ([]models.CountryPolicy, error) {
	query := g.db.Model(&models.CountryPolicy{})
	if countryID != nil {
		query = query.Where("country_id = ?", *countryID)
	}
	like := "%" + q + "%"
	var policies []models.CountryPolicy
	err := query.Where("title ILIKE ? OR summary ILIKE ?", like, like).Limit(limit).Find(&policies).Error
	return policies, err
}

func (g *countryKnowledgeRepository) SearchFrameworks(q string, countryID *int, limit int) ([]models.CountryFramework, error) {
	query := g.db.Model(&models.CountryFramework{})
	if countryID != nil {
		query = query.Where("country_id = ?", *countryID)
	}
	like := "%" + q + "%"
	var frameworks []models.CountryFramework
	err := query.Where("name ILIKE ? OR description ILIKE ?", like, like).Limit(limit).Find(&frameworks).Error
	return frameworks, err
}
