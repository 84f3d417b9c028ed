package repositories

import (
	"github.com/cececo-dev/cececo-hub/database/models"
	"gorm.io/gorm"
)

type resourceRepository struct {
	db *gorm.DB
	GormRepository[models.Resource]
}

func NewResourceRepository(db *gorm.DB) *resourceRepository {
	return &resourceRepository{
		db:             db,
		GormRepository: newGormRepository[models.Resource](db),
	}
}

func (g *resourceRepository) ListApproved(countryID *int, q string, limit int) ([]models.Resource, error) {
	query := g.db.Where("status = ?", models.ReviewStatusApproved)

	if countryID != nil {
		query = query.Where("country_id = ?", *countryID)
	}

	if q != "" {
		like := "%" + q + "%"
		query = query.Where("title ILIKE ? OR abstract ILIKE ?", like, like)
	}

	var resources []models.Resource
	err := query.Order("submitted_at desc").Limit(limit).Find(&resources).Error
	return resources, err
}

func (g *resourceRepository) Pending(limit int) ([]models.Resource, error) {
	var resources []models.Resource
	err := g.db.
		Where("status = ?", models.ReviewStatusPending).
		Order("submitted_at desc").
		Limit(limit).
		Find(&resources).Error
	return resources, err
}

func (g *resourceRepository) Search(q string, countryID *int, limit int) ([]models.Resource, error) {
	query := g.db.Where("status = ?", models.ReviewStatusApproved)
	if countryID != nil {
		query = query.Where("country_id = ?", *countryID)
	}
	like := "%" + q + "%"
	var resources []models.Resource
	err := query.
		Where("title ILIKE ? OR abstract ILIKE ?", like, like).
		Order("submitted_at desc").
		Limit(limit).
		Find(&resources).Error
	return resources, err
}
