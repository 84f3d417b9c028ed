package repositories

import (
	"github.com/cececo-dev/cececo-hub/database/models"
	"github.com/cececo-dev/cececo-hub/dtos"
	"gorm.io/gorm"
)

type newsItemRepository struct {
	db *gorm.DB
	GormRepository[models.NewsItem]
}

func NewNewsItemRepository(db *gorm.DB) *newsItemRepository {
	return &newsItemRepository{
		db:             db,
		GormRepository: newGormRepository[models.NewsItem](db),
	}
}

func (g *newsItemRepository) ListApproved(filter dtos.NewsFilter) ([]models.NewsItem, int64, error) {
	query := g.db.Model(&models.NewsItem{}).Where("status = ?", models.ReviewStatusApproved)

	if filter.CECECOOnly {
		query = query.Where("country_id IS NOT NULL")
	} else if filter.CountryID != nil {
		query = query.Where("country_id = ?", *filter.CountryID)
	}

	if filter.Q != "" {
		like := "%" + filter.Q + "%"
		query = query.Where("title ILIKE ? OR summary ILIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.NewsItem
	err := query.
		Order("published_at desc").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&items).Error
	return items, total, err
}

func (g *newsItemRepository) Pending(limit int) ([]models.NewsItem, error) {
	var items []models.NewsItem
	err := g.db.
		Where("status = ?", models.ReviewStatusPending).
		Order("published_at desc").
		Limit(limit).
		Find(&items).Error
	return items, err
}

// ExistsBySourceURL is the ingestion pre-check. A concurrent insert can
// still slip between this check and Create; the unique index on source_url
// is the real backstop.
func (g *newsItemRepository) ExistsBySourceURL(url string) (bool, error) {
	var count int64
	err := g.db.Model(&models.NewsItem{}).Where("source_url = ?", url).Count(&count).Error
	return count > 0, err
}

func (g *newsItemRepository) Search(q string, countryID *int, limit int) ([]models.NewsItem, error) {
	query := g.db.Where("status = ?", models.ReviewStatusApproved)
	if countryID != nil {
		query = query.Where("country_id = ?", *countryID)
	}
	like := "%" + q + "%"
	var items []models.NewsItem
	err := query.
		Where("title ILIKE ? OR summary ILIKE ?", like, like).
		Order("published_at desc").
		Limit(limit).
		Find(&items).Error
	return items, err
}
