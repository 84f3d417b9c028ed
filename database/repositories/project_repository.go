package repositories

import (
	"github.com/cececo-dev/cececo-hub/database/models"
	"github.com/cececo-dev/cececo-hub/dtos"
	"gorm.io/gorm"
)

type projectRepository struct {
	db *gorm.DB
	GormRepository[models.Project]
}

func NewProjectRepository(db *gorm.DB) *projectRepository {
	return &projectRepository{
		db:             db,
		GormRepository: newGormRepository[models.Project](db),
	}
}

func (g *projectRepository) List(filter dtos.ProjectFilter) ([]models.Project, error) {
	query := g.db.Preload("Country")

	if filter.Kind != "" {
		query = query.Where("kind = ?", filter.Kind)
	}

	if filter.CountryID != nil {
		query = query.Where("country_id = ?", *filter.CountryID)
	}

	if filter.Q != "" {
		like := "%" + filter.Q + "%"
		query = query.Where("title ILIKE ? OR summary ILIKE ?", like, like)
	}

	var projects []models.Project
	err := query.Order("created_at desc").Find(&projects).Error
	return projects, err
}

func (g *projectRepository) Read(id int) (models.Project, error) {
	var project models.Project
	err := g.db.Preload("Country").First(&project, id).Error
	return project, err
}

// FindByTitleCountryKind is the application-level dedupe probe used by the
// CSV import. Titles carry no database uniqueness constraint.
func (g *projectRepository) FindByTitleCountryKind(title string, countryID int, kind models.ProjectKind) (models.Project, error) {
	var project models.Project
	err := g.db.Where("title = ? AND country_id = ? AND kind = ?", title, countryID, kind).First(&project).Error
	return project, err
}
