package database

import (
	"github.com/cececo-dev/cececo-hub/database/models"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates all tables. In deployments the table layout
// is usually managed ahead of time; this is the dev/bootstrap fallback and
// can be disabled via DISABLE_AUTOMIGRATE=true.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Country{},
		&models.Investor{},
		&models.Project{},
		&models.NewsItem{},
		&models.Resource{},
		&models.CountryIndicator{},
		&models.CountryPolicy{},
		&models.CountryFramework{},
		&models.CountryInstitution{},
		&models.CountryTarget{},
	)
}
