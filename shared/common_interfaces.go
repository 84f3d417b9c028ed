package shared

import (
	"context"

	"github.com/cececo-dev/cececo-hub/database/models"
	"github.com/cececo-dev/cececo-hub/dtos"
)

type CountryRepository interface {
	All() ([]models.Country, error)
	Read(id int) (models.Country, error)
	FindByIDs(ids []int) ([]models.Country, error)
	FindByName(name string) (models.Country, error)
}

type InvestorRepository interface {
	List(filter dtos.InvestorFilter) ([]models.Investor, error)
	AllWithCountries() ([]models.Investor, error)
	FindByName(name string) (models.Investor, error)
	FindByNameAndType(name string, investorType models.InvestorType) (models.Investor, error)
	Create(investor *models.Investor) error
	Save(investor *models.Investor) error
	ReplaceCountries(investor *models.Investor, countries []models.Country) error
}

type ProjectRepository interface {
	List(filter dtos.ProjectFilter) ([]models.Project, error)
	Read(id int) (models.Project, error)
	Create(project *models.Project) error
	Save(project *models.Project) error
	FindByTitleCountryKind(title string, countryID int, kind models.ProjectKind) (models.Project, error)
}

type NewsItemRepository interface {
	ListApproved(filter dtos.NewsFilter) ([]models.NewsItem, int64, error)
	Pending(limit int) ([]models.NewsItem, error)
	Read(id int) (models.NewsItem, error)
	Create(item *models.NewsItem) error
	Save(item *models.NewsItem) error
	ExistsBySourceURL(url string) (bool, error)
	Search(q string, countryID *int, limit int) ([]models.NewsItem, error)
}

type ResourceRepository interface {
	ListApproved(countryID *int, q string, limit int) ([]models.Resource, error)
	Pending(limit int) ([]models.Resource, error)
	Read(id int) (models.Resource, error)
	Create(resource *models.Resource) error
	Save(resource *models.Resource) error
	Search(q string, countryID *int, limit int) ([]models.Resource, error)
}

type CountryIndicatorRepository interface {
	All() ([]models.CountryIndicator, error)
}

type CountryKnowledgeRepository interface {
	SearchPolicies(q string, countryID *int, limit int) ([]models.CountryPolicy, error)
	SearchFrameworks(q string, countryID *int, limit int) ([]models.CountryFramework, error)
}

// NewsIngestService runs one on-demand GDELT ingestion batch.
type NewsIngestService interface {
	Ingest(ctx context.Context, opts dtos.IngestOptions) (dtos.IngestResult, error)
}

type RankingService interface {
	Rank() ([]dtos.CountryRanking, error)
}
