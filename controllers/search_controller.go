package controllers

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/cececo-dev/cececo-hub/database/models"
	"github.com/cececo-dev/cececo-hub/dtos"
	"github.com/cececo-dev/cececo-hub/shared"
	"github.com/cececo-dev/cececo-hub/utils"
)

const searchSectionLimit = 20

// SearchController implements the combined lookup across news, library
// resources and the per-country knowledge hub.
type SearchController struct {
	newsItemRepository  shared.NewsItemRepository
	resourceRepository  shared.ResourceRepository
	knowledgeRepository shared.CountryKnowledgeRepository
}

func NewSearchController(newsItemRepository shared.NewsItemRepository, resourceRepository shared.ResourceRepository, knowledgeRepository shared.CountryKnowledgeRepository) *SearchController {
	return &SearchController{
		newsItemRepository:  newsItemRepository,
		resourceRepository:  resourceRepository,
		knowledgeRepository: knowledgeRepository,
	}
}

func (controller *SearchController) Search(ctx shared.Context) error {
	q := ctx.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(400, "q is required")
	}

	var countryID *int
	if raw := ctx.QueryParam("country_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(400, "invalid country_id").WithInternal(err)
		}
		countryID = &id
	}

	news, err := controller.newsItemRepository.Search(q, countryID, searchSectionLimit)
	if err != nil {
		return echo.NewHTTPError(500, "could not search news").WithInternal(err)
	}
	resources, err := controller.resourceRepository.Search(q, countryID, searchSectionLimit)
	if err != nil {
		return echo.NewHTTPError(500, "could not search resources").WithInternal(err)
	}
	policies, err := controller.knowledgeRepository.SearchPolicies(q, countryID, searchSectionLimit)
	if err != nil {
		return echo.NewHTTPError(500, "could not search policies").WithInternal(err)
	}
	frameworks, err := controller.knowledgeRepository.SearchFrameworks(q, countryID, searchSectionLimit)
	if err != nil {
		return echo.NewHTTPError(500, "could not search frameworks").WithInternal(err)
	}

	response := dtos.SearchResponse{
		News: utils.Map(news, func(n models.NewsItem) dtos.NewsSearchHit {
			return dtos.NewsSearchHit{
				ID:          n.ID,
				CountryID:   n.CountryID,
				Title:       n.Title,
				Summary:     n.Summary,
				ImpactType:  n.ImpactType,
				ImpactScore: n.ImpactScore,
				PublishedAt: n.PublishedAt,
				SourceURL:   n.SourceURL,
			}
		}),
		Resources: utils.Map(resources, func(r models.Resource) dtos.ResourceSearchHit {
			return dtos.ResourceSearchHit{
				ID:           r.ID,
				CountryID:    r.CountryID,
				Title:        r.Title,
				Abstract:     r.Abstract,
				URL:          r.URL,
				ResourceType: r.ResourceType,
				PublishedAt:  r.PublishedAt,
			}
		}),
		Policies: utils.Map(policies, func(p models.CountryPolicy) dtos.PolicySearchHit {
			return dtos.PolicySearchHit{ID: p.ID, CountryID: p.CountryID, Title: p.Title}
		}),
		Frameworks: utils.Map(frameworks, func(f models.CountryFramework) dtos.FrameworkSearchHit {
			return dtos.FrameworkSearchHit{ID: f.ID, CountryID: f.CountryID, Name: f.Name}
		}),
	}
	return ctx.JSON(200, response)
}
