package controllers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/cececo-dev/cececo-hub/database/models"
	"github.com/cececo-dev/cececo-hub/dtos"
	"github.com/cececo-dev/cececo-hub/services"
	"github.com/cececo-dev/cececo-hub/shared"
	"github.com/cececo-dev/cececo-hub/transformer"
)

const defaultNewsPageSize = 20

type NewsController struct {
	newsItemRepository shared.NewsItemRepository
	countryRepository  shared.CountryRepository
	ingestService      shared.NewsIngestService
}

func NewNewsController(newsItemRepository shared.NewsItemRepository, countryRepository shared.CountryRepository, ingestService shared.NewsIngestService) *NewsController {
	return &NewsController{
		newsItemRepository: newsItemRepository,
		countryRepository:  countryRepository,
		ingestService:      ingestService,
	}
}

// List serves the approved feed. country_id accepts an id, the literal
// "cececo" to exclude global items, or nothing for everything. An
// unparseable country_id is ignored rather than rejected.
func (controller *NewsController) List(ctx shared.Context) error {
	filter := dtos.NewsFilter{
		Q:      ctx.QueryParam("q"),
		Limit:  defaultNewsPageSize,
		Offset: 0,
	}

	switch raw := ctx.QueryParam("country_id"); raw {
	case "", "all":
	case "cececo":
		filter.CECECOOnly = true
	default:
		if id, err := strconv.Atoi(raw); err == nil {
			filter.CountryID = &id
		}
	}

	if raw := ctx.QueryParam("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}
	if raw := ctx.QueryParam("offset"); raw != "" {
		if offset, err := strconv.Atoi(raw); err == nil && offset >= 0 {
			filter.Offset = offset
		}
	}

	items, total, err := controller.newsItemRepository.ListApproved(filter)
	if err != nil {
		return echo.NewHTTPError(500, "could not list news").WithInternal(err)
	}

	countries, err := controller.countryRepository.All()
	if err != nil {
		return echo.NewHTTPError(500, "could not list countries").WithInternal(err)
	}

	return ctx.JSON(200, dtos.NewsListResponse{
		Items:   transformer.NewsItemModelsToResponses(items, transformer.CountryLookup(countries)),
		Total:   total,
		Limit:   filter.Limit,
		Offset:  filter.Offset,
		HasMore: int64(filter.Offset+filter.Limit) < total,
	})
}

func (controller *NewsController) Create(ctx shared.Context) error {
	var req dtos.NewsItemCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	item := transformer.NewsItemCreateRequestToModel(req)
	item.Status = models.ReviewStatusApproved
	if req.Status == string(models.ReviewStatusPending) {
		item.Status = models.ReviewStatusPending
	}
	item.ImpactScore = services.ScoreNewsImpact(req.ImpactType, req.Tags, req.Title, req.Summary)
	if item.PublishedAt.IsZero() {
		item.PublishedAt = time.Now().UTC()
	}

	if err := controller.newsItemRepository.Create(&item); err != nil {
		return echo.NewHTTPError(409, "could not create news item").WithInternal(err)
	}
	return ctx.JSON(200, item)
}

func (controller *NewsController) Pending(ctx shared.Context) error {
	items, err := controller.newsItemRepository.Pending(50)
	if err != nil {
		return echo.NewHTTPError(500, "could not list pending news").WithInternal(err)
	}
	return ctx.JSON(200, items)
}

func (controller *NewsController) Approve(ctx shared.Context) error {
	return controller.review(ctx, models.ReviewStatusApproved)
}

func (controller *NewsController) Reject(ctx shared.Context) error {
	return controller.review(ctx, models.ReviewStatusRejected)
}

func (controller *NewsController) review(ctx shared.Context, status models.ReviewStatus) error {
	id, err := strconv.Atoi(ctx.Param("newsID"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid news id").WithInternal(err)
	}

	item, err := controller.newsItemRepository.Read(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(404, "news item not found")
		}
		return echo.NewHTTPError(500, "could not read news item").WithInternal(err)
	}

	item.Status = status
	if err := controller.newsItemRepository.Save(&item); err != nil {
		return echo.NewHTTPError(500, "could not update news item").WithInternal(err)
	}
	return ctx.JSON(200, item)
}

// Ingest triggers a synchronous GDELT pull. Long timespans with high limits
// can run for a while, so the request context is handed down for
// cancellation.
func (controller *NewsController) Ingest(ctx shared.Context) error {
	opts := dtos.IngestOptions{
		SearchQuery:       ctx.QueryParam("q"),
		Timespan:          ctx.QueryParam("timespan"),
		TrustFetchCountry: true,
	}
	if raw := ctx.QueryParam("per_country"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 1 {
			return echo.NewHTTPError(400, "per_country must be a positive integer")
		}
		opts.PerCountry = value
	}
	if raw := ctx.QueryParam("global_limit"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 1 {
			return echo.NewHTTPError(400, "global_limit must be a positive integer")
		}
		opts.GlobalLimit = value
	}
	if raw := ctx.QueryParam("auto_approve"); raw != "" {
		opts.AutoApprove, _ = strconv.ParseBool(raw)
	}
	if raw := ctx.QueryParam("trust_fetch_country"); raw != "" {
		opts.TrustFetchCountry = raw != "false"
	}

	result, err := controller.ingestService.Ingest(ctx.Request().Context(), opts)
	if err != nil {
		return echo.NewHTTPError(500, "could not ingest news").WithInternal(err)
	}
	return ctx.JSON(200, result)
}
