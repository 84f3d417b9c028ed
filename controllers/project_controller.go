package controllers

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/cececo-dev/cececo-hub/dtos"
	"github.com/cececo-dev/cececo-hub/services"
	"github.com/cececo-dev/cececo-hub/shared"
	"github.com/cececo-dev/cececo-hub/transformer"
)

const (
	defaultMatchLimit = 50
	maxMatchLimit     = 50
)

type ProjectController struct {
	projectRepository  shared.ProjectRepository
	investorRepository shared.InvestorRepository
	countryRepository  shared.CountryRepository
}

func NewProjectController(projectRepository shared.ProjectRepository, investorRepository shared.InvestorRepository, countryRepository shared.CountryRepository) *ProjectController {
	return &ProjectController{
		projectRepository:  projectRepository,
		investorRepository: investorRepository,
		countryRepository:  countryRepository,
	}
}

func (controller *ProjectController) List(ctx shared.Context) error {
	filter := dtos.ProjectFilter{
		Kind: ctx.QueryParam("kind"),
		Q:    ctx.QueryParam("q"),
	}
	if raw := ctx.QueryParam("country_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(400, "invalid country_id").WithInternal(err)
		}
		filter.CountryID = &id
	}

	projects, err := controller.projectRepository.List(filter)
	if err != nil {
		return echo.NewHTTPError(500, "could not list projects").WithInternal(err)
	}
	return ctx.JSON(200, projects)
}

func (controller *ProjectController) Create(ctx shared.Context) error {
	var req dtos.ProjectCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	if _, err := controller.countryRepository.Read(req.CountryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(400, "unknown country id")
		}
		return echo.NewHTTPError(500, "could not resolve country").WithInternal(err)
	}

	project := transformer.ProjectCreateRequestToModel(req)
	if err := controller.projectRepository.Create(&project); err != nil {
		return echo.NewHTTPError(409, "could not create project").WithInternal(err)
	}
	return ctx.JSON(201, project)
}

// Matches scores every investor against one project and returns the ranked
// result. strict_country drops investors without a footprint in the
// project's country, limit caps the list between 1 and 50.
func (controller *ProjectController) Matches(ctx shared.Context) error {
	id, err := strconv.Atoi(ctx.Param("projectID"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid project id").WithInternal(err)
	}

	project, err := controller.projectRepository.Read(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(404, "project not found")
		}
		return echo.NewHTTPError(500, "could not read project").WithInternal(err)
	}

	strictCountry, _ := strconv.ParseBool(ctx.QueryParam("strict_country"))

	limit := defaultMatchLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > maxMatchLimit {
			return echo.NewHTTPError(400, "limit must be between 1 and 50")
		}
	}

	investors, err := controller.investorRepository.AllWithCountries()
	if err != nil {
		return echo.NewHTTPError(500, "could not list investors").WithInternal(err)
	}

	matches := services.BuildMatches(project, investors, services.MatchOptions{
		StrictCountry: strictCountry,
		Limit:         &limit,
	})
	return ctx.JSON(200, transformer.MatchesToResponses(matches))
}
