package controllers

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/cececo-dev/cececo-hub/dtos"
	"github.com/cececo-dev/cececo-hub/shared"
	"github.com/cececo-dev/cececo-hub/transformer"
	"github.com/cececo-dev/cececo-hub/utils"
)

type InvestorController struct {
	investorRepository shared.InvestorRepository
	countryRepository  shared.CountryRepository
}

func NewInvestorController(investorRepository shared.InvestorRepository, countryRepository shared.CountryRepository) *InvestorController {
	return &InvestorController{
		investorRepository: investorRepository,
		countryRepository:  countryRepository,
	}
}

func (controller *InvestorController) List(ctx shared.Context) error {
	filter := dtos.InvestorFilter{
		Q:            ctx.QueryParam("q"),
		InvestorType: ctx.QueryParam("investor_type"),
	}
	if raw := ctx.QueryParam("country_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(400, "invalid country_id").WithInternal(err)
		}
		filter.CountryID = &id
	}

	investors, err := controller.investorRepository.List(filter)
	if err != nil {
		return echo.NewHTTPError(500, "could not list investors").WithInternal(err)
	}
	return ctx.JSON(200, investors)
}

func (controller *InvestorController) Create(ctx shared.Context) error {
	var req dtos.InvestorCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	investor := transformer.InvestorCreateRequestToModel(req)

	if len(req.CountryIDs) > 0 {
		countries, err := controller.countryRepository.FindByIDs(req.CountryIDs)
		if err != nil {
			return echo.NewHTTPError(500, "could not resolve countries").WithInternal(err)
		}
		foundIDs := make(map[int]struct{}, len(countries))
		for _, c := range countries {
			foundIDs[c.ID] = struct{}{}
		}
		missing := utils.Filter(req.CountryIDs, func(id int) bool {
			_, ok := foundIDs[id]
			return !ok
		})
		if len(missing) > 0 {
			return echo.NewHTTPError(400, fmt.Sprintf("unknown country ids: %v", missing))
		}
		investor.Countries = countries
	}

	if err := controller.investorRepository.Create(&investor); err != nil {
		return echo.NewHTTPError(409, "could not create investor").WithInternal(err)
	}
	return ctx.JSON(201, investor)
}
