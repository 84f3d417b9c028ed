package controllers

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/cececo-dev/cececo-hub/shared"
)

type CountryController struct {
	countryRepository shared.CountryRepository
}

func NewCountryController(countryRepository shared.CountryRepository) *CountryController {
	return &CountryController{countryRepository: countryRepository}
}

func (controller *CountryController) List(ctx shared.Context) error {
	countries, err := controller.countryRepository.All()
	if err != nil {
		return echo.NewHTTPError(500, "could not list countries").WithInternal(err)
	}
	return ctx.JSON(200, countries)
}

// Read returns one country with its knowledge hub records preloaded.
func (controller *CountryController) Read(ctx shared.Context) error {
	id, err := strconv.Atoi(ctx.Param("countryID"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid country id").WithInternal(err)
	}

	country, err := controller.countryRepository.Read(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(404, "country not found")
		}
		return echo.NewHTTPError(500, "could not read country").WithInternal(err)
	}
	return ctx.JSON(200, country)
}
