package router

import (
	"github.com/labstack/echo/v4"

	"github.com/cececo-dev/cececo-hub/controllers"
)

type CountryRouter struct {
	*echo.Group
}

func NewCountryRouter(apiV1Router APIV1Router, countryController *controllers.CountryController) CountryRouter {
	countryRouter := apiV1Router.Group.Group("/countries")
	countryRouter.GET("/", countryController.List)
	countryRouter.GET("/:countryID/", countryController.Read)

	return CountryRouter{Group: countryRouter}
}
