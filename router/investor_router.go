package router

import (
	"github.com/labstack/echo/v4"

	"github.com/cececo-dev/cececo-hub/controllers"
)

type InvestorRouter struct {
	*echo.Group
}

func NewInvestorRouter(apiV1Router APIV1Router, investorController *controllers.InvestorController) InvestorRouter {
	investorRouter := apiV1Router.Group.Group("/investors")
	investorRouter.GET("/", investorController.List)
	investorRouter.POST("/", investorController.Create)

	return InvestorRouter{Group: investorRouter}
}
