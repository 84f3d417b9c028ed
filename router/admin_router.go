package router

import (
	"github.com/labstack/echo/v4"

	"github.com/cececo-dev/cececo-hub/controllers"
	"github.com/cececo-dev/cececo-hub/middlewares"
)

type AdminRouter struct {
	*echo.Group
}

func NewAdminRouter(apiV1Router APIV1Router, importController *controllers.ImportController) AdminRouter {
	adminRouter := apiV1Router.Group.Group("/admin", middlewares.AdminTokenMiddleware())
	adminRouter.POST("/import/startups/", importController.ImportStartups)
	adminRouter.POST("/import/investors/", importController.ImportInvestors)

	return AdminRouter{Group: adminRouter}
}
