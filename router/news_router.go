package router

import (
	"github.com/labstack/echo/v4"

	"github.com/cececo-dev/cececo-hub/controllers"
	"github.com/cececo-dev/cececo-hub/middlewares"
)

type NewsRouter struct {
	*echo.Group
}

// NewNewsRouter wires the public feed plus the token guarded review and
// ingestion endpoints.
func NewNewsRouter(apiV1Router APIV1Router, newsController *controllers.NewsController) NewsRouter {
	newsRouter := apiV1Router.Group.Group("/news")
	newsRouter.GET("/", newsController.List)

	adminToken := middlewares.AdminTokenMiddleware()
	newsRouter.POST("/", newsController.Create, adminToken)
	newsRouter.GET("/pending/", newsController.Pending, adminToken)
	newsRouter.POST("/:newsID/approve/", newsController.Approve, adminToken)
	newsRouter.POST("/:newsID/reject/", newsController.Reject, adminToken)
	newsRouter.POST("/ingest/gdelt/", newsController.Ingest, adminToken)

	return NewsRouter{Group: newsRouter}
}
