package router

import (
	"github.com/labstack/echo/v4"

	"github.com/cececo-dev/cececo-hub/controllers"
	"github.com/cececo-dev/cececo-hub/middlewares"
)

type LibraryRouter struct {
	*echo.Group
}

func NewLibraryRouter(apiV1Router APIV1Router, libraryController *controllers.LibraryController) LibraryRouter {
	libraryRouter := apiV1Router.Group.Group("/library")
	libraryRouter.GET("/", libraryController.List)
	libraryRouter.POST("/submit/", libraryController.Submit)

	adminToken := middlewares.AdminTokenMiddleware()
	libraryRouter.GET("/pending/", libraryController.Pending, adminToken)
	libraryRouter.POST("/:resourceID/approve/", libraryController.Approve, adminToken)
	libraryRouter.POST("/:resourceID/reject/", libraryController.Reject, adminToken)

	return LibraryRouter{Group: libraryRouter}
}
