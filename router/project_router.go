package router

import (
	"github.com/labstack/echo/v4"

	"github.com/cececo-dev/cececo-hub/controllers"
)

type ProjectRouter struct {
	*echo.Group
}

func NewProjectRouter(apiV1Router APIV1Router, projectController *controllers.ProjectController) ProjectRouter {
	projectRouter := apiV1Router.Group.Group("/projects")
	projectRouter.GET("/", projectController.List)
	projectRouter.POST("/", projectController.Create)
	projectRouter.GET("/:projectID/matches/", projectController.Matches)

	return ProjectRouter{Group: projectRouter}
}
