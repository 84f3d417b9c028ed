package controllers

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/cececo-dev/cececo-hub/database/models"
	"github.com/cececo-dev/cececo-hub/dtos"
	"github.com/cececo-dev/cececo-hub/shared"
	"github.com/cececo-dev/cececo-hub/transformer"
)

type LibraryController struct {
	resourceRepository shared.ResourceRepository
}

func NewLibraryController(resourceRepository shared.ResourceRepository) *LibraryController {
	return &LibraryController{resourceRepository: resourceRepository}
}

func (controller *LibraryController) List(ctx shared.Context) error {
	var countryID *int
	if raw := ctx.QueryParam("country_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(400, "invalid country_id").WithInternal(err)
		}
		countryID = &id
	}

	resources, err := controller.resourceRepository.ListApproved(countryID, ctx.QueryParam("q"), 50)
	if err != nil {
		return echo.NewHTTPError(500, "could not list resources").WithInternal(err)
	}
	return ctx.JSON(200, resources)
}

// Submit accepts a visitor submission. It always lands as pending, approval
// happens through the admin review endpoints.
func (controller *LibraryController) Submit(ctx shared.Context) error {
	var req dtos.ResourceSubmitRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	resource := transformer.ResourceSubmitRequestToModel(req)
	if err := controller.resourceRepository.Create(&resource); err != nil {
		return echo.NewHTTPError(409, "could not create resource").WithInternal(err)
	}
	return ctx.JSON(200, resource)
}

func (controller *LibraryController) Pending(ctx shared.Context) error {
	resources, err := controller.resourceRepository.Pending(50)
	if err != nil {
		return echo.NewHTTPError(500, "could not list pending resources").WithInternal(err)
	}
	return ctx.JSON(200, resources)
}

func (controller *LibraryController) Approve(ctx shared.Context) error {
	return controller.review(ctx, models.ReviewStatusApproved)
}

func (controller *LibraryController) Reject(ctx shared.Context) error {
	return controller.review(ctx, models.ReviewStatusRejected)
}

func (controller *LibraryController) review(ctx shared.Context, status models.ReviewStatus) error {
	id, err := strconv.Atoi(ctx.Param("resourceID"))
	if err != nil {
		return echo.NewHTTPError(400, "invalid resource id").WithInternal(err)
	}

	resource, err := controller.resourceRepository.Read(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(404, "resource not found")
		}
		return echo.NewHTTPError(500, "could not read resource").WithInternal(err)
	}

	resource.Status = status
	if err := controller.resourceRepository.Save(&resource); err != nil {
		return echo.NewHTTPError(500, "could not update resource").WithInternal(err)
	}
	return ctx.JSON(200, resource)
}
