package controllers

import (
	"github.com/labstack/echo/v4"

	"github.com/cececo-dev/cececo-hub/shared"
)

type RankingController struct {
	rankingService shared.RankingService
}

func NewRankingController(rankingService shared.RankingService) *RankingController {
	return &RankingController{rankingService: rankingService}
}

func (controller *RankingController) List(ctx shared.Context) error {
	rankings, err := controller.rankingService.Rank()
	if err != nil {
		return echo.NewHTTPError(500, "could not compute rankings").WithInternal(err)
	}
	return ctx.JSON(200, rankings)
}
