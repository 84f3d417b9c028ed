package services

import (
	"go.uber.org/fx"

	"github.com/cececo-dev/cececo-hub/shared"
)

var Module = fx.Options(
	fx.Provide(fx.Annotate(NewRankingService, fx.As(new(shared.RankingService)))),
)
