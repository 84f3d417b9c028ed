package gdelt

import (
	"go.uber.org/fx"

	"github.com/cececo-dev/cececo-hub/shared"
)

var Module = fx.Options(
	fx.Provide(NewClient),
	fx.Provide(fx.Annotate(NewIngestService, fx.As(new(shared.NewsIngestService)))),
)
