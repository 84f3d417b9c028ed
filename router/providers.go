package router

import "go.uber.org/fx"

var RouterModule = fx.Options(
	fx.Provide(NewAPIV1Router),
	fx.Provide(NewCountryRouter),
	fx.Provide(NewInvestorRouter),
	fx.Provide(NewProjectRouter),
	fx.Provide(NewNewsRouter),
	fx.Provide(NewLibraryRouter),
	fx.Provide(NewAdminRouter),
)
