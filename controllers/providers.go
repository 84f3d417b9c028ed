package controllers

import "go.uber.org/fx"

var Module = fx.Options(
	fx.Provide(NewCountryController),
	fx.Provide(NewInvestorController),
	fx.Provide(NewProjectController),
	fx.Provide(NewNewsController),
	fx.Provide(NewLibraryController),
	fx.Provide(NewSearchController),
	fx.Provide(NewRankingController),
	fx.Provide(NewImportController),
)
