package repositories

import (
	"github.com/cececo-dev/cececo-hub/shared"
	"go.uber.org/fx"
)

// Module provides all repository constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewCountryRepository, fx.As(new(shared.CountryRepository)))),
	fx.Provide(fx.Annotate(NewInvestorRepository, fx.As(new(shared.InvestorRepository)))),
	fx.Provide(fx.Annotate(NewProjectRepository, fx.As(new(shared.ProjectRepository)))),
	fx.Provide(fx.Annotate(NewNewsItemRepository, fx.As(new(shared.NewsItemRepository)))),
	fx.Provide(fx.Annotate(NewResourceRepository, fx.As(new(shared.ResourceRepository)))),
	fx.Provide(fx.Annotate(NewCountryIndicatorRepository, fx.As(new(shared.CountryIndicatorRepository)))),
	fx.Provide(fx.Annotate(NewCountryKnowledgeRepository, fx.As(new(shared.CountryKnowledgeRepository)))),
)
