package main

import (
	"errors"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"github.com/cececo-dev/cececo-hub/cmd/cececo/api"
	"github.com/cececo-dev/cececo-hub/controllers"
	"github.com/cececo-dev/cececo-hub/database"
	"github.com/cececo-dev/cececo-hub/database/repositories"
	"github.com/cececo-dev/cececo-hub/gdelt"
	"github.com/cececo-dev/cececo-hub/router"
	"github.com/cececo-dev/cececo-hub/services"
	"github.com/cececo-dev/cececo-hub/shared"
)

func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	pool, err := database.NewPgxConnPool(database.GetPoolConfigFromEnv())
	if err != nil {
		slog.Error(err.Error())
		panic(errors.New("failed to setup database connection pool"))
	}

	db, err := database.NewGormDB(pool)
	if err != nil {
		slog.Error(err.Error())
		panic(errors.New("failed to setup database connection"))
	}

	if os.Getenv("DISABLE_AUTOMIGRATE") != "true" {
		slog.Info("running database migrations...")
		if err := database.AutoMigrate(db); err != nil {
			slog.Error("failed to run database migrations", "error", err)
			panic(errors.New("failed to run database migrations"))
		}

		if err := database.SeedInitialData(db); err != nil {
			slog.Error("failed to seed initial data", "error", err)
			panic(errors.New("failed to seed initial data"))
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	fx.New(
		fx.Supply(db),
		fx.Supply(pool),
		fx.Provide(api.NewServer),
		repositories.Module,
		services.Module,
		gdelt.Module,
		controllers.Module,
		router.RouterModule,

		// routers register their routes on instantiation
		fx.Invoke(func(countryRouter router.CountryRouter) {}),
		fx.Invoke(func(investorRouter router.InvestorRouter) {}),
		fx.Invoke(func(projectRouter router.ProjectRouter) {}),
		fx.Invoke(func(newsRouter router.NewsRouter) {}),
		fx.Invoke(func(libraryRouter router.LibraryRouter) {}),
		fx.Invoke(func(adminRouter router.AdminRouter) {}),
	).Run()
}
