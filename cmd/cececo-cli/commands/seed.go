package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cececo-dev/cececo-hub/database"
	"github.com/cececo-dev/cececo-hub/shared"
)

func NewSeedCommand() *cobra.Command {
	seed := &cobra.Command{
		Use:   "seed",
		Short: "Migrate the schema and load the initial countries, projects and investors",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := shared.DatabaseFactory()
			if err != nil {
				return err
			}

			if err := database.AutoMigrate(db); err != nil {
				return err
			}
			if err := database.SeedInitialData(db); err != nil {
				return err
			}

			slog.Info("seeding finished")
			return nil
		},
	}
	return seed
}
