package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cececo-dev/cececo-hub/database/repositories"
	"github.com/cececo-dev/cececo-hub/dtos"
	"github.com/cececo-dev/cececo-hub/gdelt"
	"github.com/cececo-dev/cececo-hub/shared"
)

func NewIngestCommand() *cobra.Command {
	ingest := &cobra.Command{
		Use:   "ingest",
		Short: "Fetch clean energy news from GDELT and store them for review",
		RunE: func(cmd *cobra.Command, args []string) error {
			perCountry, _ := cmd.Flags().GetInt("per-country")
			globalLimit, _ := cmd.Flags().GetInt("global-limit")
			timespan, _ := cmd.Flags().GetString("timespan")
			autoApprove, _ := cmd.Flags().GetBool("auto-approve")

			db, err := shared.DatabaseFactory()
			if err != nil {
				return err
			}

			ingestService := gdelt.NewIngestService(
				gdelt.NewClient(),
				repositories.NewCountryRepository(db),
				repositories.NewNewsItemRepository(db),
			)

			result, err := ingestService.Ingest(cmd.Context(), dtos.IngestOptions{
				PerCountry:        perCountry,
				GlobalLimit:       globalLimit,
				Timespan:          timespan,
				AutoApprove:       autoApprove,
				TrustFetchCountry: true,
			})
			if err != nil {
				return err
			}

			slog.Info("ingestion finished", "inserted", result.Inserted, "skipped", result.Skipped, "totalFetched", result.TotalFetched)
			return nil
		},
	}

	ingest.Flags().Int("per-country", 500, "articles to fetch per country")
	ingest.Flags().Int("global-limit", 2000, "articles to fetch without a country filter")
	ingest.Flags().String("timespan", "7d", "GDELT timespan, e.g. 24h, 7d")
	ingest.Flags().Bool("auto-approve", false, "store fetched items as approved instead of pending")

	return ingest
}
