package commands

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cececo-cli",
	Short: "Management cli",
	Long:  `The cececo cli runs maintenance tasks against the hub database: seeding reference data and triggering news ingestion.`,
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}
