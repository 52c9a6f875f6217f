// Package cli wires the cobra command tree for the transaction
// consumer.
package cli

import (
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "txnconsumer",
		Short: "Transaction ingestion service with configurable field mappings",
		Long: `txnconsumer accepts semi-structured transaction payloads and persists
them as normalized rows across the transaction, detail, party and address
tables. Extraction is driven by a declarative mapping file, with a
hardcoded fallback path when the configuration is missing or broken.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.AddCommand(NewServeCmd(), NewIngestCmd(), NewMappingCmd())

	return rootCmd
}
