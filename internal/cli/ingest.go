package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"

	"txnconsumer/internal/config"
	"txnconsumer/internal/ingest"
	"txnconsumer/internal/server"
	"txnconsumer/pkg/database"
	"txnconsumer/pkg/logger"
)

func NewIngestCmd() *cobra.Command {
	var mappingFile string
	var payloadFile string

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Persist a single transaction payload from a file",
		RunE: func(c *cobra.Command, args []string) error {
			return runIngest(mappingFile, payloadFile)
		},
	}

	cmd.Flags().StringVarP(&payloadFile, "payload", "p", "", "Path to the JSON payload file")
	cmd.Flags().StringVarP(&mappingFile, "mapping", "m", "", "Path to mapping file (overrides MAPPING_FILE)")
	cmd.MarkFlagRequired("payload")
	return cmd
}

func runIngest(mappingFile, payloadFile string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if mappingFile != "" {
		cfg.MappingFile = mappingFile
	}

	payload, err := os.ReadFile(payloadFile)
	if err != nil {
		return fmt.Errorf("failed to read payload file: %w", err)
	}

	doc, err := oj.Parse(payload)
	if err != nil {
		return fmt.Errorf("payload is not valid JSON: %w", err)
	}
	if err := (server.PayloadValidator{}).Validate(doc); err != nil {
		return err
	}

	mappings := config.NewMappingStore(cfg.MappingFile)
	if err := mappings.Reload(); err != nil {
		logger.Warnf("mapping file unusable, using fallback only: %v", err)
	}

	sqlDB, err := database.ConnectSQL(cfg.SQLConnString)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	orch := ingest.NewOrchestrator(ingest.NewSQLStore(sqlDB), mappings.Current, nil)
	if err := orch.Persist(context.Background(), payload); err != nil {
		return err
	}

	fmt.Println("Transaction persisted.")
	return nil
}
