package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"txnconsumer/internal/config"
	"txnconsumer/internal/ingest"
	"txnconsumer/internal/server"
	"txnconsumer/pkg/database"
	"txnconsumer/pkg/logger"
)

type ServeOptions struct {
	MappingFile string
	Addr        string
}

func NewServeCmd() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the transaction ingestion HTTP server",
		RunE: func(c *cobra.Command, args []string) error {
			return runServe(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.MappingFile, "mapping", "m", "", "Path to mapping file (overrides MAPPING_FILE)")
	cmd.Flags().StringVarP(&opts.Addr, "addr", "a", "", "Listen address (overrides LISTEN_ADDR)")
	return cmd
}

func runServe(opts *ServeOptions) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if opts.MappingFile != "" {
		cfg.MappingFile = opts.MappingFile
	}
	if opts.Addr != "" {
		cfg.ListenAddr = opts.Addr
	}

	mappings := config.NewMappingStore(cfg.MappingFile)
	if err := mappings.Reload(); err != nil {
		// A broken mapping file must not block ingestion; the
		// orchestrator falls back to hardcoded extraction.
		logger.Warnf("mapping file unusable, continuing with fallback only: %v", err)
	}

	sqlDB, err := database.ConnectSQL(cfg.SQLConnString)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	var archiver *ingest.Archiver
	if cfg.MongoConnString != "" {
		mongoClient, err := database.ConnectMongo(cfg.MongoConnString)
		if err != nil {
			logger.Warnf("mongo unavailable, payload archiving disabled: %v", err)
		} else {
			defer mongoClient.Disconnect(context.Background())
			archiver = ingest.NewArchiver(mongoClient, "txnconsumer", "raw_payloads")
		}
	}

	orch := ingest.NewOrchestrator(ingest.NewSQLStore(sqlDB), mappings.Current, archiver)

	// SIGHUP re-reads the mapping file; in-flight requests keep the
	// snapshot they started with.
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	go func() {
		for range hup {
			if err := mappings.Reload(); err != nil {
				logger.Errorf("mapping reload failed: %v", err)
			} else {
				logger.Infof("mapping configuration reloaded")
			}
		}
	}()

	logger.Infof("listening on %s", cfg.ListenAddr)
	return server.NewServer(orch).Run(cfg.ListenAddr)
}
