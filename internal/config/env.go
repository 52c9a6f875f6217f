// Package config handles process configuration: environment settings,
// the mapping file, and the hot-swappable mapping snapshot.
package config

import (
	"errors"
	"os"
)

// Config holds process-level settings loaded from environment
// variables (populated from .env in main).
type Config struct {
	SQLConnString   string
	MongoConnString string // optional; empty disables payload archiving
	MappingFile     string
	ListenAddr      string
}

func LoadConfig() (*Config, error) {
	sqlConn := os.Getenv("SQL_CONNECTION_STRING")
	if sqlConn == "" {
		return nil, errors.New("SQL_CONNECTION_STRING environment variable not set")
	}

	cfg := &Config{
		SQLConnString:   sqlConn,
		MongoConnString: os.Getenv("MONGO_CONNECTION_STRING"),
		MappingFile:     os.Getenv("MAPPING_FILE"),
		ListenAddr:      os.Getenv("LISTEN_ADDR"),
	}
	if cfg.MappingFile == "" {
		cfg.MappingFile = "configs/mapping.yaml"
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	return cfg, nil
}
