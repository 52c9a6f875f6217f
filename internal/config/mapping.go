package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	"txnconsumer/pkg/models"
)

// LoadMapping reads and parses a mapping file. YAML and JSON are both
// accepted; the format is picked by file extension.
func LoadMapping(filePath string) (*models.MappingConfig, error) {
	bytes, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file '%s': %w", filePath, err)
	}

	var cfg models.MappingConfig
	switch filepath.Ext(filePath) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bytes, &cfg)
	default:
		err = json.Unmarshal(bytes, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse mapping file '%s': %w", filePath, err)
	}

	return &cfg, nil
}

// CheckMapping reports configuration mistakes that would silently skip
// fields at runtime: unknown sources, json rules without a path, and
// patterns that do not compile.
func CheckMapping(cfg *models.MappingConfig) []error {
	var problems []error

	walk := func(group string, fields models.FieldMap) {
		for name, rule := range fields {
			switch rule.Source {
			case models.SourceJSON:
				if rule.Path == "" {
					problems = append(problems, fmt.Errorf("%s.%s: json source without a path", group, name))
				}
			case models.SourceConstant, models.SourceGenerated:
			default:
				problems = append(problems, fmt.Errorf("%s.%s: unknown source %q", group, name, rule.Source))
			}
			if rule.Validation != nil && rule.Validation.Pattern != "" {
				if _, err := regexp.Compile(rule.Validation.Pattern); err != nil {
					problems = append(problems, fmt.Errorf("%s.%s: bad pattern: %v", group, name, err))
				}
			}
		}
	}

	walk("sender.party", cfg.SenderParty())
	walk("recipient.party", cfg.RecipientParty())
	walk("sender.address", cfg.SenderAddress())
	walk("recipient.address", cfg.RecipientAddress())
	walk("payment.transaction", cfg.TransactionFields())
	walk("transactionDetail.detail", cfg.DetailFields())

	return problems
}
