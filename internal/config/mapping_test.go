package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"txnconsumer/pkg/models"
)

const yamlMapping = `
sender:
  party:
    FIRST_NAME:
      source: json
      path: $.sender.firstName
      required: true
      validation:
        maxLength: 50
payment:
  transaction:
    TRAN_ID:
      source: json
      path: $.transactionId
    PAYMT_TYPE:
      source: constant
      value: SEND
`

const jsonMapping = `{
  "sender": {
    "party": {
      "FIRST_NAME": {"source": "json", "path": "$.sender.firstName"}
    }
  },
  "address": {
    "sender": {
      "CITY": {"source": "json", "path": "$.sender.address.city"}
    }
  }
}`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMappingYAML(t *testing.T) {
	path := writeTemp(t, "mapping.yaml", yamlMapping)

	cfg, err := LoadMapping(path)
	require.NoError(t, err)

	first := cfg.SenderParty()["FIRST_NAME"]
	assert.Equal(t, models.SourceJSON, first.Source)
	assert.Equal(t, "$.sender.firstName", first.Path)
	assert.True(t, first.Required)
	require.NotNil(t, first.Validation)
	require.NotNil(t, first.Validation.MaxLength)
	assert.Equal(t, 50, *first.Validation.MaxLength)

	assert.Equal(t, "SEND", cfg.TransactionFields()["PAYMT_TYPE"].Value)
}

func TestLoadMappingJSON(t *testing.T) {
	path := writeTemp(t, "mapping.json", jsonMapping)

	cfg, err := LoadMapping(path)
	require.NoError(t, err)

	assert.Equal(t, "$.sender.firstName", cfg.SenderParty()["FIRST_NAME"].Path)
	// legacy top-level address map serves the role without a scoped one
	assert.Equal(t, "$.sender.address.city", cfg.SenderAddress()["CITY"].Path)
}

func TestLoadMappingMissingFile(t *testing.T) {
	_, err := LoadMapping(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read mapping file")
}

func TestLoadMappingBadSyntax(t *testing.T) {
	path := writeTemp(t, "mapping.yaml", "sender: [broken")

	_, err := LoadMapping(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse mapping file")
}

func TestCheckMappingReportsProblems(t *testing.T) {
	cfg := &models.MappingConfig{
		Sender: &models.EntityMapping{
			Party: models.FieldMap{
				"FIRST_NAME": {Source: "ldap"},
				"LAST_NAME":  {Source: models.SourceJSON},
				"EMAIL": {
					Source:     models.SourceJSON,
					Path:       "$.sender.email",
					Validation: &models.ValidationRules{Pattern: "["},
				},
			},
		},
	}

	problems := CheckMapping(cfg)
	require.Len(t, problems, 3)
}

func TestCheckMappingClean(t *testing.T) {
	path := writeTemp(t, "mapping.yaml", yamlMapping)
	cfg, err := LoadMapping(path)
	require.NoError(t, err)

	assert.Empty(t, CheckMapping(cfg))
}

func TestMappingStoreReloadSwapsSnapshot(t *testing.T) {
	path := writeTemp(t, "mapping.yaml", yamlMapping)

	store := NewMappingStore(path)
	assert.Nil(t, store.Current())

	require.NoError(t, store.Reload())
	first := store.Current()
	require.NotNil(t, first)

	// a rewrite followed by Reload swaps the snapshot; the old pointer
	// is unchanged for requests still holding it
	updated := `
sender:
  party:
    FIRST_NAME:
      source: constant
      value: FIXED
`
	require.NoError(t, os.WriteFile(path, []byte(updated), 0644))
	require.NoError(t, store.Reload())

	second := store.Current()
	assert.NotSame(t, first, second)
	assert.Equal(t, "$.sender.firstName", first.SenderParty()["FIRST_NAME"].Path)
	assert.Equal(t, "FIXED", second.SenderParty()["FIRST_NAME"].Value)
}

func TestMappingStoreReloadKeepsOldSnapshotOnError(t *testing.T) {
	path := writeTemp(t, "mapping.yaml", yamlMapping)

	store := NewMappingStore(path)
	require.NoError(t, store.Reload())
	current := store.Current()

	require.NoError(t, os.WriteFile(path, []byte("sender: [broken"), 0644))
	require.Error(t, store.Reload())
	assert.Same(t, current, store.Current())
}
