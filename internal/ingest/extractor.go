package ingest

import (
	"txnconsumer/pkg/logger"
	"txnconsumer/pkg/models"
)

// Diagnostic records a field that was skipped during extraction and why.
type Diagnostic struct {
	Field string
	Err   error
}

// ExtractAll applies every rule in the group to the payload document.
// Extraction is best effort: a field whose rule fails is skipped and
// reported as a diagnostic, never failing the group. A nil or empty
// group yields an empty map.
func ExtractAll(doc interface{}, group models.FieldMap) (map[string]interface{}, []Diagnostic) {
	result := make(map[string]interface{}, len(group))
	var diags []Diagnostic

	for name, rule := range group {
		rule := rule
		value, err := Resolve(doc, &rule)
		if err != nil {
			if v, ok := err.(*ValidationError); ok && v.Field == "" {
				v.Field = name
			}
			diags = append(diags, Diagnostic{Field: name, Err: err})
			logger.Warnf("mapping failed for %s: %v", name, err)
			continue
		}
		if value != nil {
			result[name] = value
		}
	}
	return result, diags
}
