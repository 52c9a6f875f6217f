// Package ingest turns inbound transaction payloads into normalized
// rows across the transaction, detail, party and address tables, driven
// by a declarative mapping configuration with a hardcoded fallback.
package ingest

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"github.com/ohler55/ojg/jp"

	"txnconsumer/pkg/models"
	"txnconsumer/pkg/utils"
)

// Resolve produces the value for one output field. An absent rule
// yields nil without error. For json rules, a missing path (or JSON
// null) yields the default value, or a RequiredFieldError when the
// rule is required.
func Resolve(doc interface{}, rule *models.FieldMapping) (interface{}, error) {
	if rule == nil {
		return nil, nil
	}
	switch rule.Source {
	case models.SourceConstant:
		return rule.Value, nil
	case models.SourceGenerated:
		return uuid.NewString(), nil
	case models.SourceJSON:
		return resolveJSON(doc, rule)
	default:
		return nil, &UnknownSourceError{Source: rule.Source}
	}
}

func resolveJSON(doc interface{}, rule *models.FieldMapping) (interface{}, error) {
	expr, err := jp.ParseString(rule.Path)
	if err != nil {
		return nil, fmt.Errorf("evaluate path %q: %w", rule.Path, err)
	}

	found := expr.Get(doc)
	if len(found) == 0 || found[0] == nil {
		// JSON null and missing path both count as absent
		if rule.Required {
			return nil, &RequiredFieldError{Path: rule.Path}
		}
		return rule.DefaultValue, nil
	}

	value := found[0]
	if err := validate(value, rule.Validation); err != nil {
		return nil, err
	}
	return value, nil
}

// validate checks rules in a fixed order and stops at the first
// violation: allowed, pattern, maxLength, then numeric bounds.
func validate(value interface{}, rules *models.ValidationRules) error {
	if rules == nil || value == nil {
		return nil
	}
	str := utils.Str(value)

	if len(rules.Allowed) > 0 {
		permitted := false
		for _, a := range rules.Allowed {
			if a == str {
				permitted = true
				break
			}
		}
		if !permitted {
			return &ValidationError{Reason: "not allowed", Value: value}
		}
	}

	if rules.Pattern != "" {
		re, err := regexp.Compile("^(?:" + rules.Pattern + ")$")
		if err != nil {
			return &ValidationError{Reason: "invalid pattern", Value: rules.Pattern}
		}
		if !re.MatchString(str) {
			return &ValidationError{Reason: "invalid format", Value: value}
		}
	}

	if rules.MaxLength != nil && len(str) > *rules.MaxLength {
		return &ValidationError{Reason: "too long", Value: value}
	}

	if utils.IsNumber(value) {
		// integer semantics: decimals truncate before comparison
		n, err := utils.Int64(value)
		if err != nil {
			return &ValidationError{Reason: "not numeric", Value: value}
		}
		if rules.Min != nil && n < int64(*rules.Min) {
			return &ValidationError{Reason: "below minimum", Value: value}
		}
		if rules.Max != nil && n > int64(*rules.Max) {
			return &ValidationError{Reason: "above maximum", Value: value}
		}
	}

	return nil
}
