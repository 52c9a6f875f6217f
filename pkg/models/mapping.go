// Package models defines the mapping configuration tree that drives
// field extraction: which payload path (or constant, or generated id)
// feeds each output column, and how the value is validated.
package models

// Recognized values for FieldMapping.Source.
const (
	SourceJSON      = "json"
	SourceConstant  = "constant"
	SourceGenerated = "generated"
)

// Mapping roles as they appear in the legacy top-level address map.
const (
	RoleSender    = "sender"
	RoleRecipient = "recipient"
)

// ValidationRules constrains a resolved value. All fields are optional;
// present rules are AND-combined.
type ValidationRules struct {
	Min       *int     `json:"min,omitempty" yaml:"min,omitempty"`
	Max       *int     `json:"max,omitempty" yaml:"max,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Pattern   string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Allowed   []string `json:"allowed,omitempty" yaml:"allowed,omitempty"`
}

// FieldMapping is the rule for producing one output field. Exactly one
// of Path/Value is meaningful, selected by Source.
type FieldMapping struct {
	Source       string           `json:"source" yaml:"source"`
	Path         string           `json:"path,omitempty" yaml:"path,omitempty"`
	Value        interface{}      `json:"value,omitempty" yaml:"value,omitempty"`
	Required     bool             `json:"required,omitempty" yaml:"required,omitempty"`
	DefaultValue interface{}      `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
	Validation   *ValidationRules `json:"validation,omitempty" yaml:"validation,omitempty"`
}

// FieldMap is one entity projection: output field name -> rule.
type FieldMap map[string]FieldMapping

// EntityMapping groups the projections configured for one role.
type EntityMapping struct {
	Party       FieldMap `json:"party,omitempty" yaml:"party,omitempty"`
	Address     FieldMap `json:"address,omitempty" yaml:"address,omitempty"`
	Transaction FieldMap `json:"transaction,omitempty" yaml:"transaction,omitempty"`
	Detail      FieldMap `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// MappingConfig is the root of the mapping file. Address is the legacy
// top-level location for address maps keyed by role; the role-scoped
// EntityMapping.Address wins when both are present and non-empty.
type MappingConfig struct {
	Payment           *EntityMapping      `json:"payment,omitempty" yaml:"payment,omitempty"`
	Sender            *EntityMapping      `json:"sender,omitempty" yaml:"sender,omitempty"`
	Recipient         *EntityMapping      `json:"recipient,omitempty" yaml:"recipient,omitempty"`
	TransactionDetail *EntityMapping      `json:"transactionDetail,omitempty" yaml:"transactionDetail,omitempty"`
	Address           map[string]FieldMap `json:"address,omitempty" yaml:"address,omitempty"`
}

// SenderParty returns the sender party projection, nil-safe.
func (c *MappingConfig) SenderParty() FieldMap {
	if c == nil || c.Sender == nil {
		return nil
	}
	return c.Sender.Party
}

// RecipientParty returns the recipient party projection, nil-safe.
func (c *MappingConfig) RecipientParty() FieldMap {
	if c == nil || c.Recipient == nil {
		return nil
	}
	return c.Recipient.Party
}

// SenderAddress returns the sender address projection.
func (c *MappingConfig) SenderAddress() FieldMap {
	return c.addressFor(RoleSender)
}

// RecipientAddress returns the recipient address projection.
func (c *MappingConfig) RecipientAddress() FieldMap {
	return c.addressFor(RoleRecipient)
}

func (c *MappingConfig) addressFor(role string) FieldMap {
	if c == nil {
		return nil
	}
	var em *EntityMapping
	switch role {
	case RoleSender:
		em = c.Sender
	case RoleRecipient:
		em = c.Recipient
	}
	if em != nil && len(em.Address) > 0 {
		return em.Address
	}
	return c.Address[role]
}

// TransactionFields returns the header field rules, nil-safe.
func (c *MappingConfig) TransactionFields() FieldMap {
	if c == nil || c.Payment == nil {
		return nil
	}
	return c.Payment.Transaction
}

// DetailFields returns the transaction detail field rules, nil-safe.
func (c *MappingConfig) DetailFields() FieldMap {
	if c == nil || c.TransactionDetail == nil {
		return nil
	}
	return c.TransactionDetail.Detail
}
