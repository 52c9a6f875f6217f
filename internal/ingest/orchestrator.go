package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ohler55/ojg/oj"

	"txnconsumer/pkg/logger"
	"txnconsumer/pkg/models"
	"txnconsumer/pkg/utils"
)

// MappingSource yields the mapping snapshot for one request. The
// snapshot is captured once per Persist call and used for the whole
// request, so a concurrent hot-swap never splits a transaction across
// two configurations.
type MappingSource func() *models.MappingConfig

// Orchestrator sequences extraction and the atomic multi-table write,
// falling back to hardcoded extraction when the configuration is
// unusable or the configured attempt fails.
type Orchestrator struct {
	store    RowWriter
	mappings MappingSource
	archiver *Archiver
}

// NewOrchestrator builds an orchestrator. archiver may be nil to
// disable payload archiving.
func NewOrchestrator(store RowWriter, mappings MappingSource, archiver *Archiver) *Orchestrator {
	return &Orchestrator{store: store, mappings: mappings, archiver: archiver}
}

// Persist writes one transaction's rows. Success means either the
// configured path or the fallback path committed; a fallback failure
// surfaces as a PersistenceError.
func (o *Orchestrator) Persist(ctx context.Context, payload []byte) error {
	doc, err := oj.Parse(payload)
	if err != nil {
		return fmt.Errorf("parse payload: %w", err)
	}

	if o.archiver != nil {
		if err := o.archiver.Archive(ctx, readString(doc, pathTranID), payload); err != nil {
			logger.Warnf("payload archive failed: %v", err)
		}
	}

	cfg := o.mappings()
	if !mappingsUsable(cfg) {
		logger.Warnf("mapping configuration unusable, using fallback extraction")
		return o.persistFallback(ctx, doc)
	}

	rec, err := o.buildConfigured(doc, cfg)
	if err == nil {
		err = o.store.WriteAll(ctx, rec)
	}
	if err != nil {
		logger.Errorf("configured persistence failed: %v", err)
		return o.persistFallback(ctx, doc)
	}

	logger.Infof("transaction persisted via configured mappings: %s", rec.Header.TranID)
	return nil
}

// mappingsUsable uses the sender party group as the canary for "is the
// configuration loaded at all".
func mappingsUsable(cfg *models.MappingConfig) bool {
	return len(cfg.SenderParty()) > 0
}

func (o *Orchestrator) buildConfigured(doc interface{}, cfg *models.MappingConfig) (*Record, error) {
	header, err := resolveHeader(doc, cfg.TransactionFields())
	if err != nil {
		return nil, err
	}
	detail, err := resolveDetail(doc, cfg.DetailFields())
	if err != nil {
		return nil, err
	}

	senderParty, diags := ExtractAll(doc, cfg.SenderParty())
	if err := configMistake(diags); err != nil {
		return nil, err
	}
	recipientParty, diags := ExtractAll(doc, cfg.RecipientParty())
	if err := configMistake(diags); err != nil {
		return nil, err
	}
	senderAddr, diags := ExtractAll(doc, cfg.SenderAddress())
	if err := configMistake(diags); err != nil {
		return nil, err
	}
	recipientAddr, diags := ExtractAll(doc, cfg.RecipientAddress())
	if err := configMistake(diags); err != nil {
		return nil, err
	}

	return &Record{
		Header: header,
		Detail: detail,
		Party:  PartyRow{Sender: senderParty, Recipient: recipientParty},
		Addresses: []AddressRow{
			{ID: uuid.NewString(), Fields: senderAddr},
			{ID: uuid.NewString(), Fields: recipientAddr},
		},
		CreatedAt: time.Now(),
		CreatedBy: systemUser,
	}, nil
}

// configMistake surfaces unknown-source diagnostics. Field-level
// required/validation failures stay absorbed at group level, but a
// broken source tag means the configuration itself is wrong.
func configMistake(diags []Diagnostic) error {
	for _, d := range diags {
		var unknown *UnknownSourceError
		if errors.As(d.Err, &unknown) {
			return fmt.Errorf("field %s: %w", d.Field, unknown)
		}
	}
	return nil
}

// resolveHeader looks up each header column's rule individually; the
// header layout is fixed, so these are not a best-effort group. Any
// resolution failure escalates and forces the fallback path.
func resolveHeader(doc interface{}, rules models.FieldMap) (HeaderRow, error) {
	var h HeaderRow
	fields := []struct {
		name string
		set  func(interface{})
	}{
		{"TRAN_ID", func(v interface{}) { h.TranID = utils.Str(v) }},
		{"TRAN_TYPE", func(v interface{}) { h.TranType = utils.Str(v) }},
		{"TRAN_AMT", func(v interface{}) { h.Amount = v }},
		{"TRAN_CURR", func(v interface{}) { h.Currency = utils.Str(v) }},
		{"CUST_REF_NUM", func(v interface{}) { h.CustomerRef = utils.Str(v) }},
		{"ORIG_INST_NAM", func(v interface{}) { h.OrigInstName = utils.Str(v) }},
		{"TRANFR_ACPT_NAM", func(v interface{}) { h.AcceptorName = utils.Str(v) }},
	}
	for _, f := range fields {
		v, err := resolveNamed(doc, rules, f.name)
		if err != nil {
			return h, err
		}
		f.set(v)
	}
	return h, nil
}

func resolveDetail(doc interface{}, rules models.FieldMap) (DetailRow, error) {
	var d DetailRow
	fields := []struct {
		name string
		set  func(interface{})
	}{
		{"PAYMT_REF", func(v interface{}) { d.PaymentRef = utils.Str(v) }},
		{"FUND_SRC", func(v interface{}) { d.FundingSource = utils.Str(v) }},
		{"PAYMT_TYPE", func(v interface{}) { d.PaymentType = utils.Str(v) }},
	}
	for _, f := range fields {
		v, err := resolveNamed(doc, rules, f.name)
		if err != nil {
			return d, err
		}
		f.set(v)
	}
	return d, nil
}

func resolveNamed(doc interface{}, rules models.FieldMap, name string) (interface{}, error) {
	rule, ok := rules[name]
	if !ok {
		return nil, nil
	}
	v, err := Resolve(doc, &rule)
	if err != nil {
		return nil, fmt.Errorf("field %s: %w", name, err)
	}
	return v, nil
}

func (o *Orchestrator) persistFallback(ctx context.Context, doc interface{}) error {
	rec := buildFallback(doc)
	if err := o.store.WriteAll(ctx, rec); err != nil {
		return err
	}
	logger.Infof("transaction persisted via fallback extraction: %s", rec.Header.TranID)
	return nil
}
