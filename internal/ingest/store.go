package ingest

import (
	"context"
	"database/sql"
)

// RowWriter persists one transaction's rows as a single atomic unit.
type RowWriter interface {
	WriteAll(ctx context.Context, rec *Record) error
}

// SQLStore writes the four row sets to SQL Server inside one
// transaction. Any insert failure rolls the whole attempt back.
type SQLStore struct {
	DB *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{DB: db}
}

const (
	insertHeaderStmt = `INSERT INTO SEND_TRANSACTIONS (
		TRAN_ID, TRAN_TYPE, TRAN_AMT, TRAN_CURR, TRAN_CRTE_DT,
		CUR_STAT, ORIG_STAT, CUST_REF_NUM, ORIG_INST_NAM, TRANFR_ACPT_NAM,
		CRTE_TS, CRTE_USER_NAM, RPLCTN_UPDT_TS, NON_FIN_TXN
	) VALUES (@p1, @p2, @p3, @p4, @p5, @p6, @p7, @p8, @p9, @p10, @p11, @p12, @p13, @p14)`

	insertDetailStmt = `INSERT INTO SEND_TRAN_DTL (
		TRAN_ID, PAYMT_REF, FUND_SRC, PAYMT_TYPE,
		TRAN_CRTE_DT, CRTE_TS, CRTE_USER_NAM, RPLCTN_UPDT_TS
	) VALUES (@p1, @p2, @p3, @p4, @p5, @p6, @p7, @p8)`

	insertPartyStmt = `INSERT INTO SEND_RECIP_DTL (
		TRAN_ID,
		SEND_FIRST_NAM, SEND_LST_NAM, SEND_EMAIL, SEND_PHN, SEND_CITY, SEND_CNTRY_NAM,
		RECIP_FIRST_NAM, RECIP_LST_NAM, RECIP_EMAIL, RECIP_PHN, RECIP_CITY, RECIP_CNTRY_NAM,
		TRAN_CRTE_DT, CRTE_TS, CRTE_USER_NAM, RPLCTN_UPDT_TS
	) VALUES (@p1, @p2, @p3, @p4, @p5, @p6, @p7, @p8, @p9, @p10, @p11, @p12, @p13, @p14, @p15, @p16, @p17)`

	insertAddressStmt = `INSERT INTO SEND_TRAN_ADDR_DTL (
		ID, TRAN_ID, ADDR_TYPE, ST_LINE1, ST_LINE2,
		CITY, ST, CNTRY_NAM, POST_CD,
		CRTE_TS, CRTE_USER_NAM, RPLCTN_UPDT_TS
	) VALUES (@p1, @p2, @p3, @p4, @p5, @p6, @p7, @p8, @p9, @p10, @p11, @p12)`
)

func (s *SQLStore) WriteAll(ctx context.Context, rec *Record) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return &PersistenceError{Stage: "begin", Err: err}
	}

	if err := writeRows(ctx, tx, rec); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return &PersistenceError{Stage: "commit", Err: err}
	}
	return nil
}

func writeRows(ctx context.Context, tx *sql.Tx, rec *Record) error {
	h := rec.Header
	now := rec.CreatedAt
	user := rec.CreatedBy

	if _, err := tx.ExecContext(ctx, insertHeaderStmt,
		h.TranID, h.TranType, h.Amount, h.Currency, now,
		statusCompleted, statusNew, h.CustomerRef, h.OrigInstName, h.AcceptorName,
		now, user, now, 0,
	); err != nil {
		return &PersistenceError{Stage: "transaction header", Err: err}
	}

	d := rec.Detail
	if _, err := tx.ExecContext(ctx, insertDetailStmt,
		h.TranID, d.PaymentRef, d.FundingSource, d.PaymentType,
		now, now, user, now,
	); err != nil {
		return &PersistenceError{Stage: "transaction detail", Err: err}
	}

	p := rec.Party
	if _, err := tx.ExecContext(ctx, insertPartyStmt,
		h.TranID,
		fieldOrEmpty(p.Sender, "FIRST_NAME"),
		fieldOrEmpty(p.Sender, "LAST_NAME"),
		fieldOrEmpty(p.Sender, "EMAIL"),
		fieldOrEmpty(p.Sender, "PHONE"),
		fieldOrEmpty(p.Sender, "CITY"),
		fieldOrEmpty(p.Sender, "COUNTRY"),
		fieldOrEmpty(p.Recipient, "FIRST_NAME"),
		fieldOrEmpty(p.Recipient, "LAST_NAME"),
		fieldOrEmpty(p.Recipient, "EMAIL"),
		fieldOrEmpty(p.Recipient, "PHONE"),
		fieldOrEmpty(p.Recipient, "CITY"),
		fieldOrEmpty(p.Recipient, "COUNTRY"),
		now, now, user, now,
	); err != nil {
		return &PersistenceError{Stage: "party", Err: err}
	}

	for _, a := range rec.Addresses {
		if _, err := tx.ExecContext(ctx, insertAddressStmt,
			a.ID, h.TranID,
			fieldOrEmpty(a.Fields, "ADDR_TYPE"),
			fieldOrEmpty(a.Fields, "STREET_LINE_1"),
			fieldOrEmpty(a.Fields, "STREET_LINE_2"),
			fieldOrEmpty(a.Fields, "CITY"),
			fieldOrEmpty(a.Fields, "STATE"),
			fieldOrEmpty(a.Fields, "COUNTRY"),
			fieldOrEmpty(a.Fields, "POSTAL_CODE"),
			now, user, now,
		); err != nil {
			return &PersistenceError{Stage: "address", Err: err}
		}
	}

	return nil
}

func fieldOrEmpty(m map[string]interface{}, key string) interface{} {
	if v, ok := m[key]; ok && v != nil {
		return v
	}
	return ""
}
