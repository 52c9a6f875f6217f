package ingest

import "time"

// Status constants stamped onto every header row.
const (
	statusCompleted = "COMPLETED"
	statusNew       = "NEW"
	systemUser      = "SYSTEM"
)

// Address type tags used by the fallback path.
const (
	addrTypeSender    = "SENDER"
	addrTypeRecipient = "RECIPIENT"
)

// HeaderRow holds the SEND_TRANSACTIONS columns extracted from the
// payload. Amount keeps the payload's numeric representation.
type HeaderRow struct {
	TranID       string
	TranType     string
	Amount       interface{}
	Currency     string
	CustomerRef  string
	OrigInstName string
	AcceptorName string
}

// DetailRow holds the SEND_TRAN_DTL columns.
type DetailRow struct {
	PaymentRef    string
	FundingSource string
	PaymentType   string
}

// PartyRow holds the extracted field maps for both roles. Columns
// absent from a map are written as empty strings.
type PartyRow struct {
	Sender    map[string]interface{}
	Recipient map[string]interface{}
}

// AddressRow holds one SEND_TRAN_ADDR_DTL row. ID is a fresh row
// identifier generated by the orchestrator, not a mapped field.
type AddressRow struct {
	ID     string
	Fields map[string]interface{}
}

// Record is everything written for one transaction. All rows share the
// header's transaction id and are committed as one atomic unit.
type Record struct {
	Header    HeaderRow
	Detail    DetailRow
	Party     PartyRow
	Addresses []AddressRow
	CreatedAt time.Time
	CreatedBy string
}
