package ingest

import (
	"time"

	"github.com/google/uuid"
	"github.com/ohler55/ojg/jp"

	"txnconsumer/pkg/utils"
)

// Fixed payload paths read by the fallback path. These are not driven
// by configuration so that a corrupt mapping rollout degrades to
// reduced-fidelity persistence instead of dropping the event.
var (
	pathTranID        = jp.MustParseString("$.transactionId")
	pathTranType      = jp.MustParseString("$.transactionType")
	pathAmount        = jp.MustParseString("$.amount")
	pathCurrency      = jp.MustParseString("$.currency")
	pathCustomerRef   = jp.MustParseString("$.customerReferenceNumber")
	pathOrigInst      = jp.MustParseString("$.originatingInstitution")
	pathAcceptor      = jp.MustParseString("$.transferAcceptorName")
	pathPaymentRef    = jp.MustParseString("$.paymentReference")
	pathFundingSource = jp.MustParseString("$.fundingSource")
	pathPaymentType   = jp.MustParseString("$.paymentType")
)

var partyAttrs = map[string]string{
	"FIRST_NAME": "firstName",
	"LAST_NAME":  "lastName",
	"EMAIL":      "email",
	"PHONE":      "phone",
	"CITY":       "city",
	"COUNTRY":    "country",
}

var addressAttrs = map[string]string{
	"STREET_LINE_1": "line1",
	"STREET_LINE_2": "line2",
	"CITY":          "city",
	"STATE":         "state",
	"COUNTRY":       "country",
	"POSTAL_CODE":   "postalCode",
}

func buildFallback(doc interface{}) *Record {
	return &Record{
		Header: HeaderRow{
			TranID:       readString(doc, pathTranID),
			TranType:     readString(doc, pathTranType),
			Amount:       readValue(doc, pathAmount),
			Currency:     readString(doc, pathCurrency),
			CustomerRef:  readString(doc, pathCustomerRef),
			OrigInstName: readString(doc, pathOrigInst),
			AcceptorName: readString(doc, pathAcceptor),
		},
		Detail: DetailRow{
			PaymentRef:    readString(doc, pathPaymentRef),
			FundingSource: readString(doc, pathFundingSource),
			PaymentType:   readString(doc, pathPaymentType),
		},
		Party: PartyRow{
			Sender:    fallbackFields(doc, "$.sender", partyAttrs),
			Recipient: fallbackFields(doc, "$.recipient", partyAttrs),
		},
		Addresses: []AddressRow{
			{ID: uuid.NewString(), Fields: fallbackAddress(doc, "$.sender.address", addrTypeSender)},
			{ID: uuid.NewString(), Fields: fallbackAddress(doc, "$.recipient.address", addrTypeRecipient)},
		},
		CreatedAt: time.Now(),
		CreatedBy: systemUser,
	}
}

func fallbackFields(doc interface{}, prefix string, attrs map[string]string) map[string]interface{} {
	out := make(map[string]interface{}, len(attrs))
	for col, attr := range attrs {
		expr, err := jp.ParseString(prefix + "." + attr)
		if err != nil {
			continue
		}
		if v := readValue(doc, expr); v != nil {
			out[col] = v
		}
	}
	return out
}

func fallbackAddress(doc interface{}, prefix, addrType string) map[string]interface{} {
	out := fallbackFields(doc, prefix, addressAttrs)
	out["ADDR_TYPE"] = addrType
	return out
}

func readString(doc interface{}, expr jp.Expr) string {
	found := expr.Get(doc)
	if len(found) == 0 || found[0] == nil {
		return ""
	}
	return utils.Str(found[0])
}

func readValue(doc interface{}, expr jp.Expr) interface{} {
	found := expr.Get(doc)
	if len(found) == 0 {
		return nil
	}
	return found[0]
}
