package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldOrEmpty(t *testing.T) {
	m := map[string]interface{}{
		"FIRST_NAME": "John",
		"LAST_NAME":  nil,
	}

	assert.Equal(t, "John", fieldOrEmpty(m, "FIRST_NAME"))
	assert.Equal(t, "", fieldOrEmpty(m, "LAST_NAME"))
	assert.Equal(t, "", fieldOrEmpty(m, "EMAIL"))
	assert.Equal(t, "", fieldOrEmpty(nil, "EMAIL"))
}

func TestBuildFallbackReadsNestedFields(t *testing.T) {
	doc := map[string]interface{}{
		"transactionId":   "TXN9",
		"transactionType": "PAYMENT",
		"amount":          int64(42),
		"currency":        "USD",
		"sender": map[string]interface{}{
			"firstName": "Ann",
			"address": map[string]interface{}{
				"line1":      "1 Main St",
				"postalCode": "400001",
			},
		},
	}

	rec := buildFallback(doc)

	assert.Equal(t, "TXN9", rec.Header.TranID)
	assert.Equal(t, int64(42), rec.Header.Amount)
	assert.Equal(t, "Ann", rec.Party.Sender["FIRST_NAME"])
	assert.Empty(t, rec.Party.Recipient)

	assert.Equal(t, addrTypeSender, rec.Addresses[0].Fields["ADDR_TYPE"])
	assert.Equal(t, "1 Main St", rec.Addresses[0].Fields["STREET_LINE_1"])
	assert.Equal(t, "400001", rec.Addresses[0].Fields["POSTAL_CODE"])
	assert.Equal(t, addrTypeRecipient, rec.Addresses[1].Fields["ADDR_TYPE"])
	assert.Equal(t, systemUser, rec.CreatedBy)
}
