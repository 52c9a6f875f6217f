package integration

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/microsoft/go-mssqldb"

	"txnconsumer/internal/config"
	"txnconsumer/internal/ingest"
	"txnconsumer/pkg/database"
	"txnconsumer/pkg/models"
)

// TestIngestEndToEnd needs a reachable SQL Server with the four
// SEND_* tables created. Skipped unless SQL_CONNECTION_STRING is set.
func TestIngestEndToEnd(t *testing.T) {
	connString := os.Getenv("SQL_CONNECTION_STRING")
	if connString == "" {
		t.Skip("SQL_CONNECTION_STRING not set, skipping integration test")
	}

	sqlDB, err := database.ConnectSQL(connString)
	if err != nil {
		t.Fatalf("Failed to connect to SQL: %v", err)
	}
	defer sqlDB.Close()

	const tranID = "ITEST-TXN1"
	cleanupTransaction(t, sqlDB, tranID)
	defer cleanupTransaction(t, sqlDB, tranID)

	// Construct the mapping in code to avoid file path issues in tests
	mapping := &models.MappingConfig{
		Payment: &models.EntityMapping{
			Transaction: models.FieldMap{
				"TRAN_ID":   {Source: models.SourceJSON, Path: "$.transactionId", Required: true},
				"TRAN_TYPE": {Source: models.SourceJSON, Path: "$.transactionType", Required: true},
				"TRAN_AMT":  {Source: models.SourceJSON, Path: "$.amount", Required: true},
				"TRAN_CURR": {Source: models.SourceJSON, Path: "$.currency", Required: true},
			},
		},
		TransactionDetail: &models.EntityMapping{
			Detail: models.FieldMap{
				"PAYMT_TYPE": {Source: models.SourceConstant, Value: "SEND"},
			},
		},
		Sender: &models.EntityMapping{
			Party: models.FieldMap{
				"FIRST_NAME": {Source: models.SourceJSON, Path: "$.sender.firstName"},
			},
			Address: models.FieldMap{
				"ADDR_TYPE": {Source: models.SourceConstant, Value: "SENDER"},
				"CITY":      {Source: models.SourceJSON, Path: "$.sender.address.city"},
			},
		},
		Recipient: &models.EntityMapping{
			Party: models.FieldMap{
				"FIRST_NAME": {Source: models.SourceJSON, Path: "$.recipient.firstName"},
			},
			Address: models.FieldMap{
				"ADDR_TYPE": {Source: models.SourceConstant, Value: "RECIPIENT"},
			},
		},
	}

	payload := []byte(`{
		"transactionId": "` + tranID + `",
		"transactionType": "PAYMENT",
		"amount": 500,
		"currency": "INR",
		"sender": {"firstName": "John", "address": {"city": "Mumbai"}},
		"recipient": {"firstName": "Jane"}
	}`)

	mappings := config.NewStaticMappingStore(mapping)
	orch := ingest.NewOrchestrator(ingest.NewSQLStore(sqlDB), mappings.Current, nil)

	if err := orch.Persist(context.Background(), payload); err != nil {
		t.Fatalf("Persist failed: %v", err)
	}

	assertRowCount(t, sqlDB, "SEND_TRANSACTIONS", tranID, 1)
	assertRowCount(t, sqlDB, "SEND_TRAN_DTL", tranID, 1)
	assertRowCount(t, sqlDB, "SEND_RECIP_DTL", tranID, 1)
	assertRowCount(t, sqlDB, "SEND_TRAN_ADDR_DTL", tranID, 2)

	// second persist of the same payload is a second transaction attempt
	if err := orch.Persist(context.Background(), payload); err != nil {
		t.Fatalf("Second persist failed: %v", err)
	}
	assertRowCount(t, sqlDB, "SEND_TRANSACTIONS", tranID, 2)
}

func assertRowCount(t *testing.T, db *sql.DB, table, tranID string, want int) {
	t.Helper()
	var got int
	query := "SELECT COUNT(*) FROM " + table + " WHERE TRAN_ID = @p1"
	if err := db.QueryRow(query, tranID).Scan(&got); err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}
	if got != want {
		t.Errorf("Expected %d rows in %s for %s, got %d", want, table, tranID, got)
	}
}

func cleanupTransaction(t *testing.T, db *sql.DB, tranID string) {
	t.Helper()
	for _, table := range []string{"SEND_TRAN_ADDR_DTL", "SEND_RECIP_DTL", "SEND_TRAN_DTL", "SEND_TRANSACTIONS"} {
		if _, err := db.Exec("DELETE FROM "+table+" WHERE TRAN_ID = @p1", tranID); err != nil {
			t.Logf("cleanup %s: %v", table, err)
		}
	}
}
