package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	database, err := Open(filepath.Join(t.TempDir(), "wizmcp.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	if err := database.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return database
}

func TestMigrateIsIdempotent(t *testing.T) {
	database := openTestDB(t)

	if err := database.Migrate(context.Background()); err != nil {
		t.Fatalf("second migrate failed: %v", err)
	}

	version, err := database.getSchemaVersion(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if version != currentSchemaVersion {
		t.Errorf("expected schema version %d, got %d", currentSchemaVersion, version)
	}
}

func TestRecordAndListExchanges(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	database.RecordExchange(ctx, "setState",
		[]byte(`{"id":1,"method":"setState","params":{"state":false}}`),
		[]byte(`{"result":{"success":true}}`),
		nil,
	)
	database.RecordExchange(ctx, "getPilot",
		[]byte(`{"method":"getPilot","params":{}}`),
		nil,
		errors.New("device did not reply in time"),
	)

	exchanges, err := database.RecentExchanges(ctx, 10)
	if err != nil {
		t.Fatalf("RecentExchanges failed: %v", err)
	}
	if len(exchanges) != 2 {
		t.Fatalf("expected 2 exchanges, got %d", len(exchanges))
	}

	// Newest first
	if exchanges[0].Method != "getPilot" {
		t.Errorf("expected newest entry first, got %q", exchanges[0].Method)
	}
	if exchanges[0].Error == "" {
		t.Error("expected error text on failed exchange")
	}
	if exchanges[0].Reply != nil {
		t.Errorf("expected no reply on failed exchange, got %s", exchanges[0].Reply)
	}

	if exchanges[1].Method != "setState" {
		t.Errorf("expected setState entry, got %q", exchanges[1].Method)
	}
	if exchanges[1].Error != "" {
		t.Errorf("expected no error on successful exchange, got %q", exchanges[1].Error)
	}
	if string(exchanges[1].Reply) != `{"result":{"success":true}}` {
		t.Errorf("unexpected reply: %s", exchanges[1].Reply)
	}
}

func TestRecentExchangesRespectsLimit(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		database.RecordExchange(ctx, "getPilot", []byte(`{"method":"getPilot","params":{}}`), []byte(`{"result":{}}`), nil)
	}

	exchanges, err := database.RecentExchanges(ctx, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(exchanges) != 3 {
		t.Errorf("expected 3 exchanges, got %d", len(exchanges))
	}
}

func TestRecentExchangesQuotesMalformedReply(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	database.RecordExchange(ctx, "getPilot",
		[]byte(`{"method":"getPilot","params":{}}`),
		[]byte("definitely not json"),
		errors.New("malformed device reply"),
	)

	exchanges, err := database.RecentExchanges(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(exchanges) != 1 {
		t.Fatalf("expected 1 exchange, got %d", len(exchanges))
	}
	if string(exchanges[0].Reply) != `"definitely not json"` {
		t.Errorf("expected re-quoted reply, got %s", exchanges[0].Reply)
	}
}
