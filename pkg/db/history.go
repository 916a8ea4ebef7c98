package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

const currentSchemaVersion = 1

// Schema SQL for version 1. The command log is an audit trail of what was
// sent to the bulb; it is never consulted to answer state queries.
const schemaV1 = `
-- Schema version tracking
CREATE TABLE IF NOT EXISTS schema_version (
    version     INTEGER PRIMARY KEY,
    applied_at  TEXT NOT NULL DEFAULT (datetime('now'))
);

-- One row per request/reply exchange with the bulb
CREATE TABLE IF NOT EXISTS command_log (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    method      TEXT NOT NULL,
    request     TEXT NOT NULL,
    reply       TEXT,
    error       TEXT NOT NULL DEFAULT '',
    sent_at     TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_command_log_sent_at ON command_log(sent_at);
`

// Migrate runs database migrations to bring the schema up to date.
func (db *DB) Migrate(ctx context.Context) error {
	version, err := db.getSchemaVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	if version >= currentSchemaVersion {
		return nil // Already up to date
	}

	if version < 1 {
		if err := db.applySchemaV1(ctx); err != nil {
			return fmt.Errorf("failed to apply schema v1: %w", err)
		}
	}

	return nil
}

// getSchemaVersion returns the current schema version, or 0 if no schema exists.
func (db *DB) getSchemaVersion(ctx context.Context) (int, error) {
	var count int
	err := db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM sqlite_master
		WHERE type='table' AND name='schema_version'
	`).Scan(&count)
	if err != nil {
		return 0, err
	}

	if count == 0 {
		return 0, nil
	}

	var version int
	err = db.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_version`).Scan(&version)
	if err != nil {
		return 0, err
	}

	return version, nil
}

// applySchemaV1 applies the initial schema.
func (db *DB) applySchemaV1(ctx context.Context) error {
	return db.Tx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, schemaV1); err != nil {
			return fmt.Errorf("failed to execute schema: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `INSERT INTO schema_version (version) VALUES (1)`); err != nil {
			return fmt.Errorf("failed to record schema version: %w", err)
		}

		return nil
	})
}

// Exchange is one recorded request/reply pair.
type Exchange struct {
	ID      int64           `json:"id"`
	Method  string          `json:"method"`
	Request json.RawMessage `json:"request"`
	Reply   json.RawMessage `json:"reply,omitempty"`
	Error   string          `json:"error,omitempty"`
	SentAt  time.Time       `json:"sent_at"`
}

// RecordExchange stores one request/reply pair in the command log.
// It implements wiz.ExchangeRecorder. Recording is best-effort: failures
// are logged and never propagated to the sender.
func (db *DB) RecordExchange(ctx context.Context, method string, request, reply []byte, result error) {
	errText := ""
	if result != nil {
		errText = result.Error()
	}

	var replyText any
	if reply != nil {
		replyText = string(reply)
	}

	_, err := db.ExecContext(ctx, `
		INSERT INTO command_log (method, request, reply, error)
		VALUES (?, ?, ?, ?)
	`, method, string(request), replyText, errText)
	if err != nil {
		log.Warn().Err(err).Str("method", method).Msg("Failed to record exchange")
	}
}

// RecentExchanges returns the most recent entries in the command log,
// newest first. A limit of zero or less selects 50.
func (db *DB) RecentExchanges(ctx context.Context, limit int) ([]Exchange, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, method, request, reply, error, sent_at
		FROM command_log
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query command log: %w", err)
	}
	defer rows.Close()

	var exchanges []Exchange
	for rows.Next() {
		var (
			e      Exchange
			req    string
			reply  sql.NullString
			sentAt string
		)
		if err := rows.Scan(&e.ID, &e.Method, &req, &reply, &e.Error, &sentAt); err != nil {
			return nil, fmt.Errorf("failed to scan command log row: %w", err)
		}

		e.Request = json.RawMessage(req)
		if reply.Valid {
			// A malformed device reply is stored verbatim; re-quote it so
			// the entry still marshals as JSON.
			if json.Valid([]byte(reply.String)) {
				e.Reply = json.RawMessage(reply.String)
			} else if quoted, err := json.Marshal(reply.String); err == nil {
				e.Reply = quoted
			}
		}
		if t, err := time.Parse("2006-01-02 15:04:05", sentAt); err == nil {
			e.SentAt = t.UTC()
		}

		exchanges = append(exchanges, e)
	}

	return exchanges, rows.Err()
}
