package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"eva-assistant/internal/conversation"
	"eva-assistant/internal/model"
	pkgLog "eva-assistant/pkg/log"
)

// Store is the SQLite-backed conversation repository.
//
// The schema mirrors the historical message_store layout: one opaque
// encoded blob per row, ordered by an autoincrement key. Ordering by id
// rather than a timestamp keeps turns written within the same clock tick
// in their true insertion order.
type Store struct {
	db *sql.DB
	l  pkgLog.Logger
}

// New opens (or creates) the SQLite database at path and ensures the
// message_store table exists. Parent directories are created if needed.
func New(path string, l pkgLog.Logger) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS message_store (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			message TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_message_store_session
			ON message_store(session_id, id);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db, l: l}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the underlying handle so sibling domains sharing the same
// database file can create their own tables.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Append writes one encoded message to the end of the session's log.
func (s *Store) Append(ctx context.Context, sessionID string, raw []byte) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO message_store (session_id, message) VALUES (?, ?)",
		sessionID, string(raw),
	)
	if err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}
	return nil
}

// History returns all decodable messages for the session in insertion
// order. Entries whose encoding is not recognized are skipped, not failed:
// one bad row must never hide the rest of the conversation.
func (s *Store) History(ctx context.Context, sessionID string) ([]model.ChatMessage, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT message FROM message_store WHERE session_id = ? ORDER BY id ASC",
		sessionID,
	)
	if err != nil {
		if isMissingTable(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var history []model.ChatMessage
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}

		msg, ok := conversation.Decode([]byte(raw))
		if !ok {
			s.l.Debugf(ctx, "conversation store: skipping undecodable message for session %s", sessionID)
			continue
		}
		history = append(history, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history: %w", err)
	}

	return history, nil
}

// ListSessions returns every distinct session id with at least one message.
func (s *Store) ListSessions(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT DISTINCT session_id FROM message_store ORDER BY session_id",
	)
	if err != nil {
		if isMissingTable(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		if id != "" {
			sessions = append(sessions, id)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sessions: %w", err)
	}

	return sessions, nil
}

// isMissingTable reports whether err means the message_store table does
// not exist yet, e.g. the store file was created externally without our
// schema. Reads then behave as if the log were empty.
func isMissingTable(err error) bool {
	return err != nil && strings.Contains(err.Error(), "no such table")
}
