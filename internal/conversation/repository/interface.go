package repository

import (
	"context"

	"eva-assistant/internal/model"
)

// Repository is the append-only per-session conversation log.
type Repository interface {
	// Append writes one immutable encoded message to the end of the
	// session's log.
	Append(ctx context.Context, sessionID string, raw []byte) error

	// History returns every decodable message for the session in
	// insertion order. Undecodable entries are skipped.
	History(ctx context.Context, sessionID string) ([]model.ChatMessage, error)

	// ListSessions returns every distinct session id with at least one
	// message.
	ListSessions(ctx context.Context) ([]string, error)
}
