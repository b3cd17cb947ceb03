package store

import (
	"context"
	"time"
)

// Message represents a persisted message.
type Message struct {
	ID        int64
	Text      string
	CreatedAt time.Time
}

// MessageStore handles message persistence.
type MessageStore interface {
	// CreateMessage inserts a new message, stamps its creation time,
	// and returns the stored row.
	CreateMessage(ctx context.Context, text string) (*Message, error)

	// ListMessages returns all messages, newest first.
	ListMessages(ctx context.Context) ([]*Message, error)

	// GetMessageByID retrieves a message by ID.
	// Returns (nil, nil) when no message matches.
	GetMessageByID(ctx context.Context, id int64) (*Message, error)

	// UpdateMessage replaces the text of the message matching id.
	// Returns false when no message matches.
	UpdateMessage(ctx context.Context, id int64, text string) (bool, error)

	// DeleteMessage removes the message matching id.
	// Returns false when no message matches.
	DeleteMessage(ctx context.Context, id int64) (bool, error)
}

// Store aggregates all storage interfaces.
type Store interface {
	MessageStore

	// Close closes the underlying database connection.
	Close() error
}
