package message

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"msgboard/internal/store"
)

// MaxTextLen is the maximum message length in Unicode code points,
// measured after trimming.
const MaxTextLen = 500

var (
	// ErrEmptyText means the text was empty or whitespace-only.
	ErrEmptyText = errors.New("text is empty")
	// ErrTextTooLong means the trimmed text exceeds MaxTextLen.
	ErrTextTooLong = errors.New("text too long")
)

// ValidateText trims raw and checks it against the message invariants.
// The returned string is what gets persisted. Pure: same input, same outcome.
func ValidateText(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", ErrEmptyText
	}
	if utf8.RuneCountInString(text) > MaxTextLen {
		return "", ErrTextTooLong
	}
	return text, nil
}

// Service coordinates validation and message persistence.
type Service struct {
	store store.MessageStore
}

// NewService creates a new message service.
func NewService(st store.MessageStore) *Service {
	return &Service{store: st}
}

// Create validates raw text and persists a new message.
func (s *Service) Create(ctx context.Context, raw string) (*store.Message, error) {
	text, err := ValidateText(raw)
	if err != nil {
		return nil, err
	}
	return s.store.CreateMessage(ctx, text)
}

// List returns all messages, newest first.
func (s *Service) List(ctx context.Context) ([]*store.Message, error) {
	return s.store.ListMessages(ctx)
}

// Get retrieves a message by ID. Returns (nil, nil) when no message matches.
func (s *Service) Get(ctx context.Context, id int64) (*store.Message, error) {
	return s.store.GetMessageByID(ctx, id)
}

// Update validates raw text and replaces the text of the matching message.
// Returns the updated message, or (nil, nil) when no message matches.
func (s *Service) Update(ctx context.Context, id int64, raw string) (*store.Message, error) {
	text, err := ValidateText(raw)
	if err != nil {
		return nil, err
	}

	updated, err := s.store.UpdateMessage(ctx, id, text)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, nil
	}

	return s.store.GetMessageByID(ctx, id)
}

// Delete removes the matching message. Returns false when no message matches.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.store.DeleteMessage(ctx, id)
}
