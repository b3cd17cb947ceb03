package http

import (
	stdhttp "net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"msgboard/internal/config"
	"msgboard/internal/message"
	"msgboard/internal/store"
	"msgboard/internal/store/sqlite"
)

// createTestStore creates an in-memory SQLite store with schema applied.
func createTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	return st
}

// createTestServer builds a server around an in-memory store and returns both.
func createTestServer(t *testing.T) (*stdhttp.Server, store.Store) {
	t.Helper()

	testStore := createTestStore(t)
	svc := message.NewService(testStore)
	disabledLogger := zerolog.New(nil)

	cfg := config.Config{
		Addr:              ":0",
		ReadHeaderTimeout: time.Second,
		ShutdownTimeout:   time.Second,
	}

	return NewServer(svc, &cfg, &disabledLogger), testStore
}
