package testfixtures

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/example/escala/internal/persistence/sqlite"
)

// NewSQLiteStore opens a migrated store backed by a temporary file. The
// store is closed automatically when the test finishes.
func NewSQLiteStore(tb testing.TB) *sqlite.Store {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "escala.db")
	store, err := sqlite.Open("file:" + path)
	if err != nil {
		tb.Fatalf("failed to open storage: %v", err)
	}
	tb.Cleanup(func() {
		if err := store.Close(); err != nil {
			tb.Errorf("failed to close storage: %v", err)
		}
	})

	if err := store.Migrate(context.Background()); err != nil {
		tb.Fatalf("failed to migrate storage: %v", err)
	}
	return store
}
