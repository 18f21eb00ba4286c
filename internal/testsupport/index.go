package testsupport

import (
	"testing"

	"relparse/internal/config"
	"relparse/internal/library"
)

// MustOpenIndex opens a library.Store for tests and registers cleanup.
func MustOpenIndex(t testing.TB, cfg *config.Config) *library.Store {
	t.Helper()

	store, err := library.Open(cfg)
	if err != nil {
		t.Fatalf("library.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}
