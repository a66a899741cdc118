package testsupport

import (
	"context"
	"testing"

	"plinth/internal/catalog"
	"plinth/internal/config"
)

// MustOpenStore opens a catalog.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *catalog.Store {
	t.Helper()

	store, err := catalog.Open(cfg)
	if err != nil {
		t.Fatalf("catalog.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// AddRecord catalogs a path for tests using the provided store.
func AddRecord(t testing.TB, store *catalog.Store, path string) *catalog.Record {
	t.Helper()

	record, err := store.AddPath(context.Background(), path)
	if err != nil {
		t.Fatalf("store.AddPath(%q): %v", path, err)
	}
	return record
}
