package app

import (
	"path/filepath"
	"testing"

	"bookreview/pkg/storage"
	"bookreview/pkg/store"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()
	dataStore, err := store.NewSQLiteStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("new sqlite store: %v", err)
	}
	t.Cleanup(func() { _ = dataStore.Close() })
	avatars, err := storage.NewFileStore(filepath.Join(dir, "uploads"), "/uploads/profiles")
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	a, err := New(Config{
		TokenSecret: "test-secret",
		Store:       dataStore,
		Avatars:     avatars,
	})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	return a
}
