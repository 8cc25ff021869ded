// Package dbtest provides a throwaway SQLite store with the export schema.
package dbtest

import (
	"context"
	_ "embed"
	"path/filepath"
	"strings"
	"testing"

	"page-export/internal/config"
	"page-export/internal/db"
)

//go:embed testdata/schema.sql
var schema string

func NewStore(t testing.TB) *db.Store {
	t.Helper()
	return Open(t, filepath.Join(t.TempDir(), "export.db"))
}

// Open creates the schema in a SQLite file at path.
func Open(t testing.TB, path string) *db.Store {
	t.Helper()
	ctx := context.Background()

	store, err := db.Open(ctx, &config.DatabaseConfig{URL: "sqlite:///" + path})
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	for _, stmt := range strings.Split(schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := store.DB().ExecContext(ctx, stmt); err != nil {
			t.Fatalf("failed to create schema: %v", err)
		}
	}
	return store
}

// Insert writes the given models in order.
func Insert(t testing.TB, store *db.Store, models ...any) {
	t.Helper()
	for _, m := range models {
		if _, err := store.DB().NewInsert().Model(m).Exec(context.Background()); err != nil {
			t.Fatalf("failed to insert %T: %v", m, err)
		}
	}
}

func Ptr[T any](v T) *T {
	return &v
}
