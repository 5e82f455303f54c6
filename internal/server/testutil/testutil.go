// Package testutil spins up an in-memory SQLite database with the full
// schema applied, so service and transport tests exercise the real SQL.
package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/memorizer/internal/server/db"
	"github.com/dmitrijs2005/memorizer/internal/server/repositories/repomanager"
)

// NewTestDB opens an in-memory SQLite database, runs the migrations and
// returns the handle together with a repository manager. The connection is
// closed via t.Cleanup.
func NewTestDB(t *testing.T) (*sql.DB, repomanager.RepositoryManager) {
	t.Helper()

	conn, dialect, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	rm := repomanager.NewSQLRepositoryManager(dialect)
	if err := rm.RunMigrations(context.Background(), conn); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	return conn, rm
}
