// Package repomanager provides a concrete RepositoryManager over SQL,
// wiring together repository constructors and database migrations (goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/memorizer/internal/dbx"
	"github.com/dmitrijs2005/memorizer/internal/server/migrations"
	"github.com/dmitrijs2005/memorizer/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/memorizer/internal/server/repositories/texts"
	"github.com/dmitrijs2005/memorizer/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
)

// SQLRepositoryManager vends SQL-backed repository implementations and
// exposes a schema migration hook. The dialect ("postgres" or "sqlite3")
// comes from db.Open.
type SQLRepositoryManager struct {
	dialect string
}

// NewSQLRepositoryManager constructs a RepositoryManager for the dialect.
func NewSQLRepositoryManager(dialect string) *SQLRepositoryManager {
	return &SQLRepositoryManager{dialect: dialect}
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLRepository(db)
}

// Texts returns a texts.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Texts(db dbx.DBTX) texts.Repository {
	return texts.NewSQLRepository(db)
}

// Sessions returns a sessions.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Sessions(db dbx.DBTX) sessions.Repository {
	return sessions.NewSQLRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(m.dialect); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}
