// Package db opens the server database from a DSN, selecting the driver
// (and the goose dialect that goes with it) from the DSN shape.
package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Dialects understood by the migration runner.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

// Open connects to the database behind dsn and returns the handle together
// with the goose dialect. DSNs starting with postgres:// or postgresql://
// use pgx; everything else is treated as an SQLite path (":memory:" works
// for tests).
func Open(dsn string) (*sql.DB, string, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		conn, err := sql.Open("pgx", dsn)
		if err != nil {
			return nil, "", fmt.Errorf("db open error: %w", err)
		}
		return conn, DialectPostgres, nil
	}

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, "", fmt.Errorf("db open error: %w", err)
	}

	// SQLite does not support concurrent writers.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, "", fmt.Errorf("db pragma error: %w", err)
	}

	return conn, DialectSQLite, nil
}
