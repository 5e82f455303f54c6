package db

import "testing"

func TestOpen_SelectsDialectFromDSN(t *testing.T) {
	tests := []struct {
		name    string
		dsn     string
		dialect string
	}{
		{"postgres scheme", "postgres://user:pw@localhost:5432/memorizer", DialectPostgres},
		{"postgresql scheme", "postgresql://user:pw@localhost:5432/memorizer", DialectPostgres},
		{"sqlite file path", t.TempDir() + "/memorizer.db", DialectSQLite},
		{"sqlite in-memory", ":memory:", DialectSQLite},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			conn, dialect, err := Open(tt.dsn)
			if err != nil {
				t.Fatalf("Open(%q) error: %v", tt.dsn, err)
			}
			defer conn.Close()
			if dialect != tt.dialect {
				t.Fatalf("Open(%q) dialect = %q, want %q", tt.dsn, dialect, tt.dialect)
			}
		})
	}
}

func TestOpen_SQLiteIsUsable(t *testing.T) {
	conn, _, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	defer conn.Close()

	var on int
	if err := conn.QueryRow("PRAGMA foreign_keys").Scan(&on); err != nil {
		t.Fatalf("pragma query: %v", err)
	}
	if on != 1 {
		t.Fatal("foreign_keys pragma not enabled")
	}
}
