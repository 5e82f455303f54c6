// Package migrations embeds the goose SQL migrations for the server schema.
// The SQL is kept portable between PostgreSQL and SQLite: TEXT ids and
// integer epoch-second timestamps.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
