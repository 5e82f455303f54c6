package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/memorizer/internal/dbx"
	"github.com/dmitrijs2005/memorizer/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/memorizer/internal/server/repositories/texts"
	"github.com/dmitrijs2005/memorizer/internal/server/repositories/users"
)

// RepositoryManager vends repository implementations bound to a DBTX, so
// services can run the same repository code on a plain connection or inside
// a transaction.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Texts(db dbx.DBTX) texts.Repository
	Sessions(db dbx.DBTX) sessions.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
