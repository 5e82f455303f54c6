// Package sessions provides the SQL-backed repository for session
// bookkeeping rows. Rows are created at login and deleted at logout;
// DeleteExpired lets operators purge stale rows.
package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/memorizer/internal/common"
	"github.com/dmitrijs2005/memorizer/internal/dbx"
	"github.com/dmitrijs2005/memorizer/internal/server/models"
)

type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Create(ctx context.Context, session *models.Session) error {
	query :=
		`INSERT INTO sessions (id, user_id, expires_at)
		 VALUES ($1, $2, $3)
		 `

	_, err := r.db.ExecContext(ctx, query, session.ID, session.UserID, session.ExpiresAt.Unix())
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLRepository) Find(ctx context.Context, id string) (*models.Session, error) {
	query :=
		`SELECT id, user_id, expires_at FROM sessions
		 WHERE id = $1
		 `

	session := &models.Session{}
	var expiresAt int64
	err := r.db.QueryRowContext(ctx, query, id).Scan(&session.ID, &session.UserID, &expiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	session.ExpiresAt = time.Unix(expiresAt, 0).UTC()
	return session, nil
}

func (r *SQLRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM sessions WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `DELETE FROM sessions WHERE expires_at < $1`

	res, err := r.db.ExecContext(ctx, query, now.Unix())
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}
