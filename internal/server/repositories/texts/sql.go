// Package texts provides the SQL-backed repository for memorization texts.
// The repository trusts its caller: ownership checks happen one layer up in
// the service.
package texts

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

// SQLRepository implements text storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

// List returns all texts owned by userID, optionally filtered to titles
// containing search. Practiced texts sort before never-practiced ones, then
// by last_practiced_at descending, then by created_at descending. The
// ordering is kept exactly as the product shipped it.
func (r *SQLRepository) List(ctx context.Context, userID, search string) ([]*models.Text, error) {

	query :=
		`SELECT id, title, content, tags, user_id, created_at, updated_at, last_practiced_at FROM texts
		 WHERE user_id = $1
		 `
	args := []any{userID}

	if search != "" {
		query += ` AND title LIKE $2`
		args = append(args, "%"+search+"%")
	}

	query += `
		 ORDER BY
		     CASE WHEN last_practiced_at IS NULL THEN 0 ELSE 1 END DESC,
		     last_practiced_at DESC,
		     created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Text
	for rows.Next() {
		item, err := scanText(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLRepository) Get(ctx context.Context, id string) (*models.Text, error) {
	query :=
		`SELECT id, title, content, tags, user_id, created_at, updated_at, last_practiced_at FROM texts
		 WHERE id = $1
		 `

	item, err := scanText(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *SQLRepository) Create(ctx context.Context, text *models.Text) error {
	query :=
		`INSERT INTO texts (id, title, content, tags, user_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 `

	_, err := r.db.ExecContext(ctx, query,
		text.ID, text.Title, text.Content, nullableString(text.Tags), text.UserID,
		text.CreatedAt.Unix(), text.UpdatedAt.Unix())
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLRepository) Update(ctx context.Context, id, title, content, tags string, updatedAt time.Time) error {
	query :=
		`UPDATE texts SET title = $1, content = $2, tags = $3, updated_at = $4
		 WHERE id = $5
		 `

	res, err := r.db.ExecContext(ctx, query, title, content, nullableString(tags), updatedAt.Unix(), id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireOneRow(res)
}

func (r *SQLRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM texts WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireOneRow(res)
}

// MarkPracticed sets last_practiced_at and updated_at to the same instant.
// No other code path writes last_practiced_at.
func (r *SQLRepository) MarkPracticed(ctx context.Context, id string, at time.Time) error {
	query :=
		`UPDATE texts SET last_practiced_at = $1, updated_at = $2
		 WHERE id = $3
		 `

	res, err := r.db.ExecContext(ctx, query, at.Unix(), at.Unix(), id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireOneRow(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanText(row rowScanner) (*models.Text, error) {
	item := &models.Text{}
	var tags sql.NullString
	var createdAt, updatedAt int64
	var lastPracticedAt sql.NullInt64

	err := row.Scan(&item.ID, &item.Title, &item.Content, &tags, &item.UserID,
		&createdAt, &updatedAt, &lastPracticedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	item.Tags = tags.String
	item.CreatedAt = time.Unix(createdAt, 0).UTC()
	item.UpdatedAt = time.Unix(updatedAt, 0).UTC()
	if lastPracticedAt.Valid {
		t := time.Unix(lastPracticedAt.Int64, 0).UTC()
		item.LastPracticedAt = &t
	}
	return item, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func requireOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
