// Package users provides the SQL-backed repository for user rows.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/memorizer/internal/common"
	"github.com/dmitrijs2005/memorizer/internal/dbx"
	"github.com/dmitrijs2005/memorizer/internal/server/models"
)

// SQLRepository implements user storage over a dbx.DBTX (*sql.DB or *sql.Tx).
// Timestamps are stored as integer epoch-seconds so the SQL works on both
// PostgreSQL and SQLite.
type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Create(ctx context.Context, user *models.User) error {

	query :=
		`INSERT INTO users (id, name, email, password, image, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 `

	var image any
	if user.Image != "" {
		image = user.Image
	}

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, image,
		user.CreatedAt.Unix(), user.UpdatedAt.Unix())
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *SQLRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT id, name, email, password, image, created_at, updated_at FROM users
		 WHERE email = $1
		 `
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *SQLRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query :=
		`SELECT id, name, email, password, image, created_at, updated_at FROM users
		 WHERE id = $1
		 `
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLRepository) UpdateProfile(ctx context.Context, id, name, image string) error {
	query :=
		`UPDATE users SET name = $1, image = $2, updated_at = $3
		 WHERE id = $4
		 `

	var img any
	if image != "" {
		img = image
	}

	res, err := r.db.ExecContext(ctx, query, name, img, timeNow().Unix(), id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *SQLRepository) scanOne(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	var image sql.NullString
	var createdAt, updatedAt int64

	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &image, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	user.Image = image.String
	user.CreatedAt = fromUnix(createdAt)
	user.UpdatedAt = fromUnix(updatedAt)
	return user, nil
}
