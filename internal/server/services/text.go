package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/memorizer/internal/common"
	"github.com/dmitrijs2005/memorizer/internal/dbx"
	"github.com/dmitrijs2005/memorizer/internal/server/models"
	"github.com/dmitrijs2005/memorizer/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// TextService implements the text CRUD operations and the mark-practiced
// transition, all scoped to the authenticated caller. Ownership is enforced
// here via requireOwner; the repositories below trust their caller.
//
// Mutations that return the updated entity run the write and the read-back
// inside one transaction so they observe their own write.
type TextService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTextService(db *sql.DB, m repomanager.RepositoryManager) *TextService {
	return &TextService{db: db, repomanager: m}
}

// List returns the caller's texts, optionally filtered to titles containing
// search.
func (s *TextService) List(ctx context.Context, userID, search string) ([]*models.Text, error) {
	return s.repomanager.Texts(s.db).List(ctx, userID, search)
}

// Get returns the text with the given id if the caller owns it.
// A text owned by someone else yields common.ErrorForbidden, an absent id
// yields common.ErrorNotFound.
func (s *TextService) Get(ctx context.Context, id, callerID string) (*models.Text, error) {
	text, err := s.repomanager.Texts(s.db).Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(callerID, text.UserID); err != nil {
		return nil, err
	}
	return text, nil
}

// Create stores a new text for userID and reads it back.
func (s *TextService) Create(ctx context.Context, userID, title, content, tags string) (*models.Text, error) {

	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: title and content are required", common.ErrorValidation)
	}

	now := time.Now()
	text := &models.Text{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		Tags:      tags,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var created *models.Text
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Texts(tx)
		if err := repo.Create(ctx, text); err != nil {
			return err
		}
		var getErr error
		created, getErr = repo.Get(ctx, text.ID)
		return getErr
	}); err != nil {
		return nil, err
	}
	return created, nil
}

// Update overwrites title, content and tags of a text the caller owns,
// bumps updated_at and reads the row back in the same transaction.
func (s *TextService) Update(ctx context.Context, id, callerID, title, content, tags string) (*models.Text, error) {

	if _, err := s.Get(ctx, id, callerID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: title and content are required", common.ErrorValidation)
	}

	var updated *models.Text
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Texts(tx)
		if err := repo.Update(ctx, id, title, content, tags, time.Now()); err != nil {
			return err
		}
		var getErr error
		updated, getErr = repo.Get(ctx, id)
		return getErr
	}); err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete hard-deletes a text the caller owns.
func (s *TextService) Delete(ctx context.Context, id, callerID string) error {
	if _, err := s.Get(ctx, id, callerID); err != nil {
		return err
	}
	return s.repomanager.Texts(s.db).Delete(ctx, id)
}

// MarkPracticed records a practice completion on a text the caller owns:
// last_practiced_at and updated_at are set to the current time and the
// updated row is returned.
func (s *TextService) MarkPracticed(ctx context.Context, id, callerID string) (*models.Text, error) {

	if _, err := s.Get(ctx, id, callerID); err != nil {
		return nil, err
	}

	var updated *models.Text
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Texts(tx)
		if err := repo.MarkPracticed(ctx, id, time.Now()); err != nil {
			return err
		}
		var getErr error
		updated, getErr = repo.Get(ctx, id)
		return getErr
	}); err != nil {
		return nil, err
	}
	return updated, nil
}
