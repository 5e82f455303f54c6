// Package services contains server-side business logic. This file
// implements UserService: registration, credential checks, session
// issuance and profile management.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/memorizer/internal/common"
	"github.com/dmitrijs2005/memorizer/internal/server/auth"
	"github.com/dmitrijs2005/memorizer/internal/server/config"
	"github.com/dmitrijs2005/memorizer/internal/server/models"
	"github.com/dmitrijs2005/memorizer/internal/server/repositories/repomanager"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest password Register accepts.
const MinPasswordLength = 8

// UserService provides authentication-related operations:
//   - Register: create users
//   - Authenticate: verify credentials
//   - Login / Logout: session token lifecycle
//   - GetProfile / UpdateProfile: profile management
type UserService struct {
	db                      *sql.DB
	repomanager             repomanager.RepositoryManager
	jwtSecret               []byte
	sessionValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                      db,
		repomanager:             m,
		jwtSecret:               []byte(cfg.SecretKey),
		sessionValidityDuration: cfg.SessionValidityDuration,
	}
}

// Register creates a new user. The email is folded to lower case before the
// uniqueness check and before storage, so registration is case-insensitive.
// The password is stored only as a bcrypt hash.
func (s *UserService) Register(ctx context.Context, name, email, password string) (string, error) {

	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" || email == "" || password == "" {
		return "", fmt.Errorf("%w: name, email and password are required", common.ErrorValidation)
	}
	if len(password) < MinPasswordLength {
		return "", fmt.Errorf("%w: password must be at least %d characters", common.ErrorValidation, MinPasswordLength)
	}

	repo := s.repomanager.Users(s.db)

	_, err := repo.GetByEmail(ctx, email)
	if err == nil {
		return "", common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return "", common.ErrorInternal
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", common.ErrorInternal
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := repo.Create(ctx, user); err != nil {
		return "", fmt.Errorf("error creating user: %w", err)
	}

	return user.ID, nil
}

// Authenticate looks up the user by case-folded email and verifies the
// password against the stored bcrypt hash. A missing user or a mismatch
// both yield (nil, nil): callers cannot distinguish the two cases.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.Identity, error) {

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil
	}

	return &models.Identity{ID: user.ID, Name: user.Name, Email: user.Email, Image: user.Image}, nil
}

// Login authenticates the credentials, records a session row and mints a
// signed token for it. Invalid credentials yield common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *models.Session, error) {

	identity, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return "", nil, err
	}
	if identity == nil {
		return "", nil, common.ErrorUnauthorized
	}

	session := &models.Session{
		ID:        uuid.NewString(),
		UserID:    identity.ID,
		ExpiresAt: time.Now().Add(s.sessionValidityDuration),
	}

	if err := s.repomanager.Sessions(s.db).Create(ctx, session); err != nil {
		return "", nil, common.ErrorInternal
	}

	token, err := auth.GenerateToken(identity.ID, session.ID, s.jwtSecret, s.sessionValidityDuration)
	if err != nil {
		return "", nil, common.ErrorInternal
	}

	return token, session, nil
}

// Logout deletes the session bookkeeping row named by the token id claim.
// An already-absent row is not an error.
func (s *UserService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.repomanager.Sessions(s.db).Delete(ctx, sessionID)
}

// PurgeExpiredSessions deletes session rows whose expiry is in the past and
// returns how many were removed.
func (s *UserService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	return s.repomanager.Sessions(s.db).DeleteExpired(ctx, time.Now())
}

// GetProfile returns the caller's user row.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, userID)
}

// UpdateProfile overwrites the caller's display name and avatar image key,
// then reads the row back.
func (s *UserService) UpdateProfile(ctx context.Context, userID, name, image string) (*models.User, error) {

	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", common.ErrorValidation)
	}

	repo := s.repomanager.Users(s.db)
	if err := repo.UpdateProfile(ctx, userID, strings.TrimSpace(name), image); err != nil {
		return nil, err
	}
	return repo.GetByID(ctx, userID)
}
