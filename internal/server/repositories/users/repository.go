package users

import (
	"context"

	"github.com/dmitrijs2005/memorizer/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, id, name, image string) error
}
