package texts

import (
	"context"
	"time"

	"github.com/dmitrijs2005/memorizer/internal/server/models"
)

type Repository interface {
	List(ctx context.Context, userID, search string) ([]*models.Text, error)
	Get(ctx context.Context, id string) (*models.Text, error)
	Create(ctx context.Context, text *models.Text) error
	Update(ctx context.Context, id, title, content, tags string, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
	MarkPracticed(ctx context.Context, id string, at time.Time) error
}
