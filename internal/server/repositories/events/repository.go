package events

import (
	"context"

	"github.com/Pritish2005/Event-Hub/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, event *models.Event) (*models.Event, error)
	List(ctx context.Context, offset, limit int) ([]*models.Event, error)
	Count(ctx context.Context) (int64, error)
	ListExcludingOwner(ctx context.Context, ownerID string, offset, limit int) ([]*models.Event, error)
	CountExcludingOwner(ctx context.Context, ownerID string) (int64, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Event, error)
	UpdateOwned(ctx context.Context, id, ownerID string, patch *models.EventPatch) (*models.Event, error)
	DeleteOwned(ctx context.Context, id, ownerID string) error
}
