package profiles

import (
	"context"

	"github.com/dmitrijs2005/imgurcache/internal/client/models"
)

type Repository interface {
	// Get returns the cached profile with the given username, or nil.
	Get(ctx context.Context, username string) (*models.Profile, error)
	// GetByID returns the cached profile with the given id, or nil.
	GetByID(ctx context.Context, id int64) (*models.Profile, error)
	// Upsert stores p, replacing any cached profile with the same id.
	Upsert(ctx context.Context, p *models.Profile) error
}
