package topics

import (
	"context"

	"github.com/dmitrijs2005/imgurcache/internal/client/models"
)

type Repository interface {
	// UpsertAll stores every topic, replacing cached topics with the same id.
	UpsertAll(ctx context.Context, topics []models.Topic) error
	// ListAll returns every cached topic ordered by id.
	ListAll(ctx context.Context) ([]models.Topic, error)
	// Get returns the cached topic with the given id, or nil.
	Get(ctx context.Context, id int64) (*models.Topic, error)
}
