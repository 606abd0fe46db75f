package uploads

import (
	"context"

	"github.com/dmitrijs2005/imgurcache/internal/client/models"
)

type Repository interface {
	// Append records a completed upload. Photos without a link are skipped.
	Append(ctx context.Context, p *models.Photo) error
	// List returns the log ordered by upload date.
	List(ctx context.Context, order models.SortOrder) ([]models.UploadedPhoto, error)
	// Delete removes the entry with u's id. A nil u is ignored.
	Delete(ctx context.Context, u *models.UploadedPhoto) error
}
