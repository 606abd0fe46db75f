package account

import (
	"context"

	"github.com/dmitrijs2005/imgurcache/internal/client/models"
)

type Repository interface {
	// Save replaces the stored account with a.
	Save(ctx context.Context, a *models.Account) error
	// UpdateTokens rewrites the credentials of the stored account, if any.
	UpdateTokens(ctx context.Context, accessToken, refreshToken string, expiration int64) error
	// Update rewrites every column of the stored account, if any.
	Update(ctx context.Context, a *models.Account) error
	// Get returns the stored account, or nil if nobody is signed in.
	Get(ctx context.Context) (*models.Account, error)
	// Clear removes the stored account.
	Clear(ctx context.Context) error
}
