package client

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/imgurcache/internal/client/models"
	"github.com/dmitrijs2005/imgurcache/internal/client/repositories/account"
	"github.com/dmitrijs2005/imgurcache/internal/client/repositories/profiles"
	"github.com/dmitrijs2005/imgurcache/internal/client/repositories/topics"
	"github.com/dmitrijs2005/imgurcache/internal/client/repositories/uploads"
	"github.com/dmitrijs2005/imgurcache/internal/client/storage"
	"github.com/dmitrijs2005/imgurcache/internal/logging"
)

type Repositories struct {
	Account  account.Repository
	Profiles profiles.Repository
	Uploads  uploads.Repository
	Topics   topics.Repository

	store  *storage.Manager
	closed atomic.Bool
}

// Stats summarizes what the cache currently holds.
type Stats struct {
	SchemaVersion int64
	SignedInAs    string
	Uploads       int
	Topics        int
}

// InitDatabase prepares the cache at path and brings its schema up to date.
// The store stays open until Close; handles are reopened on demand after
// a transient Close of the underlying manager.
func InitDatabase(ctx context.Context, path string, log logging.Logger, opts ...storage.Option) (*Repositories, error) {
	if log == nil {
		log = logging.Nop{}
	}
	store := storage.NewManager(path, append([]storage.Option{storage.WithLogger(log)}, opts...)...)

	if _, err := store.SchemaVersion(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}

	return &Repositories{
		Account:  account.NewSQLiteRepository(store),
		Profiles: profiles.NewSQLiteRepository(store),
		Uploads:  uploads.NewSQLiteRepository(store, uploads.WithLogger(log.With("repository", "uploads"))),
		Topics:   topics.NewSQLiteRepository(store),
		store:    store,
	}, nil
}

// Path returns the cache file path.
func (r *Repositories) Path() string {
	return r.store.Path()
}

// Stats gathers the summary with one concurrent read per table.
func (r *Repositories) Stats(ctx context.Context) (*Stats, error) {
	if r.closed.Load() {
		return nil, ErrClosed
	}

	var (
		s    Stats
		acc  *models.Account
		ups  []models.UploadedPhoto
		tops []models.Topic
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		s.SchemaVersion, err = r.store.SchemaVersion(ctx)
		return err
	})
	g.Go(func() (err error) {
		acc, err = r.Account.Get(ctx)
		return err
	})
	g.Go(func() (err error) {
		ups, err = r.Uploads.List(ctx, models.Ascending)
		return err
	})
	g.Go(func() (err error) {
		tops, err = r.Topics.ListAll(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if acc != nil {
		s.SignedInAs = acc.Username
	}
	s.Uploads = len(ups)
	s.Topics = len(tops)
	return &s, nil
}

// Close releases the store. Calling it more than once is harmless.
func (r *Repositories) Close() error {
	if !r.closed.CompareAndSwap(false, true) {
		return nil
	}
	return r.store.Close()
}
