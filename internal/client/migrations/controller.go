package migrations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

// CurrentVersion is the schema version this build reads and writes.
const CurrentVersion int64 = 3

var (
	ErrDowngrade       = errors.New("schema downgrade is not supported")
	ErrUnknownVersion  = errors.New("unknown schema version")
	ErrVersionMismatch = errors.New("stored schema version does not match")
)

// Controller creates and upgrades the cache schema.
type Controller struct {
	provider *goose.Provider
}

// NewController binds the embedded migrations to db, which must be writable.
func NewController(db *sql.DB) (*Controller, error) {
	p, err := goose.NewProvider(goose.DialectSQLite3, db, Migrations)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration provider: %w", err)
	}
	return &Controller{provider: p}, nil
}

// Version returns the stored schema version, 0 for a fresh store.
func (c *Controller) Version(ctx context.Context) (int64, error) {
	v, err := c.provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return v, nil
}

// Initialize applies every migration to a fresh store. On a store that is
// already current it does nothing.
func (c *Controller) Initialize(ctx context.Context) error {
	if _, err := c.provider.Up(ctx); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

// Upgrade applies the forward steps (from, to]. from must be the stored version.
func (c *Controller) Upgrade(ctx context.Context, from, to int64) error {
	if to < from {
		return fmt.Errorf("%w: %d -> %d", ErrDowngrade, from, to)
	}
	if to > CurrentVersion {
		return fmt.Errorf("%w: %d", ErrUnknownVersion, to)
	}

	stored, err := c.Version(ctx)
	if err != nil {
		return err
	}
	if stored != from {
		return fmt.Errorf("%w: stored %d, expected %d", ErrVersionMismatch, stored, from)
	}
	if from == to {
		return nil
	}

	if _, err := c.provider.UpTo(ctx, to); err != nil {
		return fmt.Errorf("failed to upgrade schema %d -> %d: %w", from, to, err)
	}
	return nil
}

// Ensure brings the store to CurrentVersion and reports the versions it moved
// between. A store written by a newer build is refused.
func (c *Controller) Ensure(ctx context.Context) (from, to int64, err error) {
	from, err = c.Version(ctx)
	if err != nil {
		return 0, 0, err
	}

	switch {
	case from > CurrentVersion:
		return from, from, fmt.Errorf("%w: store is at %d, newest known is %d", ErrUnknownVersion, from, CurrentVersion)
	case from == 0:
		err = c.Initialize(ctx)
	case from < CurrentVersion:
		err = c.Upgrade(ctx, from, CurrentVersion)
	}
	if err != nil {
		return from, from, err
	}
	return from, CurrentVersion, nil
}
