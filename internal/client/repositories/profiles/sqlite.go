// Package profiles caches public profiles of other users, keyed by id and
// looked up by username.
package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/imgurcache/internal/client/models"
	"github.com/dmitrijs2005/imgurcache/internal/client/rowmap"
	"github.com/dmitrijs2005/imgurcache/internal/dbx"
)

const table = "profiles"

var (
	selectByUsernameSQL = rowmap.Select(table, rowmap.ProfileColumns) + " WHERE username = ? LIMIT 1"
	selectByIDSQL       = rowmap.Select(table, rowmap.ProfileColumns) + " WHERE id = ?"
)

type SQLiteRepository struct {
	db dbx.Provider
}

func NewSQLiteRepository(db dbx.Provider) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

var _ Repository = (*SQLiteRepository)(nil)

func (r *SQLiteRepository) Get(ctx context.Context, username string) (*models.Profile, error) {
	p, err := r.get(ctx, selectByUsernameSQL, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile %q: %w", username, err)
	}
	return p, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Profile, error) {
	p, err := r.get(ctx, selectByIDSQL, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile %d: %w", id, err)
	}
	return p, nil
}

func (r *SQLiteRepository) get(ctx context.Context, query string, arg any) (*models.Profile, error) {
	var p *models.Profile
	err := r.db.Read(ctx, func(ctx context.Context, db dbx.DBTX) error {
		var err error
		p, err = rowmap.ScanProfile(db.QueryRowContext(ctx, query, arg))
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return p, err
}

func (r *SQLiteRepository) Upsert(ctx context.Context, p *models.Profile) error {
	payload := rowmap.ProfilePayload(p)
	err := r.db.Write(ctx, func(ctx context.Context, db *sql.DB) error {
		_, err := db.ExecContext(ctx, payload.Replace(table), payload.Values...)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to upsert profile %d: %w", p.ID, err)
	}
	return nil
}
