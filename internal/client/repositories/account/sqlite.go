package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/imgurcache/internal/client/models"
	"github.com/dmitrijs2005/imgurcache/internal/client/rowmap"
	"github.com/dmitrijs2005/imgurcache/internal/dbx"
)

const table = "account"

var selectSQL = rowmap.Select(table, rowmap.AccountColumns) + " LIMIT 1"

type SQLiteRepository struct {
	db dbx.Provider
}

func NewSQLiteRepository(db dbx.Provider) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

var _ Repository = (*SQLiteRepository)(nil)

func (r *SQLiteRepository) Save(ctx context.Context, a *models.Account) error {
	p := rowmap.AccountPayload(a)
	err := r.db.Write(ctx, func(ctx context.Context, db *sql.DB) error {
		return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			if _, err := tx.ExecContext(ctx, `DELETE FROM account`); err != nil {
				return err
			}
			_, err := tx.ExecContext(ctx, p.Insert(table), p.Values...)
			return err
		})
	})
	if err != nil {
		return fmt.Errorf("failed to save account %s: %w", a.Username, err)
	}
	return nil
}

func (r *SQLiteRepository) UpdateTokens(ctx context.Context, accessToken, refreshToken string, expiration int64) error {
	err := r.db.Write(ctx, func(ctx context.Context, db *sql.DB) error {
		_, err := db.ExecContext(ctx, `
			UPDATE account
			SET access_token = ?, refresh_token = ?, access_token_expiration = ?
		`, accessToken, refreshToken, expiration)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to update account tokens: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Update(ctx context.Context, a *models.Account) error {
	p := rowmap.AccountPayload(a)
	err := r.db.Write(ctx, func(ctx context.Context, db *sql.DB) error {
		_, err := db.ExecContext(ctx, `UPDATE account SET `+p.Assignments(), p.Values...)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", a.Username, err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context) (*models.Account, error) {
	var a *models.Account
	err := r.db.Read(ctx, func(ctx context.Context, db dbx.DBTX) error {
		var err error
		a, err = rowmap.ScanAccount(db.QueryRowContext(ctx, selectSQL))
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return a, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	err := r.db.Write(ctx, func(ctx context.Context, db *sql.DB) error {
		_, err := db.ExecContext(ctx, `DELETE FROM account`)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to clear account: %w", err)
	}
	return nil
}
