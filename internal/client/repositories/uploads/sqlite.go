package uploads

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/imgurcache/internal/client/models"
	"github.com/dmitrijs2005/imgurcache/internal/client/rowmap"
	"github.com/dmitrijs2005/imgurcache/internal/common"
	"github.com/dmitrijs2005/imgurcache/internal/dbx"
	"github.com/dmitrijs2005/imgurcache/internal/logging"
)

const table = "uploads"

var (
	listAscSQL  = rowmap.Select(table, rowmap.UploadColumns) + " ORDER BY upload_date ASC, id ASC"
	listDescSQL = rowmap.Select(table, rowmap.UploadColumns) + " ORDER BY upload_date DESC, id DESC"
)

type SQLiteRepository struct {
	db  dbx.Provider
	log logging.Logger
	now func() time.Time
}

type Option func(*SQLiteRepository)

func WithLogger(l logging.Logger) Option {
	return func(r *SQLiteRepository) { r.log = l }
}

// WithClock overrides the source of upload dates.
func WithClock(now func() time.Time) Option {
	return func(r *SQLiteRepository) { r.now = now }
}

func NewSQLiteRepository(db dbx.Provider, opts ...Option) *SQLiteRepository {
	r := &SQLiteRepository{db: db, log: logging.Nop{}, now: time.Now}
	for _, o := range opts {
		o(r)
	}
	return r
}

var _ Repository = (*SQLiteRepository)(nil)

func (r *SQLiteRepository) Append(ctx context.Context, p *models.Photo) error {
	if p == nil || p.Link == "" {
		r.log.Warn(ctx, "upload not recorded", "error", fmt.Errorf("%w: photo has no link", common.ErrValidation))
		return nil
	}

	payload := rowmap.UploadedPhotoPayload(&models.UploadedPhoto{
		URL:        p.Link,
		DeleteHash: p.DeleteHash,
		UploadDate: r.now().UnixMilli(),
	})
	err := r.db.Write(ctx, func(ctx context.Context, db *sql.DB) error {
		_, err := db.ExecContext(ctx, payload.Insert(table), payload.Values...)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to append upload %s: %w", p.Link, err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context, order models.SortOrder) ([]models.UploadedPhoto, error) {
	query := listAscSQL
	if order == models.Descending {
		query = listDescSQL
	}

	var result []models.UploadedPhoto
	err := r.db.Read(ctx, func(ctx context.Context, db dbx.DBTX) error {
		rows, err := db.QueryContext(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			u, err := rowmap.ScanUploadedPhoto(rows)
			if err != nil {
				return err
			}
			result = append(result, *u)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list uploads %s: %w", order, err)
	}
	return result, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, u *models.UploadedPhoto) error {
	if u == nil {
		return nil
	}
	err := r.db.Write(ctx, func(ctx context.Context, db *sql.DB) error {
		_, err := db.ExecContext(ctx, `DELETE FROM uploads WHERE id = ?`, u.ID)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to delete upload %d: %w", u.ID, err)
	}
	return nil
}
