// Package topics caches the gallery topic list.
package topics

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/imgurcache/internal/client/models"
	"github.com/dmitrijs2005/imgurcache/internal/client/rowmap"
	"github.com/dmitrijs2005/imgurcache/internal/dbx"
)

const table = "topics"

var (
	listSQL      = rowmap.Select(table, rowmap.TopicColumns) + " ORDER BY id"
	selectOneSQL = rowmap.Select(table, rowmap.TopicColumns) + " WHERE id = ?"
)

type SQLiteRepository struct {
	db dbx.Provider
}

func NewSQLiteRepository(db dbx.Provider) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

var _ Repository = (*SQLiteRepository)(nil)

// UpsertAll writes each topic as its own statement; a failure leaves the
// topics before it stored.
func (r *SQLiteRepository) UpsertAll(ctx context.Context, topics []models.Topic) error {
	if len(topics) == 0 {
		return nil
	}
	err := r.db.Write(ctx, func(ctx context.Context, db *sql.DB) error {
		for i := range topics {
			p := rowmap.TopicPayload(&topics[i])
			if _, err := db.ExecContext(ctx, p.Replace(table), p.Values...); err != nil {
				return fmt.Errorf("topic %d: %w", topics[i].ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to upsert topics: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) ListAll(ctx context.Context) ([]models.Topic, error) {
	var result []models.Topic
	err := r.db.Read(ctx, func(ctx context.Context, db dbx.DBTX) error {
		rows, err := db.QueryContext(ctx, listSQL)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			t, err := rowmap.ScanTopic(rows)
			if err != nil {
				return err
			}
			result = append(result, *t)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Get(ctx context.Context, id int64) (*models.Topic, error) {
	var t *models.Topic
	err := r.db.Read(ctx, func(ctx context.Context, db dbx.DBTX) error {
		var err error
		t, err = rowmap.ScanTopic(db.QueryRowContext(ctx, selectOneSQL, id))
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get topic %d: %w", id, err)
	}
	return t, nil
}
