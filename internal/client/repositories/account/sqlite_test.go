package account

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/imgurcache/internal/client/models"
	"github.com/dmitrijs2005/imgurcache/internal/client/storage"
	"github.com/dmitrijs2005/imgurcache/internal/common"
	"github.com/dmitrijs2005/imgurcache/internal/dbx"
)

func setupRepo(t *testing.T) (*SQLiteRepository, *storage.Manager) {
	t.Helper()
	m := storage.NewManager(filepath.Join(t.TempDir(), "cache.db"))
	t.Cleanup(func() { _ = m.Close() })
	return NewSQLiteRepository(m), m
}

func kenny() *models.Account {
	return &models.Account{
		ID:                    1,
		Username:              "kenny",
		AccessToken:           "a1",
		RefreshToken:          "r1",
		AccessTokenExpiration: 1000,
		Created:               500,
		ProExpiration:         0,
		Reputation:            12,
	}
}

func countRows(t *testing.T, m *storage.Manager) int {
	t.Helper()
	var n int
	require.NoError(t, m.Read(context.Background(), func(ctx context.Context, db dbx.DBTX) error {
		return db.QueryRowContext(ctx, `SELECT COUNT(*) FROM account`).Scan(&n)
	}))
	return n
}

func TestGet_Empty_ReturnsNilNil(t *testing.T) {
	r, _ := setupRepo(t)

	a, err := r.Get(context.Background())
	require.NoError(t, err)
	require.Nil(t, a)
}

func TestSave_ThenGet(t *testing.T) {
	r, _ := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, kenny()))

	got, err := r.Get(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(kenny(), got); diff != "" {
		t.Errorf("account mismatch (-want +got):\n%s", diff)
	}
}

func TestSave_ReplacesPreviousAccount(t *testing.T) {
	r, m := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, kenny()))
	other := &models.Account{ID: 2, Username: "stan", AccessToken: "a2", RefreshToken: "r2"}
	require.NoError(t, r.Save(ctx, other))

	assert.Equal(t, 1, countRows(t, m))
	got, err := r.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, other, got)
}

func TestUpdateTokens_KeepsOtherFields(t *testing.T) {
	r, _ := setupRepo(t)
	ctx := context.Background()
	require.NoError(t, r.Save(ctx, kenny()))

	require.NoError(t, r.UpdateTokens(ctx, "a2", "r2", 2000))

	want := kenny()
	want.AccessToken, want.RefreshToken, want.AccessTokenExpiration = "a2", "r2", 2000
	got, err := r.Get(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("account mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateTokens_NoAccount_IsNoop(t *testing.T) {
	r, m := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.UpdateTokens(ctx, "a", "r", 1))
	assert.Equal(t, 0, countRows(t, m))
}

func TestUpdate_RewritesRowInPlace(t *testing.T) {
	r, m := setupRepo(t)
	ctx := context.Background()
	require.NoError(t, r.Save(ctx, kenny()))

	changed := kenny()
	changed.Reputation = 99
	changed.ProExpiration = 7
	require.NoError(t, r.Update(ctx, changed))

	assert.Equal(t, 1, countRows(t, m))
	got, err := r.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, changed, got)
}

func TestUpdate_NoAccount_IsNoop(t *testing.T) {
	r, m := setupRepo(t)

	require.NoError(t, r.Update(context.Background(), kenny()))
	assert.Equal(t, 0, countRows(t, m))
}

func TestClear_SignsOut_AndIsIdempotent(t *testing.T) {
	r, _ := setupRepo(t)
	ctx := context.Background()
	require.NoError(t, r.Save(ctx, kenny()))

	require.NoError(t, r.Clear(ctx))
	require.NoError(t, r.Clear(ctx))

	a, err := r.Get(ctx)
	require.NoError(t, err)
	require.Nil(t, a)
}

func TestSave_SurvivesReopen(t *testing.T) {
	r, m := setupRepo(t)
	ctx := context.Background()
	require.NoError(t, r.Save(ctx, kenny()))
	require.NoError(t, m.Close())

	got, err := r.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, kenny(), got)
}

// rawProvider serves a store whose table does not enforce NOT NULL.
type rawProvider struct{ db *sql.DB }

func (p rawProvider) Read(ctx context.Context, fn func(context.Context, dbx.DBTX) error) error {
	return fn(ctx, p.db)
}

func (p rawProvider) Write(ctx context.Context, fn func(context.Context, *sql.DB) error) error {
	return fn(ctx, p.db)
}

func TestGet_NullColumn_IsDataIntegrityError(t *testing.T) {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "raw.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`
CREATE TABLE account (
  id INTEGER, username TEXT, access_token TEXT, refresh_token TEXT,
  access_token_expiration INTEGER, created INTEGER, pro_expiration INTEGER, reputation INTEGER
);
INSERT INTO account VALUES (1, 'kenny', NULL, 'r', 1, 1, 0, 0);`)
	require.NoError(t, err)

	r := NewSQLiteRepository(rawProvider{db: db})
	a, err := r.Get(context.Background())
	require.ErrorIs(t, err, common.ErrDataIntegrity)
	require.Nil(t, a)
}
