// Package storage owns the connections to the local cache file.
//
// A Manager keeps at most one read handle and one write handle, opens them on
// first use and reuses them until Close. Opening the first handle brings the
// schema to the current version (see package migrations).
//
// The write handle is a single-connection pool, so writes are serialized;
// the read handle is a query_only pool served from the WAL journal, so reads
// run alongside the writer.
//
// Repositories borrow handles through Read and Write, which hold the manager
// lock shared for the duration of the callback. Close takes the lock
// exclusively, so no operation ever runs on a handle that is being closed.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/dmitrijs2005/imgurcache/internal/client/migrations"
	"github.com/dmitrijs2005/imgurcache/internal/common"
	"github.com/dmitrijs2005/imgurcache/internal/dbx"
	"github.com/dmitrijs2005/imgurcache/internal/logging"
)

const DefaultBusyTimeout = 5 * time.Second

type Manager struct {
	path        string
	busyTimeout time.Duration
	log         logging.Logger

	mu    sync.RWMutex
	read  *sql.DB
	write *sql.DB
}

var _ dbx.Provider = (*Manager)(nil)

type Option func(*Manager)

func WithLogger(l logging.Logger) Option {
	return func(m *Manager) { m.log = l }
}

// WithBusyTimeout sets how long a statement waits on a locked database.
func WithBusyTimeout(d time.Duration) Option {
	return func(m *Manager) { m.busyTimeout = d }
}

// NewManager prepares a manager for the cache file at path. Nothing is opened
// until a handle is requested.
func NewManager(path string, opts ...Option) *Manager {
	m := &Manager{
		path:        path,
		busyTimeout: DefaultBusyTimeout,
		log:         logging.Nop{},
	}
	for _, o := range opts {
		o(m)
	}
	m.log = m.log.With("component", "storage", "path", path)
	return m
}

// Path returns the cache file path.
func (m *Manager) Path() string {
	return m.path
}

// ReadHandle returns the read handle, opening it (and migrating the store)
// on first use.
func (m *Manager) ReadHandle(ctx context.Context) (*sql.DB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.readLocked(ctx)
}

// WriteHandle returns the write handle, opening it (and migrating the store)
// on first use.
func (m *Manager) WriteHandle(ctx context.Context) (*sql.DB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writeLocked(ctx)
}

// Read runs fn with the read handle. fn must not call back into m.
func (m *Manager) Read(ctx context.Context, fn func(ctx context.Context, db dbx.DBTX) error) error {
	db, err := m.acquire(ctx, func() *sql.DB { return m.read }, m.ReadHandle)
	if err != nil {
		return err
	}
	defer m.mu.RUnlock()
	return fn(ctx, db)
}

// Write runs fn with the write handle. fn must not call back into m.
func (m *Manager) Write(ctx context.Context, fn func(ctx context.Context, db *sql.DB) error) error {
	db, err := m.acquire(ctx, func() *sql.DB { return m.write }, m.WriteHandle)
	if err != nil {
		return err
	}
	defer m.mu.RUnlock()
	return fn(ctx, db)
}

// SchemaVersion reports the stored schema version.
func (m *Manager) SchemaVersion(ctx context.Context) (int64, error) {
	var v int64
	err := m.Write(ctx, func(ctx context.Context, db *sql.DB) error {
		c, err := migrations.NewController(db)
		if err != nil {
			return err
		}
		v, err = c.Version(ctx)
		return err
	})
	return v, err
}

// Close closes both handles. It is safe to call on a closed manager; the
// next handle request reopens the store.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	if m.read != nil {
		errs = append(errs, m.read.Close())
		m.read = nil
	}
	if m.write != nil {
		errs = append(errs, m.write.Close())
		m.write = nil
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("failed to close cache: %w", err)
	}
	m.log.Debug(context.Background(), "cache closed")
	return nil
}

// acquire returns an open handle with m.mu held for reading. The caller
// releases the lock.
func (m *Manager) acquire(ctx context.Context, pick func() *sql.DB, open func(context.Context) (*sql.DB, error)) (*sql.DB, error) {
	for {
		m.mu.RLock()
		if db := pick(); db != nil {
			return db, nil
		}
		m.mu.RUnlock()

		// a concurrent Close may win between open and the next RLock; loop.
		if _, err := open(ctx); err != nil {
			return nil, err
		}
	}
}

func (m *Manager) readLocked(ctx context.Context) (*sql.DB, error) {
	if m.read != nil {
		return m.read, nil
	}

	// the schema is created through the write handle, never from a reader
	if _, err := m.writeLocked(ctx); err != nil {
		return nil, err
	}

	db, err := m.open(ctx, m.dsn(true))
	if err != nil {
		return nil, err
	}
	m.read = db
	m.log.Debug(ctx, "read handle opened")
	return db, nil
}

func (m *Manager) writeLocked(ctx context.Context) (*sql.DB, error) {
	if m.write != nil {
		return m.write, nil
	}

	if err := os.MkdirAll(filepath.Dir(m.path), 0o700); err != nil {
		return nil, fmt.Errorf("%w: creating data directory: %w", common.ErrStorageUnavailable, err)
	}

	db, err := m.open(ctx, m.dsn(false))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	c, err := migrations.NewController(db)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %w", common.ErrStorageUnavailable, err)
	}
	from, to, err := c.Ensure(ctx)
	if err != nil {
		_ = db.Close()
		m.log.Error(ctx, "schema migration failed", "from", from, "error", err)
		return nil, fmt.Errorf("%w: %w", common.ErrStorageUnavailable, err)
	}
	if from != to {
		m.log.Info(ctx, "schema migrated", "from", from, "to", to)
	}

	m.write = db
	m.log.Debug(ctx, "write handle opened")
	return db, nil
}

func (m *Manager) open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %w", common.ErrStorageUnavailable, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: pinging database: %w", common.ErrStorageUnavailable, err)
	}
	return db, nil
}

func (m *Manager) dsn(readOnly bool) string {
	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(%d)", m.path, m.busyTimeout.Milliseconds())
	if readOnly {
		return dsn + "&_pragma=query_only(1)"
	}
	return dsn + "&_pragma=journal_mode(WAL)"
}
