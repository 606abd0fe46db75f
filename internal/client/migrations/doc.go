// Package migrations owns the on-disk layout of the cache.
//
// # Schema
//
// Tables are defined by goose SQL migrations embedded at compile time, one
// file per schema version:
//
//	00001_account_profiles.sql  account (singleton row) and profiles
//	00002_uploads.sql           uploads log
//	00003_topics.sql            topics cache
//
// The stored version lives in goose's goose_db_version table. Every step
// is a forward, data-preserving migration; a new layout change is a new
// numbered file and a bump of CurrentVersion.
//
// # Controller
//
// Controller wraps a goose Provider over one write handle:
//
//	c, _ := migrations.NewController(db)
//	_ = c.Initialize(ctx)          // fresh store
//	_ = c.Upgrade(ctx, 2, 3)       // explicit step range
//	from, to, _ := c.Ensure(ctx)   // whatever is pending, used on open
package migrations

import "embed"

// Migrations contains every SQL migration file.
//
//go:embed *.sql
var Migrations embed.FS
