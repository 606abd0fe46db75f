// Package account persists the signed-in user's account and session tokens.
//
// The account table holds at most one row. Save replaces it inside a single
// transaction, so readers see either the old account or the new one and never
// an empty table in between. Clear is sign-out.
//
// Typical usage:
//
//	repo := account.NewSQLiteRepository(manager)
//	_ = repo.Save(ctx, acc)
//	_ = repo.UpdateTokens(ctx, access, refresh, expiresAt)
//	acc, _ := repo.Get(ctx) // nil when signed out
package account
