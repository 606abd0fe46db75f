// Package client assembles the local cache used by the client application.
//
// InitDatabase opens the cache file through a storage.Manager, migrates it to
// the current schema and returns the four repositories sharing that manager:
//
//   - Account:  the signed-in user's account and tokens
//   - Profiles: other users' public profiles
//   - Uploads:  the log of the user's uploads
//   - Topics:   the gallery topic list
//
// Open failures match common.ErrStorageUnavailable with errors.Is.
package client
