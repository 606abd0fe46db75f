// Package models defines client-side data models persisted in the local cache.
package models

// Account is the signed-in user. The cache holds at most one.
type Account struct {
	// ID is the remote account identifier.
	ID int64

	// Username is the account's public name.
	Username string

	// AccessToken authorizes API calls until AccessTokenExpiration.
	AccessToken string
	// RefreshToken is exchanged for a new AccessToken.
	RefreshToken string
	// AccessTokenExpiration is the access token's expiry in epoch milliseconds.
	AccessTokenExpiration int64

	// Created is the account creation time in epoch milliseconds.
	Created int64
	// ProExpiration is the end of the paid subscription in epoch milliseconds.
	ProExpiration int64

	Reputation int64
}

// HasValidToken reports whether the access token is still usable at now (epoch ms).
func (a *Account) HasValidToken(now int64) bool {
	return a != nil && a.AccessToken != "" && now < a.AccessTokenExpiration
}
