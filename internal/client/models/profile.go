package models

// Profile is a cached public profile of another user.
type Profile struct {
	ID       int64
	Username string
	// Bio is nil when the user never wrote one.
	Bio        *string
	Reputation int64
	// LastSeen and Created are epoch milliseconds.
	LastSeen int64
	Created  int64
}
