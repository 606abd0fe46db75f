package models

// Topic is a gallery category fetched from the remote service.
type Topic struct {
	ID          int64
	Name        string
	Description string
}
