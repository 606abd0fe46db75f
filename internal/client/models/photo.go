package models

// Photo is the result of a remote upload as returned by the API layer.
type Photo struct {
	ID         string
	Link       string
	DeleteHash string
}

// UploadedPhoto is an entry of the local upload log.
type UploadedPhoto struct {
	// ID is assigned by the store on insertion.
	ID  int64
	URL string
	// DeleteHash is sent to the remote service to delete the upload.
	DeleteHash string
	// UploadDate is the local insertion time in epoch milliseconds.
	UploadDate int64
}

// SortOrder selects how the upload log is ordered by upload date.
type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

func (o SortOrder) String() string {
	if o == Descending {
		return "DESC"
	}
	return "ASC"
}
