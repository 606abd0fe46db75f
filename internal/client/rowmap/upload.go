package rowmap

import (
	"database/sql"

	"github.com/dmitrijs2005/imgurcache/internal/client/models"
)

var UploadColumns = []string{"id", "url", "delete_hash", "upload_date"}

func ScanUploadedPhoto(row Scanner) (*models.UploadedPhoto, error) {
	var (
		id, date        sql.NullInt64
		url, deleteHash sql.NullString
	)
	if err := row.Scan(&id, &url, &deleteHash, &date); err != nil {
		return nil, err
	}

	u := &models.UploadedPhoto{}
	const e = "uploads"
	err := firstErr(
		requireInt64(e, "id", id, &u.ID),
		requireString(e, "url", url, &u.URL),
		requireString(e, "delete_hash", deleteHash, &u.DeleteHash),
		requireInt64(e, "upload_date", date, &u.UploadDate),
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// UploadedPhotoPayload omits the id, which the store assigns.
func UploadedPhotoPayload(u *models.UploadedPhoto) Payload {
	return Payload{
		Columns: UploadColumns[1:],
		Values:  []any{u.URL, u.DeleteHash, u.UploadDate},
	}
}
