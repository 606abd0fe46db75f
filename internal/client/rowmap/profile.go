package rowmap

import (
	"database/sql"

	"github.com/dmitrijs2005/imgurcache/internal/client/models"
)

var ProfileColumns = []string{"id", "username", "bio", "reputation", "last_seen", "created"}

func ScanProfile(row Scanner) (*models.Profile, error) {
	var (
		id, rep, lastSeen, created sql.NullInt64
		username, bio              sql.NullString
	)
	if err := row.Scan(&id, &username, &bio, &rep, &lastSeen, &created); err != nil {
		return nil, err
	}

	p := &models.Profile{}
	const e = "profiles"
	err := firstErr(
		requireInt64(e, "id", id, &p.ID),
		requireString(e, "username", username, &p.Username),
		requireInt64(e, "reputation", rep, &p.Reputation),
		requireInt64(e, "last_seen", lastSeen, &p.LastSeen),
		requireInt64(e, "created", created, &p.Created),
	)
	if err != nil {
		return nil, err
	}
	if bio.Valid {
		s := bio.String
		p.Bio = &s
	}
	return p, nil
}

func ProfilePayload(p *models.Profile) Payload {
	bio := sql.NullString{}
	if p.Bio != nil {
		bio = sql.NullString{String: *p.Bio, Valid: true}
	}
	return Payload{
		Columns: ProfileColumns,
		Values:  []any{p.ID, p.Username, bio, p.Reputation, p.LastSeen, p.Created},
	}
}
