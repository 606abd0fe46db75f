package rowmap

import (
	"database/sql"

	"github.com/dmitrijs2005/imgurcache/internal/client/models"
)

var AccountColumns = []string{
	"id", "username", "access_token", "refresh_token",
	"access_token_expiration", "created", "pro_expiration", "reputation",
}

func ScanAccount(row Scanner) (*models.Account, error) {
	var (
		id, expiration, created, pro, rep sql.NullInt64
		username, access, refresh         sql.NullString
	)
	if err := row.Scan(&id, &username, &access, &refresh, &expiration, &created, &pro, &rep); err != nil {
		return nil, err
	}

	a := &models.Account{}
	const e = "account"
	err := firstErr(
		requireInt64(e, "id", id, &a.ID),
		requireString(e, "username", username, &a.Username),
		requireString(e, "access_token", access, &a.AccessToken),
		requireString(e, "refresh_token", refresh, &a.RefreshToken),
		requireInt64(e, "access_token_expiration", expiration, &a.AccessTokenExpiration),
		requireInt64(e, "created", created, &a.Created),
		requireInt64(e, "pro_expiration", pro, &a.ProExpiration),
		requireInt64(e, "reputation", rep, &a.Reputation),
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func AccountPayload(a *models.Account) Payload {
	return Payload{
		Columns: AccountColumns,
		Values: []any{
			a.ID, a.Username, a.AccessToken, a.RefreshToken,
			a.AccessTokenExpiration, a.Created, a.ProExpiration, a.Reputation,
		},
	}
}
