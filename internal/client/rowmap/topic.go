package rowmap

import (
	"database/sql"

	"github.com/dmitrijs2005/imgurcache/internal/client/models"
)

var TopicColumns = []string{"id", "name", "description"}

func ScanTopic(row Scanner) (*models.Topic, error) {
	var (
		id         sql.NullInt64
		name, desc sql.NullString
	)
	if err := row.Scan(&id, &name, &desc); err != nil {
		return nil, err
	}

	t := &models.Topic{}
	const e = "topics"
	err := firstErr(
		requireInt64(e, "id", id, &t.ID),
		requireString(e, "name", name, &t.Name),
		requireString(e, "description", desc, &t.Description),
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func TopicPayload(t *models.Topic) Payload {
	return Payload{
		Columns: TopicColumns,
		Values:  []any{t.ID, t.Name, t.Description},
	}
}
