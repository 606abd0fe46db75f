package rowmap

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/imgurcache/internal/client/models"
	"github.com/dmitrijs2005/imgurcache/internal/common"
)

// fakeRow feeds values into scan destinations the way the driver would.
type fakeRow []any

func (r fakeRow) Scan(dest ...any) error {
	if len(dest) != len(r) {
		return fmt.Errorf("expected %d destinations, got %d", len(r), len(dest))
	}
	for i, v := range r {
		if valuer, ok := v.(driver.Valuer); ok {
			var err error
			if v, err = valuer.Value(); err != nil {
				return err
			}
		}
		s, ok := dest[i].(sql.Scanner)
		if !ok {
			return fmt.Errorf("destination %d is %T", i, dest[i])
		}
		if err := s.Scan(v); err != nil {
			return err
		}
	}
	return nil
}

func rowOf(p Payload) fakeRow { return fakeRow(p.Values) }

func TestAccount_RoundTrip(t *testing.T) {
	a := &models.Account{
		ID: 7, Username: "kenny", AccessToken: "a1", RefreshToken: "r1",
		AccessTokenExpiration: 1_700_000_000_000, Created: 1_600_000_000_000,
		ProExpiration: 0, Reputation: 42,
	}
	p := AccountPayload(a)
	require.Len(t, p.Values, len(p.Columns))

	got, err := ScanAccount(rowOf(p))
	require.NoError(t, err)
	if diff := cmp.Diff(a, got); diff != "" {
		t.Errorf("account mismatch (-want +got):\n%s", diff)
	}
}

func TestProfile_RoundTripWithAndWithoutBio(t *testing.T) {
	bio := "hello"
	for _, p := range []*models.Profile{
		{ID: 1, Username: "alice", Bio: &bio, Reputation: 3, LastSeen: 10, Created: 5},
		{ID: 2, Username: "bob", Reputation: -1, LastSeen: 11, Created: 6},
	} {
		got, err := ScanProfile(rowOf(ProfilePayload(p)))
		require.NoError(t, err)
		if diff := cmp.Diff(p, got); diff != "" {
			t.Errorf("profile %d mismatch (-want +got):\n%s", p.ID, diff)
		}
	}
}

func TestUploadedPhoto_ScanAndPayload(t *testing.T) {
	u := &models.UploadedPhoto{ID: 9, URL: "https://i.example/a.png", DeleteHash: "dh", UploadDate: 123}

	p := UploadedPhotoPayload(u)
	assert.Equal(t, []string{"url", "delete_hash", "upload_date"}, p.Columns)

	got, err := ScanUploadedPhoto(fakeRow(append([]any{u.ID}, p.Values...)))
	require.NoError(t, err)
	assert.Equal(t, u, got)
}

func TestTopic_RoundTrip(t *testing.T) {
	topic := &models.Topic{ID: 4, Name: "Funny", Description: "lol"}
	got, err := ScanTopic(rowOf(TopicPayload(topic)))
	require.NoError(t, err)
	assert.Equal(t, topic, got)
}

func TestScan_NullInRequiredColumnIsIntegrityError(t *testing.T) {
	tests := []struct {
		name   string
		scan   func() error
		entity string
		column string
	}{
		{
			name: "account token",
			scan: func() error {
				_, err := ScanAccount(fakeRow{int64(1), "u", nil, "r", int64(1), int64(1), int64(0), int64(0)})
				return err
			},
			entity: "account", column: "access_token",
		},
		{
			name: "profile reputation",
			scan: func() error {
				_, err := ScanProfile(fakeRow{int64(1), "u", nil, nil, int64(1), int64(1)})
				return err
			},
			entity: "profiles", column: "reputation",
		},
		{
			name: "upload url",
			scan: func() error {
				_, err := ScanUploadedPhoto(fakeRow{int64(1), nil, "dh", int64(1)})
				return err
			},
			entity: "uploads", column: "url",
		},
		{
			name: "topic description",
			scan: func() error {
				_, err := ScanTopic(fakeRow{int64(1), "n", nil})
				return err
			},
			entity: "topics", column: "description",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scan()
			require.ErrorIs(t, err, common.ErrDataIntegrity)

			var die *DataIntegrityError
			require.True(t, errors.As(err, &die))
			assert.Equal(t, tt.entity, die.Entity)
			assert.Equal(t, tt.column, die.Column)
		})
	}
}

func TestScan_PropagatesScannerError(t *testing.T) {
	_, err := ScanTopic(fakeRow{int64(1)})
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrDataIntegrity)
}

func TestPayload_Statements(t *testing.T) {
	p := TopicPayload(&models.Topic{ID: 1, Name: "n", Description: "d"})

	assert.Equal(t, "INSERT INTO topics (id, name, description) VALUES (?, ?, ?)", p.Insert("topics"))
	assert.Equal(t, "INSERT OR REPLACE INTO topics (id, name, description) VALUES (?, ?, ?)", p.Replace("topics"))
	assert.Equal(t, "id = ?, name = ?, description = ?", p.Assignments())
	assert.Equal(t, "SELECT id, name, description FROM topics", Select("topics", TopicColumns))
}
