package cli

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/imgurcache/internal/client/models"
)

func writeFile(path string) error {
	return os.WriteFile(path, []byte("x"), 0o600)
}

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"", "0", "-3", "x1", "1.5"} {
		_, err := parseID(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseOrder(t *testing.T) {
	tests := map[string]models.SortOrder{
		"":     models.Descending,
		"desc": models.Descending,
		"ASC":  models.Ascending,
	}
	for in, want := range tests {
		got, err := parseOrder(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}

	_, err := parseOrder("random")
	assert.Error(t, err)
}

func TestFormatMillis(t *testing.T) {
	assert.Equal(t, "-", formatMillis(0))
	assert.Equal(t, "1970-01-01T00:00:01Z", formatMillis(1_000))
}
