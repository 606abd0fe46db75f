package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/imgurcache/internal/client/models"
)

// parseID reads a positive integer id.
func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// parseOrder maps "asc" / "desc" to a sort order; an empty string means
// newest first.
func parseOrder(s string) (models.SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "desc":
		return models.Descending, nil
	case "asc":
		return models.Ascending, nil
	default:
		return 0, fmt.Errorf("invalid order %q, want asc or desc", s)
	}
}

// formatMillis renders an epoch-millisecond timestamp, or "-" for zero.
func formatMillis(ms int64) string {
	if ms == 0 {
		return "-"
	}
	return time.UnixMilli(ms).UTC().Format(time.RFC3339)
}
