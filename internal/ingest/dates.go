package ingest

import (
	"fmt"
	"strings"
	"time"

	"github.com/iho/finrecords/internal/domain"
)

// dateLayouts are the accepted layouts for imported date fields, tried in
// priority order. Day-first layouts win: "23/09/1980" is 23 September and the
// ambiguous "01/02/1980" resolves to 1 February. Callers depend on this exact
// ordering; do not reorder.
var dateLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"2/01/2006",
	"01/02/2006",
	"1/2/2006",
	"2006-01-02",
}

// TryParseDate parses value against the accepted layouts in priority order.
// It reports false for blank input or when no layout matches exactly.
func TryParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}

	return time.Time{}, false
}

// ParseDate is the strict variant of TryParseDate for fields that validation
// already proved parseable.
func ParseDate(value string) (time.Time, error) {
	t, ok := TryParseDate(value)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, value)
	}
	return t, nil
}
