package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// OptionalDecimal parses an optional decimal field. Blank and unparsable
// values both normalize to absent (nil), never to zero; callers decide
// whether absence matters.
func OptionalDecimal(value string) *decimal.Decimal {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil
	}

	return &d
}

// OptionalInt parses an optional integer field with the same absence rules as
// OptionalDecimal.
func OptionalInt(value string) *int32 {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	n, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return nil
	}

	v := int32(n)
	return &v
}

// RequiredDecimal parses a required decimal field, failing on blank or
// unparsable input.
func RequiredDecimal(value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Decimal{}, fmt.Errorf("required decimal is blank")
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid decimal %q", value)
	}

	return d, nil
}
