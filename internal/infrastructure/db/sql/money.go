package sql

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency columns are stored as text to avoid floating-point drift. The two
// halves of the codec live here; repositories never touch raw column strings
// anywhere else.

// encodeAmount renders a decimal amount in its exact textual form for storage.
func encodeAmount(d decimal.Decimal) string {
	return d.String()
}

// decodeAmount parses a stored textual amount back into a decimal. The column
// name is included in the error so a corrupt row is diagnosable.
func decodeAmount(column, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("decode %s %q: %w", column, s, err)
	}
	return d, nil
}
