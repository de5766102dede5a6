package recon

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount coerces a cell value to a decimal amount. Thousand-separator
// commas are stripped first; blanks and non-numeric cells coerce to zero so
// partially filled amount columns never abort a run.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
