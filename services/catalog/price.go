package catalog

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const currencySymbol = "$"

// ParsePrice converts a display price like "$2.00" into a decimal.
// The currency-prefixed string is the catalog's wire convention; all
// arithmetic happens on the decimal side of this boundary.
func ParsePrice(price string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(price), currencySymbol))
	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error parsing price %q: %s", price, err)
	}
	return value, nil
}

// FormatPrice renders a decimal back into the "$X.YY" display convention.
func FormatPrice(value decimal.Decimal) string {
	return currencySymbol + value.StringFixed(2)
}
