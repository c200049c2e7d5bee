package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// formatPrice formats a price in the currency major unit, rounded to the currency fraction.
// A zero price is "-".
func formatPrice(v decimal.Decimal, code string) string {
	if v.IsZero() {
		return "-"
	}
	// to get a never nil currency I need to call the Money constructor
	cur := money.New(0, code).Currency()
	return cur.Formatter().Format(v.Shift(int32(cur.Fraction)).Round(0).IntPart())
}
