package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/gbce"
)

// StocksMarkdown renders the listed stocks as a markdown table.
func StocksMarkdown(stocks []gbce.Stock, currency string) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Listed Stocks\n\n")
	if len(stocks) == 0 {
		fmt.Fprintln(&b, "No stock is listed.")
		return b.String()
	}
	fmt.Fprintln(&b, "| Symbol | Type | Last Dividend | Fixed Dividend | Par Value |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|")
	for _, s := range stocks {
		fixed := "-"
		if v, ok := s.FixedDividend().Get(); ok {
			fixed = v.Shift(2).String() + "%"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			s.Symbol(),
			s.Type(),
			formatPrice(s.LastDividend(), currency),
			fixed,
			formatPrice(s.ParValue(), currency),
		)
	}
	return b.String()
}
