package renderer

import (
	"time"

	"github.com/etnz/gbce"
	"github.com/shopspring/decimal"
)

// Report is a struct to represent the market report data in json.
// Values are already formatted for display.
type Report struct {
	// AsOf is the time the report was computed at.
	AsOf string `json:"asOf"`
	// Window is the trailing duration of the recent prices.
	Window string `json:"window"`
	// Currency is the ISO 4217 code of the prices.
	Currency string `json:"currency"`
	// Traded is true if at least one listed stock was traded.
	Traded bool `json:"traded"`
	// Stocks is the list of listed stocks, in listing order.
	Stocks []ReportStock `json:"stocks"`
	// AllShareIndex is the geometric mean of the stock prices.
	AllShareIndex string `json:"allShareIndex"`
}

// ReportStock represents the metrics of a single stock.
type ReportStock struct {
	Symbol        string `json:"symbol"`
	Type          string `json:"type"`
	Trades        int    `json:"trades"`
	Recent        string `json:"recent"`
	Traded        string `json:"traded"`
	DividendYield string `json:"dividendYield"`
	PERatio       string `json:"peRatio"`
}

// NewReport creates a new Report struct from a market report, with prices in currency.
func NewReport(r *gbce.Report, currency string) *Report {
	out := &Report{
		AsOf:          r.AsOf.Format(time.DateTime),
		Window:        r.Window.String(),
		Currency:      currency,
		Stocks:        make([]ReportStock, 0, len(r.Stocks)),
		AllShareIndex: formatPrice(r.AllShareIndex, currency),
	}
	for _, s := range r.Stocks {
		if s.Trades > 0 {
			out.Traded = true
		}
		out.Stocks = append(out.Stocks, ReportStock{
			Symbol:        s.Stock.Symbol(),
			Type:          s.Stock.Type().String(),
			Trades:        s.Trades,
			Recent:        formatPrice(s.Recent, currency),
			Traded:        formatPrice(s.Traded, currency),
			DividendYield: formatRatio(s.DividendYield),
			PERatio:       formatRatio(s.PERatio),
		})
	}
	return out
}

// formatRatio formats an optional ratio, "-" when absent.
func formatRatio(o gbce.Optional[decimal.Decimal]) string {
	v, ok := o.Get()
	if !ok {
		return "-"
	}
	return v.String()
}
