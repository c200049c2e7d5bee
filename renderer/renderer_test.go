package renderer

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/etnz/gbce"
	"github.com/shopspring/decimal"
)

var testNow = time.Date(2026, time.October, 14, 10, 0, 0, 0, time.UTC)

func newMarket(t *testing.T, trades ...*gbce.Trade) *gbce.Market {
	t.Helper()
	m := gbce.NewMarket(gbce.DefaultStocks(), gbce.NewJournal(), gbce.DefaultConfig(), nil)
	m.SetClock(func() time.Time { return testNow })
	for _, tr := range trades {
		if err := m.RecordTrade(tr); err != nil {
			t.Fatalf("RecordTrade() error = %v", err)
		}
	}
	return m
}

func trade(symbol string, quantity int, indicator gbce.Indicator, price string, at time.Time) *gbce.Trade {
	return gbce.NewTradeAt(symbol, gbce.Some(quantity), indicator, gbce.Some(decimal.RequireFromString(price)), at)
}

func TestFormatPrice(t *testing.T) {
	testCases := []struct {
		value    string
		currency string
		want     string
	}{
		{value: "2.13", currency: "GBP", want: "£2.13"},
		{value: "2.125", currency: "GBP", want: "£2.13"},
		{value: "1234.5", currency: "GBP", want: "£1,234.50"},
		{value: "0.6", currency: "USD", want: "$0.60"},
		{value: "0", currency: "GBP", want: "-"},
	}
	for _, tc := range testCases {
		if got := formatPrice(decimal.RequireFromString(tc.value), tc.currency); got != tc.want {
			t.Errorf("formatPrice(%s, %s) = %q, want %q", tc.value, tc.currency, got, tc.want)
		}
	}
}

func TestStocksMarkdown(t *testing.T) {
	got := StocksMarkdown(gbce.DefaultStocks().All(), "GBP")
	want := `# Listed Stocks

| Symbol | Type | Last Dividend | Fixed Dividend | Par Value |
|:---|:---|---:|---:|---:|
| TEA | COMMON | - | - | £1.00 |
| POP | COMMON | £0.08 | - | £1.00 |
| ALE | COMMON | £0.23 | - | £0.60 |
| GIN | PREFERRED | £0.23 | 2% | £1.00 |
| JOE | COMMON | £0.23 | - | £2.50 |
`
	if got != want {
		t.Errorf("StocksMarkdown() =\n%s\nwant\n%s", got, want)
	}

	if got := StocksMarkdown(nil, "GBP"); !strings.Contains(got, "No stock is listed.") {
		t.Errorf("StocksMarkdown(nil) = %q", got)
	}
}

func TestReportMarkdown(t *testing.T) {
	m := newMarket(t,
		trade("GIN", 35, gbce.Sell, "1.00", testNow),
		trade("POP", 10, gbce.Buy, "2.50", testNow),
		trade("POP", 140, gbce.Buy, "2.10", testNow),
		trade("TEA", 20, gbce.Sell, "1.50", testNow.Add(-30*time.Minute)),
		trade("TEA", 5, gbce.Sell, "1.20", testNow),
	)
	report, err := m.NewReport()
	if err != nil {
		t.Fatalf("NewReport() error = %v", err)
	}
	got := ReportMarkdown(NewReport(report, "GBP"))

	for _, want := range []string{
		"# Market Report on 2026-10-14 10:00:00",
		"over the last 5m0s, prices are in GBP.",
		"| TEA | COMMON | 2 | £1.20 | £1.44 | 0 | - |",
		"| POP | COMMON | 2 | £2.13 | £2.13 | 0.04 | 53.25 |",
		"| ALE | COMMON | 0 | - | - | - | - |",
		"| GIN | PREFERRED | 1 | £1.00 | £1.00 | 0.02 | 50 |",
		"## All Share Index\n\n**£1.45**",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("ReportMarkdown() does not contain %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "cannot render") {
		t.Errorf("ReportMarkdown() failed:\n%s", got)
	}
}

func TestReportMarkdown_Untraded(t *testing.T) {
	report, err := newMarket(t).NewReport()
	if err != nil {
		t.Fatalf("NewReport() error = %v", err)
	}
	view := NewReport(report, "GBP")
	if view.Traded {
		t.Errorf("Traded = true on a market without trade")
	}
	got := ReportMarkdown(view)
	if !strings.Contains(got, "No trade recorded on the 5 listed stocks.") {
		t.Errorf("ReportMarkdown() =\n%s", got)
	}
	if strings.Contains(got, "| Symbol |") {
		t.Errorf("ReportMarkdown() has a stock table without trades:\n%s", got)
	}
}

func TestRenderPage_Failure(t *testing.T) {
	got := renderPage("report.md", (*Report)(nil))
	if !strings.HasPrefix(got, "> cannot render report: ") {
		t.Errorf("renderPage(report.md, nil report) = %q, want a rendering failure", got)
	}
	if got := renderPage("missing.md", nil); !strings.HasPrefix(got, "> cannot render missing: ") {
		t.Errorf("renderPage(missing.md, nil) = %q, want a rendering failure", got)
	}
}

func TestReport_JSON(t *testing.T) {
	report, err := newMarket(t, trade("POP", 10, gbce.Buy, "2.50", testNow)).NewReport()
	if err != nil {
		t.Fatalf("NewReport() error = %v", err)
	}
	data, err := json.Marshal(NewReport(report, "GBP"))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	var back Report
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if back.AllShareIndex != "£2.50" || back.Stocks[1].PERatio != "83.33" {
		t.Errorf("json.Marshal() = %s", data)
	}
}
