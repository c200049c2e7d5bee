package gbce

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap/zaptest"
)

// testNow is the fixed "now" of every test market.
var testNow = time.Date(2026, time.October, 14, 10, 0, 0, 0, time.UTC)

// d is a helper for tests to create a decimal from a literal.
func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// price is a helper for tests to create a present price from a literal.
func price(s string) Optional[decimal.Decimal] { return Some(d(s)) }

// trade is a helper for tests to create a complete trade created at testNow.
func trade(symbol string, quantity int, indicator Indicator, p string) *Trade {
	return NewTradeAt(symbol, Some(quantity), indicator, price(p), testNow)
}

// backdate moves the creation time of a trade into the past.
func backdate(t *Trade, ago time.Duration) *Trade {
	t.created = t.created.Add(-ago)
	return t
}

// newTestMarket returns a market over the sample stocks and an empty journal, frozen at testNow.
func newTestMarket(t *testing.T) *Market {
	t.Helper()
	m := NewMarket(DefaultStocks(), NewJournal(), DefaultConfig(), zaptest.NewLogger(t))
	m.SetClock(func() time.Time { return testNow })
	return m
}

// withSampleTrades records the reference trades: TEA was traded 30 minutes ago
// and now, POP twice now, GIN once now, ALE and JOE never.
func withSampleTrades(t *testing.T, m *Market) *Market {
	t.Helper()
	trades := []*Trade{
		trade("GIN", 35, Sell, "1.00"),
		trade("POP", 10, Buy, "2.50"),
		trade("POP", 140, Buy, "2.10"),
		backdate(trade("TEA", 20, Sell, "1.50"), 30*time.Minute),
		trade("TEA", 5, Sell, "1.20"),
	}
	m.Trades().Clear()
	for _, tr := range trades {
		if err := m.RecordTrade(tr); err != nil {
			t.Fatalf("RecordTrade(%s) error = %v", tr.Symbol(), err)
		}
	}
	return m
}
