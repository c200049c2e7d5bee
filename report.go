package gbce

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// StockReport summarizes the metrics of one listed stock.
type StockReport struct {
	Stock  Stock
	Trades int // number of recorded trades.
	// Recent is the volume weighted price over the trailing window.
	Recent decimal.Decimal
	// Traded is the volume weighted price over all trades.
	Traded decimal.Decimal
	// Reference is the price yields are computed at: Recent, or Traded when no trade is recent.
	Reference decimal.Decimal
	// DividendYield is absent when the stock never traded.
	DividendYield Optional[decimal.Decimal]
	// PERatio is absent when the stock never traded or its dividend rounds to zero.
	PERatio Optional[decimal.Decimal]
}

// Report is a snapshot of every market metric.
type Report struct {
	AsOf          time.Time
	Window        time.Duration
	Stocks        []StockReport
	AllShareIndex decimal.Decimal
}

// NewReport computes the metrics of every listed stock and the all share index.
func (m *Market) NewReport() (*Report, error) {
	now := m.now()
	r := &Report{
		AsOf:   now,
		Window: m.cfg.Window,
		Stocks: make([]StockReport, 0),
	}
	for _, stock := range m.stocks.All() {
		sr := StockReport{
			Stock:  stock,
			Trades: len(m.trades.FindBySymbol(stock.Symbol())),
			Recent: m.volumeWeightedPrice(stock.Symbol(), Some(m.cfg.Window), now),
			Traded: m.volumeWeightedPrice(stock.Symbol(), None[time.Duration](), now),
		}
		sr.Reference = sr.Recent
		if sr.Reference.IsZero() {
			sr.Reference = sr.Traded
		}
		if sr.Reference.IsPositive() {
			price := Some(sr.Reference)
			dividend, err := m.Dividend(stock.Symbol(), price)
			if err != nil {
				return nil, err
			}
			sr.DividendYield = Some(dividend)

			ratio, err := m.priceEarningsRatio(stock.Symbol(), price)
			switch {
			case errors.Is(err, ErrZeroDividend):
				// no ratio for a zero dividend.
			case err != nil:
				return nil, err
			default:
				sr.PERatio = Some(ratio)
			}
		}
		r.Stocks = append(r.Stocks, sr)
	}

	index, err := m.AllShareIndex()
	if err != nil {
		return nil, err
	}
	r.AllShareIndex = index
	return r, nil
}

// MarshalJSON implements the json.Marshaler interface for StockReport.
func (s StockReport) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", s.Stock.Symbol())
	w.Append("type", s.Stock.Type().String())
	w.Append("trades", s.Trades)
	w.Append("recent", s.Recent)
	w.Append("traded", s.Traded)
	if v, ok := s.DividendYield.Get(); ok {
		w.Append("dividendYield", v)
	}
	if v, ok := s.PERatio.Get(); ok {
		w.Append("peRatio", v)
	}
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for Report.
func (r Report) MarshalJSON() ([]byte, error) {
	stocks, err := json.Marshal(r.Stocks)
	if err != nil {
		return nil, err
	}
	var w jsonObjectWriter
	w.Append("asOf", r.AsOf.Format(time.RFC3339))
	w.Append("window", r.Window.String())
	w.Raw("stocks", stocks)
	w.Append("allShareIndex", r.AllShareIndex)
	return w.MarshalJSON()
}
