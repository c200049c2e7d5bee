package gbce

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// StockType is the closed set of stock kinds listed on the exchange.
type StockType int

const (
	// Common stocks pay a variable dividend (the last one declared).
	Common StockType = iota + 1
	// Preferred stocks pay a fixed dividend expressed as a fraction of their par value.
	Preferred
)

func (t StockType) String() string {
	switch t {
	case Common:
		return "COMMON"
	case Preferred:
		return "PREFERRED"
	default:
		return "unknown"
	}
}

// ParseStockType parses "common" or "preferred", case-insensitively.
func ParseStockType(s string) (StockType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "COMMON":
		return Common, nil
	case "PREFERRED":
		return Preferred, nil
	default:
		return 0, fmt.Errorf("unknown stock type: %q", s)
	}
}

// Stock is an instrument listed on the exchange.
type Stock struct {
	symbol        string                    // unique, immutable identifier.
	typ           StockType                 // common or preferred.
	lastDividend  decimal.Decimal           // last dividend paid, per share.
	fixedDividend Optional[decimal.Decimal] // only set on preferred stocks.
	parValue      decimal.Decimal
}

// NewCommonStock returns a common stock.
func NewCommonStock(symbol string, lastDividend, parValue decimal.Decimal) Stock {
	return Stock{
		symbol:       symbol,
		typ:          Common,
		lastDividend: lastDividend,
		parValue:     parValue,
	}
}

// NewPreferredStock returns a preferred stock paying fixedDividend (a fraction, 0.02 is 2%) of its par value.
func NewPreferredStock(symbol string, lastDividend, fixedDividend, parValue decimal.Decimal) Stock {
	return Stock{
		symbol:        symbol,
		typ:           Preferred,
		lastDividend:  lastDividend,
		fixedDividend: Some(fixedDividend),
		parValue:      parValue,
	}
}

// Symbol returns the stock symbol.
func (s Stock) Symbol() string { return s.symbol }

// Type returns the stock type.
func (s Stock) Type() StockType { return s.typ }

// LastDividend returns the last dividend paid per share.
func (s Stock) LastDividend() decimal.Decimal { return s.lastDividend }

// FixedDividend returns the fixed dividend fraction, absent for common stocks.
func (s Stock) FixedDividend() Optional[decimal.Decimal] { return s.fixedDividend }

// ParValue returns the stock par value.
func (s Stock) ParValue() decimal.Decimal { return s.parValue }

// MarshalJSON implements the json.Marshaler interface for Stock.
func (s Stock) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", s.symbol)
	w.Append("type", s.typ.String())
	w.Append("lastDividend", s.lastDividend)
	if fixed, ok := s.fixedDividend.Get(); ok {
		w.Append("fixedDividend", fixed)
	}
	w.Append("parValue", s.parValue)
	return w.MarshalJSON()
}
