package gbce

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Indicator tells whether a trade was a buy or a sell.
//
// The zero value means the indicator is absent.
type Indicator int

const (
	// Buy is a purchase of shares.
	Buy Indicator = iota + 1
	// Sell is a sale of shares.
	Sell
)

func (i Indicator) String() string {
	switch i {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	default:
		return ""
	}
}

// ParseIndicator parses "buy" or "sell", case-insensitively.
// An empty string is the absent indicator.
func ParseIndicator(s string) (Indicator, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return 0, nil
	case "BUY":
		return Buy, nil
	case "SELL":
		return Sell, nil
	default:
		return 0, fmt.Errorf("unknown trade indicator: %q", s)
	}
}

// Trade is an executed transaction on a stock.
//
// A Trade may hold invalid values until it is recorded: recording is where
// the business rules are checked.
type Trade struct {
	id        uuid.UUID
	symbol    string
	quantity  Optional[int]
	indicator Indicator
	price     Optional[decimal.Decimal] // per share.
	created   time.Time
}

// NewTrade returns a new trade created now.
func NewTrade(symbol string, quantity Optional[int], indicator Indicator, price Optional[decimal.Decimal]) *Trade {
	return NewTradeAt(symbol, quantity, indicator, price, time.Now())
}

// NewTradeAt returns a new trade created at a given time.
func NewTradeAt(symbol string, quantity Optional[int], indicator Indicator, price Optional[decimal.Decimal], at time.Time) *Trade {
	return &Trade{
		id:        uuid.New(),
		symbol:    symbol,
		quantity:  quantity,
		indicator: indicator,
		price:     price,
		created:   at,
	}
}

// ID returns the unique identifier of the trade.
func (t Trade) ID() uuid.UUID { return t.id }

// Symbol returns the symbol of the traded stock.
func (t Trade) Symbol() string { return t.symbol }

// Quantity returns the number of shares traded.
func (t Trade) Quantity() Optional[int] { return t.quantity }

// Indicator returns whether it was a buy or a sell.
func (t Trade) Indicator() Indicator { return t.indicator }

// Price returns the price per share.
func (t Trade) Price() Optional[decimal.Decimal] { return t.price }

// Created returns the time the trade record was created.
func (t Trade) Created() time.Time { return t.created }

// MarshalJSON implements the json.Marshaler interface for Trade.
func (t Trade) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.id.String())
	w.Append("symbol", t.symbol)
	if q, ok := t.quantity.Get(); ok {
		w.Append("quantity", q)
	}
	w.Optional("indicator", t.indicator.String())
	if p, ok := t.price.Get(); ok {
		w.Append("price", p)
	}
	w.Append("time", t.created.Format(time.RFC3339Nano))
	return w.MarshalJSON()
}
