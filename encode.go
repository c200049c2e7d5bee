package gbce

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Trades and stocks are exchanged as JSONL: one JSON object per line, blank
// lines ignored. They are inputs only: nothing is ever written back.

// jtrade is a trade as read from a JSON line.
type jtrade struct {
	ID        string           `json:"id"`
	Symbol    string           `json:"symbol"`
	Quantity  *int             `json:"quantity"`
	Indicator string           `json:"indicator"`
	Price     *decimal.Decimal `json:"price"`
	Time      *time.Time       `json:"time"`
}

// DecodeTrade parses a single JSON trade. A trade without time is created at now.
//
// The trade is not validated: recording it does.
func DecodeTrade(data []byte, now time.Time) (*Trade, error) {
	var jt jtrade
	if err := json.Unmarshal(data, &jt); err != nil {
		return nil, err
	}
	indicator, err := ParseIndicator(jt.Indicator)
	if err != nil {
		return nil, err
	}
	quantity := None[int]()
	if jt.Quantity != nil {
		quantity = Some(*jt.Quantity)
	}
	price := None[decimal.Decimal]()
	if jt.Price != nil {
		price = Some(*jt.Price)
	}
	at := now
	if jt.Time != nil {
		at = *jt.Time
	}
	t := NewTradeAt(jt.Symbol, quantity, indicator, price, at)
	if jt.ID != "" {
		id, err := uuid.Parse(jt.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid trade id %q: %w", jt.ID, err)
		}
		t.id = id
	}
	return t, nil
}

// EncodeTrade writes a trade as a single JSON line.
func EncodeTrade(w io.Writer, t *Trade) error {
	data, err := json.Marshal(t)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// LoadTrades records every trade read from r.
// name is for error messages only.
//
// It stops on the first line that cannot be decoded or recorded; trades
// recorded before stay in the journal.
func (m *Market) LoadTrades(name string, r io.Reader) error {
	now := m.now()
	return scanLines(name, r, func(line []byte) error {
		t, err := DecodeTrade(line, now)
		if err != nil {
			return err
		}
		return m.RecordTrade(t)
	})
}

// jstock is a stock as read from a JSON line.
type jstock struct {
	Symbol        string           `json:"symbol"`
	Type          string           `json:"type"`
	LastDividend  decimal.Decimal  `json:"lastDividend"`
	FixedDividend *decimal.Decimal `json:"fixedDividend"`
	ParValue      decimal.Decimal  `json:"parValue"`
}

// DecodeStock parses a single JSON stock.
func DecodeStock(data []byte) (Stock, error) {
	var js jstock
	if err := json.Unmarshal(data, &js); err != nil {
		return Stock{}, err
	}
	if js.Symbol == "" {
		return Stock{}, errors.New("stock symbol is missing")
	}
	if js.Symbol != strings.ToUpper(js.Symbol) {
		return Stock{}, fmt.Errorf("stock symbol %q must be uppercase", js.Symbol)
	}
	if js.LastDividend.IsNegative() {
		return Stock{}, fmt.Errorf("stock %q last dividend must not be negative, got %s", js.Symbol, js.LastDividend)
	}
	if !js.ParValue.IsPositive() {
		return Stock{}, fmt.Errorf("stock %q par value must be positive, got %s", js.Symbol, js.ParValue)
	}
	typ, err := ParseStockType(js.Type)
	if err != nil {
		return Stock{}, fmt.Errorf("stock %q: %w", js.Symbol, err)
	}
	switch typ {
	case Common:
		if js.FixedDividend != nil {
			return Stock{}, fmt.Errorf("common stock %q cannot have a fixed dividend", js.Symbol)
		}
		return NewCommonStock(js.Symbol, js.LastDividend, js.ParValue), nil
	case Preferred:
		if js.FixedDividend == nil {
			return Stock{}, fmt.Errorf("preferred stock %q requires a fixed dividend", js.Symbol)
		}
		return NewPreferredStock(js.Symbol, js.LastDividend, *js.FixedDividend, js.ParValue), nil
	default:
		panic(fmt.Sprintf("unknown stock type %d", typ))
	}
}

// LoadStocks lists every stock read from r into stocks.
// name is for error messages only.
func LoadStocks(stocks StockCatalog, name string, r io.Reader) error {
	return scanLines(name, r, func(line []byte) error {
		s, err := DecodeStock(line)
		if err != nil {
			return err
		}
		return stocks.Add(s)
	})
}

// scanLines calls fn for every non blank line of r, and reports errors with their position.
func scanLines(name string, r io.Reader, fn func(line []byte) error) error {
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		if err := fn(line); err != nil {
			return fmt.Errorf("%s:%d: %w", name, i, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("cannot read %s: %w", name, err)
	}
	return nil
}
