package gbce

import (
	"fmt"
	"slices"
	"sync"

	"github.com/shopspring/decimal"
)

// StockCatalog is the set of stocks listed on the exchange.
type StockCatalog interface {
	// All returns every stock, in listing order.
	All() []Stock
	// Add lists a new stock. Symbols are unique.
	Add(Stock) error
	// FindBySymbol returns the stock listed with this symbol, if any.
	FindBySymbol(symbol string) (Stock, bool)
}

// Stocks is an in-memory StockCatalog, safe for concurrent use.
type Stocks struct {
	mu     sync.RWMutex
	stocks []Stock
	index  map[string]int // position in stocks by symbol.
}

// NewStocks returns an empty catalog.
func NewStocks() *Stocks {
	return &Stocks{
		stocks: make([]Stock, 0),
		index:  make(map[string]int),
	}
}

// DefaultStocks returns a catalog listing the exchange sample stocks.
func DefaultStocks() *Stocks {
	s := NewStocks()
	for _, stock := range sampleStocks() {
		// sample symbols are distinct.
		_ = s.Add(stock)
	}
	return s
}

func sampleStocks() []Stock {
	d := decimal.RequireFromString
	return []Stock{
		NewCommonStock("TEA", decimal.Zero, d("1.00")),
		NewCommonStock("POP", d("0.08"), d("1.00")),
		NewCommonStock("ALE", d("0.23"), d("0.60")),
		NewPreferredStock("GIN", d("0.23"), d("0.02"), d("1.00")),
		NewCommonStock("JOE", d("0.23"), d("2.50")),
	}
}

// All returns a copy of the listed stocks, in listing order.
func (s *Stocks) All() []Stock {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.stocks)
}

// Add lists stock, or fails if its symbol is already listed.
func (s *Stocks) Add(stock Stock) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.index[stock.Symbol()]; exists {
		return fmt.Errorf("stock %q is already listed", stock.Symbol())
	}
	s.index[stock.Symbol()] = len(s.stocks)
	s.stocks = append(s.stocks, stock)
	return nil
}

// FindBySymbol returns the stock listed with symbol, if any.
func (s *Stocks) FindBySymbol(symbol string) (Stock, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[symbol]
	if !ok {
		return Stock{}, false
	}
	return s.stocks[i], true
}

// Has reports whether a stock is listed with this symbol.
func (s *Stocks) Has(symbol string) bool {
	_, ok := s.FindBySymbol(symbol)
	return ok
}

// Len returns the number of listed stocks.
func (s *Stocks) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.stocks)
}
