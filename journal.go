package gbce

import (
	"slices"
	"sync"
)

// TradeJournal is the record of trades executed on the exchange.
type TradeJournal interface {
	// All returns every trade, in recording order.
	All() []Trade
	// Add appends a trade.
	Add(Trade)
	// FindBySymbol returns the trades on a stock, in recording order.
	FindBySymbol(symbol string) []Trade
	// Clear removes every trade.
	Clear()
}

// Journal is an in-memory TradeJournal, safe for concurrent use.
//
// Reads return copies, so a calculation works on a consistent snapshot even
// if trades are recorded meanwhile.
type Journal struct {
	mu     sync.RWMutex
	trades []Trade // in recording order.
}

// NewJournal returns an empty journal.
func NewJournal() *Journal {
	return &Journal{trades: make([]Trade, 0)}
}

// All returns a copy of the recorded trades.
func (j *Journal) All() []Trade {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return slices.Clone(j.trades)
}

// Add appends t to the journal.
func (j *Journal) Add(t Trade) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.trades = append(j.trades, t)
}

// FindBySymbol returns the trades on symbol, in recording order.
func (j *Journal) FindBySymbol(symbol string) []Trade {
	j.mu.RLock()
	defer j.mu.RUnlock()
	trades := make([]Trade, 0)
	for _, t := range j.trades {
		if t.Symbol() == symbol {
			trades = append(trades, t)
		}
	}
	return trades
}

// Clear empties the journal.
func (j *Journal) Clear() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.trades = make([]Trade, 0)
}

// Len returns the number of recorded trades.
func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.trades)
}
