package gbce

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Market computes the exchange metrics over a stock catalog and a trade journal.
//
// A Market owns no state of its own: every call reads the catalog and the
// journal it was built with.
type Market struct {
	stocks StockCatalog
	trades TradeJournal
	cfg    Config
	log    *zap.Logger
	now    func() time.Time
}

// NewMarket returns a Market over stocks and trades. A nil log disables logging.
func NewMarket(stocks StockCatalog, trades TradeJournal, cfg Config, log *zap.Logger) *Market {
	if log == nil {
		log = zap.NewNop()
	}
	return &Market{
		stocks: stocks,
		trades: trades,
		cfg:    cfg,
		log:    log,
		now:    time.Now,
	}
}

// SetClock replaces the clock used to evaluate trailing windows.
func (m *Market) SetClock(now func() time.Time) { m.now = now }

// Config returns the market configuration.
func (m *Market) Config() Config { return m.cfg }

// Stocks returns the market catalog.
func (m *Market) Stocks() StockCatalog { return m.stocks }

// Trades returns the market journal.
func (m *Market) Trades() TradeJournal { return m.trades }

// Dividend returns the dividend yield of a stock quoted at price.
//
// For a common stock it is the last dividend over the price, for a preferred
// stock the fixed dividend times the par value over the price.
func (m *Market) Dividend(symbol string, price Optional[decimal.Decimal]) (decimal.Decimal, error) {
	stock, err := validateQuote(m.stocks, symbol, price)
	if err != nil {
		return decimal.Zero, err
	}
	p, _ := price.Get()
	switch stock.Type() {
	case Common:
		return stock.LastDividend().DivRound(p, m.cfg.Precision), nil
	case Preferred:
		fixed, _ := stock.FixedDividend().Get()
		return fixed.Mul(stock.ParValue()).DivRound(p, m.cfg.Precision), nil
	default:
		panic(fmt.Sprintf("unknown stock type %d for %q", stock.Type(), stock.Symbol()))
	}
}

// DividendYield is Dividend, logged.
func (m *Market) DividendYield(symbol string, price Optional[decimal.Decimal]) (decimal.Decimal, error) {
	m.log.Info("calculating the dividend yield", zap.String("symbol", symbol))
	dividend, err := m.Dividend(symbol, price)
	if err != nil {
		m.log.Error("dividend yield calculation failed", zap.String("symbol", symbol), zap.Error(err))
		return decimal.Zero, err
	}
	m.log.Info("dividend yield calculated", zap.String("symbol", symbol), zap.Stringer("dividend", dividend))
	return dividend, nil
}

// PriceEarningsRatio returns the price over the dividend of a stock quoted at price.
//
// It fails with ErrZeroDividend when the dividend rounds to zero.
func (m *Market) PriceEarningsRatio(symbol string, price Optional[decimal.Decimal]) (decimal.Decimal, error) {
	m.log.Info("calculating the price-earnings ratio", zap.String("symbol", symbol))
	ratio, err := m.priceEarningsRatio(symbol, price)
	if err != nil {
		m.log.Error("price-earnings ratio calculation failed", zap.String("symbol", symbol), zap.Error(err))
		return decimal.Zero, err
	}
	m.log.Info("price-earnings ratio calculated", zap.String("symbol", symbol), zap.Stringer("ratio", ratio))
	return ratio, nil
}

func (m *Market) priceEarningsRatio(symbol string, price Optional[decimal.Decimal]) (decimal.Decimal, error) {
	dividend, err := m.Dividend(symbol, price)
	if err != nil {
		return decimal.Zero, err
	}
	if dividend.IsZero() {
		return decimal.Zero, ErrZeroDividend
	}
	p, _ := price.Get()
	return p.DivRound(dividend, m.cfg.Precision), nil
}

// RecordTrade validates a trade and appends it to the journal.
// A rejected trade is never appended.
func (m *Market) RecordTrade(t *Trade) error {
	m.log.Info("recording a new trade")
	if err := validateTrade(m.stocks, t); err != nil {
		m.log.Error("trade recording failed", zap.Error(err))
		return err
	}
	m.trades.Add(*t)
	m.log.Info("trade recorded", zap.String("symbol", t.Symbol()), zap.Stringer("id", t.ID()))
	return nil
}

// VolumeWeightedStockPrice returns the volume weighted price of the trades on
// a stock recorded within the configured trailing window.
//
// It is zero when no trade is in the window. The symbol is not checked
// against the catalog.
func (m *Market) VolumeWeightedStockPrice(symbol string) (decimal.Decimal, error) {
	m.log.Info("calculating the volume weighted stock price", zap.String("symbol", symbol), zap.Duration("window", m.cfg.Window))
	if err := firstViolation(symbolPresent(symbol)); err != nil {
		m.log.Error("volume weighted stock price calculation failed", zap.Error(err))
		return decimal.Zero, err
	}
	price := m.volumeWeightedPrice(symbol, Some(m.cfg.Window), m.now())
	m.log.Info("volume weighted stock price calculated", zap.String("symbol", symbol), zap.Stringer("price", price))
	return price, nil
}

// volumeWeightedPrice computes the volume weighted price of the trades on
// symbol created strictly after now-window. An absent window selects every trade.
func (m *Market) volumeWeightedPrice(symbol string, window Optional[time.Duration], now time.Time) decimal.Decimal {
	total := decimal.Zero // sum of price*quantity
	var quantity int64
	for _, t := range m.trades.FindBySymbol(symbol) {
		if w, ok := window.Get(); ok && !t.Created().After(now.Add(-w)) {
			continue
		}
		q, hasQ := t.Quantity().Get()
		p, hasP := t.Price().Get()
		if !hasQ || !hasP {
			m.log.Warn("trade without quantity or price is ignored", zap.String("symbol", symbol), zap.Stringer("id", t.ID()))
			continue
		}
		total = total.Add(p.Mul(decimal.NewFromInt(int64(q))))
		quantity += int64(q)
	}
	if quantity == 0 {
		return decimal.Zero
	}
	return total.DivRound(decimal.NewFromInt(quantity), m.cfg.Precision)
}

// AllShareIndex returns the geometric mean of the volume weighted prices of
// every traded stock, over all their trades.
//
// Stocks whose price is zero are left out. The index is zero when no stock traded.
func (m *Market) AllShareIndex() (decimal.Decimal, error) {
	m.log.Info("calculating the all share index")
	prices := make([]decimal.Decimal, 0)
	now := m.now()
	for _, stock := range m.stocks.All() {
		price := m.volumeWeightedPrice(stock.Symbol(), None[time.Duration](), now)
		if !price.IsZero() {
			prices = append(prices, price)
		}
	}
	index := geometricMean(prices).Round(m.cfg.Precision)
	m.log.Info("all share index calculated", zap.Int("stocks", len(prices)), zap.Stringer("index", index))
	return index, nil
}

// geometricMean returns the n-th root of the product of n positive values, or zero for no value.
//
// It is only as exact as a float64, about 15 significant digits.
func geometricMean(values []decimal.Decimal) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}
	// sum of logarithms rather than the product, which overflows quickly.
	var logs float64
	for _, v := range values {
		logs += math.Log(v.InexactFloat64())
	}
	return decimal.NewFromFloat(math.Exp(logs / float64(len(values))))
}
