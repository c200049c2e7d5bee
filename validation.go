package gbce

import "github.com/shopspring/decimal"

// A rule checks one business constraint and returns the violation, if any.
type rule func() error

// firstViolation applies rules in order and returns the first violation.
// Order matters: it decides which message is reported when several rules are broken.
func firstViolation(rules ...rule) error {
	for _, r := range rules {
		if err := r(); err != nil {
			return err
		}
	}
	return nil
}

func symbolPresent(symbol string) rule {
	return func() error {
		if symbol == "" {
			return ErrSymbolRequired
		}
		return nil
	}
}

func pricePresent(price Optional[decimal.Decimal]) rule {
	return func() error {
		if !price.IsSet() {
			return ErrPriceRequired
		}
		return nil
	}
}

func pricePositive(price Optional[decimal.Decimal]) rule {
	return func() error {
		if p, ok := price.Get(); ok && !p.IsPositive() {
			return ErrPriceNotPositive
		}
		return nil
	}
}

func stockListed(stocks StockCatalog, symbol string, found *Stock) rule {
	return func() error {
		stock, ok := stocks.FindBySymbol(symbol)
		if !ok {
			return withMessage(ErrStockNotFound, "Stock with symbol [%s] is not present in the market.", symbol)
		}
		*found = stock
		return nil
	}
}

// validateQuote checks the arguments of a dividend or price-earnings calculation
// and returns the quoted stock.
func validateQuote(stocks StockCatalog, symbol string, price Optional[decimal.Decimal]) (Stock, error) {
	var stock Stock
	err := firstViolation(
		symbolPresent(symbol),
		pricePresent(price),
		pricePositive(price),
		stockListed(stocks, symbol, &stock),
	)
	return stock, err
}

// validateTrade checks a trade before it is recorded.
//
// Absent quantity and price are accepted; only present values out of range are rejected.
func validateTrade(stocks StockCatalog, t *Trade) error {
	if t == nil {
		return ErrTradeRequired
	}
	return firstViolation(
		func() error {
			if t.symbol == "" {
				return ErrTradeSymbolRequired
			}
			return nil
		},
		func() error {
			if q, ok := t.quantity.Get(); ok && q <= 0 {
				return ErrTradeQuantityNotPositive
			}
			return nil
		},
		func() error {
			if t.indicator == 0 {
				return ErrTradeIndicatorRequired
			}
			return nil
		},
		func() error {
			if p, ok := t.price.Get(); ok && !p.IsPositive() {
				return ErrTradePriceNotPositive
			}
			return nil
		},
		func() error {
			if _, ok := stocks.FindBySymbol(t.symbol); !ok {
				return ErrTradeStockUnknown
			}
			return nil
		},
	)
}
