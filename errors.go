package gbce

import (
	"errors"
	"fmt"
)

// BusinessError is the single kind of error returned when an input breaks a business rule.
//
// Business errors are permanent: retrying with the same input fails the same way.
// Messages are stable and callers may match on their prefix.
type BusinessError struct {
	Code    string // stable identifier of the rule.
	Message string // human readable reason.
}

func (e *BusinessError) Error() string { return e.Message }

// Is matches business errors by code, so that a message carrying details
// still matches its sentinel.
func (e *BusinessError) Is(target error) bool {
	t, ok := target.(*BusinessError)
	return ok && t.Code == e.Code
}

// withMessage returns a copy of sentinel with a formatted message.
func withMessage(sentinel *BusinessError, format string, args ...any) *BusinessError {
	return &BusinessError{Code: sentinel.Code, Message: fmt.Sprintf(format, args...)}
}

// IsBusinessError reports whether err is, or wraps, a *BusinessError.
func IsBusinessError(err error) bool {
	var be *BusinessError
	return errors.As(err, &be)
}

// Quote errors, raised by dividend and price-earnings calculations.
var (
	ErrSymbolRequired   = &BusinessError{Code: "SYMBOL_REQUIRED", Message: "Stock symbol cannot be null."}
	ErrPriceRequired    = &BusinessError{Code: "PRICE_REQUIRED", Message: "Stock price cannot be null."}
	ErrPriceNotPositive = &BusinessError{Code: "PRICE_NOT_POSITIVE", Message: "Stock price must be greater than zero."}
	ErrStockNotFound    = &BusinessError{Code: "STOCK_NOT_FOUND", Message: "Stock is not present in the market."}
	ErrZeroDividend     = &BusinessError{Code: "ZERO_DIVIDEND", Message: "Dividend calculated must not be equal to zero."}
)

// Trade errors, raised when recording a trade.
var (
	ErrTradeRequired            = &BusinessError{Code: "TRADE_REQUIRED", Message: "Trade record cannot be null."}
	ErrTradeSymbolRequired      = &BusinessError{Code: "TRADE_SYMBOL_REQUIRED", Message: "Stock symbol in a trade must not be null."}
	ErrTradeQuantityNotPositive = &BusinessError{Code: "TRADE_QUANTITY_NOT_POSITIVE", Message: "Quantity of shares in a trade must be greater than zero."}
	ErrTradeIndicatorRequired   = &BusinessError{Code: "TRADE_INDICATOR_REQUIRED", Message: "Trade indicator cannot be null."}
	ErrTradePriceNotPositive    = &BusinessError{Code: "TRADE_PRICE_NOT_POSITIVE", Message: "Price of a share in a trade must be greater than zero."}
	ErrTradeStockUnknown        = &BusinessError{Code: "TRADE_STOCK_UNKNOWN", Message: "A trade must be associated with a stock."}
)
