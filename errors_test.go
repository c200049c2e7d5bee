package gbce

import (
	"errors"
	"fmt"
	"testing"
)

func TestBusinessError(t *testing.T) {
	err := withMessage(ErrStockNotFound, "Stock with symbol [%s] is not present in the market.", "RRR")
	if got, want := err.Error(), "Stock with symbol [RRR] is not present in the market."; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrStockNotFound) {
		t.Errorf("errors.Is(%v, ErrStockNotFound) = false, want true", err)
	}
	if errors.Is(err, ErrZeroDividend) {
		t.Errorf("errors.Is(%v, ErrZeroDividend) = true, want false", err)
	}

	wrapped := fmt.Errorf("trades.jsonl:3: %w", ErrTradeRequired)
	if !IsBusinessError(wrapped) {
		t.Errorf("IsBusinessError(%v) = false, want true", wrapped)
	}
	if IsBusinessError(errors.New("disk full")) {
		t.Errorf("IsBusinessError() = true on a plain error")
	}
}
