package gbce

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func symbols(stocks []Stock) []string {
	s := make([]string, 0, len(stocks))
	for _, stock := range stocks {
		s = append(s, stock.Symbol())
	}
	return s
}

func TestDefaultStocks(t *testing.T) {
	stocks := DefaultStocks()

	want := []string{"TEA", "POP", "ALE", "GIN", "JOE"}
	if diff := cmp.Diff(want, symbols(stocks.All())); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}

	gin, ok := stocks.FindBySymbol("GIN")
	if !ok {
		t.Fatalf("FindBySymbol(GIN) not found")
	}
	if gin.Type() != Preferred {
		t.Errorf("GIN.Type() = %v, want %v", gin.Type(), Preferred)
	}
	if fixed, ok := gin.FixedDividend().Get(); !ok || !fixed.Equal(d("0.02")) {
		t.Errorf("GIN.FixedDividend() = %v, %v, want 0.02, true", fixed, ok)
	}

	ale, _ := stocks.FindBySymbol("ALE")
	if ale.FixedDividend().IsSet() {
		t.Errorf("ALE.FixedDividend() is set on a common stock")
	}
	if !ale.ParValue().Equal(d("0.60")) {
		t.Errorf("ALE.ParValue() = %v, want 0.60", ale.ParValue())
	}

	// every call returns a fresh catalog.
	if err := stocks.Add(NewCommonStock("NEW", d("0"), d("1"))); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if got := DefaultStocks().Len(); got != 5 {
		t.Errorf("DefaultStocks().Len() = %d, want 5", got)
	}
}

func TestStocks_Add(t *testing.T) {
	stocks := NewStocks()
	if err := stocks.Add(NewCommonStock("TEA", d("0"), d("1"))); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := stocks.Add(NewCommonStock("TEA", d("1"), d("2"))); err == nil {
		t.Errorf("Add() of a listed symbol error = nil, want an error")
	}
	if got := stocks.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
	tea, _ := stocks.FindBySymbol("TEA")
	if !tea.ParValue().Equal(d("1")) {
		t.Errorf("listed stock was replaced: ParValue() = %v, want 1", tea.ParValue())
	}
	if stocks.Has("POP") {
		t.Errorf("Has(POP) = true on a catalog without it")
	}
}

func TestStocks_AllIsACopy(t *testing.T) {
	stocks := DefaultStocks()
	all := stocks.All()
	all[0] = NewCommonStock("XXX", d("0"), d("1"))
	if got := stocks.All()[0].Symbol(); got != "TEA" {
		t.Errorf("All()[0] = %q after modifying a previous result, want TEA", got)
	}
}

func TestStocks_Concurrent(t *testing.T) {
	stocks := NewStocks()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			symbol := fmt.Sprintf("S%02d", i)
			if err := stocks.Add(NewCommonStock(symbol, d("0"), d("1"))); err != nil {
				t.Errorf("Add(%s) error = %v", symbol, err)
			}
			_ = stocks.All()
			_, _ = stocks.FindBySymbol(symbol)
		}()
	}
	wg.Wait()
	if got := stocks.Len(); got != 50 {
		t.Errorf("Len() = %d, want 50", got)
	}
}
