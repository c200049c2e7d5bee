package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/gbce"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// parsePrice parses the -p flag. An empty flag is an absent price.
func parsePrice(s string) (gbce.Optional[decimal.Decimal], error) {
	if s == "" {
		return gbce.None[decimal.Decimal](), nil
	}
	p, err := decimal.NewFromString(s)
	if err != nil {
		return gbce.None[decimal.Decimal](), fmt.Errorf("invalid price %q: %w", s, err)
	}
	return gbce.Some(p), nil
}

// quote runs a calculation of a stock quoted at a price and prints the result.
func quote(f *flag.FlagSet, price string, calc func(m *gbce.Market, symbol string, price gbce.Optional[decimal.Decimal]) (decimal.Decimal, error)) subcommands.ExitStatus {
	if f.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Error: expected a single stock symbol")
		return subcommands.ExitUsageError
	}
	p, err := parsePrice(price)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	m, err := OpenMarket()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	v, err := calc(m, f.Arg(0), p)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, v.StringFixed(m.Config().Precision))
	return subcommands.ExitSuccess
}

type dividendCmd struct {
	price string
}

func (*dividendCmd) Name() string     { return "dividend" }
func (*dividendCmd) Synopsis() string { return "calculate the dividend yield of a stock at a price" }
func (*dividendCmd) Usage() string {
	return `sms dividend -p <price> <symbol>

  Prints the dividend yield of a stock quoted at a price.
`
}

func (c *dividendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.price, "p", "", "Price of one share")
}

func (c *dividendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return quote(f, c.price, (*gbce.Market).DividendYield)
}

type peCmd struct {
	price string
}

func (*peCmd) Name() string     { return "pe" }
func (*peCmd) Synopsis() string { return "calculate the price-earnings ratio of a stock at a price" }
func (*peCmd) Usage() string {
	return `sms pe -p <price> <symbol>

  Prints the price-earnings ratio of a stock quoted at a price.
`
}

func (c *peCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.price, "p", "", "Price of one share")
}

func (c *peCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return quote(f, c.price, (*gbce.Market).PriceEarningsRatio)
}
