package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/etnz/gbce"
	"github.com/google/subcommands"
)

// recordCmd holds the flags for the 'record' subcommand.
type recordCmd struct {
	symbol    string
	quantity  string
	indicator string
	price     string
	time      string
}

func (*recordCmd) Name() string     { return "record" }
func (*recordCmd) Synopsis() string { return "validate a trade and print it as a JSON line" }
func (*recordCmd) Usage() string {
	return `sms record -s <symbol> -q <quantity> -i <BUY|SELL> -p <price> [-t <time>]

  Validates a trade against the market and prints it as a JSON line, ready to
  be appended to the trades file:

    sms record -s POP -q 10 -i BUY -p 2.50 >> trades.jsonl
`
}

func (c *recordCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Symbol of the traded stock")
	f.StringVar(&c.quantity, "q", "", "Quantity of shares")
	f.StringVar(&c.indicator, "i", "", "Trade indicator, BUY or SELL")
	f.StringVar(&c.price, "p", "", "Price of one share")
	f.StringVar(&c.time, "t", "", "Time of the trade (RFC 3339), now by default")
}

// trade builds the trade described by the flags.
func (c *recordCmd) trade() (*gbce.Trade, error) {
	quantity := gbce.None[int]()
	if c.quantity != "" {
		q, err := strconv.Atoi(c.quantity)
		if err != nil {
			return nil, fmt.Errorf("invalid quantity %q: %w", c.quantity, err)
		}
		quantity = gbce.Some(q)
	}
	indicator, err := gbce.ParseIndicator(c.indicator)
	if err != nil {
		return nil, err
	}
	price, err := parsePrice(c.price)
	if err != nil {
		return nil, err
	}
	at := now()
	if c.time != "" {
		if at, err = time.Parse(time.RFC3339, c.time); err != nil {
			return nil, fmt.Errorf("invalid time %q: %w", c.time, err)
		}
	}
	return gbce.NewTradeAt(c.symbol, quantity, indicator, price, at), nil
}

func (c *recordCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := c.trade()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	m, err := OpenMarket()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := m.RecordTrade(t); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := gbce.EncodeTrade(stdout, t); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding trade: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
