package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type vwspCmd struct{}

func (*vwspCmd) Name() string { return "vwsp" }
func (*vwspCmd) Synopsis() string {
	return "calculate the volume weighted stock price over the recent trades"
}
func (*vwspCmd) Usage() string {
	return `sms vwsp <symbol>

  Prints the volume weighted price of the trades on a stock recorded within
  the configured window (5 minutes by default). It is 0 without recent trades.
`
}

func (c *vwspCmd) SetFlags(f *flag.FlagSet) {}

func (c *vwspCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Error: expected a single stock symbol")
		return subcommands.ExitUsageError
	}
	m, err := OpenMarket()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	price, err := m.VolumeWeightedStockPrice(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, price.StringFixed(m.Config().Precision))
	return subcommands.ExitSuccess
}
