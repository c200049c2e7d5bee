package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/gbce/renderer"
	"github.com/google/subcommands"
)

type stocksCmd struct{}

func (*stocksCmd) Name() string     { return "stocks" }
func (*stocksCmd) Synopsis() string { return "list the stocks listed on the exchange" }
func (*stocksCmd) Usage() string {
	return `sms stocks

  Lists the sample stocks and the stocks of the -stocks file.
`
}

func (c *stocksCmd) SetFlags(f *flag.FlagSet) {}

func (c *stocksCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := OpenMarket()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.StocksMarkdown(m.Stocks().All(), m.Config().Currency))
	return subcommands.ExitSuccess
}
