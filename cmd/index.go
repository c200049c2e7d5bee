package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type indexCmd struct{}

func (*indexCmd) Name() string     { return "index" }
func (*indexCmd) Synopsis() string { return "calculate the all share index" }
func (*indexCmd) Usage() string {
	return `sms index

  Prints the geometric mean of the volume weighted prices of every traded stock.
`
}

func (c *indexCmd) SetFlags(f *flag.FlagSet) {}

func (c *indexCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := OpenMarket()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	index, err := m.AllShareIndex()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, index.StringFixed(m.Config().Precision))
	return subcommands.ExitSuccess
}
