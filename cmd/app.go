// Package cmd implements the CLI application over a simple stock market.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/etnz/gbce"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&stocksCmd{}, "market")
	c.Register(&recordCmd{}, "market")

	c.Register(&dividendCmd{}, "metrics")
	c.Register(&peCmd{}, "metrics")
	c.Register(&vwspCmd{}, "metrics")
	c.Register(&indexCmd{}, "metrics")
	c.Register(&reportCmd{}, "metrics")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to a YAML configuration file")
var stocksFile = flag.String("stocks", "", "Path to a stocks file (JSONL format) listed on top of the sample stocks")
var tradesFile = flag.String("trades", "trades.jsonl", "Path to the trades file (JSONL format), - for the standard input")
var verbose = flag.Bool("v", false, "Log every calculation on the standard error")
var rawMarkdown = flag.Bool("raw", false, "Print markdown as is instead of rendering it for the terminal")

// stdout is where commands print their results.
var stdout io.Writer = os.Stdout

// stdin is read when the trades file is "-".
var stdin io.Reader = os.Stdin

// now returns the current time, or the time pinned by EnvTestingNow.
func now() time.Time {
	if v := os.Getenv(EnvTestingNow); v != "" {
		t, err := time.Parse(time.DateTime, v)
		if err == nil {
			return t
		}
	}
	return time.Now()
}

// newLogger returns the application logger: a development logger in verbose mode, silent otherwise.
func newLogger() *zap.Logger {
	if !*verbose {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// OpenMarket is the central function to build the market: configuration,
// the catalog and the trades recorded in the trades file.
func OpenMarket() (*gbce.Market, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	log := newLogger()

	stocks := gbce.DefaultStocks()
	if *stocksFile != "" {
		f, err := os.Open(*stocksFile)
		if err != nil {
			return nil, fmt.Errorf("cannot open stocks file: %w", err)
		}
		defer f.Close()
		if err := gbce.LoadStocks(stocks, *stocksFile, f); err != nil {
			return nil, fmt.Errorf("cannot load stocks: %w", err)
		}
	}

	m := gbce.NewMarket(stocks, gbce.NewJournal(), cfg, log)
	m.SetClock(now)

	if *tradesFile == "-" {
		if err := m.LoadTrades("stdin", stdin); err != nil {
			return nil, fmt.Errorf("cannot load trades: %w", err)
		}
		return m, nil
	}
	f, err := os.Open(*tradesFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn("trades file does not exist, starting without trades", zap.String("file", *tradesFile))
		return m, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open trades file: %w", err)
	}
	defer f.Close()
	if err := m.LoadTrades(*tradesFile, f); err != nil {
		return nil, fmt.Errorf("cannot load trades: %w", err)
	}
	return m, nil
}
