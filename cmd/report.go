package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/gbce/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	json  bool
	query string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display every market metric" }
func (*reportCmd) Usage() string {
	return `sms report [-json] [-q <jsonpath>]

  Displays, for every listed stock, the recent and overall volume weighted
  prices with the dividend yield and price-earnings ratio at that price, and
  the all share index.

  -q selects a value of the JSON report, for instance '$.allShareIndex'.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Print the report as JSON")
	f.StringVar(&c.query, "q", "", "JSONPath expression selecting a part of the JSON report")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := OpenMarket()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	report, err := m.NewReport()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	switch {
	case c.query != "":
		data, err := json.Marshal(report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
			return subcommands.ExitFailure
		}
		var jobj any
		if err := json.Unmarshal(data, &jobj); err != nil {
			fmt.Fprintf(os.Stderr, "Error decoding report: %v\n", err)
			return subcommands.ExitFailure
		}
		jval, err := jsonpath.Get(c.query, jobj)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error evaluating %q: %v\n", c.query, err)
			return subcommands.ExitUsageError
		}
		// strings are printed raw, for shell scripts.
		if s, ok := jval.(string); ok {
			fmt.Fprintln(stdout, s)
			return subcommands.ExitSuccess
		}
		out, err := json.MarshalIndent(jval, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding %q: %v\n", c.query, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(stdout, string(out))
	case c.json:
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(stdout, string(out))
	default:
		printMarkdown(renderer.ReportMarkdown(renderer.NewReport(report, m.Config().Currency)))
	}
	return subcommands.ExitSuccess
}
