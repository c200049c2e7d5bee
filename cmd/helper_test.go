package cmd

import (
	"bytes"
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
)

// sampleTrades are the reference trades: TEA was traded 30 minutes before the
// pinned time, the others at the pinned time.
const sampleTrades = `{"symbol":"GIN","quantity":35,"indicator":"SELL","price":"1.00","time":"2026-10-14T10:00:00Z"}
{"symbol":"POP","quantity":10,"indicator":"BUY","price":"2.50","time":"2026-10-14T10:00:00Z"}
{"symbol":"POP","quantity":140,"indicator":"BUY","price":"2.10","time":"2026-10-14T10:00:00Z"}
{"symbol":"TEA","quantity":20,"indicator":"SELL","price":"1.50","time":"2026-10-14T09:30:00Z"}
{"symbol":"TEA","quantity":5,"indicator":"SELL","price":"1.20","time":"2026-10-14T10:00:00Z"}
`

// setGlobal sets a global variable for the duration of the test.
func setGlobal[T any](t *testing.T, p *T, v T) {
	t.Helper()
	old := *p
	*p = v
	t.Cleanup(func() { *p = old })
}

// writeFile writes content in a temporary file and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// setup points the application at a trades file holding trades, pins the clock and
// disables terminal rendering.
func setup(t *testing.T, trades string) {
	t.Helper()
	setGlobal(t, tradesFile, writeFile(t, "trades.jsonl", trades))
	setGlobal(t, stocksFile, "")
	setGlobal(t, configFile, "")
	setGlobal(t, rawMarkdown, true)
	setGlobal(t, &envFile, filepath.Join(t.TempDir(), ".env"))
	t.Setenv(EnvTestingNow, "2026-10-14 10:00:00")
}

// run executes a command with args and returns what it printed.
func run(t *testing.T, c subcommands.Command, args ...string) (string, subcommands.ExitStatus) {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("failed to parse %v: %v", args, err)
	}
	var buf bytes.Buffer
	setGlobal[io.Writer](t, &stdout, &buf)
	status := c.Execute(context.Background(), f)
	return buf.String(), status
}
