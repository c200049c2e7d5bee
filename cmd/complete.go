package cmd

import (
	"flag"

	"github.com/etnz/gbce"
	"github.com/etnz/gbce/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the commands and flags of c for shell completion.
func Completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: make(map[string]complete.Predictor),
	}
	c.VisitAll(func(f *flag.Flag) {
		root.Flags[f.Name] = predictFlag(f.Name)
	})

	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		sub := &complete.Command{Flags: make(map[string]complete.Predictor)}
		fs.VisitAll(func(f *flag.Flag) {
			sub.Flags[f.Name] = predictFlag(f.Name)
		})
		switch cmd.Name() {
		case "dividend", "pe", "vwsp":
			sub.Args = predictSymbols()
		case "topic":
			if topics, err := docs.GetAllTopics(); err == nil {
				sub.Args = predict.Set(topics)
			}
		}
		root.Sub[cmd.Name()] = sub
	})
	return root
}

// predictFlag returns the predictor of a flag value.
func predictFlag(name string) complete.Predictor {
	switch name {
	case "config":
		return predict.Files("*.yaml")
	case "stocks", "trades":
		return predict.Files("*.jsonl")
	case "i":
		return predict.Set{gbce.Buy.String(), gbce.Sell.String()}
	case "s":
		return predictSymbols()
	default:
		return predict.Nothing
	}
}

// predictSymbols predicts the sample stock symbols.
func predictSymbols() complete.Predictor {
	var symbols predict.Set
	for _, s := range gbce.DefaultStocks().All() {
		symbols = append(symbols, s.Symbol())
	}
	return symbols
}
