package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/etnz/positions/cmd"
)

func main() {
	// Offer shell completion before normal flag parsing takes over; the
	// call exits when invoked by the shell completion machinery.
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"import-tos":   {Flags: map[string]complete.Predictor{"o": predict.Files("*.jsonl")}},
			"import-tasty": {Flags: map[string]complete.Predictor{"o": predict.Files("*.jsonl")}},
			"check":        {Args: predict.Files("*.jsonl")},
			"decode":       {},
			"encode":       {},
			"topic":        {},
		},
		Flags: map[string]complete.Predictor{
			"multipliers": predict.Files("*.json"),
		},
	}
	completion.Complete("posn")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
