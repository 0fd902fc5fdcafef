package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/positions"
	"github.com/google/subcommands"
)

type checkCmd struct{}

func (*checkCmd) Name() string { return "check" }
func (*checkCmd) Synopsis() string {
	return "validates normalized positions files against the schema"
}
func (*checkCmd) Usage() string {
	return `posn check <positions.jsonl>...

  Validates each file of normalized positions: field presence, exact
  decimal amounts, and non-empty account and symbol. Reports the first
  violation of each file.

`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: expecting at least one positions file")
		return subcommands.ExitUsageError
	}

	status := subcommands.ExitSuccess
	for _, filename := range f.Args() {
		file, err := os.Open(filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", filename, err)
			status = subcommands.ExitFailure
			continue
		}
		ps, err := positions.ImportPositions(file)
		file.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error in %q: %v\n", filename, err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Fprintf(os.Stderr, "✅ %q: %d positions conform.\n", filename, len(ps))
	}
	return status
}
