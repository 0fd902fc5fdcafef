package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/positions/tastytrade"
	"github.com/google/subcommands"
)

type importTastyCmd struct {
	outputFile string
}

func (*importTastyCmd) Name() string { return "import-tasty" }
func (*importTastyCmd) Synopsis() string {
	return "converts a tastytrade positions JSON payload to normalized JSONL"
}
func (*importTastyCmd) Usage() string {
	return `posn import-tasty [-o <output.jsonl>] <positions.json>

  Reads a tastytrade positions payload (the JSON body of the positions
  endpoint), validates each record, and writes the normalized positions
  as JSONL.

`
}

func (p *importTastyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.outputFile, "o", "", "Output file. Writes to stdout by default.")
}

func (p *importTastyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expecting exactly one payload file")
		return subcommands.ExitUsageError
	}

	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening payload file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	ps, err := tastytrade.ImportPositions(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}

	if err := writePositions(p.outputFile, ps); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "✅ Imported %d positions from %q.\n", len(ps), f.Arg(0))
	return subcommands.ExitSuccess
}
