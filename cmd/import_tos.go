package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type importTosCmd struct {
	outputFile string
}

func (*importTosCmd) Name() string { return "import-tos" }
func (*importTosCmd) Synopsis() string {
	return "converts a thinkorswim position export CSV to normalized JSONL"
}
func (*importTosCmd) Usage() string {
	return `posn import-tos [-o <output.jsonl>] <export.csv>

  Reads a thinkorswim position export, decodes every symbol into the
  canonical instrument representation, validates each record, and writes
  the normalized positions as JSONL. The first invalid row fails the
  whole import.

Usage Examples:
# Writes the normalized positions to stdout.
$ posn import-tos statement.csv

`
}

func (p *importTosCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.outputFile, "o", "", "Output file. Writes to stdout by default.")
}

func (p *importTosCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expecting exactly one export file")
		return subcommands.ExitUsageError
	}

	codec, err := Codec()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening export file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	ps, err := codec.ImportPositions(file)
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
