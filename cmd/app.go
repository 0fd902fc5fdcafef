// Package cmd implements the CLI application to normalize brokerage
// position exports.
package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/positions"
	"github.com/etnz/positions/thinkorswim"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&importTosCmd{}, "import")
	c.Register(&importTastyCmd{}, "import")

	c.Register(&checkCmd{}, "validate")

	c.Register(&decodeCmd{}, "symbols")
	c.Register(&encodeCmd{}, "symbols")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var multipliersFile = flag.String("multipliers", "", "Path to a JSON file overriding the futures multiplier table")

// Codec returns the symbol codec, over the default lookup tables or the
// multiplier table given on the command line.
func Codec() (thinkorswim.Codec, error) {
	c := thinkorswim.NewCodec()
	if *multipliersFile == "" {
		return c, nil
	}
	data, err := os.ReadFile(*multipliersFile)
	if err != nil {
		return c, fmt.Errorf("cannot read multipliers file: %w", err)
	}
	var m positions.Multipliers
	if err := json.Unmarshal(data, &m); err != nil {
		return c, fmt.Errorf("cannot parse multipliers file %q: %w", *multipliersFile, err)
	}
	c.Multipliers = m
	return c, nil
}

// writePositions writes normalized positions to the output file, or to
// stdout when the name is empty.
func writePositions(filename string, ps []positions.Position) error {
	w := os.Stdout
	if filename != "" {
		f, err := os.Create(filename)
		if err != nil {
			return fmt.Errorf("cannot create output file %q: %w", filename, err)
		}
		defer f.Close()
		w = f
	}
	return positions.ExportPositions(w, ps)
}
