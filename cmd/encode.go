package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/positions"
	"github.com/etnz/positions/date"
	"github.com/google/subcommands"
)

type encodeCmd struct {
	instype string
	exp     string
	expcode string
	putcall string
	strike  string
}

func (*encodeCmd) Name() string { return "encode" }
func (*encodeCmd) Synopsis() string {
	return "re-derives the broker-style symbol of a canonical instrument"
}
func (*encodeCmd) Usage() string {
	return `posn encode -t <instype> [-e <date>] [-c <expcode>] [-p C|P] [-s <strike>] <underlying>

  Builds a canonical instrument from its fields and prints the
  broker-style symbol string, e.g. for display or lookup.

Usage Examples:
$ posn encode -t EquityOption -e 2021-05-21 -p C -s 150 SBUX
$ posn encode -t FutureOption -c /CLK21 -p P -s 48.5 /CLK21

`
}

func (p *encodeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.instype, "t", string(positions.Equity), "Instrument type (Equity, Future, EquityOption, FutureOption).")
	f.StringVar(&p.exp, "e", "", "Expiration date (ISO format), equity options only.")
	f.StringVar(&p.expcode, "c", "", "Expiration code, options on futures only.")
	f.StringVar(&p.putcall, "p", "", "Option side, C or P.")
	f.StringVar(&p.strike, "s", "", "Option strike, exact decimal.")
}

func (p *encodeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expecting exactly one underlying")
		return subcommands.ExitUsageError
	}

	inst, err := p.instrument(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	codec, err := Codec()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	symbol, err := codec.Encode(inst)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println(symbol)
	return subcommands.ExitSuccess
}

// instrument builds the canonical instrument from the command line fields.
func (p *encodeCmd) instrument(underlying string) (positions.Instrument, error) {
	switch positions.Type(p.instype) {
	case positions.Equity:
		return positions.NewEquity(underlying)

	case positions.Future:
		mult, err := p.futureMultiplier(underlying)
		if err != nil {
			return positions.Instrument{}, err
		}
		return positions.NewFuture(underlying, mult)

	case positions.EquityOption:
		expiration, err := date.Parse(p.exp)
		if err != nil {
			return positions.Instrument{}, err
		}
		strike, err := positions.ParseQuantity(p.strike)
		if err != nil {
			return positions.Instrument{}, err
		}
		return positions.NewEquityOption(underlying, expiration, positions.PutCall(p.putcall), strike)

	case positions.FutureOption:
		strike, err := positions.ParseQuantity(p.strike)
		if err != nil {
			return positions.Instrument{}, err
		}
		mult, err := p.futureMultiplier(underlying)
		if err != nil {
			return positions.Instrument{}, err
		}
		return positions.NewFutureOption(underlying, p.expcode, positions.PutCall(p.putcall), strike, mult)
	}
	return positions.Instrument{}, fmt.Errorf("unrecognized instrument type %q", p.instype)
}

// futureMultiplier resolves the contract multiplier from the decorated
// futures symbol given on the command line.
func (p *encodeCmd) futureMultiplier(underlying string) (int, error) {
	codec, err := Codec()
	if err != nil {
		return 0, err
	}
	if len(underlying) <= 3 {
		return 0, fmt.Errorf("%q is too short for a decorated futures symbol", underlying)
	}
	root := strings.TrimSpace(underlying[:len(underlying)-3])
	return codec.Multipliers.MultiplierFor(root)
}
