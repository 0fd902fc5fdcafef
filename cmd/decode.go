package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/positions"
	"github.com/etnz/positions/thinkorswim"
	"github.com/google/subcommands"
)

type decodeCmd struct {
	instype string
	exp     string
	putcall string
	strike  string
}

func (*decodeCmd) Name() string { return "decode" }
func (*decodeCmd) Synopsis() string {
	return "decodes a broker symbol into the canonical instrument representation"
}
func (*decodeCmd) Usage() string {
	return `posn decode [-t <instype>] [-e <exp>] [-p CALL|PUT] [-s <strike>] <symbol>

  Decodes one broker symbol, with the decode context a position row would
  carry, and prints the canonical instrument.

Usage Examples:
$ posn decode -t Equity "CHPT 100 (All Hands)"
$ posn decode -t "Equity Option" -e "21 MAY 21" -p CALL -s 150 SBUX
$ posn decode -t "Future" "/CLK21 1/1000 MAY 21"

`
}

func (p *decodeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.instype, "t", "Equity", "Instrument type of the source row (Equity, Future, Equity Option, Future Option).")
	f.StringVar(&p.exp, "e", "", "Expiration field of the source row, option rows only.")
	f.StringVar(&p.putcall, "p", "", "Put/call indicator of the source row (CALL or PUT), option rows only.")
	f.StringVar(&p.strike, "s", "", "Strike of the source row, option rows only.")
}

func (p *decodeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expecting exactly one symbol")
		return subcommands.ExitUsageError
	}

	codec, err := Codec()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	inst, err := codec.Decode(f.Arg(0), thinkorswim.Context{
		Type:       p.instype,
		Expiration: p.exp,
		PutCall:    p.putcall,
		Strike:     p.strike,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	symbol, err := codec.Encode(inst)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}

	printMarkdown(instrumentMarkdown(symbol, inst))
	return subcommands.ExitSuccess
}

// instrumentMarkdown renders the canonical view of a decoded instrument.
func instrumentMarkdown(symbol string, inst positions.Instrument) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", symbol)
	fmt.Fprintf(&b, "* type: %s\n", inst.Type())
	fmt.Fprintf(&b, "* underlying: %s\n", inst.Underlying())
	if expiration, ok := inst.Expiration(); ok {
		fmt.Fprintf(&b, "* expiration: %s\n", expiration)
	}
	if inst.ExpCode() != "" {
		fmt.Fprintf(&b, "* expiration code: %s\n", inst.ExpCode())
	}
	if inst.PutCall() != "" {
		fmt.Fprintf(&b, "* put/call: %s\n", inst.PutCall())
		fmt.Fprintf(&b, "* strike: %s\n", inst.Strike())
	}
	fmt.Fprintf(&b, "* multiplier: %d\n", inst.Multiplier())
	return b.String()
}
