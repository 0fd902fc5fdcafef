// Package thinkorswim translates thinkorswim position exports into the
// canonical positions model: it decodes the platform's symbol grammar into
// [positions.Instrument] values, encodes instruments back into
// platform-style symbol strings, and imports Position Statement CSV files.
package thinkorswim

import (
	"fmt"
	"strings"

	"github.com/etnz/positions"
	"github.com/etnz/positions/date"
)

// instrument type discriminators as they appear in the export rows.
const (
	typeEquity       = "Equity"
	typeFuture       = "Future"
	typeEquityOption = "Equity Option"
	typeFutureOption = "Future Option"
)

// futureSigil prefixes every futures symbol and expiration code.
const futureSigil = "/"

// monthCodeLen is the length of the month+year decoration the platform
// appends to a futures root symbol, e.g. "K21" in "/CLK21".
const monthCodeLen = 3

// Context carries the decode context of one export row: the instrument
// type discriminator is known from the row, and option rows carry their
// expiration, side and strike in dedicated columns rather than in the
// symbol string itself.
type Context struct {
	Type       string // "Equity", "Future", "Equity Option" or "Future Option"
	Expiration string // e.g. "21 MAY 21" for equity options, "/CLK21" for options on futures
	PutCall    string // "CALL" or "PUT", option rows only
	Strike     string // exact decimal text, option rows only
}

// Codec translates between the platform symbol grammar and the canonical
// instrument model. Both lookup tables are read-only, so a Codec is safe
// for concurrent use.
type Codec struct {
	Multipliers positions.MultiplierLookup
	Renames     positions.Renames
}

// NewCodec returns a codec over the process-wide multiplier and rename
// tables. Tests and importers with their own contract specifications build
// a Codec with their own lookups instead.
func NewCodec() Codec {
	return Codec{
		Multipliers: positions.DefaultMultipliers(),
		Renames:     positions.DefaultRenames(),
	}
}

// Decode normalizes the raw symbol of one export row into a canonical
// instrument.
//
// The platform decorates symbols inconsistently: a future position reads
// like "/CLK21 1/1000 MAY 21", repeating the contract size and month that
// are already implied by the root symbol. Decode keeps the first token,
// applies the symbol rename table, and dispatches on the row's instrument
// type.
func (c Codec) Decode(raw string, ctx Context) (positions.Instrument, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return positions.Instrument{}, &positions.MalformedSymbolError{Symbol: raw, Reason: "empty symbol"}
	}
	underlying := c.Renames.Apply(fields[0])

	switch ctx.Type {
	case typeEquity:
		return positions.NewEquity(underlying)

	case typeFuture:
		mult, err := c.futureMultiplier(underlying)
		if err != nil {
			return positions.Instrument{}, err
		}
		return positions.NewFuture(underlying, mult)

	case typeEquityOption:
		expiration, err := date.ParseExpiration(ctx.Expiration)
		if err != nil {
			return positions.Instrument{}, &positions.MalformedSymbolError{Symbol: raw, Reason: "unparsable expiration", Err: err}
		}
		putcall, err := positions.ParsePutCall(ctx.PutCall)
		if err != nil {
			return positions.Instrument{}, err
		}
		strike, err := positions.ParseQuantity(ctx.Strike)
		if err != nil {
			return positions.Instrument{}, &positions.MalformedSymbolError{Symbol: raw, Reason: "unparsable strike", Err: err}
		}
		return positions.NewEquityOption(underlying, expiration, putcall, strike)

	case typeFutureOption:
		// The export does not carry the settlement date of an option on a
		// future, only its expiration code. Keep the code verbatim and
		// leave the expiration date unset rather than guessing one.
		if !strings.HasPrefix(ctx.Expiration, futureSigil) {
			return positions.Instrument{}, &positions.MalformedSymbolError{
				Symbol: raw,
				Reason: fmt.Sprintf("future option expiration %q must start with %q", ctx.Expiration, futureSigil),
			}
		}
		putcall, err := positions.ParsePutCall(ctx.PutCall)
		if err != nil {
			return positions.Instrument{}, err
		}
		strike, err := positions.ParseQuantity(ctx.Strike)
		if err != nil {
			return positions.Instrument{}, &positions.MalformedSymbolError{Symbol: raw, Reason: "unparsable strike", Err: err}
		}
		mult, err := c.futureMultiplier(underlying)
		if err != nil {
			return positions.Instrument{}, err
		}
		return positions.NewFutureOption(underlying, ctx.Expiration, putcall, strike, mult)
	}

	return positions.Instrument{}, &positions.UnrecognizedInstrumentTypeError{Type: ctx.Type}
}

// futureMultiplier strips the month+year decoration from a decorated
// futures symbol and resolves the contract multiplier of its root.
func (c Codec) futureMultiplier(underlying string) (int, error) {
	if len(underlying) <= monthCodeLen {
		return 0, &positions.MalformedSymbolError{
			Symbol: underlying,
			Reason: fmt.Sprintf("too short for a decorated futures symbol, want root plus %d-char month code", monthCodeLen),
		}
	}
	root := underlying[:len(underlying)-monthCodeLen]
	return c.Multipliers.MultiplierFor(root)
}

// Encode reconstructs the platform-style symbol string of a canonical
// instrument.
//
// Decode then Encode reproduces the original symbol for every instrument
// kind, with one documented asymmetry: an option on a future is encoded
// from its verbatim expiration code, never from an expiration date, since
// no date was captured at decode time.
func (c Codec) Encode(inst positions.Instrument) (string, error) {
	switch inst.Type() {
	case positions.FutureOption:
		return fmt.Sprintf("%s_%s%s%s", inst.Underlying(), inst.ExpCode(), inst.PutCall(), inst.Strike()), nil

	case positions.Future:
		return inst.Underlying(), nil

	case positions.EquityOption:
		expiration, _ := inst.Expiration()
		return fmt.Sprintf("%s_%s%s%s", inst.Underlying(), expiration.Format(date.OptionFormat), inst.PutCall(), inst.Strike()), nil

	case positions.Equity:
		return inst.Underlying(), nil
	}

	return "", &positions.InvalidInstrumentTypeError{Type: inst.Type()}
}
