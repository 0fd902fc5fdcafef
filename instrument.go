package positions

import (
	"fmt"

	"github.com/etnz/positions/date"
)

// Type is the closed classification of instrument kinds. It is derived from
// which optional fields of an Instrument are populated, checked once at
// construction, and never settable directly.
type Type string

const (
	Equity       Type = "Equity"
	Future       Type = "Future"
	EquityOption Type = "EquityOption"
	FutureOption Type = "FutureOption"
)

// PutCall is the single letter side of an option contract.
type PutCall string

const (
	Call PutCall = "C"
	Put  PutCall = "P"
)

// ParsePutCall parses the put/call indicator of a broker export. Brokers
// spell the full word, the canonical model keeps the single letter.
func ParsePutCall(s string) (PutCall, error) {
	switch s {
	case "CALL":
		return Call, nil
	case "PUT":
		return Put, nil
	}
	return "", &MalformedSymbolError{Symbol: s, Reason: `put/call indicator must be "CALL" or "PUT"`}
}

// Instrument is the canonical representation of a tradable instrument,
// normalized from a vendor-specific symbol string. It is an immutable value:
// two instruments with identical fields are interchangeable.
//
// The populated optional fields determine the instrument type:
//   - Equity: underlying only, multiplier 1.
//   - Future: underlying only, multiplier from the contract specification.
//   - EquityOption: expiration, strike and put/call set.
//   - FutureOption: expcode, strike and put/call set; the expiration date
//     stays unset because broker exports do not carry the settlement date
//     of an option on a future, only its expiration code.
type Instrument struct {
	typ        Type
	underlying string
	expiration date.Date // zero except for equity options
	expcode    string    // empty except for options on futures
	strike     Quantity  // zero except for both option kinds
	putcall    PutCall   // empty except for both option kinds
	multiplier int
}

// NewEquity returns the instrument for a plain stock position.
func NewEquity(underlying string) (Instrument, error) {
	if underlying == "" {
		return Instrument{}, &MalformedSymbolError{Symbol: underlying, Reason: "empty underlying"}
	}
	return Instrument{typ: Equity, underlying: underlying, multiplier: 1}, nil
}

// NewFuture returns the instrument for a futures contract. The multiplier
// comes from the contract specification of the future's root symbol.
func NewFuture(underlying string, multiplier int) (Instrument, error) {
	if underlying == "" {
		return Instrument{}, &MalformedSymbolError{Symbol: underlying, Reason: "empty underlying"}
	}
	if multiplier <= 0 {
		return Instrument{}, fmt.Errorf("invalid multiplier %d for future %q", multiplier, underlying)
	}
	return Instrument{typ: Future, underlying: underlying, multiplier: multiplier}, nil
}

// NewEquityOption returns the instrument for an option on a stock. The
// multiplier of every equity option is the standard contract size.
func NewEquityOption(underlying string, expiration date.Date, putcall PutCall, strike Quantity) (Instrument, error) {
	if underlying == "" {
		return Instrument{}, &MalformedSymbolError{Symbol: underlying, Reason: "empty underlying"}
	}
	if expiration.IsZero() {
		return Instrument{}, &MalformedSymbolError{Symbol: underlying, Reason: "equity option without expiration"}
	}
	if err := checkOption(underlying, putcall, strike); err != nil {
		return Instrument{}, err
	}
	return Instrument{
		typ:        EquityOption,
		underlying: underlying,
		expiration: expiration,
		putcall:    putcall,
		strike:     strike,
		multiplier: OptionContractSize,
	}, nil
}

// NewFutureOption returns the instrument for an option on a future. The
// expiration code is kept verbatim; no settlement date is derived from it.
func NewFutureOption(underlying, expcode string, putcall PutCall, strike Quantity, multiplier int) (Instrument, error) {
	if underlying == "" {
		return Instrument{}, &MalformedSymbolError{Symbol: underlying, Reason: "empty underlying"}
	}
	if expcode == "" {
		return Instrument{}, &MalformedSymbolError{Symbol: underlying, Reason: "future option without expiration code"}
	}
	if multiplier <= 0 {
		return Instrument{}, fmt.Errorf("invalid multiplier %d for future option %q", multiplier, underlying)
	}
	if err := checkOption(underlying, putcall, strike); err != nil {
		return Instrument{}, err
	}
	return Instrument{
		typ:        FutureOption,
		underlying: underlying,
		expcode:    expcode,
		putcall:    putcall,
		strike:     strike,
		multiplier: multiplier,
	}, nil
}

// checkOption enforces the invariants shared by both option kinds: strike
// and put/call must be populated together and be well formed.
func checkOption(underlying string, putcall PutCall, strike Quantity) error {
	if putcall != Call && putcall != Put {
		return &MalformedSymbolError{Symbol: underlying, Reason: fmt.Sprintf("invalid put/call %q", putcall)}
	}
	if !strike.IsPositive() {
		return &MalformedSymbolError{Symbol: underlying, Reason: fmt.Sprintf("invalid strike %q", strike)}
	}
	return nil
}

// Type returns the instrument classification.
func (i Instrument) Type() Type { return i.typ }

// Underlying returns the root ticker stripped of broker decoration.
func (i Instrument) Underlying() string { return i.underlying }

// Expiration returns the expiration date and whether one is known. Options
// on futures never have one: their settlement date is implicit in the
// expiration code and deliberately not inferred.
func (i Instrument) Expiration() (date.Date, bool) { return i.expiration, !i.expiration.IsZero() }

// ExpCode returns the broker-native expiration code of an option on a
// future, empty for every other kind.
func (i Instrument) ExpCode() string { return i.expcode }

// Strike returns the option strike, zero for non-options.
func (i Instrument) Strike() Quantity { return i.strike }

// PutCall returns the option side, empty for non-options.
func (i Instrument) PutCall() PutCall { return i.putcall }

// Multiplier returns the contract multiplier converting one contract or
// share unit into notional exposure.
func (i Instrument) Multiplier() int { return i.multiplier }

// Equal reports whether both instruments have the same field values.
// Strikes are compared by decimal value, so 150 and 150.0 are equal.
func (i Instrument) Equal(o Instrument) bool {
	return i.typ == o.typ &&
		i.underlying == o.underlying &&
		i.expiration == o.expiration &&
		i.expcode == o.expcode &&
		i.strike.Equal(o.strike) &&
		i.putcall == o.putcall &&
		i.multiplier == o.multiplier
}

// String returns a compact human readable representation, for error
// messages and logs. It is not the broker symbol; vendor packages own that
// encoding.
func (i Instrument) String() string {
	switch i.typ {
	case EquityOption:
		return fmt.Sprintf("%s %s %s%s x%d", i.underlying, i.expiration, i.putcall, i.strike, i.multiplier)
	case FutureOption:
		return fmt.Sprintf("%s %s %s%s x%d", i.underlying, i.expcode, i.putcall, i.strike, i.multiplier)
	default:
		return fmt.Sprintf("%s x%d", i.underlying, i.multiplier)
	}
}
