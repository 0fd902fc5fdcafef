package positions

import "fmt"

// This file defines the error kinds surfaced by the codec and the validators.
// They are all synchronous, caller-facing failures: malformed broker data is
// an expected condition, so none of them are retried or defaulted internally.
// The import pipeline decides whether to abort the whole file or skip the row.

// UnknownSymbolError reports a futures contract multiplier lookup miss.
// A wrong multiplier silently corrupts every downstream P&L computation,
// so a miss is a hard failure, never a default.
type UnknownSymbolError struct {
	Symbol string
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown future root symbol %q: no multiplier defined", e.Symbol)
}

// MalformedSymbolError reports a symbol, expiration, strike or put/call
// field that does not follow the expected grammar.
type MalformedSymbolError struct {
	Symbol string
	Reason string
	Err    error // optional underlying parse error
}

func (e *MalformedSymbolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed symbol %q: %s: %v", e.Symbol, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed symbol %q: %s", e.Symbol, e.Reason)
}

func (e *MalformedSymbolError) Unwrap() error { return e.Err }

// UnrecognizedInstrumentTypeError reports a decode request carrying an
// instrument type discriminator outside the four supported kinds.
type UnrecognizedInstrumentTypeError struct {
	Type string
}

func (e *UnrecognizedInstrumentTypeError) Error() string {
	return fmt.Sprintf("unrecognized instrument type %q", e.Type)
}

// InvalidInstrumentTypeError reports an encode request on an instrument
// whose type is not one of the four supported kinds.
type InvalidInstrumentTypeError struct {
	Type Type
}

func (e *InvalidInstrumentTypeError) Error() string {
	return fmt.Sprintf("invalid instrument type %q", e.Type)
}

// ValidationError reports a position record or table header that does not
// conform to the expected schema. Check your importer.
type ValidationError struct {
	Field  string // offending field, empty for table-level failures
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid positions table: %s", e.Reason)
	}
	return fmt.Sprintf("invalid position field %q: %s", e.Field, e.Reason)
}
