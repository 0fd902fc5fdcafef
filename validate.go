package positions

import (
	"fmt"
	"slices"
)

// ValidateFieldNames checks that the leading field names of a positions
// table header are exactly [Fields], in that order. Extra trailing fields
// are permitted, reordering or omission is not.
func ValidateFieldNames(header []string) error {
	if len(header) < len(Fields) {
		return &ValidationError{Reason: fmt.Sprintf("header %v is missing fields, want %v", header, Fields)}
	}
	if !slices.Equal(header[:len(Fields)], Fields) {
		return &ValidationError{Reason: fmt.Sprintf("header %v does not start with %v", header, Fields)}
	}
	return nil
}

// ValidatePositionRecord checks one normalized position record for
// conformance: presence, type and nullability of each required field.
// The first violation is returned as a *ValidationError naming the field;
// no repair is attempted. The caller decides whether a failure discards
// the row or aborts the whole import.
func ValidatePositionRecord(r Record) error {
	if err := requireText(r, "account"); err != nil {
		return err
	}
	if v, ok := r.Get("group"); ok {
		if _, isText := v.(string); !isText {
			return &ValidationError{Field: "group", Reason: fmt.Sprintf("want text, got %T", v)}
		}
	}
	if err := requireText(r, "symbol"); err != nil {
		return err
	}
	// The quantity may be absent (e.g. an expired position) but can never
	// be a floating approximation.
	if v, ok := r.Get("quantity"); ok {
		if _, isExact := v.(Quantity); !isExact {
			return &ValidationError{Field: "quantity", Reason: fmt.Sprintf("want an exact decimal, got %T", v)}
		}
	}
	for _, field := range []string{"price", "mark", "cost", "net_liq"} {
		v, ok := r.Get(field)
		if !ok {
			return &ValidationError{Field: field, Reason: "missing"}
		}
		if _, isExact := v.(Money); !isExact {
			return &ValidationError{Field: field, Reason: fmt.Sprintf("want an exact decimal amount, got %T", v)}
		}
	}
	return nil
}

// requireText checks that a field is present, is text, and is non-empty.
func requireText(r Record, field string) error {
	v, ok := r.Get(field)
	if !ok {
		return &ValidationError{Field: field, Reason: "missing"}
	}
	s, isText := v.(string)
	if !isText {
		return &ValidationError{Field: field, Reason: fmt.Sprintf("want text, got %T", v)}
	}
	if s == "" {
		return &ValidationError{Field: field, Reason: "empty"}
	}
	return nil
}
