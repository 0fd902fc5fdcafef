package positions

import (
	"errors"
	"strings"
	"testing"
)

// validRow returns a conforming position row the tests can then degrade.
func validRow() *Row {
	q := Q(100)
	return NewRow(Fields...).
		Set("account", "x1234").
		Set("group", "Core").
		Set("symbol", "SBUX").
		Set("quantity", q).
		Set("price", M(98.40, "USD")).
		Set("mark", M(101.25, "USD")).
		Set("cost", M(-9840, "USD")).
		Set("net_liq", M(10125, "USD"))
}

func TestValidateFieldNames(t *testing.T) {
	if err := ValidateFieldNames(Fields); err != nil {
		t.Errorf("ValidateFieldNames(Fields) returned error: %v", err)
	}

	// Extra trailing fields are permitted.
	extended := append(append([]string{}, Fields...), "pnl_open", "pnl_day")
	if err := ValidateFieldNames(extended); err != nil {
		t.Errorf("ValidateFieldNames() with trailing fields returned error: %v", err)
	}

	// Reordering is not.
	swapped := append([]string{}, Fields...)
	swapped[0], swapped[1] = swapped[1], swapped[0]
	var verr *ValidationError
	if err := ValidateFieldNames(swapped); !errors.As(err, &verr) {
		t.Errorf("ValidateFieldNames() with reordered fields = %v, want *ValidationError", err)
	}

	// Omission is not.
	if err := ValidateFieldNames(Fields[:7]); !errors.As(err, &verr) {
		t.Errorf("ValidateFieldNames() with missing field = %v, want *ValidationError", err)
	}
}

func TestValidatePositionRecord(t *testing.T) {
	if err := ValidatePositionRecord(validRow()); err != nil {
		t.Fatalf("ValidatePositionRecord() returned error on a valid row: %v", err)
	}
}

func TestValidatePositionRecordViolations(t *testing.T) {
	tests := []struct {
		name      string
		degrade   func(r *Row)
		wantField string
	}{
		{"missing account", func(r *Row) { r.Set("account", nil) }, "account"},
		{"empty account", func(r *Row) { r.Set("account", "") }, "account"},
		{"missing symbol", func(r *Row) { r.Set("symbol", nil) }, "symbol"},
		{"numeric group", func(r *Row) { r.Set("group", 12) }, "group"},
		{"float quantity", func(r *Row) { r.Set("quantity", 100.0) }, "quantity"},
		{"missing price", func(r *Row) { r.Set("price", nil) }, "price"},
		{"float mark", func(r *Row) { r.Set("mark", 101.25) }, "mark"},
		{"text cost", func(r *Row) { r.Set("cost", "-9840") }, "cost"},
		{"missing net_liq", func(r *Row) { r.Set("net_liq", nil) }, "net_liq"},
	}
	for _, tt := range tests {
		r := validRow()
		tt.degrade(r)
		err := ValidatePositionRecord(r)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%s: ValidatePositionRecord() = %v, want *ValidationError", tt.name, err)
			continue
		}
		if verr.Field != tt.wantField {
			t.Errorf("%s: ValidationError.Field = %q, want %q", tt.name, verr.Field, tt.wantField)
		}
	}
}

func TestValidatePositionRecordAllowsAbsentOptionals(t *testing.T) {
	r := validRow()
	r.Set("group", nil)
	r.Set("quantity", nil)
	if err := ValidatePositionRecord(r); err != nil {
		t.Errorf("ValidatePositionRecord() returned error with absent optionals: %v", err)
	}
}

func TestValidationErrorMessageNamesField(t *testing.T) {
	r := validRow()
	r.Set("quantity", 100.0)
	err := ValidatePositionRecord(r)
	if err == nil || !strings.Contains(err.Error(), "quantity") {
		t.Errorf("ValidatePositionRecord() error %q does not name the offending field", err)
	}
}
