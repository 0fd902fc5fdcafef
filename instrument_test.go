package positions

import (
	"testing"
	"time"

	"github.com/etnz/positions/date"
)

func TestNewEquity(t *testing.T) {
	inst, err := NewEquity("SBUX")
	if err != nil {
		t.Fatalf("NewEquity() returned error: %v", err)
	}
	if got, want := inst.Type(), Equity; got != want {
		t.Errorf("Type() = %q, want %q", got, want)
	}
	if got, want := inst.Multiplier(), 1; got != want {
		t.Errorf("Multiplier() = %d, want %d", got, want)
	}

	if _, err := NewEquity(""); err == nil {
		t.Error("NewEquity(\"\") should have failed")
	}
}

func TestNewEquityOption(t *testing.T) {
	expiration := date.New(2021, time.May, 21)

	inst, err := NewEquityOption("SBUX", expiration, Call, Q(150))
	if err != nil {
		t.Fatalf("NewEquityOption() returned error: %v", err)
	}
	if got, want := inst.Type(), EquityOption; got != want {
		t.Errorf("Type() = %q, want %q", got, want)
	}
	if got, want := inst.Multiplier(), OptionContractSize; got != want {
		t.Errorf("Multiplier() = %d, want %d", got, want)
	}

	// Inconsistent field combinations must not construct.
	if _, err := NewEquityOption("SBUX", expiration, "", Q(150)); err == nil {
		t.Error("NewEquityOption() without put/call should have failed")
	}
	if _, err := NewEquityOption("SBUX", expiration, Call, Q(0)); err == nil {
		t.Error("NewEquityOption() without strike should have failed")
	}
	if _, err := NewEquityOption("SBUX", date.Date{}, Call, Q(150)); err == nil {
		t.Error("NewEquityOption() without expiration should have failed")
	}
}

func TestNewFutureOption(t *testing.T) {
	inst, err := NewFutureOption("/CLK21", "/CLK21", Put, Q(48.5), 1000)
	if err != nil {
		t.Fatalf("NewFutureOption() returned error: %v", err)
	}
	if got, want := inst.Type(), FutureOption; got != want {
		t.Errorf("Type() = %q, want %q", got, want)
	}
	if expiration, ok := inst.Expiration(); ok {
		t.Errorf("Expiration() = %v, want none", expiration)
	}

	if _, err := NewFutureOption("/CLK21", "", Put, Q(48.5), 1000); err == nil {
		t.Error("NewFutureOption() without expiration code should have failed")
	}
	if _, err := NewFutureOption("/CLK21", "/CLK21", Put, Q(48.5), 0); err == nil {
		t.Error("NewFutureOption() without multiplier should have failed")
	}
}

func TestInstrumentEqual(t *testing.T) {
	expiration := date.New(2021, time.May, 21)

	a, err := NewEquityOption("SBUX", expiration, Call, Q(150))
	if err != nil {
		t.Fatalf("NewEquityOption() returned error: %v", err)
	}
	// Same value through a different decimal representation.
	b, err := NewEquityOption("SBUX", expiration, Call, Q(150.0))
	if err != nil {
		t.Fatalf("NewEquityOption() returned error: %v", err)
	}
	if !a.Equal(b) {
		t.Errorf("Equal() = false for identical instruments %v and %v", a, b)
	}

	c, err := NewEquityOption("SBUX", expiration, Put, Q(150))
	if err != nil {
		t.Fatalf("NewEquityOption() returned error: %v", err)
	}
	if a.Equal(c) {
		t.Errorf("Equal() = true for %v and %v", a, c)
	}
}

func TestParsePutCall(t *testing.T) {
	tests := []struct {
		in      string
		want    PutCall
		wantErr bool
	}{
		{"CALL", Call, false},
		{"PUT", Put, false},
		{"call", "", true},
		{"C", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePutCall(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsePutCall(%q) should have failed", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePutCall(%q) returned error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePutCall(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenames(t *testing.T) {
	r := DefaultRenames()
	if got, want := r.Apply("CHPT"), "SBE"; got != want {
		t.Errorf("Apply(\"CHPT\") = %q, want %q", got, want)
	}
	if got, want := r.Apply("SBUX"), "SBUX"; got != want {
		t.Errorf("Apply(\"SBUX\") = %q, want %q", got, want)
	}
	if r.Revision() == "" {
		t.Error("Revision() is empty, the rename table must be versioned")
	}
}

func TestMultipliers(t *testing.T) {
	m := DefaultMultipliers()
	if got, err := m.MultiplierFor("/CL"); err != nil || got != 1000 {
		t.Errorf("MultiplierFor(\"/CL\") = %d, %v, want 1000", got, err)
	}
	if _, err := m.MultiplierFor("/NOPE"); err == nil {
		t.Error("MultiplierFor(\"/NOPE\") should have failed")
	}
}
