package tastytrade

import (
	"strings"
	"testing"

	"github.com/etnz/positions"
)

const samplePayload = `{
  "data": {
    "items": [
      {
        "account-number": "5WT0001",
        "symbol": "SBUX",
        "instrument-type": "Equity",
        "quantity": "100",
        "quantity-direction": "Long",
        "average-open-price": "98.40",
        "close-price": "101.25"
      },
      {
        "account-number": "5WT0001",
        "symbol": "SBUX_052121C150",
        "instrument-type": "Equity Option",
        "quantity": "1",
        "quantity-direction": "Short",
        "average-open-price": "3.10",
        "close-price": "2.95"
      }
    ]
  }
}`

func TestImportPositions(t *testing.T) {
	ps, err := ImportPositions(strings.NewReader(samplePayload))
	if err != nil {
		t.Fatalf("ImportPositions() returned error: %v", err)
	}
	if got, want := len(ps), 2; got != want {
		t.Fatalf("ImportPositions() returned %d positions, want %d", got, want)
	}

	p := ps[0]
	if got, want := p.Account, "5WT0001"; got != want {
		t.Errorf("Account = %q, want %q", got, want)
	}
	if got, want := p.Symbol, "SBUX"; got != want {
		t.Errorf("Symbol = %q, want %q", got, want)
	}
	if p.Quantity == nil || !p.Quantity.Equal(positions.Q(100)) {
		t.Errorf("Quantity = %v, want 100", p.Quantity)
	}
	if !p.NetLiq.Equal(positions.M(10125, "USD")) {
		t.Errorf("NetLiq = %v, want 10125 USD", p.NetLiq)
	}

	// Short positions carry a negative quantity.
	short := ps[1]
	if short.Quantity == nil || !short.Quantity.Equal(positions.Q(-1)) {
		t.Errorf("Quantity = %v, want -1", short.Quantity)
	}
	if !short.Cost.Equal(positions.M(3.10, "USD")) {
		t.Errorf("Cost = %v, want 3.10 USD", short.Cost)
	}
}

func TestImportPositionsRejectsFloatQuantity(t *testing.T) {
	payload := `{"data":{"items":[{
	  "account-number": "5WT0001",
	  "symbol": "SBUX",
	  "quantity": 100.0,
	  "quantity-direction": "Long",
	  "average-open-price": "98.40",
	  "close-price": "101.25"
	}]}}`

	// A JSON number is a floating approximation, not an exact decimal.
	if _, err := ImportPositions(strings.NewReader(payload)); err == nil {
		t.Fatal("ImportPositions() should have failed on a non-exact quantity")
	}
}
