package thinkorswim

import (
	"strings"
	"testing"

	"github.com/etnz/positions"
)

const sampleExport = `Account,Group,Instype,Symbol,Exp,Type,Strike,Qty,Price,Mark,Cost,Net Liq
x1234,Core,Equity,CHPT 100 (All Hands),,,,100,"$25.50","$27.10","($2,550.00)","$2,710.00"
x1234,Energy,Future,/CLK21 1/1000 MAY 21,,,,2,$61.20,$62.05,"($122,400.00)","$124,100.00"
x1234,Income,Equity Option,SBUX,21 MAY 21,CALL,150,-1,$3.10,$2.95,$310.00,($295.00)
separator
x1234,Energy,Future Option,/CLK21 1/1000 MAY 21,/CLK21,PUT,48.5,1,$1.05,$0.95,"($1,050.00)",$950.00
`

func TestImportPositions(t *testing.T) {
	c := testCodec()

	ps, err := c.ImportPositions(strings.NewReader(sampleExport))
	if err != nil {
		t.Fatalf("ImportPositions() returned error: %v", err)
	}
	if got, want := len(ps), 4; got != want {
		t.Fatalf("ImportPositions() returned %d positions, want %d", got, want)
	}

	wantSymbols := []string{"SBE", "/CLK21", "SBUX_052121C150", "/CLK21_/CLK21P48.5"}
	for i, want := range wantSymbols {
		if got := ps[i].Symbol; got != want {
			t.Errorf("position %d symbol = %q, want %q", i, got, want)
		}
	}

	// Parenthesized dollar amounts are negative.
	p := ps[0]
	if got, want := p.Account, "x1234"; got != want {
		t.Errorf("Account = %q, want %q", got, want)
	}
	if !p.Cost.Equal(positions.M(-2550, "USD")) {
		t.Errorf("Cost = %v, want -2550 USD", p.Cost)
	}
	if !p.NetLiq.Equal(positions.M(2710, "USD")) {
		t.Errorf("NetLiq = %v, want 2710 USD", p.NetLiq)
	}
	if p.Quantity == nil || !p.Quantity.Equal(positions.Q(100)) {
		t.Errorf("Quantity = %v, want 100", p.Quantity)
	}
}

func TestImportPositionsMissingColumn(t *testing.T) {
	c := testCodec()

	_, err := c.ImportPositions(strings.NewReader("Account,Symbol\nx1,SBUX\n"))
	if err == nil {
		t.Fatal("ImportPositions() should have failed on a truncated header")
	}
}

func TestImportPositionsUnknownRootFailsWholeFile(t *testing.T) {
	c := testCodec()

	export := `Account,Group,Instype,Symbol,Exp,Type,Strike,Qty,Price,Mark,Cost,Net Liq
x1234,,Future,/NGK21 1/10000 MAY 21,,,,1,$2.95,$2.91,"($29,500.00)","$29,100.00"
`
	// /NG is not in the fixture table: the import must fail, not default.
	_, err := c.ImportPositions(strings.NewReader(export))
	if err == nil {
		t.Fatal("ImportPositions() should have failed on an unknown future root")
	}
}
