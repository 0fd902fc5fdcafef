package thinkorswim

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/positions"
)

// columns of a position export, as produced by the platform's CSV download.
// Option rows carry their decode context in the Exp, Type and Strike
// columns; those are empty on equity and future rows.
var importColumns = []string{
	"Account", "Group", "Instype", "Symbol", "Exp", "Type", "Strike",
	"Qty", "Price", "Mark", "Cost", "Net Liq",
}

// ImportPositions reads a position export CSV from 'r' and returns the
// normalized positions, with every symbol decoded to the canonical model
// and re-encoded in canonical form.
//
// The first non-empty row must be the header and contain at least the
// columns of the export format; extra columns are ignored. Section
// separator rows (fewer cells than the header) and rows without a symbol
// are skipped. The first invalid row fails the whole import: a partially
// imported statement is worse than none.
func (c Codec) ImportPositions(r io.Reader) ([]positions.Position, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // the export mixes sections with different widths

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read position export header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, name := range importColumns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("position export header %v is missing column %q", header, name)
		}
	}
	cell := func(row []string, name string) string {
		return strings.TrimSpace(row[index[name]])
	}

	var ps []positions.Position
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("cannot read position export line %d: %w", line, err)
		}
		if len(row) < len(header) {
			continue // section separator
		}
		if cell(row, "Symbol") == "" {
			continue
		}

		p, err := c.importRow(cell, row)
		if err != nil {
			return nil, fmt.Errorf("cannot import position export line %d: %w", line, err)
		}
		if err := positions.ValidatePositionRecord(p); err != nil {
			return nil, fmt.Errorf("invalid position on export line %d: %w", line, err)
		}
		ps = append(ps, p)
	}
	return ps, nil
}

// importRow normalizes one export row into a position.
func (c Codec) importRow(cell func([]string, string) string, row []string) (positions.Position, error) {
	inst, err := c.Decode(cell(row, "Symbol"), Context{
		Type:       cell(row, "Instype"),
		Expiration: cell(row, "Exp"),
		PutCall:    cell(row, "Type"),
		Strike:     cell(row, "Strike"),
	})
	if err != nil {
		return positions.Position{}, err
	}
	symbol, err := c.Encode(inst)
	if err != nil {
		return positions.Position{}, err
	}

	p := positions.Position{
		Account: cell(row, "Account"),
		Group:   cell(row, "Group"),
		Symbol:  symbol,
	}
	if raw := cell(row, "Qty"); raw != "" {
		q, err := positions.ParseQuantity(strings.ReplaceAll(raw, ",", ""))
		if err != nil {
			return positions.Position{}, err
		}
		p.Quantity = &q
	}
	for _, amount := range []struct {
		name string
		dst  *positions.Money
	}{
		{"Price", &p.Price},
		{"Mark", &p.Mark},
		{"Cost", &p.Cost},
		{"Net Liq", &p.NetLiq},
	} {
		m, err := parseMoney(cell(row, amount.name))
		if err != nil {
			return positions.Position{}, fmt.Errorf("column %q: %w", amount.name, err)
		}
		*amount.dst = m
	}
	return p, nil
}

// parseMoney parses a dollar amount as exported by the platform, which
// decorates values with a currency sign, thousands separators, and
// parentheses for negative amounts: "($1,234.50)" is -1234.50.
func parseMoney(s string) (positions.Money, error) {
	t := s
	negative := strings.HasPrefix(t, "(") && strings.HasSuffix(t, ")")
	if negative {
		t = t[1 : len(t)-1]
	}
	t = strings.TrimPrefix(t, "$")
	t = strings.ReplaceAll(t, ",", "")
	m, err := positions.ParseMoney(t, "USD")
	if err != nil {
		return positions.Money{}, err
	}
	if negative {
		m = m.Neg()
	}
	return m, nil
}
