package positions

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// this file contains functions to handle the import/export format for
// normalized positions. It should remain human readable, single file and be
// easy to merge into a database.

// the readable version of the format can be summarized by one type per line.
// Amounts are pointers so that an absent field is distinguishable from a
// zero amount and can be reported by the validator.
type jposition struct {
	Account  string    `json:"account"`
	Group    string    `json:"group,omitempty"`
	Symbol   string    `json:"symbol"`
	Quantity *Quantity `json:"quantity,omitempty"`
	Price    *Money    `json:"price"`
	Mark     *Money    `json:"mark"`
	Cost     *Money    `json:"cost"`
	NetLiq   *Money    `json:"net_liq"`
	Currency string    `json:"currency,omitempty"`
}

// ExportPositions exports normalized positions to 'w' in the import/export
// format: a JSONL file where each line is a JSON object representing one
// position, with amounts as exact decimal numbers.
func ExportPositions(w io.Writer, ps []Position) error {
	for _, p := range ps {
		jp := jposition{
			Account:  p.Account,
			Group:    p.Group,
			Symbol:   p.Symbol,
			Quantity: p.Quantity,
			Price:    &p.Price,
			Mark:     &p.Mark,
			Cost:     &p.Cost,
			NetLiq:   &p.NetLiq,
			Currency: p.Price.Currency(),
		}
		data, err := json.Marshal(jp)
		if err != nil {
			return fmt.Errorf("cannot marshal position %q: %w", p.Symbol, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write position format: %w", err)
		}
	}
	return nil
}

// ImportPositions imports normalized positions from 'r' in the
// import/export format. Every record is validated; the first invalid line
// fails the whole import.
func ImportPositions(r io.Reader) ([]Position, error) {
	var ps []Position
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(strings.TrimSpace(string(raw))) == 0 {
			continue
		}
		var jp jposition
		if err := json.Unmarshal(raw, &jp); err != nil {
			return nil, fmt.Errorf("cannot parse line %d of positions import format: %q: %w", line, string(raw), err)
		}
		cur := jp.Currency
		if cur == "" {
			cur = "USD"
		}

		// Validate through a row so that an absent amount is reported as
		// missing rather than silently read as zero.
		row := NewRow(Fields...).
			Set("account", jp.Account).
			Set("symbol", jp.Symbol)
		if jp.Group != "" {
			row.Set("group", jp.Group)
		}
		if jp.Quantity != nil {
			row.Set("quantity", *jp.Quantity)
		}
		for field, amount := range map[string]*Money{
			"price": jp.Price, "mark": jp.Mark, "cost": jp.Cost, "net_liq": jp.NetLiq,
		} {
			if amount != nil {
				row.Set(field, M(amount.Amount(), cur))
			}
		}
		if err := ValidatePositionRecord(row); err != nil {
			return nil, fmt.Errorf("invalid position on line %d: %w", line, err)
		}

		ps = append(ps, Position{
			Account:  jp.Account,
			Group:    jp.Group,
			Symbol:   jp.Symbol,
			Quantity: jp.Quantity,
			Price:    M(jp.Price.Amount(), cur),
			Mark:     M(jp.Mark.Amount(), cur),
			Cost:     M(jp.Cost.Amount(), cur),
			NetLiq:   M(jp.NetLiq.Amount(), cur),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read positions import format: %w", err)
	}
	return ps, nil
}
