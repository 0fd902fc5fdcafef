// Package tastytrade imports position exports from the tastytrade API
// payload format into the canonical positions model. The vendor already
// ships unambiguous symbols, so this importer reuses the canonical model
// without a symbol codec of its own.
package tastytrade

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/positions"
)

// itemsPath locates the position list inside the API payload.
const itemsPath = "$.data.items"

// ImportPositions reads a positions payload from 'r' and returns the
// normalized positions. The payload is the JSON body returned by the
// vendor's positions endpoint: a "data" object holding an "items" list of
// position objects.
func ImportPositions(r io.Reader) ([]positions.Position, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot parse positions payload: %w", err)
	}
	jval, err := jsonpath.Get(itemsPath, jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot find positions in payload: %q %w", itemsPath, err)
	}
	items, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("positions payload %q is not a list: %T", itemsPath, jval)
	}

	var ps []positions.Position
	for i, item := range items {
		p, err := importItem(item)
		if err != nil {
			return nil, fmt.Errorf("cannot import position %d: %w", i, err)
		}
		if err := positions.ValidatePositionRecord(p); err != nil {
			return nil, fmt.Errorf("invalid position %d: %w", i, err)
		}
		ps = append(ps, p)
	}
	return ps, nil
}

// importItem normalizes one payload item into a position.
func importItem(item any) (positions.Position, error) {
	account, err := jtext(item, `$["account-number"]`)
	if err != nil {
		return positions.Position{}, err
	}
	symbol, err := jtext(item, "$.symbol")
	if err != nil {
		return positions.Position{}, err
	}

	quantity, err := jquantity(item, "$.quantity")
	if err != nil {
		return positions.Position{}, err
	}
	direction, _ := jtext(item, `$["quantity-direction"]`)
	if direction == "Short" {
		quantity = positions.Q(0).Sub(quantity)
	}

	price, err := jamount(item, `$["average-open-price"]`)
	if err != nil {
		return positions.Position{}, err
	}
	mark, err := jamount(item, `$["close-price"]`)
	if err != nil {
		return positions.Position{}, err
	}

	// The payload carries unit prices only; the cost and liquidation value
	// of the line are derived from them.
	p := positions.Position{
		Account:  account,
		Symbol:   symbol,
		Quantity: &quantity,
		Price:    price,
		Mark:     mark,
		Cost:     price.Mul(quantity).Neg(),
		NetLiq:   mark.Mul(quantity),
	}
	return p, nil
}

// jtext extracts a string field from a payload object.
func jtext(jobj any, path string) (string, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("cannot read %q: %w", path, err)
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("cannot read %q: not a string: %v", path, jval)
	}
	return s, nil
}

// jquantity extracts an exact decimal count from a payload object. The
// vendor encodes decimals as JSON strings precisely to keep them exact.
func jquantity(jobj any, path string) (positions.Quantity, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return positions.Quantity{}, fmt.Errorf("cannot read %q: %w", path, err)
	}
	s, ok := jval.(string)
	if !ok {
		return positions.Quantity{}, fmt.Errorf("cannot read %q: not an exact decimal string: %v", path, jval)
	}
	return positions.ParseQuantity(s)
}

// jamount extracts an exact decimal dollar amount from a payload object.
func jamount(jobj any, path string) (positions.Money, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return positions.Money{}, fmt.Errorf("cannot read %q: %w", path, err)
	}
	s, ok := jval.(string)
	if !ok {
		return positions.Money{}, fmt.Errorf("cannot read %q: not an exact decimal string: %v", path, jval)
	}
	return positions.ParseMoney(s, "USD")
}
