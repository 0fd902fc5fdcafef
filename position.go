package positions

// Position is one normalized position row: the account holding it, an
// optional grouping label, the canonical instrument symbol, and the exact
// decimal amounts reported by the broker. Importers build positions from
// vendor rows, validate them once, and hand them to downstream processing.
type Position struct {
	Account  string
	Group    string // optional grouping label, empty when absent
	Symbol   string // canonical instrument symbol
	Quantity *Quantity
	Price    Money
	Mark     Money
	Cost     Money
	NetLiq   Money
}

// Get implements Record, exposing the position under the normalized field
// names so it can be checked by ValidatePositionRecord.
func (p Position) Get(field string) (any, bool) {
	switch field {
	case "account":
		return p.Account, true
	case "group":
		if p.Group == "" {
			return nil, false
		}
		return p.Group, true
	case "symbol":
		return p.Symbol, true
	case "quantity":
		if p.Quantity == nil {
			return nil, false
		}
		return *p.Quantity, true
	case "price":
		return p.Price, true
	case "mark":
		return p.Mark, true
	case "cost":
		return p.Cost, true
	case "net_liq":
		return p.NetLiq, true
	}
	return nil, false
}

// Header returns the normalized field names of a position, in order.
func (p Position) Header() []string { return Fields }
