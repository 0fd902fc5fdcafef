package positions

// Renames maps a stale ticker to its current one. Symbol name changes
// sometimes occur out of sync across broker data streams: the old symbol
// shows up in the trading history while the cash statement already carries
// the new one. The table is explicit and versioned, never inferred from
// the data.
type Renames struct {
	revision string
	table    map[string]string
}

// NewRenames builds a rename table with a revision label identifying the
// vintage of the mapping.
func NewRenames(revision string, table map[string]string) Renames {
	t := make(map[string]string, len(table))
	for old, current := range table {
		t[old] = current
	}
	return Renames{revision: revision, table: t}
}

// Revision returns the vintage label of the table.
func (r Renames) Revision() string { return r.revision }

// Apply returns the current ticker for sym, or sym unchanged when no
// rename is recorded.
func (r Renames) Apply(sym string) string {
	if current, ok := r.table[sym]; ok {
		return current
	}
	return sym
}

// defaultRenames is the process-wide rename table. It is initialized once
// and never mutated.
var defaultRenames = NewRenames("2021-03", map[string]string{
	// ChargePoint started trading under CHPT after the SPAC merger with
	// Switchback Energy (SBE); some broker streams kept surfacing CHPT
	// while others already used SBE.
	"CHPT": "SBE",
})

// DefaultRenames returns the process-wide symbol rename table.
func DefaultRenames() Renames { return defaultRenames }
