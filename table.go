package positions

// This file defines the narrow read abstraction the validators consume.
// Import code owns the actual file formats; the core only ever sees an
// ordered header and named read access to one row at a time.

// Fields lists the required leading columns of a normalized positions
// table, in the exact order downstream consumers rely on.
var Fields = []string{
	"account", "group", "symbol", "quantity", "price", "mark", "cost", "net_liq",
}

// Record provides named read access to one row of a positions table.
// Get returns the field value and whether the field is present; absent
// and null fields report false.
type Record interface {
	Get(field string) (any, bool)
}

// Row is an ordered set of named fields, the simplest Record an importer
// can produce while assembling a position from vendor columns.
type Row struct {
	header []string
	values map[string]any
}

// NewRow returns an empty row with the given header.
func NewRow(header ...string) *Row {
	return &Row{header: header, values: make(map[string]any, len(header))}
}

// Header returns the ordered field names of the row.
func (r *Row) Header() []string { return r.header }

// Set records a field value and returns the row for chaining. Setting a
// nil value marks the field as null.
func (r *Row) Set(field string, value any) *Row {
	r.values[field] = value
	return r
}

// Get implements Record.
func (r *Row) Get(field string) (any, bool) {
	v, ok := r.values[field]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}
