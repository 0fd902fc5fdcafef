// Package positions provides the canonical model and validation rules for
// brokerage position data. It sits between vendor-specific import code and
// downstream aggregation, ensuring that every position entering the pipeline
// carries a normalized instrument symbol and exact decimal amounts.
//
// The core functionalities include:
//   - Instrument Model: a canonical, immutable representation of a tradable
//     instrument covering equities, futures, equity options and options on
//     futures, with a derived instrument type checked at construction.
//   - Reference Lookups: read-only symbol-rename and futures contract
//     multiplier tables, injectable so tests and importers can substitute
//     their own fixtures.
//   - Position Validation: structural checks on a normalized position record
//     (field names, field order, per-field type and nullability) applied
//     once before a row is accepted.
//   - Data Persistence: encoding and decoding of normalized positions to and
//     from a human-readable JSONL format.
//
// Vendor-specific symbol grammars live in their own subpackages (for example
// [github.com/etnz/positions/thinkorswim]), which translate broker strings
// to and from the canonical model defined here.
package positions
