package positions

// OptionContractSize is the standard contract size of a listed equity
// option: one contract covers 100 shares of the underlying.
const OptionContractSize = 100

// MultiplierLookup resolves the contract multiplier of a futures root
// symbol (e.g. "/CL" for crude oil). Implementations are read-only and safe
// for concurrent use. A lookup miss is a hard failure: the codec never
// substitutes a default multiplier.
type MultiplierLookup interface {
	MultiplierFor(root string) (int, error)
}

// Multipliers is an in-memory MultiplierLookup, the natural fixture for
// tests and the backing of the process-wide default table.
type Multipliers map[string]int

// MultiplierFor returns the multiplier for a futures root symbol, or an
// *UnknownSymbolError if the root is not in the table.
func (m Multipliers) MultiplierFor(root string) (int, error) {
	mult, ok := m[root]
	if !ok {
		return 0, &UnknownSymbolError{Symbol: root}
	}
	return mult, nil
}

// futuresMultipliers holds the contract multipliers of the common CME,
// CBOT, NYMEX and COMEX products. It is initialized once and never mutated.
var futuresMultipliers = Multipliers{
	// Index futures.
	"/ES":  50, // E-mini S&P 500
	"/NQ":  20, // E-mini Nasdaq-100
	"/RTY": 50, // E-mini Russell 2000
	"/YM":  5,  // E-mini Dow
	"/MES": 5,  // Micro E-mini S&P 500
	"/MNQ": 2,  // Micro E-mini Nasdaq-100
	"/M2K": 5,  // Micro E-mini Russell 2000

	// Energy.
	"/CL":  1000,  // Crude oil
	"/MCL": 100,   // Micro crude oil
	"/NG":  10000, // Natural gas
	"/QM":  500,   // E-mini crude oil

	// Metals.
	"/GC":  100,   // Gold
	"/MGC": 10,    // Micro gold
	"/SI":  5000,  // Silver
	"/HG":  25000, // Copper

	// Rates.
	"/ZT": 2000, // 2-year T-note
	"/ZF": 1000, // 5-year T-note
	"/ZN": 1000, // 10-year T-note
	"/ZB": 1000, // T-bond
	"/GE": 2500, // Eurodollar

	// Agriculture.
	"/ZC": 50, // Corn
	"/ZS": 50, // Soybeans
	"/ZW": 50, // Wheat

	// Currencies.
	"/6A": 100000,   // Australian dollar
	"/6B": 62500,    // British pound
	"/6C": 100000,   // Canadian dollar
	"/6E": 125000,   // Euro
	"/6J": 12500000, // Japanese yen

	// Volatility.
	"/VX": 1000, // VIX

	// Crypto.
	"/BTC": 5, // Bitcoin
}

// DefaultMultipliers returns the process-wide futures multiplier table.
// The table is read-only; callers needing different contract
// specifications pass their own Multipliers.
func DefaultMultipliers() MultiplierLookup { return futuresMultipliers }
