package knapsack

import "errors"

const (
	// DefaultPrecision is the number of decimals kept in Result totals.
	DefaultPrecision = 2

	// MaxPrecision is the largest accepted precision; float64 carries no
	// more significant decimals, and larger scales overflow in round.
	MaxPrecision = 15
)

// ErrBadPrecision is the panic value of WithPrecision for decimals outside
// [0, MaxPrecision].
var ErrBadPrecision = errors.New("knapsack: precision must be within [0, 15]")

// Allocation records how much of one item was loaded.
type Allocation struct {
	ID string `json:"id"`
	// Fraction is in (0, 1]; 1 means the item was taken whole.
	Fraction float64 `json:"fraction"`
}

// Result holds the outcome of Fill.
type Result struct {
	TotalValue  float64      `json:"total_value"`
	TotalWeight float64      `json:"total_weight"`
	Allocations []Allocation `json:"allocations"`
}

// Options configures Fill.
type Options struct {
	// Precision is the number of decimals TotalValue and TotalWeight are
	// rounded to.
	Precision int
}

// Option is a functional option for Fill.
type Option func(*Options)

// DefaultOptions returns Options{Precision: DefaultPrecision}.
func DefaultOptions() Options {
	return Options{Precision: DefaultPrecision}
}

// WithPrecision sets the decimals kept in the result totals.
// Panics with ErrBadPrecision when decimals < 0 or decimals > MaxPrecision.
func WithPrecision(decimals int) Option {
	if decimals < 0 || decimals > MaxPrecision {
		panic(ErrBadPrecision.Error())
	}

	return func(o *Options) {
		o.Precision = decimals
	}
}
