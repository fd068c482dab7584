package delivery

import "errors"

// Sentinel errors returned by the validators and, through them, by every
// optimizer package.
var (
	// ErrEmptyID indicates a record without an identifier.
	ErrEmptyID = errors.New("delivery: empty identifier")

	// ErrDuplicateID indicates that an identifier occurs twice in one collection.
	ErrDuplicateID = errors.New("delivery: duplicate identifier")

	// ErrInvalidInterval indicates a non-finite bound, a negative start,
	// or start ≥ end (zero-duration windows included).
	ErrInvalidInterval = errors.New("delivery: invalid interval")

	// ErrInvalidWeight indicates a weight that is ≤ 0 or not finite.
	ErrInvalidWeight = errors.New("delivery: invalid weight")

	// ErrInvalidValue indicates a value that is < 0 or not finite.
	ErrInvalidValue = errors.New("delivery: invalid value")

	// ErrInvalidCapacity indicates a capacity that is < 0 or not finite.
	// A zero capacity is valid.
	ErrInvalidCapacity = errors.New("delivery: invalid capacity")
)

// Interval is a delivery time window [Start, End).
// Two windows touching at an endpoint do not overlap.
type Interval struct {
	ID    string  `json:"id" yaml:"id"`
	Start float64 `json:"start" yaml:"start"`
	End   float64 `json:"end" yaml:"end"`
}

// Duration returns End - Start.
func (iv Interval) Duration() float64 {
	return iv.End - iv.Start
}

// Overlaps reports whether iv and other share an interior point.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

// Item is a divisible package with a weight and a priority value.
type Item struct {
	ID     string  `json:"id" yaml:"id"`
	Weight float64 `json:"weight" yaml:"weight"`
	Value  float64 `json:"value" yaml:"value"`
}

// Density returns Value / Weight. The result is meaningful only for
// validated items (Weight > 0).
func (it Item) Density() float64 {
	return it.Value / it.Weight
}
