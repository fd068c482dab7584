package partition

import "errors"

// Strategy selects the track search used by Assign.
type Strategy int

const (
	// FirstFit scans tracks linearly in creation order.
	FirstFit Strategy = iota

	// FreeList uses two heaps (busy by end time, free by creation index).
	FreeList
)

// String returns the strategy name used in configuration files.
func (s Strategy) String() string {
	switch s {
	case FirstFit:
		return "first-fit"
	case FreeList:
		return "free-list"
	default:
		return "unknown"
	}
}

// ErrUnknownStrategy is returned by ParseStrategy and is the panic value of
// WithStrategy for values outside the declared constants.
var ErrUnknownStrategy = errors.New("partition: unknown strategy")

// ParseStrategy maps "first-fit" / "free-list" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "", "first-fit":
		return FirstFit, nil
	case "free-list":
		return FreeList, nil
	default:
		return FirstFit, ErrUnknownStrategy
	}
}

// Result holds the outcome of Assign.
type Result struct {
	// TrackCount is len(Tracks).
	TrackCount int `json:"track_count"`
	// Tracks lists each track's window IDs in assignment order; tracks
	// appear in creation order.
	Tracks [][]string `json:"tracks"`
}

// Options configures Assign.
type Options struct {
	Strategy Strategy
}

// Option is a functional option for Assign.
type Option func(*Options)

// DefaultOptions returns Options{Strategy: FirstFit}.
func DefaultOptions() Options {
	return Options{Strategy: FirstFit}
}

// WithStrategy selects the track search. Panics on an unknown strategy.
func WithStrategy(s Strategy) Option {
	if s != FirstFit && s != FreeList {
		panic(ErrUnknownStrategy.Error())
	}

	return func(o *Options) {
		o.Strategy = s
	}
}
