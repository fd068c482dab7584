// Package delivery - boundary validation shared by all optimizers.
//
// Design principles:
//   - Deterministic, side-effect free; the input slice is only read.
//   - No logging, no panics on user input; only wrapped sentinels.
//   - Fail fast on the first offending record, reporting its index and ID.
package delivery

import (
	"fmt"
	"math"
)

// ValidateIntervals checks every interval and the uniqueness of their IDs.
//
// Complexity: O(n) time, O(n) space.
func ValidateIntervals(intervals []Interval) error {
	seen := make(map[string]struct{}, len(intervals))

	var (
		i  int
		iv Interval
		ok bool
	)
	for i, iv = range intervals {
		if iv.ID == "" {
			return fmt.Errorf("%w: interval #%d", ErrEmptyID, i)
		}
		if _, ok = seen[iv.ID]; ok {
			return fmt.Errorf("%w: interval #%d %q", ErrDuplicateID, i, iv.ID)
		}
		seen[iv.ID] = struct{}{}

		if !finite(iv.Start) || !finite(iv.End) || iv.Start < 0 || iv.Start >= iv.End {
			return fmt.Errorf("%w: interval #%d %q [%g, %g)", ErrInvalidInterval, i, iv.ID, iv.Start, iv.End)
		}
	}

	return nil
}

// ValidateItems checks every item and the uniqueness of their IDs.
//
// Complexity: O(n) time, O(n) space.
func ValidateItems(items []Item) error {
	seen := make(map[string]struct{}, len(items))

	var (
		i  int
		it Item
		ok bool
	)
	for i, it = range items {
		if it.ID == "" {
			return fmt.Errorf("%w: item #%d", ErrEmptyID, i)
		}
		if _, ok = seen[it.ID]; ok {
			return fmt.Errorf("%w: item #%d %q", ErrDuplicateID, i, it.ID)
		}
		seen[it.ID] = struct{}{}

		if !finite(it.Weight) || it.Weight <= 0 {
			return fmt.Errorf("%w: item #%d %q weight=%g", ErrInvalidWeight, i, it.ID, it.Weight)
		}
		if !finite(it.Value) || it.Value < 0 {
			return fmt.Errorf("%w: item #%d %q value=%g", ErrInvalidValue, i, it.ID, it.Value)
		}
	}

	return nil
}

// ValidateCapacity accepts any finite capacity ≥ 0.
func ValidateCapacity(capacity float64) error {
	if !finite(capacity) || capacity < 0 {
		return fmt.Errorf("%w: %g", ErrInvalidCapacity, capacity)
	}

	return nil
}

// finite reports whether x is neither NaN nor ±Inf.
func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
