package activity

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvgreedy/delivery"
)

// Select returns a maximum-size subset of pairwise non-overlapping windows.
//
// Preconditions (validated before the greedy loop, in order):
//  1. every ID is non-empty and unique;
//  2. every window satisfies 0 ≤ Start < End with finite bounds.
//
// The input slice is never modified. An empty input yields an empty,
// non-nil Result.IDs.
func Select(windows []delivery.Interval) (Result, error) {
	// 1) Boundary validation; a single bad record fails the call.
	if err := delivery.ValidateIntervals(windows); err != nil {
		return Result{}, err
	}

	// 2) Sort a private copy by End ascending. SliceStable keeps input
	//    order among equal End times.
	sorted := make([]delivery.Interval, len(windows))
	copy(sorted, windows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].End < sorted[j].End
	})

	// 3) Single scan; lastEnd starts at -Inf so the first window is eligible.
	ids := make([]string, 0, len(sorted))
	lastEnd := math.Inf(-1)
	for _, w := range sorted {
		if w.Start >= lastEnd {
			ids = append(ids, w.ID)
			lastEnd = w.End
		}
	}

	return Result{IDs: ids}, nil
}
