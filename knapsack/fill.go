package knapsack

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvgreedy/delivery"
)

// Fill loads items into a capacity-bounded truck, maximizing total value.
//
// Preconditions (validated before the greedy loop, in order):
//  1. capacity is finite and ≥ 0;
//  2. item IDs are non-empty and unique;
//  3. Weight > 0 and Value ≥ 0, both finite.
//
// Returns the rounded totals and the allocations in acceptance order
// (descending density). Capacity 0 yields zero totals and no allocations.
// The input slice is never modified.
func Fill(items []delivery.Item, capacity float64, opts ...Option) (Result, error) {
	// 1) Resolve options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Boundary validation.
	if err := delivery.ValidateCapacity(capacity); err != nil {
		return Result{}, err
	}
	if err := delivery.ValidateItems(items); err != nil {
		return Result{}, err
	}

	// 3) Sort a private copy by density descending, stable on ties.
	sorted := make([]delivery.Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Density() > sorted[j].Density()
	})

	// 4) Greedy fill.
	var (
		remaining   = capacity
		totalValue  float64
		totalWeight float64
		allocs      = make([]Allocation, 0, len(sorted))
	)
	for _, it := range sorted {
		if remaining <= 0 {
			break
		}
		if it.Weight <= remaining {
			// Fits entirely; this branch also wins when Weight == remaining.
			allocs = append(allocs, Allocation{ID: it.ID, Fraction: 1.0})
			totalValue += it.Value
			totalWeight += it.Weight
			remaining -= it.Weight

			continue
		}

		// Partial take saturates the capacity; no further item is considered.
		fraction := remaining / it.Weight
		allocs = append(allocs, Allocation{ID: it.ID, Fraction: fraction})
		totalValue += fraction * it.Value
		totalWeight += remaining
		remaining = 0

		break
	}

	return Result{
		TotalValue:  round(totalValue, cfg.Precision),
		TotalWeight: round(totalWeight, cfg.Precision),
		Allocations: allocs,
	}, nil
}

// round rounds x half away from zero to the given number of decimals.
func round(x float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))

	return math.Round(x*p) / p
}
