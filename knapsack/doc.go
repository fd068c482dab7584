// Package knapsack implements the greedy fractional knapsack used to load a
// delivery truck: maximize total priority value under a weight capacity when
// packages may be split.
//
// Overview:
//
//   - Fill sorts a private copy of the items by density (Value / Weight)
//     descending; the sort is stable, so equal densities keep input order.
//   - Items are taken whole while Weight ≤ remaining capacity. The first item
//     that does not fit is taken fractionally (remaining / Weight), the
//     capacity saturates, and the scan stops.
//   - A zero remaining capacity stops the scan before the next item.
//   - Greedy-by-density is optimal for the divisible variant.
//
// Numeric semantics:
//
//   - Accumulation uses full float64 precision.
//   - TotalValue and TotalWeight are rounded once, at the result boundary, to
//     Options.Precision decimals (default 2). Fractions are never rounded.
//
// Complexity:
//
//   - Time:  O(n log n) (sort) + O(n) (scan).
//   - Space: O(n).
//
// Errors (sentinel, from package delivery):
//
//   - delivery.ErrInvalidCapacity (capacity < 0 or non-finite; 0 is valid)
//   - delivery.ErrEmptyID, delivery.ErrDuplicateID
//   - delivery.ErrInvalidWeight (≤ 0), delivery.ErrInvalidValue (< 0)
//
// Options:
//
//   - WithPrecision(d): decimals kept in the totals (d ≥ 0, panics otherwise).
package knapsack
