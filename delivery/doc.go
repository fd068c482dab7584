// Package delivery defines the records shared by the greedy optimizers of
// lvgreedy: time-windowed deliveries (Interval) and loadable packages (Item),
// together with the sentinel errors and boundary validation every optimizer
// runs before its greedy loop.
//
// Records:
//
//   - Interval — ID, Start, End. Valid iff ID != "", both bounds are finite,
//     Start ≥ 0 and Start < End. Zero-duration windows are invalid.
//   - Item     — ID, Weight, Value. Valid iff ID != "", Weight is finite and
//     > 0, Value is finite and ≥ 0. Density() = Value / Weight.
//
// Both records are plain values. Optimizers receive them in slices, never
// modify those slices, and only echo the IDs back in their results.
//
// Error policy:
//
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Validators wrap the sentinel with the offending position and ID via %w.
//   - A single malformed record fails the whole call (no skipping).
//   - Identifiers must be unique within one collection (ErrDuplicateID).
//
// Complexity: every validator is O(n) time and O(n) extra space (ID set).
package delivery
