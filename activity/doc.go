// Package activity implements greedy activity selection: choosing the
// largest set of pairwise non-overlapping delivery windows.
//
// Overview:
//
//   - Windows are half-open [Start, End); touching endpoints are compatible.
//   - Select sorts a private copy of the input by End ascending (stable, so
//     ties keep input order) and scans it once. A window is accepted when its
//     Start is ≥ the End of the last accepted window; otherwise it is
//     rejected for good (no backtracking).
//   - Taking the window that finishes first leaves the most room for the
//     rest, which makes the greedy choice optimal for maximizing the count.
//
// Complexity:
//
//   - Time:  O(n log n) (sort) + O(n) (scan).
//   - Space: O(n) for the sorted copy and the result.
//
// Errors (sentinel, from package delivery):
//
//   - delivery.ErrEmptyID, delivery.ErrDuplicateID
//   - delivery.ErrInvalidInterval (start < 0, start ≥ end, non-finite bound)
//
// Example:
//
//	res, err := activity.Select([]delivery.Interval{
//	    {ID: "A", Start: 1, End: 3},
//	    {ID: "B", Start: 2, End: 5},
//	    {ID: "C", Start: 4, End: 7},
//	})
//	// res.IDs == []string{"A", "C"}
package activity
