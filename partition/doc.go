// Package partition assigns delivery windows to the minimum number of
// drivers ("tracks") such that no driver holds two overlapping windows.
// This is interval graph colouring solved by greedy first-fit.
//
// Overview:
//
//   - Assign sorts a private copy of the windows by Start ascending (stable,
//     ties keep input order).
//   - Each window goes to the first track, in track creation order, whose
//     last window ends at or before the new Start (touching is compatible).
//     If no track qualifies, a new track is opened at the end of the list.
//   - The resulting track count equals the maximum number of windows open
//     at any single instant (MaxOverlap), which is optimal.
//
// Strategies (same observable output, chosen with WithStrategy):
//
//   - FirstFit (default): scan the tracks in creation order. O(n²) worst case.
//   - FreeList: keep busy tracks in a min-heap by end time and free tracks in
//     a min-heap by creation index. Before placing a window every busy track
//     ending at or before its Start moves to the free heap; the window takes
//     the lowest-index free track. Starts never decrease, so a freed track
//     stays free until reused. O(n log n).
//
// Complexity:
//
//   - Sort:     O(n log n)
//   - FirstFit: O(n·k), k = number of tracks (≤ n)
//   - FreeList: O(n log n)
//   - Space:    O(n)
//
// Errors (sentinel, from package delivery):
//
//   - delivery.ErrEmptyID, delivery.ErrDuplicateID
//   - delivery.ErrInvalidInterval
package partition
