package partition

import (
	"container/heap"
	"sort"

	"github.com/katalvlaran/lvgreedy/delivery"
)

// track is one driver's schedule; end is the End of its latest window.
type track struct {
	ids []string
	end float64
}

// Assign partitions windows into the minimum number of non-overlapping tracks.
//
// Preconditions (validated before the greedy loop): IDs non-empty and
// unique; 0 ≤ Start < End with finite bounds.
//
// Every input window appears in exactly one track. Empty input yields zero
// tracks. The input slice is never modified.
func Assign(windows []delivery.Interval, opts ...Option) (Result, error) {
	// 1) Resolve options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Boundary validation.
	if err := delivery.ValidateIntervals(windows); err != nil {
		return Result{}, err
	}

	// 3) Sort a private copy by Start ascending, stable on ties.
	sorted := make([]delivery.Interval, len(windows))
	copy(sorted, windows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	// 4) Place windows.
	var tracks []*track
	if cfg.Strategy == FreeList {
		tracks = assignFreeList(sorted)
	} else {
		tracks = assignFirstFit(sorted)
	}

	// 5) Flatten into the result shape.
	out := make([][]string, len(tracks))
	for i, tr := range tracks {
		out[i] = tr.ids
	}

	return Result{TrackCount: len(out), Tracks: out}, nil
}

// assignFirstFit scans tracks in creation order for each window.
func assignFirstFit(sorted []delivery.Interval) []*track {
	tracks := make([]*track, 0)

	var placed bool
	for _, w := range sorted {
		placed = false
		for _, tr := range tracks {
			if tr.end <= w.Start {
				tr.ids = append(tr.ids, w.ID)
				tr.end = w.End
				placed = true

				break
			}
		}
		if !placed {
			tracks = append(tracks, &track{ids: []string{w.ID}, end: w.End})
		}
	}

	return tracks
}

// assignFreeList reproduces first-fit with two heaps.
func assignFreeList(sorted []delivery.Interval) []*track {
	tracks := make([]*track, 0)
	busy := make(busyPQ, 0)
	free := make(freePQ, 0)

	var idx int
	for _, w := range sorted {
		// Release every track that has finished by w.Start.
		for busy.Len() > 0 && busy[0].end <= w.Start {
			heap.Push(&free, heap.Pop(&busy).(busyItem).idx)
		}

		if free.Len() > 0 {
			idx = heap.Pop(&free).(int)
			tracks[idx].ids = append(tracks[idx].ids, w.ID)
			tracks[idx].end = w.End
		} else {
			idx = len(tracks)
			tracks = append(tracks, &track{ids: []string{w.ID}, end: w.End})
		}
		heap.Push(&busy, busyItem{end: w.End, idx: idx})
	}

	return tracks
}
