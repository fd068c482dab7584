package partition

import (
	"sort"

	"github.com/katalvlaran/lvgreedy/delivery"
)

// MaxOverlap returns the largest number of windows open at the same instant,
// which is the lower bound (and, for first-fit, the value) of the track count.
//
// Windows are half-open, so at a shared coordinate ends are counted before
// starts. Complexity: O(n log n).
func MaxOverlap(windows []delivery.Interval) (int, error) {
	if err := delivery.ValidateIntervals(windows); err != nil {
		return 0, err
	}

	type event struct {
		at    float64
		delta int
	}
	events := make([]event, 0, 2*len(windows))
	for _, w := range windows {
		events = append(events, event{at: w.Start, delta: +1}, event{at: w.End, delta: -1})
	}
	sort.Slice(events, func(i, j int) bool {
		if events[i].at != events[j].at {
			return events[i].at < events[j].at
		}

		return events[i].delta < events[j].delta
	})

	var open, best int
	for _, e := range events {
		open += e.delta
		if open > best {
			best = open
		}
	}

	return best, nil
}
