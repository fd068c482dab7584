package partition_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/katalvlaran/lvgreedy/delivery"
	"github.com/katalvlaran/lvgreedy/partition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// iv is a terse constructor for test windows.
func iv(id string, start, end float64) delivery.Interval {
	return delivery.Interval{ID: id, Start: start, End: end}
}

// strategies lists every Strategy so each behavioural test runs against both.
var strategies = []partition.Strategy{partition.FirstFit, partition.FreeList}

func TestAssign_Empty(t *testing.T) {
	for _, s := range strategies {
		res, err := partition.Assign(nil, partition.WithStrategy(s))
		require.NoError(t, err)
		assert.Equal(t, 0, res.TrackCount, s.String())
		assert.Empty(t, res.Tracks, s.String())
	}
}

// TestAssign_NoOverlap: one driver does everything, in start order.
func TestAssign_NoOverlap(t *testing.T) {
	for _, s := range strategies {
		res, err := partition.Assign([]delivery.Interval{iv("C", 5, 6), iv("A", 1, 2), iv("B", 3, 4)}, partition.WithStrategy(s))
		require.NoError(t, err)
		assert.Equal(t, 1, res.TrackCount, s.String())
		assert.Equal(t, [][]string{{"A", "B", "C"}}, res.Tracks, s.String())
	}
}

// TestAssign_AllOverlapping: three mutually overlapping windows need three drivers.
func TestAssign_AllOverlapping(t *testing.T) {
	for _, s := range strategies {
		res, err := partition.Assign([]delivery.Interval{iv("A", 1, 5), iv("B", 2, 6), iv("C", 3, 7)}, partition.WithStrategy(s))
		require.NoError(t, err)
		assert.Equal(t, 3, res.TrackCount, s.String())
		assert.Equal(t, [][]string{{"A"}, {"B"}, {"C"}}, res.Tracks, s.String())
	}
}

// TestAssign_Mixed: A ends 3 ≤ C starts 4; B ends 4 ≤ D starts 5.
func TestAssign_Mixed(t *testing.T) {
	for _, s := range strategies {
		res, err := partition.Assign([]delivery.Interval{iv("A", 1, 3), iv("B", 2, 4), iv("C", 4, 6), iv("D", 5, 7)}, partition.WithStrategy(s))
		require.NoError(t, err)
		assert.Equal(t, 2, res.TrackCount, s.String())
		assert.Equal(t, [][]string{{"A", "C"}, {"B", "D"}}, res.Tracks, s.String())
	}
}

// TestAssign_FirstFitPrefersOldestTrack: when two tracks are free the
// earlier-created one wins even if the later one freed up first.
func TestAssign_FirstFitPrefersOldestTrack(t *testing.T) {
	in := []delivery.Interval{iv("A", 0, 5), iv("B", 1, 2), iv("C", 6, 7)}
	for _, s := range strategies {
		res, err := partition.Assign(in, partition.WithStrategy(s))
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"A", "C"}, {"B"}}, res.Tracks, s.String())
	}
}

func TestAssign_TouchingEndpointsShareTrack(t *testing.T) {
	for _, s := range strategies {
		res, err := partition.Assign([]delivery.Interval{iv("A", 1, 3), iv("B", 3, 5)}, partition.WithStrategy(s))
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"A", "B"}}, res.Tracks, s.String())
	}
}

func TestAssign_InputNotMutated(t *testing.T) {
	in := []delivery.Interval{iv("D", 5, 7), iv("A", 1, 3), iv("C", 4, 6), iv("B", 2, 4)}
	snapshot := append([]delivery.Interval(nil), in...)
	for _, s := range strategies {
		_, err := partition.Assign(in, partition.WithStrategy(s))
		require.NoError(t, err)
		assert.Equal(t, snapshot, in, s.String())
	}
}

func TestAssign_Errors(t *testing.T) {
	_, err := partition.Assign([]delivery.Interval{iv("A", 4, 2)})
	assert.ErrorIs(t, err, delivery.ErrInvalidInterval)

	_, err = partition.Assign([]delivery.Interval{iv("A", 1, 2), iv("A", 3, 4)})
	assert.ErrorIs(t, err, delivery.ErrDuplicateID)
}

func TestWithStrategy_PanicsOnUnknown(t *testing.T) {
	assert.Panics(t, func() { partition.WithStrategy(partition.Strategy(9)) })
}

func TestParseStrategy(t *testing.T) {
	s, err := partition.ParseStrategy("free-list")
	require.NoError(t, err)
	assert.Equal(t, partition.FreeList, s)

	s, err = partition.ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, partition.FirstFit, s)

	_, err = partition.ParseStrategy("round-robin")
	assert.ErrorIs(t, err, partition.ErrUnknownStrategy)
}

func TestMaxOverlap(t *testing.T) {
	n, err := partition.MaxOverlap(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = partition.MaxOverlap([]delivery.Interval{iv("A", 1, 3), iv("B", 3, 5)})
	require.NoError(t, err)
	assert.Equal(t, 1, n, "touching windows are never open together")

	n, err = partition.MaxOverlap([]delivery.Interval{iv("A", 1, 5), iv("B", 2, 6), iv("C", 3, 7), iv("D", 6, 8)})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = partition.MaxOverlap([]delivery.Interval{iv("A", 1, 1)})
	assert.ErrorIs(t, err, delivery.ErrInvalidInterval)
}

// TestAssign_Properties checks, on random inputs, that the track count equals
// MaxOverlap, that every window appears exactly once, that no track holds two
// overlapping windows, and that both strategies agree.
func TestAssign_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 300; trial++ {
		n := rng.Intn(60)
		in := make([]delivery.Interval, n)
		byID := make(map[string]delivery.Interval, n)
		for i := range in {
			start := float64(8 + rng.Intn(11))
			in[i] = iv("DEL-"+strconv.Itoa(i), start, start+float64(1+rng.Intn(3)))
			byID[in[i].ID] = in[i]
		}

		ff, err := partition.Assign(in)
		require.NoError(t, err)
		fl, err := partition.Assign(in, partition.WithStrategy(partition.FreeList))
		require.NoError(t, err)
		require.Equal(t, ff, fl, "trial %d: strategies disagree", trial)

		depth, err := partition.MaxOverlap(in)
		require.NoError(t, err)
		require.Equal(t, depth, ff.TrackCount, "trial %d", trial)
		require.Len(t, ff.Tracks, ff.TrackCount)

		seen := make(map[string]int, n)
		for _, tr := range ff.Tracks {
			require.NotEmpty(t, tr)
			for i, id := range tr {
				seen[id]++
				if i > 0 {
					require.LessOrEqual(t, byID[tr[i-1]].End, byID[id].Start, "trial %d: track overlap", trial)
				}
			}
		}
		require.Len(t, seen, n, "trial %d", trial)
		for id, c := range seen {
			require.Equal(t, 1, c, "trial %d: %s assigned %d times", trial, id, c)
		}
	}
}
