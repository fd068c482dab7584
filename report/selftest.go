package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/katalvlaran/lvgreedy/activity"
	"github.com/katalvlaran/lvgreedy/delivery"
	"github.com/katalvlaran/lvgreedy/knapsack"
	"github.com/katalvlaran/lvgreedy/partition"
)

// CaseResult is the outcome of one known case.
type CaseResult struct {
	Section  string
	Name     string
	Expected string
	Got      string
	Pass     bool
}

// knownCase is a small input with a checkable expectation.
type knownCase struct {
	section  string
	name     string
	expected string
	run      func(Options) (got string, pass bool, err error)
}

// knownCases builds the case table; inputs are rebuilt on every call.
func knownCases() []knownCase {
	iv := func(id string, start, end float64) delivery.Interval {
		return delivery.Interval{ID: id, Start: start, End: end}
	}
	disjoint := []delivery.Interval{iv("A", 1, 2), iv("B", 3, 4), iv("C", 5, 6)}
	nested := []delivery.Interval{iv("A", 1, 5), iv("B", 2, 4), iv("C", 3, 6)}
	mixed := []delivery.Interval{iv("A", 1, 3), iv("B", 2, 5), iv("C", 4, 7), iv("D", 6, 9)}
	staggered := []delivery.Interval{iv("A", 1, 5), iv("B", 2, 6), iv("C", 3, 7)}
	chained := []delivery.Interval{iv("A", 1, 3), iv("B", 2, 4), iv("C", 4, 6), iv("D", 5, 7)}
	threePackages := []delivery.Item{
		{ID: "A", Weight: 10, Value: 60},
		{ID: "B", Weight: 20, Value: 100},
		{ID: "C", Weight: 30, Value: 120},
	}

	selectCase := func(in []delivery.Interval, accept func(n int) bool) func(Options) (string, bool, error) {
		return func(Options) (string, bool, error) {
			res, err := activity.Select(in)
			if err != nil {
				return "", false, err
			}

			return fmt.Sprintf("%d deliveries %v", res.Len(), res.IDs), accept(res.Len()), nil
		}
	}
	fillCase := func(in []delivery.Item, capacity, wantValue, wantWeight float64) func(Options) (string, bool, error) {
		return func(o Options) (string, bool, error) {
			res, err := knapsack.Fill(in, capacity, knapsack.WithPrecision(o.Precision))
			if err != nil {
				return "", false, err
			}
			pass := math.Abs(res.TotalValue-wantValue) < 0.01 && math.Abs(res.TotalWeight-wantWeight) < 0.01

			return fmt.Sprintf("priority=%.2f weight=%.2f packages=%d", res.TotalValue, res.TotalWeight, len(res.Allocations)), pass, nil
		}
	}
	assignCase := func(in []delivery.Interval, want int) func(Options) (string, bool, error) {
		return func(o Options) (string, bool, error) {
			res, err := partition.Assign(in, partition.WithStrategy(o.Strategy))
			if err != nil {
				return "", false, err
			}

			return fmt.Sprintf("%d drivers %v", res.TrackCount, res.Tracks), res.TrackCount == want, nil
		}
	}

	return []knownCase{
		{"package prioritization", "non-overlapping", "3 deliveries", selectCase(disjoint, func(n int) bool { return n == 3 })},
		{"package prioritization", "all overlapping", "1-2 deliveries", selectCase(nested, func(n int) bool { return n >= 1 && n <= 2 })},
		{"package prioritization", "mixed overlapping", "2 deliveries (A ends at 3, C starts at 4)", selectCase(mixed, func(n int) bool { return n == 2 })},
		{"truck loading", "all packages fit", "priority=160 weight=30", fillCase(threePackages[:2], 50, 160, 30)},
		{"truck loading", "fractional knapsack", "priority=240 weight=50", fillCase(threePackages, 50, 240, 50)},
		{"truck loading", "zero capacity", "priority=0 weight=0", fillCase(threePackages, 0, 0, 0)},
		{"driver assignment", "non-overlapping", "1 driver", assignCase(disjoint, 1)},
		{"driver assignment", "all overlapping", "3 drivers", assignCase(staggered, 3)},
		{"driver assignment", "mixed overlapping", "2 drivers", assignCase(chained, 2)},
	}
}

// SelfTest replays the known cases. An optimizer error fails the run.
func SelfTest(opts Options) ([]CaseResult, error) {
	cases := knownCases()
	out := make([]CaseResult, 0, len(cases))
	for _, c := range cases {
		got, pass, err := c.run(opts)
		if err != nil {
			return nil, fmt.Errorf("%s / %s: %w", c.section, c.name, err)
		}
		out = append(out, CaseResult{Section: c.section, Name: c.name, Expected: c.expected, Got: got, Pass: pass})
	}

	return out, nil
}

// Failed counts the failing cases.
func Failed(results []CaseResult) int {
	n := 0
	for _, r := range results {
		if !r.Pass {
			n++
		}
	}

	return n
}

// WriteSelfTest prints results grouped by section with PASS/FAIL markers.
func WriteSelfTest(w io.Writer, results []CaseResult) error {
	var (
		b       strings.Builder
		section string
		mark    string
	)
	for i, r := range results {
		if r.Section != section {
			section = r.Section
			fmt.Fprintf(&b, "%s\nTESTING %s\n%s\n\n", ruleHeavy, strings.ToUpper(section), ruleHeavy)
		}
		mark = "PASS"
		if !r.Pass {
			mark = "FAIL"
		}
		fmt.Fprintf(&b, "Test %d: %s\n  Expected: %s\n  Got: %s\n  %s\n\n", i+1, r.Name, r.Expected, r.Got, mark)
	}
	fmt.Fprintf(&b, "%d/%d passed\n", len(results)-Failed(results), len(results))

	_, err := io.WriteString(w, b.String())

	return err
}
