package report

import (
	"fmt"
	"io"
	"strings"
	"time"
)

var (
	ruleHeavy = strings.Repeat("=", 70)
	ruleLight = strings.Repeat("-", 70)
)

// WriteText prints the report in the plain-text benchmark layout.
func (r *Report) WriteText(w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\nBENCHMARKING ON REALISTIC SCENARIOS\n%s\n", ruleHeavy, ruleHeavy)
	fmt.Fprintf(&b, "run %s\n\n", r.RunID)

	s := r.Selection
	fmt.Fprintf(&b, "Scenario 1: Package Prioritization (%d deliveries)\n%s\n", s.Total, ruleLight)
	fmt.Fprintf(&b, "  Deliveries scheduled: %d out of %d\n", s.Result.Len(), s.Total)
	fmt.Fprintf(&b, "  Runtime: %s ms\n\n", millis(s.Elapsed))

	l := r.Loading
	fmt.Fprintf(&b, "Scenario 2: Truck Loading (%d packages, %g lb limit)\n%s\n", l.Total, l.Capacity, ruleLight)
	fmt.Fprintf(&b, "  Total priority loaded: %.2f\n", l.Result.TotalValue)
	fmt.Fprintf(&b, "  Total weight loaded: %.2f lbs\n", l.Result.TotalWeight)
	fmt.Fprintf(&b, "  Packages used: %d\n", len(l.Result.Allocations))
	fmt.Fprintf(&b, "  Runtime: %s ms\n\n", millis(l.Elapsed))

	a := r.Assignment
	fmt.Fprintf(&b, "Scenario 3: Driver Assignment (%d deliveries)\n%s\n", a.Total, ruleLight)
	fmt.Fprintf(&b, "  Drivers needed: %d (peak overlap %d)\n", a.Result.TrackCount, a.Peak)
	fmt.Fprintf(&b, "  Runtime: %s ms\n", millis(a.Elapsed))

	_, err := io.WriteString(w, b.String())

	return err
}

// millis formats d in milliseconds with four decimals.
func millis(d time.Duration) string {
	return fmt.Sprintf("%.4f", float64(d)/float64(time.Millisecond))
}
