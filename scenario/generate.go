package scenario

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvgreedy/delivery"
)

// MaxRangeValue bounds every generator range so that Max-Min+1 and
// start+duration stay within int on 32-bit platforms.
const MaxRangeValue = 1 << 29

// Range is an inclusive integer range [Min, Max].
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// WindowSpec describes a batch of generated time windows.
type WindowSpec struct {
	Count    int    `yaml:"count"`
	Prefix   string `yaml:"prefix"`
	Start    Range  `yaml:"start"`
	Duration Range  `yaml:"duration"`
}

// PackageSpec describes a batch of generated packages.
type PackageSpec struct {
	Count    int    `yaml:"count"`
	Prefix   string `yaml:"prefix"`
	Weight   Range  `yaml:"weight"`
	Priority Range  `yaml:"priority"`
	Capacity int    `yaml:"capacity"`
}

// Options configures Generate.
type Options struct {
	Seed           int64       `yaml:"seed"`
	Prioritization WindowSpec  `yaml:"prioritization"`
	TruckLoading   PackageSpec `yaml:"truck_loading"`
	Assignment     WindowSpec  `yaml:"assignment"`
}

// DefaultOptions returns the classic sizes: 50 windows between 8 and 16
// lasting 1–4 hours, 100 packages of 5–50 lbs with priority 10–200 for a
// 500 lb truck, and 60 deliveries between 8 and 18 lasting 1–3 hours.
func DefaultOptions() Options {
	return Options{
		Prioritization: WindowSpec{Count: 50, Prefix: "PKG", Start: Range{8, 16}, Duration: Range{1, 4}},
		TruckLoading: PackageSpec{
			Count: 100, Prefix: "PKG",
			Weight: Range{5, 50}, Priority: Range{10, 200},
			Capacity: 500,
		},
		Assignment: WindowSpec{Count: 60, Prefix: "DEL", Start: Range{8, 18}, Duration: Range{1, 3}},
	}
}

// Generate builds a deterministic Set from opts.
//
// All three batches draw from one RNG stream in a fixed order
// (prioritization, truck loading, assignment), so changing one batch's
// count shifts the later batches.
func Generate(opts Options) (Set, error) {
	if err := validateOptions(opts); err != nil {
		return Set{}, err
	}
	rng := rngFromSeed(opts.Seed)

	var set Set
	set.Prioritization = make([]delivery.Interval, opts.Prioritization.Count)
	for i := range set.Prioritization {
		set.Prioritization[i] = window(rng, opts.Prioritization, i)
	}

	set.Packages = make([]delivery.Item, opts.TruckLoading.Count)
	for i := range set.Packages {
		set.Packages[i] = delivery.Item{
			ID:     recordID(opts.TruckLoading.Prefix, i),
			Weight: float64(intIn(rng, opts.TruckLoading.Weight)),
			Value:  float64(intIn(rng, opts.TruckLoading.Priority)),
		}
	}
	set.TruckCapacity = float64(opts.TruckLoading.Capacity)

	set.Assignment = make([]delivery.Interval, opts.Assignment.Count)
	for i := range set.Assignment {
		set.Assignment[i] = window(rng, opts.Assignment, i)
	}

	return set, nil
}

// window draws the i-th window of spec.
func window(rng *rand.Rand, spec WindowSpec, i int) delivery.Interval {
	start := intIn(rng, spec.Start)
	duration := intIn(rng, spec.Duration)

	return delivery.Interval{
		ID:    recordID(spec.Prefix, i),
		Start: float64(start),
		End:   float64(start + duration),
	}
}

// recordID formats the 1-based identifier, e.g. PKG-001.
func recordID(prefix string, i int) string {
	return fmt.Sprintf("%s-%03d", prefix, i+1)
}

// ratio is the informational priority/weight ratio, rounded to 2 decimals.
func ratio(it delivery.Item) float64 {
	return math.Round(it.Density()*100) / 100
}

// validateOptions rejects counts and ranges that cannot produce valid records.
func validateOptions(opts Options) error {
	for _, ws := range []struct {
		name string
		spec WindowSpec
	}{{"prioritization", opts.Prioritization}, {"assignment", opts.Assignment}} {
		if ws.spec.Count < 0 {
			return fmt.Errorf("%w: %s count=%d", ErrBadSize, ws.name, ws.spec.Count)
		}
		if ws.spec.Start.Min < 0 || ws.spec.Start.Max < ws.spec.Start.Min || ws.spec.Start.Max > MaxRangeValue {
			return fmt.Errorf("%w: %s start %v", ErrBadRange, ws.name, ws.spec.Start)
		}
		if ws.spec.Duration.Min < 1 || ws.spec.Duration.Max < ws.spec.Duration.Min || ws.spec.Duration.Max > MaxRangeValue {
			return fmt.Errorf("%w: %s duration %v", ErrBadRange, ws.name, ws.spec.Duration)
		}
	}

	tl := opts.TruckLoading
	if tl.Count < 0 {
		return fmt.Errorf("%w: truck_loading count=%d", ErrBadSize, tl.Count)
	}
	if tl.Weight.Min < 1 || tl.Weight.Max < tl.Weight.Min || tl.Weight.Max > MaxRangeValue {
		return fmt.Errorf("%w: truck_loading weight %v", ErrBadRange, tl.Weight)
	}
	if tl.Priority.Min < 0 || tl.Priority.Max < tl.Priority.Min || tl.Priority.Max > MaxRangeValue {
		return fmt.Errorf("%w: truck_loading priority %v", ErrBadRange, tl.Priority)
	}
	if tl.Capacity < 0 {
		return fmt.Errorf("%w: truck_loading capacity=%d", ErrBadRange, tl.Capacity)
	}

	return nil
}
