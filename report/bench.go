package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvgreedy/activity"
	"github.com/katalvlaran/lvgreedy/knapsack"
	"github.com/katalvlaran/lvgreedy/partition"
	"github.com/katalvlaran/lvgreedy/scenario"
)

// Options configures the optimizers invoked by the harness.
type Options struct {
	Precision int
	Strategy  partition.Strategy
}

// DefaultOptions mirrors the optimizers' own defaults.
func DefaultOptions() Options {
	return Options{Precision: knapsack.DefaultPrecision, Strategy: partition.FirstFit}
}

// SelectionRun summarizes activity.Select on the prioritization scenario.
type SelectionRun struct {
	Total   int             `json:"total"`
	Result  activity.Result `json:"result"`
	Elapsed time.Duration   `json:"elapsed_ns"`
}

// LoadingRun summarizes knapsack.Fill on the truck loading scenario.
type LoadingRun struct {
	Total    int             `json:"total"`
	Capacity float64         `json:"capacity"`
	Result   knapsack.Result `json:"result"`
	Elapsed  time.Duration   `json:"elapsed_ns"`
}

// AssignmentRun summarizes partition.Assign on the driver scenario.
type AssignmentRun struct {
	Total   int              `json:"total"`
	Peak    int              `json:"peak_overlap"`
	Result  partition.Result `json:"result"`
	Elapsed time.Duration    `json:"elapsed_ns"`
}

// Report is the outcome of one Bench run.
type Report struct {
	RunID      string        `json:"run_id"`
	Selection  SelectionRun  `json:"selection"`
	Loading    LoadingRun    `json:"loading"`
	Assignment AssignmentRun `json:"assignment"`
}

// Bench runs each optimizer once on its scenario and measures the wall-clock
// time of the call alone. The first optimizer error aborts the run.
func Bench(set scenario.Set, opts Options, logger zerolog.Logger) (*Report, error) {
	rep := &Report{RunID: uuid.NewString()}
	logger = logger.With().Str("run_id", rep.RunID).Logger()

	// 1) Package prioritization.
	start := time.Now()
	sel, err := activity.Select(set.Prioritization)
	elapsed := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("package prioritization: %w", err)
	}
	rep.Selection = SelectionRun{Total: len(set.Prioritization), Result: sel, Elapsed: elapsed}
	logger.Debug().Int("scheduled", sel.Len()).Int("total", len(set.Prioritization)).
		Dur("elapsed", elapsed).Msg("package prioritization done")

	// 2) Truck loading.
	start = time.Now()
	load, err := knapsack.Fill(set.Packages, set.TruckCapacity, knapsack.WithPrecision(opts.Precision))
	elapsed = time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("truck loading: %w", err)
	}
	rep.Loading = LoadingRun{Total: len(set.Packages), Capacity: set.TruckCapacity, Result: load, Elapsed: elapsed}
	logger.Debug().Float64("total_value", load.TotalValue).Float64("total_weight", load.TotalWeight).
		Int("packages", len(load.Allocations)).Dur("elapsed", elapsed).Msg("truck loading done")

	// 3) Driver assignment.
	start = time.Now()
	asg, err := partition.Assign(set.Assignment, partition.WithStrategy(opts.Strategy))
	elapsed = time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("driver assignment: %w", err)
	}
	peak, err := partition.MaxOverlap(set.Assignment)
	if err != nil {
		return nil, fmt.Errorf("driver assignment: %w", err)
	}
	rep.Assignment = AssignmentRun{Total: len(set.Assignment), Peak: peak, Result: asg, Elapsed: elapsed}
	logger.Debug().Int("drivers", asg.TrackCount).Int("peak", peak).Str("strategy", opts.Strategy.String()).
		Dur("elapsed", elapsed).Msg("driver assignment done")

	logger.Info().Msg("benchmark complete")

	return rep, nil
}
