// Package lvgreedy is a small toolkit of classical greedy optimizers framed
// around last-mile delivery:
//
//	activity/  — schedule the most non-overlapping deliveries (activity selection)
//	knapsack/  — load a truck by priority density (fractional knapsack)
//	partition/ — assign deliveries to the fewest drivers (interval partitioning)
//
// Supporting packages:
//
//	delivery/      — shared records, sentinel errors, boundary validation
//	scenario/      — deterministic scenario generator and JSON store (viant/afs)
//	report/        — benchmark and self-test harness
//	config/        — YAML + environment configuration
//	logging/       — zerolog setup
//	cmd/greedyctl/ — command line front end (cobra)
//
// Every optimizer is a pure function: it validates its input, sorts a private
// copy with a stable sort, runs one greedy pass and returns a plain result.
// Inputs are never mutated and results only reference input identifiers.
//
// Quick example:
//
//	res, _ := partition.Assign([]delivery.Interval{
//	    {ID: "A", Start: 1, End: 3},
//	    {ID: "B", Start: 2, End: 4},
//	    {ID: "C", Start: 4, End: 6},
//	})
//	// res.TrackCount == 2, res.Tracks == [[A C] [B]]
package lvgreedy
