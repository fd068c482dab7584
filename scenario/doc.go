// Package scenario produces and persists the three delivery scenarios the
// optimizers are benchmarked on:
//
//   - package_prioritization.json — time windows for activity.Select
//   - truck_loading.json          — packages + truck capacity for knapsack.Fill
//   - driver_assignment.json      — time windows for partition.Assign
//
// Generation is deterministic: the same Options (including Seed) always
// yield the same Set. Seed 0 selects a fixed default seed.
//
// Storage goes through github.com/viant/afs, so a scenario location may be a
// local directory or any URL afs understands.
//
// File shapes:
//
//	[{"delivery_id": "PKG-001", "start": 9, "end": 11}, ...]
//	{"packages": [{"package_id": "PKG-001", "weight": 12, "priority": 80, "ratio": 6.67}, ...],
//	 "truck_capacity": 500}
//
// "ratio" is written for readers and ignored on load.
package scenario
