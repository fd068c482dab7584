package scenario

import (
	"errors"

	"github.com/katalvlaran/lvgreedy/delivery"
)

// Scenario file names inside a scenario location.
const (
	PrioritizationFile = "package_prioritization.json"
	TruckLoadingFile   = "truck_loading.json"
	AssignmentFile     = "driver_assignment.json"
)

var (
	// ErrBadSize indicates a negative record count.
	ErrBadSize = errors.New("scenario: invalid size")

	// ErrBadRange indicates an empty or inverted numeric range.
	ErrBadRange = errors.New("scenario: invalid range")

	// ErrDecode indicates a scenario file that is not valid JSON of the
	// expected shape.
	ErrDecode = errors.New("scenario: decode failed")
)

// Set bundles the inputs of the three optimizers.
type Set struct {
	// Prioritization feeds activity.Select.
	Prioritization []delivery.Interval
	// Packages and TruckCapacity feed knapsack.Fill.
	Packages      []delivery.Item
	TruckCapacity float64
	// Assignment feeds partition.Assign.
	Assignment []delivery.Interval
}

// windowRecord is the on-disk shape of one time window.
type windowRecord struct {
	DeliveryID string  `json:"delivery_id"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
}

// packageRecord is the on-disk shape of one package.
type packageRecord struct {
	PackageID string  `json:"package_id"`
	Weight    float64 `json:"weight"`
	Priority  float64 `json:"priority"`
	Ratio     float64 `json:"ratio"`
}

// truckRecord is the on-disk shape of truck_loading.json.
type truckRecord struct {
	Packages      []packageRecord `json:"packages"`
	TruckCapacity float64         `json:"truck_capacity"`
}
