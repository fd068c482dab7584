package activity_test

import (
	"fmt"

	"github.com/katalvlaran/lvgreedy/activity"
	"github.com/katalvlaran/lvgreedy/delivery"
)

// ExampleSelect schedules the largest number of deliveries a single courier
// can complete back to back.
func ExampleSelect() {
	windows := []delivery.Interval{
		{ID: "A", Start: 1, End: 3},
		{ID: "B", Start: 2, End: 5},
		{ID: "C", Start: 4, End: 7},
		{ID: "D", Start: 6, End: 9},
	}
	res, err := activity.Select(windows)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(res.Len(), res.IDs)
	// Output: 2 [A C]
}
