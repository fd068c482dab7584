package scenario

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/lvgreedy/delivery"
)

// EncodeWindows renders windows in the delivery_id/start/end shape.
func EncodeWindows(windows []delivery.Interval) ([]byte, error) {
	recs := make([]windowRecord, len(windows))
	for i, w := range windows {
		recs[i] = windowRecord{DeliveryID: w.ID, Start: w.Start, End: w.End}
	}

	return json.MarshalIndent(recs, "", "  ")
}

// DecodeWindows parses a JSON array of delivery_id/start/end records.
// Record values are not validated here; the optimizers do that.
func DecodeWindows(data []byte) ([]delivery.Interval, error) {
	var recs []windowRecord
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("%w: windows: %v", ErrDecode, err)
	}
	out := make([]delivery.Interval, len(recs))
	for i, r := range recs {
		out[i] = delivery.Interval{ID: r.DeliveryID, Start: r.Start, End: r.End}
	}

	return out, nil
}

// EncodeTruck renders packages and capacity in the truck_loading shape.
func EncodeTruck(items []delivery.Item, capacity float64) ([]byte, error) {
	rec := truckRecord{Packages: make([]packageRecord, len(items)), TruckCapacity: capacity}
	for i, it := range items {
		rec.Packages[i] = packageRecord{PackageID: it.ID, Weight: it.Weight, Priority: it.Value, Ratio: ratio(it)}
	}

	return json.MarshalIndent(rec, "", "  ")
}

// DecodeTruck parses a truck_loading document into items and capacity.
func DecodeTruck(data []byte) ([]delivery.Item, float64, error) {
	var rec truckRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, 0, fmt.Errorf("%w: truck: %v", ErrDecode, err)
	}
	out := make([]delivery.Item, len(rec.Packages))
	for i, p := range rec.Packages {
		out[i] = delivery.Item{ID: p.PackageID, Weight: p.Weight, Value: p.Priority}
	}

	return out, rec.TruckCapacity, nil
}
