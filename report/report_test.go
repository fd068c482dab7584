package report_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgreedy/delivery"
	"github.com/katalvlaran/lvgreedy/partition"
	"github.com/katalvlaran/lvgreedy/report"
	"github.com/katalvlaran/lvgreedy/scenario"
)

func TestBench_DefaultScenarios(t *testing.T) {
	set, err := scenario.Generate(scenario.DefaultOptions())
	require.NoError(t, err)

	var logs bytes.Buffer
	rep, err := report.Bench(set, report.DefaultOptions(), zerolog.New(&logs).Level(zerolog.DebugLevel))
	require.NoError(t, err)

	_, err = uuid.Parse(rep.RunID)
	assert.NoError(t, err, "run id must be a uuid")

	assert.Equal(t, 50, rep.Selection.Total)
	assert.Greater(t, rep.Selection.Result.Len(), 0)
	assert.Equal(t, 100, rep.Loading.Total)
	assert.LessOrEqual(t, rep.Loading.Result.TotalWeight, 500.0)
	assert.Equal(t, 60, rep.Assignment.Total)
	assert.Equal(t, rep.Assignment.Peak, rep.Assignment.Result.TrackCount)

	assert.Contains(t, logs.String(), rep.RunID)
	assert.Contains(t, logs.String(), "benchmark complete")

	var out bytes.Buffer
	require.NoError(t, rep.WriteText(&out))
	text := out.String()
	assert.Contains(t, text, "Scenario 1: Package Prioritization (50 deliveries)")
	assert.Contains(t, text, "Scenario 2: Truck Loading (100 packages, 500 lb limit)")
	assert.Contains(t, text, "Scenario 3: Driver Assignment (60 deliveries)")
	assert.Contains(t, text, "Runtime: ")

	data, err := json.Marshal(rep)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"total_value"`)
	assert.Contains(t, string(data), `"track_count"`)
}

func TestBench_StrategiesAgree(t *testing.T) {
	set, err := scenario.Generate(scenario.DefaultOptions())
	require.NoError(t, err)

	ff, err := report.Bench(set, report.DefaultOptions(), zerolog.Nop())
	require.NoError(t, err)
	opts := report.DefaultOptions()
	opts.Strategy = partition.FreeList
	fl, err := report.Bench(set, opts, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, ff.Assignment.Result, fl.Assignment.Result)
	assert.NotEqual(t, ff.RunID, fl.RunID)
}

func TestBench_PropagatesInputErrors(t *testing.T) {
	set := scenario.Set{
		Prioritization: []delivery.Interval{{ID: "A", Start: 3, End: 1}},
		TruckCapacity:  10,
	}
	_, err := report.Bench(set, report.DefaultOptions(), zerolog.Nop())
	assert.ErrorIs(t, err, delivery.ErrInvalidInterval)

	set = scenario.Set{TruckCapacity: -5}
	_, err = report.Bench(set, report.DefaultOptions(), zerolog.Nop())
	assert.ErrorIs(t, err, delivery.ErrInvalidCapacity)
}

func TestSelfTest_AllPass(t *testing.T) {
	for _, s := range []partition.Strategy{partition.FirstFit, partition.FreeList} {
		opts := report.DefaultOptions()
		opts.Strategy = s
		results, err := report.SelfTest(opts)
		require.NoError(t, err)
		require.Len(t, results, 9)
		assert.Equal(t, 0, report.Failed(results), "%+v", results)
	}
}

func TestWriteSelfTest(t *testing.T) {
	results, err := report.SelfTest(report.DefaultOptions())
	require.NoError(t, err)
	results = append(results, report.CaseResult{Section: "extra", Name: "forced", Expected: "x", Got: "y"})

	var out bytes.Buffer
	require.NoError(t, report.WriteSelfTest(&out, results))
	text := out.String()
	assert.Contains(t, text, "TESTING PACKAGE PRIORITIZATION")
	assert.Contains(t, text, "TESTING TRUCK LOADING")
	assert.Contains(t, text, "TESTING DRIVER ASSIGNMENT")
	assert.Contains(t, text, "priority=240.00 weight=50.00")
	assert.Contains(t, text, "FAIL")
	assert.Contains(t, text, "9/10 passed")
}
