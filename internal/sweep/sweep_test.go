package sweep

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/bactogrowth/internal/growth"
)

const scenarioYAML = `
name: classroom day
description: one day at three doubling intervals
steps:
  - name: fast
    doubling_minutes: 20
    elapsed_minutes: 120
    samples: 6
  - name: page
    preset: page
  - name: lab week
    preset: lab
    elapsed_days: 0.5
`

func TestParseScenario(t *testing.T) {
	sc, err := ParseScenario([]byte(scenarioYAML))
	require.NoError(t, err)

	assert.Equal(t, "classroom day", sc.Name)
	require.Len(t, sc.Steps, 3)
	assert.Equal(t, "page", sc.Steps[1].Preset)
	assert.Equal(t, 0.5, sc.Steps[2].ElapsedDays)
}

func TestParseScenarioNoSteps(t *testing.T) {
	_, err := ParseScenario([]byte("name: empty\n"))
	assert.Error(t, err)
}

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scenarioYAML), 0644))

	sc, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Len(t, sc.Steps, 3)

	_, err = LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestStepResolve(t *testing.T) {
	params, samples, err := Step{Preset: "lab", ElapsedDays: 0.5}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, 720.0, params.ElapsedMinutes)
	assert.Equal(t, 20.0, params.DoublingMinutes)
	assert.Equal(t, 7.0, params.InitialPopulation)
	assert.Equal(t, 72, samples)

	_, _, err = Step{Preset: "nope"}.Resolve()
	assert.Error(t, err)
}

func TestRunScenario(t *testing.T) {
	sc, err := ParseScenario([]byte(scenarioYAML))
	require.NoError(t, err)

	results, err := RunScenario(context.Background(), growth.Default(), sc)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, 64.0, results[0].Result.FinalPopulation)
	assert.Len(t, results[0].Series, 7)
	assert.InDelta(t, 144, results[1].Result.Doublings, 1e-9)
	assert.Len(t, results[1].Comparisons, 2)
	assert.Equal(t, 7*math.Pow(2, 36), results[2].Result.FinalPopulation)
}

func TestRunScenarioStopsOnError(t *testing.T) {
	sc := &Scenario{Steps: []Step{
		{ElapsedMinutes: 60, DoublingMinutes: 20},
		{ElapsedMinutes: 60, DoublingMinutes: 20, Preset: "missing"},
	}}

	results, err := RunScenario(context.Background(), growth.Default(), sc)
	assert.Error(t, err)
	assert.Len(t, results, 1)
}

func TestRunScenarioCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sc, err := ParseScenario([]byte(scenarioYAML))
	require.NoError(t, err)

	results, err := RunScenario(ctx, growth.Default(), sc)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}

func TestSweepIntervals(t *testing.T) {
	s := &Sweep{IntervalMin: 20, IntervalMax: 40, Steps: 3}
	got, err := s.Intervals()
	require.NoError(t, err)
	assert.Equal(t, []float64{20, 30, 40}, got)

	one, err := (&Sweep{IntervalMin: 20, IntervalMax: 40, Steps: 1}).Intervals()
	require.NoError(t, err)
	assert.Equal(t, []float64{20}, one)

	_, err = (&Sweep{IntervalMin: 0, IntervalMax: 40, Steps: 3}).Intervals()
	assert.Error(t, err)
	_, err = (&Sweep{IntervalMin: 20, IntervalMax: 40, Steps: 0}).Intervals()
	assert.Error(t, err)
}

func TestRunSweep(t *testing.T) {
	m := growth.Default()
	s := &Sweep{IntervalMin: 20, IntervalMax: 40, Steps: 3, TargetMassKg: growth.EarthMassKg}

	results, err := RunSweep(context.Background(), m, s)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, want := range []float64{20, 30, 40} {
		assert.Equal(t, want, results[i].DoublingMinutes)
	}

	doublings := math.Log2(growth.EarthMassKg / growth.BacteriumMassKg)
	assert.InDelta(t, 20*doublings, results[0].MinutesToTarget, 1e-6)
	assert.InDelta(t, 2*results[0].MinutesToTarget, results[2].MinutesToTarget, 1e-6)
	assert.InDelta(t, results[0].MinutesToTarget/1440, results[0].DaysToTarget, 1e-9)
}

func TestRunSweepInvalidTarget(t *testing.T) {
	s := &Sweep{IntervalMin: 20, IntervalMax: 40, Steps: 3, TargetMassKg: -1}
	_, err := RunSweep(context.Background(), growth.Default(), s)
	assert.ErrorIs(t, err, growth.ErrInvalidInput)
}

func TestRunSweepCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := &Sweep{IntervalMin: 20, IntervalMax: 40, Steps: 4, TargetMassKg: growth.MoonMassKg}
	_, err := RunSweep(ctx, growth.Default(), s)
	assert.ErrorIs(t, err, context.Canceled)
}
