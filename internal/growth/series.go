package growth

import "math"

// Sample is one point of a growth series.
type Sample struct {
	ElapsedMinutes float64 `json:"elapsed_minutes"`
	Result
}

// GenerateSeries returns sampleCount+1 evenly spaced samples over
// [0, totalElapsedMinutes], both ends included.
func (m *Model) GenerateSeries(totalElapsedMinutes, doublingMinutes, initialPopulation float64, sampleCount int) ([]Sample, error) {
	const op = "series"

	if sampleCount < 1 {
		return nil, opError(op, ErrInvalidInput, "sample count must be at least 1, got %d", sampleCount)
	}
	if !isFinite(totalElapsedMinutes) || totalElapsedMinutes <= 0 {
		return nil, opError(op, ErrInvalidInput, "total elapsed time must be positive, got %g", totalElapsedMinutes)
	}

	step := totalElapsedMinutes / float64(sampleCount)
	samples := make([]Sample, 0, sampleCount+1)
	for i := 0; i <= sampleCount; i++ {
		t := step * float64(i)
		if i == sampleCount {
			t = totalElapsedMinutes
		}
		res, err := m.ComputeGrowth(t, doublingMinutes, initialPopulation)
		if err != nil {
			return nil, err
		}
		samples = append(samples, Sample{ElapsedMinutes: t, Result: res})
	}
	return samples, nil
}

// GenerateSeries runs Model.GenerateSeries on the default constants.
func GenerateSeries(totalElapsedMinutes, doublingMinutes, initialPopulation float64, sampleCount int) ([]Sample, error) {
	return defaultModel.GenerateSeries(totalElapsedMinutes, doublingMinutes, initialPopulation, sampleCount)
}

// Line is the log10 population curve for one doubling interval.
type Line struct {
	DoublingMinutes float64
	Minutes         []float64
	Log10Population []float64
}

// MultiSeries builds one Line per doubling interval, sampling every
// stepMinutes from 0 to totalMinutes.
func (m *Model) MultiSeries(intervals []float64, totalMinutes, stepMinutes float64) ([]Line, error) {
	if stepMinutes <= 0 || !isFinite(stepMinutes) {
		return nil, opError("multi-series", ErrInvalidInput, "step must be positive, got %g", stepMinutes)
	}
	n := int(math.Floor(totalMinutes/stepMinutes + 1e-9))

	lines := make([]Line, 0, len(intervals))
	for _, interval := range intervals {
		samples, err := m.GenerateSeries(stepMinutes*float64(n), interval, DefaultInitialPopulation, n)
		if err != nil {
			return nil, err
		}
		line := Line{
			DoublingMinutes: interval,
			Minutes:         make([]float64, len(samples)),
			Log10Population: make([]float64, len(samples)),
		}
		for i, s := range samples {
			line.Minutes[i] = s.ElapsedMinutes
			line.Log10Population[i] = math.Log10(s.FinalPopulation)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// Log10Populations extracts log10 of each sample's population.
func Log10Populations(samples []Sample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = math.Log10(s.FinalPopulation)
	}
	return out
}

// Log10Masses extracts log10 of each sample's mass.
func Log10Masses(samples []Sample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = math.Log10(s.TotalMassKg)
	}
	return out
}
