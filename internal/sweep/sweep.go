package sweep

import (
	"context"
	"fmt"
	"sync"

	"github.com/san-kum/bactogrowth/internal/growth"
)

// Sweep asks how long colonies with different doubling intervals take to
// weigh TargetMassKg.
type Sweep struct {
	IntervalMin       float64
	IntervalMax       float64
	Steps             int
	TargetMassKg      float64
	InitialPopulation float64
}

type SweepResult struct {
	DoublingMinutes float64
	MinutesToTarget float64
	DaysToTarget    float64
}

// Intervals lists the doubling intervals the sweep visits, both bounds included.
func (s *Sweep) Intervals() ([]float64, error) {
	if s.Steps < 1 {
		return nil, fmt.Errorf("sweep needs at least 1 step, got %d", s.Steps)
	}
	if s.IntervalMin <= 0 || s.IntervalMax < s.IntervalMin {
		return nil, fmt.Errorf("invalid interval range [%g, %g]", s.IntervalMin, s.IntervalMax)
	}
	if s.Steps == 1 {
		return []float64{s.IntervalMin}, nil
	}

	step := (s.IntervalMax - s.IntervalMin) / float64(s.Steps-1)
	out := make([]float64, s.Steps)
	for i := range out {
		out[i] = s.IntervalMin + float64(i)*step
	}
	out[len(out)-1] = s.IntervalMax
	return out, nil
}

// RunSweep evaluates every interval concurrently. Results keep interval order.
func RunSweep(ctx context.Context, model *growth.Model, sweep *Sweep) ([]SweepResult, error) {
	intervals, err := sweep.Intervals()
	if err != nil {
		return nil, err
	}

	initial := sweep.InitialPopulation
	if initial == 0 {
		initial = growth.DefaultInitialPopulation
	}

	results := make([]SweepResult, len(intervals))
	errs := make([]error, len(intervals))

	var wg sync.WaitGroup
	for i, interval := range intervals {
		wg.Add(1)
		go func(idx int, interval float64) {
			defer wg.Done()

			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}

			minutes, err := model.TimeToReach(sweep.TargetMassKg, interval, initial)
			if err != nil {
				errs[idx] = fmt.Errorf("interval %g: %w", interval, err)
				return
			}
			results[idx] = SweepResult{
				DoublingMinutes: interval,
				MinutesToTarget: minutes,
				DaysToTarget:    growth.MinutesToDays(minutes),
			}
		}(i, interval)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
