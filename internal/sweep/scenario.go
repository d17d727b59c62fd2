package sweep

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/bactogrowth/internal/config"
	"github.com/san-kum/bactogrowth/internal/growth"
)

// Scenario is a scripted sequence of growth questions.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

// Step is a single growth question. A preset supplies every field the step
// leaves at zero; ElapsedDays wins over ElapsedMinutes when both are set.
type Step struct {
	Name              string  `yaml:"name"`
	Preset            string  `yaml:"preset"`
	ElapsedMinutes    float64 `yaml:"elapsed_minutes"`
	ElapsedDays       float64 `yaml:"elapsed_days"`
	DoublingMinutes   float64 `yaml:"doubling_minutes"`
	InitialPopulation float64 `yaml:"initial_population"`
	Samples           int     `yaml:"samples"`
	SaveAs            string  `yaml:"save_as"`
}

type StepResult struct {
	Step        Step
	Parameters  growth.Parameters
	Result      growth.Result
	Comparisons []growth.BodyComparison
	Series      []growth.Sample
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %q has no steps", scenario.Name)
	}
	return &scenario, nil
}

// Resolve fills the step's zero fields from its preset, then from the
// package defaults.
func (s Step) Resolve() (growth.Parameters, int, error) {
	base := config.DefaultConfig()
	if s.Preset != "" {
		p := config.GetPreset(s.Preset)
		if p == nil {
			return growth.Parameters{}, 0, fmt.Errorf("unknown preset: %s", s.Preset)
		}
		base = p
	}

	params := base.Parameters()
	samples := base.Samples
	switch {
	case s.ElapsedDays != 0:
		params.ElapsedMinutes = growth.DaysToMinutes(s.ElapsedDays)
	case s.ElapsedMinutes != 0:
		params.ElapsedMinutes = s.ElapsedMinutes
	}
	if s.DoublingMinutes != 0 {
		params.DoublingMinutes = s.DoublingMinutes
	}
	if s.InitialPopulation != 0 {
		params.InitialPopulation = s.InitialPopulation
	}
	if s.Samples > 0 {
		samples = s.Samples
	}
	return params, samples, nil
}

// RunScenario executes the steps in order. Results of the steps completed
// before a failure or cancellation are returned alongside the error.
func RunScenario(ctx context.Context, model *growth.Model, scenario *Scenario) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		params, samples, err := step.Resolve()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		res, err := model.Compute(params)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		cmp, err := model.CompareAll(res.TotalMassKg)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		series, err := model.GenerateSeries(params.ElapsedMinutes, params.DoublingMinutes, params.InitialPopulation, samples)
		if err != nil {
			return results, fmt.Errorf("step %d series: %w", i+1, err)
		}

		results = append(results, StepResult{
			Step:        step,
			Parameters:  params,
			Result:      res,
			Comparisons: cmp,
			Series:      series,
		})
	}

	return results, nil
}
