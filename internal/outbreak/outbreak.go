// Package outbreak estimates how long an unchecked epidemic takes to reach
// the whole world when the number of cases doubles at a fixed rate.
package outbreak

import (
	"math"

	"github.com/san-kum/bactogrowth/internal/growth"
)

const (
	WorldPopulation     = 8e9
	DefaultDoublingDays = 3.0
)

// Variant is a named strain with its basic reproduction number.
type Variant struct {
	Name string  `json:"name" yaml:"name"`
	R0   float64 `json:"r0" yaml:"r0"`
}

// Estimate is the contagion time computed for one Variant.
type Estimate struct {
	Variant
	Days float64 `json:"days"`
}

func DefaultVariants() []Variant {
	return []Variant{
		{Name: "COVID-19 original", R0: 2.5},
		{Name: "Delta", R0: 6},
		{Name: "Omicron", R0: 10},
	}
}

// WorldContagionDays is the number of days a single case takes to double
// its way up to population.
func WorldContagionDays(population, doublingDays float64) (float64, error) {
	if doublingDays <= 0 || math.IsNaN(doublingDays) || math.IsInf(doublingDays, 0) {
		return 0, &growth.Error{Op: "outbreak", Detail: "doubling time must be positive", Err: growth.ErrInvalidInput}
	}
	if population < 1 || math.IsInf(population, 0) || math.IsNaN(population) {
		return 0, &growth.Error{Op: "outbreak", Detail: "population must be at least 1", Err: growth.ErrInvalidInput}
	}
	return math.Log2(population) * doublingDays, nil
}

// Estimates computes the contagion time for each variant. R0 is carried for
// display only: the estimate depends on the doubling time alone.
func Estimates(variants []Variant, population, doublingDays float64) ([]Estimate, error) {
	days, err := WorldContagionDays(population, doublingDays)
	if err != nil {
		return nil, err
	}
	out := make([]Estimate, len(variants))
	for i, v := range variants {
		out[i] = Estimate{Variant: v, Days: days}
	}
	return out, nil
}
