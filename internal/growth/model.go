package growth

import (
	"math"
	"strings"
)

const (
	// BacteriumMassKg is the mass of a single bacterium.
	BacteriumMassKg = 7e-16
	// EarthMassKg is the mass of the Earth.
	EarthMassKg = 5.972e24
	// MoonMassKg is the mass of the Moon.
	MoonMassKg = 7.342e22

	DefaultInitialPopulation = 1.0
	DefaultDoublingMinutes   = 20.0

	minutesPerHour = 60.0
	minutesPerDay  = 24 * minutesPerHour
)

// ReferenceBody is a named mass used for magnitude comparisons.
type ReferenceBody struct {
	Name   string  `json:"name" yaml:"name" mapstructure:"name"`
	MassKg float64 `json:"mass_kg" yaml:"mass_kg" mapstructure:"mass_kg"`
}

// Constants holds the physical values a Model computes with.
type Constants struct {
	UnitMassKg float64
	References []ReferenceBody
}

// DefaultConstants returns the canonical value set: one bacterium, the Earth
// and the Moon.
func DefaultConstants() Constants {
	return Constants{
		UnitMassKg: BacteriumMassKg,
		References: []ReferenceBody{
			{Name: "Earth", MassKg: EarthMassKg},
			{Name: "Moon", MassKg: MoonMassKg},
		},
	}
}

// Parameters describes one growth question.
type Parameters struct {
	ElapsedMinutes    float64 `json:"elapsed_minutes" yaml:"elapsed_minutes"`
	DoublingMinutes   float64 `json:"doubling_minutes" yaml:"doubling_minutes"`
	InitialPopulation float64 `json:"initial_population" yaml:"initial_population"`
}

// Result is the state of the colony after Parameters.ElapsedMinutes.
type Result struct {
	Doublings       float64 `json:"doublings"`
	FinalPopulation float64 `json:"final_population"`
	TotalMassKg     float64 `json:"total_mass_kg"`
}

// Model computes exponential growth for a fixed set of Constants.
type Model struct {
	unitMassKg float64
	references []ReferenceBody
}

// New validates c and returns a Model that owns a copy of it.
func New(c Constants) (*Model, error) {
	if !isFinite(c.UnitMassKg) || c.UnitMassKg <= 0 {
		return nil, opError("new", ErrInvalidInput, "unit mass must be positive, got %g", c.UnitMassKg)
	}

	refs := make([]ReferenceBody, 0, len(c.References))
	seen := make(map[string]bool, len(c.References))
	for _, r := range c.References {
		key := strings.ToLower(strings.TrimSpace(r.Name))
		if key == "" {
			return nil, opError("new", ErrInvalidInput, "reference body without a name")
		}
		if seen[key] {
			return nil, opError("new", ErrInvalidInput, "duplicate reference body %q", r.Name)
		}
		if !isFinite(r.MassKg) || r.MassKg <= 0 {
			return nil, opError("new", ErrInvalidInput, "reference %q mass must be positive, got %g", r.Name, r.MassKg)
		}
		seen[key] = true
		refs = append(refs, r)
	}

	return &Model{unitMassKg: c.UnitMassKg, references: refs}, nil
}

var defaultModel = Default()

// Default returns a Model built from DefaultConstants.
func Default() *Model {
	m, err := New(DefaultConstants())
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Model) UnitMassKg() float64 { return m.unitMassKg }

// References returns a copy of the configured reference bodies.
func (m *Model) References() []ReferenceBody {
	out := make([]ReferenceBody, len(m.references))
	copy(out, m.references)
	return out
}

// Reference looks a body up by name, ignoring case.
func (m *Model) Reference(name string) (ReferenceBody, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, r := range m.references {
		if strings.ToLower(r.Name) == key {
			return r, true
		}
	}
	return ReferenceBody{}, false
}

// ComputeGrowth returns the colony after elapsedMinutes when it doubles every
// doublingMinutes. Negative elapsed times are valid and shrink the colony; the
// initial population must be positive.
func (m *Model) ComputeGrowth(elapsedMinutes, doublingMinutes, initialPopulation float64) (Result, error) {
	const op = "compute"

	if !isFinite(elapsedMinutes) || !isFinite(doublingMinutes) || !isFinite(initialPopulation) {
		return Result{}, opError(op, ErrInvalidInput, "elapsed=%g interval=%g initial=%g", elapsedMinutes, doublingMinutes, initialPopulation)
	}
	if doublingMinutes == 0 {
		return Result{}, opError(op, ErrDivision, "doubling interval is zero")
	}
	if initialPopulation <= 0 {
		return Result{}, opError(op, ErrInvalidInput, "initial population must be positive, got %g", initialPopulation)
	}

	doublings := elapsedMinutes / doublingMinutes
	population := initialPopulation * math.Pow(2, doublings)
	mass := population * m.unitMassKg

	if !isFinite(doublings) || !isFinite(population) || !isFinite(mass) {
		return Result{}, opError(op, ErrOutOfRange, "%g doublings", doublings)
	}

	return Result{
		Doublings:       doublings,
		FinalPopulation: population,
		TotalMassKg:     mass,
	}, nil
}

// ComputeGrowth runs Model.ComputeGrowth on the default constants.
func ComputeGrowth(elapsedMinutes, doublingMinutes, initialPopulation float64) (Result, error) {
	return defaultModel.ComputeGrowth(elapsedMinutes, doublingMinutes, initialPopulation)
}

// Compute is ComputeGrowth for a Parameters value. A zero initial population
// means the default of one bacterium.
func (m *Model) Compute(p Parameters) (Result, error) {
	initial := p.InitialPopulation
	if initial == 0 {
		initial = DefaultInitialPopulation
	}
	return m.ComputeGrowth(p.ElapsedMinutes, p.DoublingMinutes, initial)
}

// PopulationToMatch is the number of bacteria whose combined mass equals massKg.
func (m *Model) PopulationToMatch(massKg float64) float64 {
	return massKg / m.unitMassKg
}

// TimeToReach returns the minutes a colony of initialPopulation needs to weigh
// targetMassKg.
func (m *Model) TimeToReach(targetMassKg, doublingMinutes, initialPopulation float64) (float64, error) {
	const op = "time-to-reach"

	if doublingMinutes == 0 {
		return 0, opError(op, ErrDivision, "doubling interval is zero")
	}
	if !isFinite(targetMassKg) || targetMassKg <= 0 || !isFinite(initialPopulation) || initialPopulation <= 0 {
		return 0, opError(op, ErrInvalidInput, "target=%g initial=%g", targetMassKg, initialPopulation)
	}

	startMass := initialPopulation * m.unitMassKg
	return doublingMinutes * math.Log2(targetMassKg/startMass), nil
}

func DaysToMinutes(days float64) float64     { return days * minutesPerDay }
func HoursToMinutes(hours float64) float64   { return hours * minutesPerHour }
func MinutesToHours(minutes float64) float64 { return minutes / minutesPerHour }
func MinutesToDays(minutes float64) float64  { return minutes / minutesPerDay }

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
