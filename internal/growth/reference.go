package growth

import "fmt"

// Comparison is the magnitude of a mass relative to a reference mass.
type Comparison struct {
	Ratio          float64 `json:"ratio"`
	AtOrAbove      bool    `json:"at_or_above"`
	PercentIfBelow float64 `json:"percent_if_below"`
}

// CompareToReference divides massKg by referenceMassKg. Below the reference
// the ratio is also reported as a percentage rounded to two decimals.
func CompareToReference(massKg, referenceMassKg float64) (Comparison, error) {
	const op = "compare"

	if !isFinite(massKg) || !isFinite(referenceMassKg) {
		return Comparison{}, opError(op, ErrInvalidInput, "mass=%g reference=%g", massKg, referenceMassKg)
	}
	if referenceMassKg == 0 {
		return Comparison{}, opError(op, ErrDivision, "reference mass is zero")
	}

	ratio := massKg / referenceMassKg
	if ratio >= 1 {
		return Comparison{Ratio: ratio, AtOrAbove: true}, nil
	}
	return Comparison{
		Ratio:          ratio,
		PercentIfBelow: RoundHalfUp(ratio*100, 2),
	}, nil
}

// Describe renders the comparison as a sentence about body.
func (c Comparison) Describe(f *Formatter, body string) string {
	if f == nil {
		f = defaultFormatter
	}
	if c.AtOrAbove {
		return fmt.Sprintf("%s times the mass of %s", f.FormatScientific(c.Ratio), body)
	}
	return fmt.Sprintf("%s%% of the mass of %s", FixedHalfUp(c.PercentIfBelow, 2), body)
}

// BodyComparison pairs a Comparison with the body it was made against.
type BodyComparison struct {
	Body ReferenceBody `json:"body"`
	Comparison
}

// CompareTo compares massKg against the named reference body.
func (m *Model) CompareTo(massKg float64, body string) (Comparison, error) {
	ref, ok := m.Reference(body)
	if !ok {
		return Comparison{}, opError("compare", ErrInvalidInput, "unknown reference body %q", body)
	}
	return CompareToReference(massKg, ref.MassKg)
}

// CompareAll compares massKg against every configured reference body, in
// configuration order.
func (m *Model) CompareAll(massKg float64) ([]BodyComparison, error) {
	out := make([]BodyComparison, 0, len(m.references))
	for _, ref := range m.references {
		c, err := CompareToReference(massKg, ref.MassKg)
		if err != nil {
			return nil, err
		}
		out = append(out, BodyComparison{Body: ref, Comparison: c})
	}
	return out, nil
}
