// Package input turns raw text from forms, flags and sliders into growth
// parameters.
package input

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/bactogrowth/internal/growth"
)

// Policy decides what happens to malformed input.
type Policy int

const (
	// Strict rejects any field that does not parse as a finite number.
	Strict Policy = iota
	// Lenient mirrors the classroom page: integer fields are truncated and a
	// missing, unparsable or non-positive initial population becomes one
	// bacterium.
	Lenient
)

func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case Lenient:
		return "lenient"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// TimeUnit is the unit the elapsed time was entered in.
type TimeUnit int

const (
	Minutes TimeUnit = iota
	Hours
	Days
)

// Raw is the untyped input of one simulation request.
type Raw struct {
	Elapsed           string
	Unit              TimeUnit
	DoublingMinutes   string
	InitialPopulation string
}

// FieldError reports which field failed to parse.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: cannot use %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Parse converts raw into growth.Parameters under the given policy.
func Parse(raw Raw, policy Policy) (growth.Parameters, error) {
	elapsed, err := parseNumber("elapsed", raw.Elapsed, false)
	if err != nil {
		return growth.Parameters{}, err
	}
	switch raw.Unit {
	case Hours:
		elapsed = growth.HoursToMinutes(elapsed)
	case Days:
		elapsed = growth.DaysToMinutes(elapsed)
	}

	interval, err := parseNumber("doubling", raw.DoublingMinutes, policy == Lenient)
	if err != nil {
		return growth.Parameters{}, err
	}

	initial := growth.DefaultInitialPopulation
	if policy == Lenient {
		if v, perr := parseNumber("initial", raw.InitialPopulation, true); perr == nil && v > 0 {
			initial = v
		}
	} else if strings.TrimSpace(raw.InitialPopulation) != "" {
		initial, err = parseNumber("initial", raw.InitialPopulation, false)
		if err != nil {
			return growth.Parameters{}, err
		}
		if initial <= 0 {
			return growth.Parameters{}, &FieldError{Field: "initial", Value: raw.InitialPopulation, Err: growth.ErrInvalidInput}
		}
	}

	return growth.Parameters{
		ElapsedMinutes:    elapsed,
		DoublingMinutes:   interval,
		InitialPopulation: initial,
	}, nil
}

func parseNumber(field, s string, truncate bool) (float64, error) {
	trimmed := strings.TrimSpace(s)
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &FieldError{Field: field, Value: s, Err: growth.ErrInvalidInput}
	}
	if truncate {
		v = math.Trunc(v)
	}
	return v, nil
}
