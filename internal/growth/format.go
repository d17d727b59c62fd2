package growth

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	scientificUpper = 1e6
	scientificLower = 1e-6
	displayDigits   = 2
)

// DefaultLocale is the locale display strings are grouped for when none is given.
var DefaultLocale = language.Spanish

var defaultFormatter = NewFormatter(DefaultLocale)

// minimumGroupingDigits lists the languages whose CLDR data only groups the
// integer part once it has at least this many digits beyond the first group,
// so es renders 1234,5 but 12.345,5.
var minimumGroupingDigits = map[string]int{
	"es": 2,
	"pl": 2,
}

// Formatter renders numbers for display in one locale. Output is meant for
// people and is never parsed back.
type Formatter struct {
	tag language.Tag
}

func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{tag: tag}
}

// ParseLocale builds a Formatter from a BCP 47 tag such as "es-ES" or "en".
func ParseLocale(s string) (*Formatter, error) {
	if strings.TrimSpace(s) == "" {
		return NewFormatter(DefaultLocale), nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", s, err)
	}
	return NewFormatter(tag), nil
}

func (f *Formatter) Locale() language.Tag { return f.tag }

// FormatScientific renders v in normalized scientific notation with two
// mantissa digits when |v| >= 1e6 or 0 < |v| <= 1e-6, and as a locale-grouped
// decimal with at most two fractional digits otherwise.
//
// Example:
//
//	FormatScientific(1234567)  -> "1.23e+6"
//	FormatScientific(1.97e15)  -> "1.97e+15"
//	FormatScientific(7e-16)    -> "7.00e-16"
//	FormatScientific(42.345)   -> "42,35" (es), "42.35" (en)
func (f *Formatter) FormatScientific(v float64) string {
	if !isFinite(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	abs := math.Abs(v)
	if abs >= scientificUpper || (abs > 0 && abs <= scientificLower) {
		return Exponential(v, displayDigits)
	}
	return f.FormatDecimal(v, displayDigits)
}

// FormatDecimal rounds v half away from zero to maxFraction digits and
// groups the integer part for the Formatter's locale.
func (f *Formatter) FormatDecimal(v float64, maxFraction int) string {
	rounded := RoundHalfUp(v, maxFraction)
	opts := []number.Option{number.MaxFractionDigits(maxFraction)}
	if f.belowMinimumGrouping(rounded) {
		opts = append(opts, number.NoSeparator())
	}
	p := message.NewPrinter(f.tag)
	return p.Sprintf("%v", number.Decimal(rounded, opts...))
}

func (f *Formatter) belowMinimumGrouping(v float64) bool {
	base, _ := f.tag.Base()
	digits, ok := minimumGroupingDigits[base.String()]
	if !ok {
		return false
	}
	return math.Abs(v) < math.Pow10(3+digits-1)
}

// FormatScientific formats v with the default locale.
func FormatScientific(v float64) string {
	return defaultFormatter.FormatScientific(v)
}

// Exponential renders v with the given mantissa digits and an exponent
// without zero padding, e.g. 1.23e+6 rather than 1.23e+06.
func Exponential(v float64, digits int) string {
	s := strconv.FormatFloat(v, 'e', digits, 64)
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+2 > len(s) {
		return s
	}
	mantissa, sign, exp := s[:i], s[i+1], strings.TrimLeft(s[i+2:], "0")
	if exp == "" {
		exp = "0"
	}
	return mantissa + "e" + string(sign) + exp
}

// RoundHalfUp rounds v to places fractional digits, ties away from zero,
// working on the shortest decimal representation of v.
func RoundHalfUp(v float64, places int) float64 {
	if !isFinite(v) {
		return v
	}
	return decimal.NewFromFloat(v).Round(int32(places)).InexactFloat64()
}

// FixedHalfUp is RoundHalfUp rendered with exactly places digits and no grouping.
func FixedHalfUp(v float64, places int) string {
	if !isFinite(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(int32(places))
}
