// Package units converts length literals to the canonical millimeter unit and
// formats millimeters back for labels.
package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
)

// Conversion factors to millimeters
const (
	MM   = 1.0
	CM   = 10.0
	M    = 1000.0
	Inch = 25.4
)

// Literal is a magnitude with an optional unit suffix.
// A bare number is millimeters.
type Literal struct {
	Magnitude float64 `parser:"@Number"`
	Unit      string  `parser:"@Unit?"`
}

// MM returns the literal in millimeters
func (l Literal) MM() float64 {
	return l.Magnitude * factor(l.Unit)
}

func (l Literal) String() string {
	return strconv.FormatFloat(l.Magnitude, 'f', -1, 64) + l.Unit
}

func factor(unit string) float64 {
	switch strings.ToLower(unit) {
	case "cm":
		return CM
	case "m":
		return M
	case "in", "inch", "inches", `"`:
		return Inch
	default:
		return MM
	}
}

// ParseError reports a length literal that could not be read
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid length %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var literalParser = participle.MustBuild[Literal](
	participle.Lexer(LengthLexer),
	participle.Elide("Whitespace"),
)

// Parse converts a literal such as "6in" or "150mm" to millimeters
func Parse(s string) (float64, error) {
	lit, err := literalParser.ParseString("", strings.TrimSpace(s))
	if err != nil {
		return 0, &ParseError{Input: s, Err: err}
	}
	return lit.MM(), nil
}

// MustParse is Parse for literals known at compile time
func MustParse(s string) float64 {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// System selects how lengths are displayed on labels
type System int

const (
	Metric System = iota
	Imperial
)

// SystemFor returns Imperial when inches is set
func SystemFor(inches bool) System {
	if inches {
		return Imperial
	}
	return Metric
}

func (s System) String() string {
	if s == Imperial {
		return "imperial"
	}
	return "metric"
}

// fractionDenominator is the finest inch fraction printed on labels
const fractionDenominator = 64

// Format renders a length in millimeters for a label
func (s System) Format(mm float64) string {
	if s == Imperial {
		return formatInches(mm / Inch)
	}
	return formatMillimeters(mm)
}

func formatMillimeters(mm float64) string {
	v := math.Round(mm*100) / 100
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + "mm"
}

// formatInches prints whole and fractional inches, e.g. 6 1/4", falling back
// to decimals when the value is not a multiple of 1/64.
func formatInches(in float64) string {
	sign := ""
	if in < 0 {
		sign = "-"
		in = -in
	}

	ticks := math.Round(in * fractionDenominator)
	if math.Abs(ticks/fractionDenominator-in) > 1e-6 {
		return sign + strconv.FormatFloat(math.Round(in*1000)/1000, 'f', -1, 64) + `"`
	}

	n := int64(ticks)
	whole := n / fractionDenominator
	num := n % fractionDenominator
	if num == 0 {
		if whole == 0 {
			sign = ""
		}
		return fmt.Sprintf(`%s%d"`, sign, whole)
	}

	den := int64(fractionDenominator)
	g := gcd(num, den)
	num, den = num/g, den/g
	if whole == 0 {
		return fmt.Sprintf(`%s%d/%d"`, sign, num, den)
	}
	return fmt.Sprintf(`%s%d %d/%d"`, sign, whole, num, den)
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
