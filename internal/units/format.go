package units

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Placeholder is shown for values that cannot currently be computed.
const Placeholder = "-"

// NumberFormat selects how the mantissa is printed.
type NumberFormat int

const (
	// FormatNone prints the shortest representation that round-trips.
	FormatNone NumberFormat = iota
	// FormatNumber prints fixed decimals with thousands separators ("N").
	FormatNumber
	// FormatFixed prints fixed decimals without separators ("F").
	FormatFixed
)

// String returns the short format code.
func (f NumberFormat) String() string {
	switch f {
	case FormatNumber:
		return "N"
	case FormatFixed:
		return "F"
	default:
		return ""
	}
}

// AltUnit is an alternate unit reached by a fixed multiplicative factor,
// e.g. m/s -> km/h with Factor 3.6.
type AltUnit struct {
	Symbol string
	Factor float64
	Active bool
}

// Spec lists the unit symbols available for one entry. Empty symbols are
// skipped during prefix selection.
type Spec struct {
	Milli string
	Base  string
	Kilo  string
	Mega  string
	Giga  string
	Alt   *AltUnit
}

// HasUnit reports whether any symbol is defined.
func (s Spec) HasUnit() bool {
	return s.Base != "" || s.Milli != "" || s.Kilo != "" || s.Mega != "" || s.Giga != ""
}

// HasAltUnit reports whether an alternate unit is configured.
func (s Spec) HasAltUnit() bool {
	return s.Alt != nil && s.Alt.Symbol != ""
}

// Display is a formatted value split into number and unit, so renderers can
// align the two columns independently.
type Display struct {
	Value string
	Unit  string
}

// String joins value and unit with a single space.
func (d Display) String() string {
	if d.Unit == "" {
		return d.Value
	}
	return d.Value + " " + d.Unit
}

// Missing is the display of a value that is not available.
var Missing = Display{Value: Placeholder}

// IsMissing reports whether v carries no usable data.
func IsMissing(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// Format renders value with the unit spec. An active alternate unit bypasses
// prefix scaling.
func Format(value float64, spec Spec, decimals int, nf NumberFormat) Display {
	if IsMissing(value) {
		return Display{Value: Placeholder, Unit: spec.Base}
	}

	if spec.Alt != nil && spec.Alt.Active && spec.Alt.Symbol != "" {
		return Display{
			Value: FormatNumberValue(value*spec.Alt.Factor, decimals, nf),
			Unit:  spec.Alt.Symbol,
		}
	}

	scaled, unit, factor := scale(value, spec)
	// Rounding can carry the mantissa into the next prefix: 999.996 kg at
	// two decimals is 1.00 t.
	p := math.Pow(10, float64(max(decimals, 0)))
	if rounded := math.Round(scaled*p) / p; math.Abs(rounded) >= 1000 {
		scaled, unit, _ = scale(rounded*factor, spec)
	}
	return Display{Value: FormatNumberValue(scaled, decimals, nf), Unit: unit}
}

// Scale returns value expressed in the largest defined unit whose threshold
// its magnitude clears, together with that unit's symbol.
func Scale(value float64, spec Spec) (float64, string) {
	scaled, unit, _ := scale(value, spec)
	return scaled, unit
}

func scale(value float64, spec Spec) (float64, string, float64) {
	abs := math.Abs(value)
	switch {
	case spec.Giga != "" && abs >= 1e9:
		return value / 1e9, spec.Giga, 1e9
	case spec.Mega != "" && abs >= 1e6:
		return value / 1e6, spec.Mega, 1e6
	case spec.Kilo != "" && abs >= 1e3:
		return value / 1e3, spec.Kilo, 1e3
	case spec.Milli != "" && abs > 0 && abs < 1:
		return value * 1e3, spec.Milli, 1e-3
	}
	return value, spec.Base, 1
}

var printer = message.NewPrinter(language.English)

// FormatNumberValue prints a plain number with the given decimals and format.
func FormatNumberValue(value float64, decimals int, nf NumberFormat) string {
	if IsMissing(value) {
		return Placeholder
	}
	if decimals < 0 {
		decimals = 0
	}

	switch nf {
	case FormatNumber:
		return printer.Sprint(number.Decimal(roundTo(value, decimals), number.Scale(decimals)))
	case FormatFixed:
		return strconv.FormatFloat(roundTo(value, decimals), 'f', decimals, 64)
	default:
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
}

// roundTo rounds half away from zero and folds negative zero into zero so
// "-0.00" never reaches the display.
func roundTo(value float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	r := math.Round(value*p) / p
	if r == 0 {
		return 0
	}
	return r
}
