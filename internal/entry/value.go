package entry

import (
	"math"

	"microengineer/internal/staging"
	"microengineer/internal/units"
)

// Value is the last refreshed value of an entry. Which field is meaningful
// depends on the entry's Kind.
type Value struct {
	Number  float64
	Text    string
	Stages  []staging.Stage
	present bool
}

// NoData is the sentinel for values the telemetry source cannot supply.
var NoData = Value{Number: math.NaN()}

// Num wraps a number. NaN and infinities become NoData.
func Num(v float64) Value {
	if units.IsMissing(v) {
		return NoData
	}
	return Value{Number: v, present: true}
}

// Str wraps a string. The empty string is NoData.
func Str(s string) Value {
	if s == "" {
		return NoData
	}
	return Value{Number: math.NaN(), Text: s, present: true}
}

// StageList wraps stage records. A nil slice is NoData; an empty one is a
// valid solution without stages.
func StageList(stages []staging.Stage) Value {
	if stages == nil {
		return NoData
	}
	out := make([]staging.Stage, len(stages))
	copy(out, stages)
	return Value{Number: math.NaN(), Stages: out, present: true}
}

// Missing reports whether v is the no-data sentinel.
func (v Value) Missing() bool {
	return !v.present
}
