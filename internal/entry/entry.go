package entry

import (
	"fmt"

	"microengineer/internal/telemetry"
	"microengineer/internal/units"
	"microengineer/pkg/logging"
)

// RefreshFunc reads one value out of a snapshot. It must treat every part of
// the snapshot, including the snapshot itself, as possibly nil.
type RefreshFunc func(s *telemetry.Snapshot) Value

// Entry is one displayable telemetry value.
type Entry struct {
	Name        string
	Description string
	Category    Category
	Kind        Kind
	IsDefault   bool

	Units    units.Spec
	Decimals int
	Format   units.NumberFormat

	// Toggleable entries can be switched off; inactive ones are hidden.
	Toggleable bool
	Active     bool

	refresh  RefreshFunc
	value    Value
	revision uint64
}

// HasUnit reports whether the entry carries unit metadata.
func (e *Entry) HasUnit() bool {
	return e.Units.HasUnit()
}

// HasAltUnit reports whether the entry has an alternate unit to toggle.
func (e *Entry) HasAltUnit() bool {
	return e.Units.HasAltUnit()
}

// IsTableRow reports whether the entry draws as a stage table rather than a
// name/value/unit row.
func (e *Entry) IsTableRow() bool {
	return e.Kind == KindFlightStages || e.Kind == KindAssemblyStages
}

// IsSeparator reports whether the entry is a blank spacer row.
func (e *Entry) IsSeparator() bool {
	return e.Kind == KindSeparator
}

// Visible reports whether the entry should be drawn.
func (e *Entry) Visible() bool {
	return !e.Toggleable || e.Active
}

// SetAltUnit switches the alternate unit on or off. It is a no-op for
// entries without one.
func (e *Entry) SetAltUnit(active bool) {
	if e.HasAltUnit() {
		e.Units.Alt.Active = active
	}
}

// AltUnitActive reports whether the alternate unit is in use.
func (e *Entry) AltUnitActive() bool {
	return e.HasAltUnit() && e.Units.Alt.Active
}

// Refresh pulls the entry's value from s. Assembly stage tables only take a
// new value when the snapshot carries a newer solution revision.
func (e *Entry) Refresh(s *telemetry.Snapshot) {
	if e.refresh == nil || e.IsSeparator() {
		return
	}

	if e.Kind == KindAssemblyStages {
		rev := assemblyRevision(s)
		if rev != 0 && rev == e.revision && !e.value.Missing() {
			return
		}
		e.revision = rev
	}

	e.value = e.safeRefresh(s)
}

func (e *Entry) safeRefresh(s *telemetry.Snapshot) (v Value) {
	defer func() {
		if r := recover(); r != nil {
			logging.Error("Registry", fmt.Errorf("%v", r), "Refresh of %s panicked", e.Name)
			v = NoData
		}
	}()
	return e.refresh(s)
}

// Value returns the last refreshed value.
func (e *Entry) Value() Value {
	if e.value.present {
		return e.value
	}
	return NoData
}

// Revision is the assembly solution revision the value was taken from.
func (e *Entry) Revision() uint64 {
	return e.revision
}

// Display derives the formatted value and unit.
func (e *Entry) Display() units.Display {
	v := e.Value()
	switch e.Kind {
	case KindSeparator:
		return units.Display{}
	case KindText:
		if v.Missing() {
			return units.Missing
		}
		return units.Display{Value: v.Text}
	case KindDuration:
		return units.Display{Value: units.FormatDuration(v.Number, 0)}
	case KindLatitude:
		return units.Display{Value: units.FormatDMS(v.Number, "N", "S")}
	case KindLongitude:
		return units.Display{Value: units.FormatDMS(v.Number, "E", "W")}
	case KindFlightStages, KindAssemblyStages:
		if v.Missing() {
			return units.Missing
		}
		return units.Display{Value: fmt.Sprintf("%d", len(v.Stages)), Unit: "stages"}
	default:
		return units.Format(v.Number, e.Units, e.Decimals, e.Format)
	}
}

// String is the display value and unit joined.
func (e *Entry) String() string {
	return e.Display().String()
}

func assemblyRevision(s *telemetry.Snapshot) uint64 {
	if s == nil || s.Assembly == nil {
		return 0
	}
	return s.Assembly.Revision
}
