package entry

import (
	"fmt"
	"strings"
)

// Category groups entries by domain. Default panels are built per category.
type Category int

const (
	Vessel Category = iota
	Orbital
	Surface
	Flight
	Target
	Maneuver
	Stage
	Misc
	OAB
)

var categoryNames = map[Category]string{
	Vessel:   "Vessel",
	Orbital:  "Orbital",
	Surface:  "Surface",
	Flight:   "Flight",
	Target:   "Target",
	Maneuver: "Maneuver",
	Stage:    "Stage",
	Misc:     "Misc",
	OAB:      "OAB",
}

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{Vessel, Orbital, Surface, Flight, Target, Maneuver, Stage, Misc, OAB}
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ParseCategory resolves a category name, ignoring case.
func ParseCategory(s string) (Category, error) {
	for c, name := range categoryNames {
		if strings.EqualFold(name, s) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown entry category %q", s)
}

// Kind selects how an entry's value is displayed.
type Kind int

const (
	// KindNumber is a unit-scaled number.
	KindNumber Kind = iota
	// KindText is a plain string such as a vessel name.
	KindText
	// KindDuration is a time span in seconds.
	KindDuration
	// KindLatitude is degrees rendered as DMS with N/S.
	KindLatitude
	// KindLongitude is degrees rendered as DMS with E/W.
	KindLongitude
	// KindFlightStages is the in-flight stage table.
	KindFlightStages
	// KindAssemblyStages is the editor stage table with per-stage bodies.
	KindAssemblyStages
	// KindSeparator renders an empty row.
	KindSeparator
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindDuration:
		return "duration"
	case KindLatitude:
		return "latitude"
	case KindLongitude:
		return "longitude"
	case KindFlightStages:
		return "flight-stages"
	case KindAssemblyStages:
		return "assembly-stages"
	case KindSeparator:
		return "separator"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}
