package entry

import (
	"fmt"

	"microengineer/pkg/logging"
)

const subsystem = "Registry"

// constructor builds one entry variant.
type constructor func() *Entry

// constructors is every entry variant known to the dashboard.
func constructors() []constructor {
	groups := [][]constructor{
		vesselEntries,
		orbitalEntries,
		surfaceEntries,
		flightEntries,
		targetEntries,
		maneuverEntries,
		stageEntries,
		miscEntries,
		assemblyEntries,
	}
	var all []constructor
	for _, g := range groups {
		all = append(all, g...)
	}
	return all
}

// Set is a built collection of entries indexed by name and category.
type Set struct {
	entries    []*Entry
	byName     map[string]*Entry
	byCategory map[Category][]*Entry
}

// BuildAll instantiates every known entry variant. Variants that fail to
// build are logged and skipped.
func BuildAll() *Set {
	return build(constructors())
}

func build(cs []constructor) *Set {
	set := &Set{
		byName:     make(map[string]*Entry, len(cs)),
		byCategory: make(map[Category][]*Entry),
	}
	for i, c := range cs {
		e, err := instantiate(c)
		if err != nil {
			logging.Error(subsystem, err, "Skipping entry constructor #%d", i)
			continue
		}
		if _, dup := set.byName[e.Name]; dup {
			logging.Warn(subsystem, "Skipping duplicate entry %q", e.Name)
			continue
		}
		set.entries = append(set.entries, e)
		set.byName[e.Name] = e
		set.byCategory[e.Category] = append(set.byCategory[e.Category], e)
	}
	logging.Debug(subsystem, "Built %d entries", len(set.entries))
	return set
}

func instantiate(c constructor) (e *Entry, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("constructor panicked: %v", r)
		}
	}()
	e = c()
	if e == nil {
		return nil, fmt.Errorf("constructor returned no entry")
	}
	if e.Name == "" {
		return nil, fmt.Errorf("entry of category %s has no name", e.Category)
	}
	e.value = NoData
	return e, nil
}

// All returns the entries in registration order.
func (s *Set) All() []*Entry {
	return s.entries
}

// Len is the number of entries.
func (s *Set) Len() int {
	return len(s.entries)
}

// Get looks an entry up by name.
func (s *Set) Get(name string) (*Entry, bool) {
	e, ok := s.byName[name]
	return e, ok
}

// ByCategory returns the entries of c in registration order.
func (s *Set) ByCategory(c Category) []*Entry {
	return s.byCategory[c]
}

// Defaults returns the entries of c that default panels include.
func (s *Set) Defaults(c Category) []*Entry {
	var out []*Entry
	for _, e := range s.byCategory[c] {
		if e.IsDefault {
			out = append(out, e)
		}
	}
	return out
}

// Names lists every entry name in registration order.
func (s *Set) Names() []string {
	names := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.Name
	}
	return names
}
