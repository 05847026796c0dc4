package layout

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"microengineer/internal/celestial"
	"microengineer/internal/entry"
	"microengineer/internal/staging"
	"microengineer/internal/telemetry"
	"microengineer/pkg/logging"
)

const subsystem = "Layout"

// CustomBaseName prefixes the names of user-created panels.
const CustomBaseName = "Custom"

var (
	ErrPanelNotDeletable = errors.New("panel cannot be deleted")
	ErrPanelNotEditable  = errors.New("panel cannot be edited")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrDuplicateEntry    = errors.New("entry already in panel")
	ErrUnknownEntry      = errors.New("unknown entry")
	ErrUnknownPanel      = errors.New("unknown panel")
	ErrInvalidName       = errors.New("invalid panel name")
	ErrInvalidAbbrev     = errors.New("abbreviation must be 1 to 4 letters or digits")
)

var abbreviationPattern = regexp.MustCompile(`^[A-Za-z0-9]{1,4}$`)

// ValidateAbbreviation checks a panel abbreviation.
func ValidateAbbreviation(abbr string) error {
	if !abbreviationPattern.MatchString(abbr) {
		return fmt.Errorf("%w: %q", ErrInvalidAbbrev, abbr)
	}
	return nil
}

// Layout is the set of panels and the entry table they reference.
type Layout struct {
	bodies   *celestial.Table
	entries  *entry.Set
	panels   []*Panel
	stages   *staging.Table
	revision uint64
}

// New builds the default layout. bodies backs the assembly stage table.
func New(bodies *celestial.Table) *Layout {
	l := &Layout{bodies: bodies}
	l.ResetToDefaults()
	return l
}

// ResetToDefaults discards every panel and customization and rebuilds the
// default panels from a freshly built entry registry.
func (l *Layout) ResetToDefaults() {
	l.entries = entry.BuildAll()
	l.panels = defaultPanels(l.entries)
	l.stages = staging.NewTable(l.bodies)
	l.revision = 0
	logging.Info(subsystem, "Layout reset to %d default panels", len(l.panels))
}

// Entries is the entry table.
func (l *Layout) Entries() *entry.Set {
	return l.entries
}

// StageTable is the assembly stage table.
func (l *Layout) StageTable() *staging.Table {
	return l.stages
}

// Panels returns the panels in order.
func (l *Layout) Panels() []*Panel {
	return l.panels
}

// Panel looks a panel up by name.
func (l *Layout) Panel(name string) (*Panel, bool) {
	for _, p := range l.panels {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// PanelByRole returns the first panel with role r.
func (l *Layout) PanelByRole(r Role) (*Panel, bool) {
	for _, p := range l.panels {
		if p.Role == r {
			return p, true
		}
	}
	return nil, false
}

// EditablePanels returns the panels whose entries the user may edit.
func (l *Layout) EditablePanels() []*Panel {
	var out []*Panel
	for _, p := range l.panels {
		if p.IsEditable() {
			out = append(out, p)
		}
	}
	return out
}

// ActivePanels returns the panels shown in ctx.
func (l *Layout) ActivePanels(ctx Context) []*Panel {
	var out []*Panel
	for _, p := range l.panels {
		if p.IsActive(ctx) {
			out = append(out, p)
		}
	}
	return out
}

// Resolve returns the entries a panel references, skipping names the entry
// table does not know.
func (l *Layout) Resolve(p *Panel) []*entry.Entry {
	out := make([]*entry.Entry, 0, len(p.entries))
	for _, name := range p.entries {
		if e, ok := l.entries.Get(name); ok {
			out = append(out, e)
		}
	}
	return out
}

// Available returns the entries of category c that p does not contain yet.
func (l *Layout) Available(p *Panel, c entry.Category) []*entry.Entry {
	var out []*entry.Entry
	for _, e := range l.entries.ByCategory(c) {
		if e.IsSeparator() || !p.Contains(e.Name) {
			out = append(out, e)
		}
	}
	return out
}

// AddEntry appends the named entry to p. Separators may repeat; other
// entries appear at most once per panel.
func (l *Layout) AddEntry(p *Panel, name string) error {
	if !p.IsEditable() {
		return fmt.Errorf("%w: %s", ErrPanelNotEditable, p.Name)
	}
	e, ok := l.entries.Get(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownEntry, name)
	}
	if !e.IsSeparator() && p.Contains(name) {
		return fmt.Errorf("%w: %q in %s", ErrDuplicateEntry, name, p.Name)
	}
	p.entries = append(p.entries, name)
	return nil
}

// RemoveEntry removes the entry at index.
func (l *Layout) RemoveEntry(p *Panel, index int) error {
	if !p.IsEditable() {
		return fmt.Errorf("%w: %s", ErrPanelNotEditable, p.Name)
	}
	if index < 0 || index >= len(p.entries) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(p.entries))
	}
	p.entries = append(p.entries[:index], p.entries[index+1:]...)
	return nil
}

// MoveEntryUp swaps the entry at index with the one before it. Index 0 is a
// no-op.
func (l *Layout) MoveEntryUp(p *Panel, index int) error {
	if !p.IsEditable() {
		return fmt.Errorf("%w: %s", ErrPanelNotEditable, p.Name)
	}
	if index < 0 || index >= len(p.entries) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(p.entries))
	}
	if index == 0 {
		return nil
	}
	p.entries[index-1], p.entries[index] = p.entries[index], p.entries[index-1]
	return nil
}

// MoveEntryDown swaps the entry at index with the one after it. The last
// index is a no-op.
func (l *Layout) MoveEntryDown(p *Panel, index int) error {
	if !p.IsEditable() {
		return fmt.Errorf("%w: %s", ErrPanelNotEditable, p.Name)
	}
	if index < 0 || index >= len(p.entries) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(p.entries))
	}
	if index == len(p.entries)-1 {
		return nil
	}
	p.entries[index], p.entries[index+1] = p.entries[index+1], p.entries[index]
	return nil
}

// CreatePanel adds an empty custom panel named after the lowest unused
// suffix of CustomBaseName. It starts active in the flight context only.
func (l *Layout) CreatePanel() *Panel {
	n := l.nextCustomSuffix()
	p := newPanel(CustomBaseName+strconv.Itoa(n), customAbbreviation(n), "Custom panel", RoleCustom)
	p.states[ContextFlight].Active = true
	l.panels = append(l.panels, p)
	logging.Info(subsystem, "Created panel %s", p.Name)
	return p
}

func (l *Layout) nextCustomSuffix() int {
	used := make(map[int]bool)
	for _, p := range l.panels {
		if len(p.Name) <= len(CustomBaseName) || p.Name[:len(CustomBaseName)] != CustomBaseName {
			continue
		}
		if n, err := strconv.Atoi(p.Name[len(CustomBaseName):]); err == nil {
			used[n] = true
		}
	}
	n := 1
	for used[n] {
		n++
	}
	return n
}

// customAbbreviation is "Cu1" for one digit, "C12" for two and the bare
// number from three digits on.
func customAbbreviation(n int) string {
	s := strconv.Itoa(n)
	switch len(s) {
	case 1:
		return "Cu" + s
	case 2:
		return "C" + s
	default:
		return s
	}
}

// DeletePanel removes a custom panel. Other panels are left in place and
// ErrPanelNotDeletable is returned.
func (l *Layout) DeletePanel(p *Panel) error {
	if !p.IsDeletable() {
		return fmt.Errorf("%w: %s", ErrPanelNotDeletable, p.Name)
	}
	for i, candidate := range l.panels {
		if candidate == p {
			l.panels = append(l.panels[:i], l.panels[i+1:]...)
			logging.Info(subsystem, "Deleted panel %s", p.Name)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownPanel, p.Name)
}

// RenamePanel changes a custom or category panel's name and abbreviation.
func (l *Layout) RenamePanel(p *Panel, name, abbreviation string) error {
	if !p.IsEditable() {
		return fmt.Errorf("%w: %s", ErrPanelNotEditable, p.Name)
	}
	if name == "" {
		return ErrInvalidName
	}
	if other, ok := l.Panel(name); ok && other != p {
		return fmt.Errorf("%w: %q already exists", ErrInvalidName, name)
	}
	if err := ValidateAbbreviation(abbreviation); err != nil {
		return err
	}
	p.Name = name
	p.Abbreviation = abbreviation
	return nil
}

// SetTorque shows or hides the torque entry.
func (l *Layout) SetTorque(active bool) {
	if e, ok := l.entries.Get(entry.TorqueName); ok {
		e.Active = active
	}
}

// TorqueEnabled reports whether the torque entry is shown.
func (l *Layout) TorqueEnabled() bool {
	e, ok := l.entries.Get(entry.TorqueName)
	return ok && e.Active
}

// RefreshStats summarizes one Refresh.
type RefreshStats struct {
	Panels  int
	Entries int
	NoData  int
	// StagesUpdated is set when a new assembly solution reached the stage
	// table.
	StagesUpdated bool
}

// Refresh updates every visible entry of the panels active in ctx from s.
// Entries shared between panels refresh once.
func (l *Layout) Refresh(s *telemetry.Snapshot, ctx Context) RefreshStats {
	var stats RefreshStats
	seen := make(map[*entry.Entry]bool)

	for _, p := range l.panels {
		if !p.IsActive(ctx) {
			continue
		}
		stats.Panels++
		for _, e := range l.Resolve(p) {
			if seen[e] || !e.Visible() || e.IsSeparator() {
				continue
			}
			seen[e] = true
			e.Refresh(s)
			stats.Entries++
			if e.Value().Missing() {
				stats.NoData++
			}
			if e.Kind == entry.KindAssemblyStages {
				stats.StagesUpdated = l.syncStages(e) || stats.StagesUpdated
			}
		}
	}
	return stats
}

func (l *Layout) syncStages(e *entry.Entry) bool {
	v := e.Value()
	if v.Missing() || e.Revision() == l.revision && l.revision != 0 {
		return false
	}
	l.revision = e.Revision()
	l.stages.Update(v.Stages)
	logging.Debug(subsystem, "Assembly stage table updated to revision %d", l.revision)
	return true
}

func defaultPanels(set *entry.Set) []*Panel {
	mainPanel := newPanel("Micro Engineer", "MAIN", "Main window", RoleMain)
	mainPanel.states[ContextFlight].Active = true
	mainPanel.states[ContextMap].Active = true

	settings := newPanel("Settings", "SET", "Dashboard settings", RoleSettings)

	category := func(name, abbr string, c entry.Category, flight, mapView bool) *Panel {
		p := newPanel(name, abbr, c.String()+" entries", RoleCategory)
		p.states[ContextFlight].Active = flight
		p.states[ContextMap].Active = mapView
		for _, e := range set.Defaults(c) {
			p.entries = append(p.entries, e.Name)
		}
		return p
	}

	stage := newPanel("Stage", "STG", "Stage information", RoleStage)
	stage.states[ContextFlight].Active = true
	for _, e := range set.Defaults(entry.Stage) {
		stage.entries = append(stage.entries, e.Name)
	}

	assembly := newPanel("Stage (OAB)", "SOAB", "Stage information in the editor", RoleAssemblyStage)
	assembly.states[ContextEditor].Active = true
	assembly.states[ContextEditor].PoppedOut = true
	for _, e := range set.Defaults(entry.OAB) {
		assembly.entries = append(assembly.entries, e.Name)
	}

	return []*Panel{
		mainPanel,
		settings,
		category("Vessel", "VES", entry.Vessel, true, false),
		category("Orbital", "ORB", entry.Orbital, true, true),
		category("Surface", "SUR", entry.Surface, true, false),
		category("Flight", "FLT", entry.Flight, false, false),
		category("Target", "TGT", entry.Target, true, true),
		category("Maneuver", "MAN", entry.Maneuver, true, true),
		stage,
		assembly,
	}
}
