package layout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"microengineer/pkg/logging"
)

// Version tags the layout document format. Documents with another version
// are ignored.
const Version = "1.2"

// ErrLayoutVersion is returned for documents written by another format.
var ErrLayoutVersion = errors.New("unsupported layout version")

// Document is the persisted form of a Layout.
type Document struct {
	Version    string        `yaml:"version"`
	ShowTorque bool          `yaml:"showTorque,omitempty"`
	AltUnits   []string      `yaml:"altUnits,omitempty"`
	Panels     []PanelRecord `yaml:"panels"`
}

// PanelRecord is the persisted form of a Panel.
type PanelRecord struct {
	ID           string                   `yaml:"id,omitempty"`
	Name         string                   `yaml:"name"`
	Abbreviation string                   `yaml:"abbreviation"`
	Description  string                   `yaml:"description,omitempty"`
	Role         string                   `yaml:"role"`
	Locked       bool                     `yaml:"locked,omitempty"`
	Contexts     map[string]ContextRecord `yaml:"contexts,omitempty"`
	Entries      []string                 `yaml:"entries,omitempty"`
}

// ContextRecord is the persisted form of a ContextState.
type ContextRecord struct {
	Active    bool `yaml:"active,omitempty"`
	PoppedOut bool `yaml:"poppedOut,omitempty"`
	Rect      Rect `yaml:"rect,omitempty"`
}

// Document captures the layout for persistence.
func (l *Layout) Document() Document {
	doc := Document{
		Version:    Version,
		ShowTorque: l.TorqueEnabled(),
		Panels:     make([]PanelRecord, 0, len(l.panels)),
	}
	for _, e := range l.entries.All() {
		if e.AltUnitActive() {
			doc.AltUnits = append(doc.AltUnits, e.Name)
		}
	}
	for _, p := range l.panels {
		rec := PanelRecord{
			ID:           p.ID,
			Name:         p.Name,
			Abbreviation: p.Abbreviation,
			Description:  p.Description,
			Role:         p.Role.String(),
			Locked:       p.Locked,
			Contexts:     make(map[string]ContextRecord),
			Entries:      p.Entries(),
		}
		for _, ctx := range Contexts() {
			st := p.states[ctx]
			if st == (ContextState{}) {
				continue
			}
			rec.Contexts[ctx.String()] = ContextRecord{Active: st.Active, PoppedOut: st.PoppedOut, Rect: st.Rect}
		}
		doc.Panels = append(doc.Panels, rec)
	}
	return doc
}

// Apply replaces the panels with the ones in doc, re-linking entries by
// name. Invalid panel records are skipped and unknown entry names dropped.
// Special panels missing from doc are restored from the defaults. A version
// mismatch leaves the layout untouched.
func (l *Layout) Apply(doc Document) error {
	if doc.Version != Version {
		return fmt.Errorf("%w: %q (want %q)", ErrLayoutVersion, doc.Version, Version)
	}

	panels := make([]*Panel, 0, len(doc.Panels))
	names := make(map[string]bool)
	for i, rec := range doc.Panels {
		p, err := l.panelFromRecord(rec)
		if err != nil {
			logging.Warn(subsystem, "Skipping panel record #%d: %v", i, err)
			continue
		}
		if names[p.Name] {
			logging.Warn(subsystem, "Skipping duplicate panel %q", p.Name)
			continue
		}
		names[p.Name] = true
		panels = append(panels, p)
	}

	for _, def := range defaultPanels(l.entries) {
		if def.Role == RoleCategory || def.Role == RoleCustom {
			continue
		}
		if !hasRole(panels, def.Role) {
			logging.Info(subsystem, "Restoring missing %s panel", def.Role)
			panels = append(panels, def)
		}
	}

	l.panels = panels
	l.SetTorque(doc.ShowTorque)
	for _, e := range l.entries.All() {
		e.SetAltUnit(false)
	}
	for _, name := range doc.AltUnits {
		if e, ok := l.entries.Get(name); ok {
			e.SetAltUnit(true)
		}
	}
	return nil
}

func (l *Layout) panelFromRecord(rec PanelRecord) (*Panel, error) {
	if rec.Name == "" {
		return nil, ErrInvalidName
	}
	role, err := ParseRole(rec.Role)
	if err != nil {
		return nil, err
	}
	if err := ValidateAbbreviation(rec.Abbreviation); err != nil {
		return nil, err
	}

	p := newPanel(rec.Name, rec.Abbreviation, rec.Description, role)
	if _, err := uuid.Parse(rec.ID); err == nil {
		p.ID = rec.ID
	}
	p.Locked = rec.Locked

	for name, cr := range rec.Contexts {
		ctx, err := ParseContext(name)
		if err != nil {
			logging.Warn(subsystem, "Panel %s: %v", rec.Name, err)
			continue
		}
		p.states[ctx] = ContextState{Active: cr.Active, PoppedOut: cr.PoppedOut, Rect: cr.Rect}
	}

	for _, name := range rec.Entries {
		e, ok := l.entries.Get(name)
		if !ok {
			logging.Debug(subsystem, "Panel %s: dropping unknown entry %q", rec.Name, name)
			continue
		}
		if !e.IsSeparator() && p.Contains(name) {
			continue
		}
		p.entries = append(p.entries, name)
	}
	return p, nil
}

func hasRole(panels []*Panel, r Role) bool {
	for _, p := range panels {
		if p.Role == r {
			return true
		}
	}
	return false
}

// Marshal encodes the layout as YAML.
func (l *Layout) Marshal() ([]byte, error) {
	doc := l.Document()
	return yaml.Marshal(&doc)
}

// rawDocument defers panel decoding so one malformed record cannot fail the
// whole file.
type rawDocument struct {
	Version    string      `yaml:"version"`
	ShowTorque bool        `yaml:"showTorque,omitempty"`
	AltUnits   []string    `yaml:"altUnits,omitempty"`
	Panels     []yaml.Node `yaml:"panels"`
}

// Unmarshal decodes YAML and applies it. Panel records that fail to decode
// are skipped.
func (l *Layout) Unmarshal(data []byte) error {
	var raw rawDocument
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing layout: %w", err)
	}

	doc := Document{
		Version:    raw.Version,
		ShowTorque: raw.ShowTorque,
		AltUnits:   raw.AltUnits,
		Panels:     make([]PanelRecord, 0, len(raw.Panels)),
	}
	for i := range raw.Panels {
		var rec PanelRecord
		if err := raw.Panels[i].Decode(&rec); err != nil {
			logging.Warn(subsystem, "Skipping panel record #%d: %v", i, err)
			continue
		}
		doc.Panels = append(doc.Panels, rec)
	}
	return l.Apply(doc)
}

// Save writes the layout to path, creating parent directories.
func (l *Layout) Save(path string) error {
	data, err := l.Marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating layout directory: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing layout: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing layout: %w", err)
	}
	logging.Debug(subsystem, "Saved layout to %s", path)
	return nil
}

// Load reads the layout from path. A missing file is not an error; the
// current layout is kept.
func (l *Layout) Load(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logging.Debug(subsystem, "No layout at %s, keeping defaults", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading layout: %w", err)
	}
	if err := l.Unmarshal(data); err != nil {
		return err
	}
	logging.Info(subsystem, "Loaded %d panels from %s", len(l.panels), path)
	return nil
}
