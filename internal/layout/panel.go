package layout

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Context is a presentation context with its own panel visibility.
type Context int

const (
	ContextFlight Context = iota
	ContextMap
	ContextEditor
	contextCount
)

// Contexts lists every presentation context.
func Contexts() []Context {
	return []Context{ContextFlight, ContextMap, ContextEditor}
}

func (c Context) String() string {
	switch c {
	case ContextFlight:
		return "flight"
	case ContextMap:
		return "map"
	case ContextEditor:
		return "editor"
	}
	return fmt.Sprintf("Context(%d)", int(c))
}

// ParseContext resolves a context name.
func ParseContext(s string) (Context, error) {
	for _, c := range Contexts() {
		if strings.EqualFold(c.String(), s) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown presentation context %q", s)
}

// Role is the structural kind of a panel.
type Role int

const (
	// RoleCategory panels are the built-in per-category panels.
	RoleCategory Role = iota
	// RoleCustom panels are created by the user and can be deleted.
	RoleCustom
	// RoleMain is the container that docked panels render into.
	RoleMain
	// RoleSettings holds dashboard settings and no entries.
	RoleSettings
	// RoleStage renders the in-flight stage table.
	RoleStage
	// RoleAssemblyStage renders the editor stage table.
	RoleAssemblyStage
)

var roleNames = map[Role]string{
	RoleCategory:      "category",
	RoleCustom:        "custom",
	RoleMain:          "main",
	RoleSettings:      "settings",
	RoleStage:         "stage",
	RoleAssemblyStage: "assembly-stage",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// ParseRole resolves a role name.
func ParseRole(s string) (Role, error) {
	for r, name := range roleNames {
		if name == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown panel role %q", s)
}

// Rect is a panel's position and size in terminal cells. Zero width or
// height means automatic sizing.
type Rect struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ContextState is a panel's state in one presentation context.
type ContextState struct {
	Active    bool
	PoppedOut bool
	Rect      Rect
}

// Panel is a named, ordered group of entry references.
type Panel struct {
	ID           string
	Name         string
	Abbreviation string
	Description  string
	Role         Role
	Locked       bool

	states  [contextCount]ContextState
	entries []string
}

func newPanel(name, abbreviation, description string, role Role) *Panel {
	return &Panel{
		ID:           uuid.NewString(),
		Name:         name,
		Abbreviation: abbreviation,
		Description:  description,
		Role:         role,
	}
}

// Entries returns a copy of the entry names in display order.
func (p *Panel) Entries() []string {
	out := make([]string, len(p.entries))
	copy(out, p.entries)
	return out
}

// Len is the number of entries.
func (p *Panel) Len() int {
	return len(p.entries)
}

// Contains reports whether the panel references the named entry.
func (p *Panel) Contains(name string) bool {
	for _, n := range p.entries {
		if n == name {
			return true
		}
	}
	return false
}

// IsDeletable reports whether the user may delete the panel.
func (p *Panel) IsDeletable() bool {
	return p.Role == RoleCustom
}

// IsEditable reports whether the panel's entries can be edited.
func (p *Panel) IsEditable() bool {
	switch p.Role {
	case RoleMain, RoleSettings, RoleStage, RoleAssemblyStage:
		return false
	}
	return true
}

// State returns the panel's state in ctx.
func (p *Panel) State(ctx Context) ContextState {
	if ctx < 0 || ctx >= contextCount {
		return ContextState{}
	}
	return p.states[ctx]
}

// IsActive reports whether the panel is shown in ctx.
func (p *Panel) IsActive(ctx Context) bool {
	return p.State(ctx).Active
}

// SetActive shows or hides the panel in ctx. A locked, popped-out panel
// cannot be closed.
func (p *Panel) SetActive(ctx Context, active bool) bool {
	if ctx < 0 || ctx >= contextCount {
		return false
	}
	if !active && p.Locked && p.states[ctx].PoppedOut {
		return false
	}
	p.states[ctx].Active = active
	return true
}

// IsPoppedOut reports whether the panel floats outside the main container.
func (p *Panel) IsPoppedOut(ctx Context) bool {
	return p.State(ctx).PoppedOut
}

// SetPoppedOut pops the panel out of, or docks it into, the main container.
func (p *Panel) SetPoppedOut(ctx Context, popped bool) {
	if ctx >= 0 && ctx < contextCount {
		p.states[ctx].PoppedOut = popped
	}
}

// SetRect moves or resizes the panel in ctx. Locked panels keep their rect.
func (p *Panel) SetRect(ctx Context, r Rect) bool {
	if ctx < 0 || ctx >= contextCount || p.Locked {
		return false
	}
	p.states[ctx].Rect = r
	return true
}
