package celestial

import (
	"errors"
	"fmt"
	"sync"

	"microengineer/pkg/logging"
)

const subsystem = "Celestial"

// ErrUnknownBody is returned when a body name is not in the table.
var ErrUnknownBody = errors.New("unknown celestial body")

// Provider supplies the bodies known to the host simulation.
type Provider interface {
	Bodies() ([]Body, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func() ([]Body, error)

// Bodies implements Provider.
func (f ProviderFunc) Bodies() ([]Body, error) { return f() }

// Table is a lazily-populated, read-only cache of bodies.
type Table struct {
	provider  Provider
	reference string

	once   sync.Once
	bodies []Body
	byName map[string]int
	err    error
}

// NewTable creates a table that populates itself from provider on first use.
// reference names the home body all TWR figures are computed against.
func NewTable(provider Provider, reference string) *Table {
	return &Table{provider: provider, reference: reference}
}

func (t *Table) populate() {
	t.once.Do(func() {
		t.byName = make(map[string]int)
		if t.provider == nil {
			t.err = errors.New("no celestial body provider configured")
			logging.Error(subsystem, t.err, "Body table left empty")
			return
		}

		bodies, err := t.provider.Bodies()
		if err != nil {
			t.err = fmt.Errorf("loading celestial bodies: %w", err)
			logging.Error(subsystem, err, "Body table left empty")
			return
		}

		for _, b := range bodies {
			if b.Name == "" {
				logging.Warn(subsystem, "Skipping body without a name")
				continue
			}
			if _, dup := t.byName[b.Name]; dup {
				logging.Warn(subsystem, "Skipping duplicate body %s", b.Name)
				continue
			}
			if b.SurfaceGravity() <= 0 {
				logging.Warn(subsystem, "Skipping body %s with non-positive surface gravity", b.Name)
				continue
			}
			t.byName[b.Name] = len(t.bodies)
			t.bodies = append(t.bodies, b)
		}
		logging.Info(subsystem, "Loaded %d celestial bodies (reference %s)", len(t.bodies), t.reference)
	})
}

// Err reports the population error, if any.
func (t *Table) Err() error {
	t.populate()
	return t.err
}

// Bodies returns the bodies in provider order. The slice must not be modified.
func (t *Table) Bodies() []Body {
	t.populate()
	return t.bodies
}

// Len is the number of bodies in the table.
func (t *Table) Len() int {
	return len(t.Bodies())
}

// Get looks a body up by name.
func (t *Table) Get(name string) (Body, error) {
	t.populate()
	i, ok := t.byName[name]
	if !ok {
		return Body{}, fmt.Errorf("%w: %q", ErrUnknownBody, name)
	}
	return t.bodies[i], nil
}

// ReferenceName is the name of the home body.
func (t *Table) ReferenceName() string {
	return t.reference
}

// Reference returns the home body.
func (t *Table) Reference() (Body, error) {
	return t.Get(t.reference)
}

// TWRFactor converts a TWR computed against the reference body's gravity into
// one for the named body: g_ref / g_body. The reference body is exactly 1.
func (t *Table) TWRFactor(name string) (float64, error) {
	if name == t.reference {
		return 1, nil
	}
	ref, err := t.Reference()
	if err != nil {
		return 1, err
	}
	body, err := t.Get(name)
	if err != nil {
		return 1, err
	}
	return ref.SurfaceGravity() / body.SurfaceGravity(), nil
}

// Next returns the body after name in table order, wrapping around. Unknown
// names yield the reference body.
func (t *Table) Next(name string) string {
	bodies := t.Bodies()
	if len(bodies) == 0 {
		return t.reference
	}
	i, ok := t.byName[name]
	if !ok {
		return t.reference
	}
	return bodies[(i+1)%len(bodies)].Name
}
