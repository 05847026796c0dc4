package staging

import (
	"errors"
	"fmt"
	"sync"

	"microengineer/internal/celestial"
	"microengineer/pkg/logging"
)

const subsystem = "Staging"

// ErrStageOutOfRange is returned when a row position does not exist.
var ErrStageOutOfRange = errors.New("stage row out of range")

// Table is the assembly stage table. Every displayed row carries one selected
// body, keyed by its position in display order; selections default to the
// reference body and survive updates while the row still exists.
type Table struct {
	bodies *celestial.Table

	mu         sync.RWMutex
	stages     []Stage
	total      int
	selections []string
	rows       []Row
}

// NewTable creates an empty table backed by bodies.
func NewTable(bodies *celestial.Table) *Table {
	return &Table{bodies: bodies}
}

// Update replaces the stage records and recomputes all rows.
func (t *Table) Update(stages []Stage) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.total = len(stages)
	t.stages = DisplayOrder(stages)

	selections := make([]string, len(t.stages))
	for i := range selections {
		if i < len(t.selections) && t.selections[i] != "" {
			selections[i] = t.selections[i]
			continue
		}
		selections[i] = t.bodies.ReferenceName()
	}
	t.selections = selections
	t.recompute()
}

// Reset drops every body selection back to the reference body.
func (t *Table) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.selections {
		t.selections[i] = t.bodies.ReferenceName()
	}
	t.recompute()
}

// SelectBody sets the body of the row at pos and recomputes that row.
func (t *Table) SelectBody(pos int, name string) error {
	if _, err := t.bodies.Get(name); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if pos < 0 || pos >= len(t.selections) {
		return fmt.Errorf("%w: %d of %d", ErrStageOutOfRange, pos, len(t.selections))
	}
	t.selections[pos] = name
	t.rows[pos] = t.computeAt(pos)
	logging.Debug(subsystem, "Stage %s recomputed for %s", t.rows[pos].Label, name)
	return nil
}

// CycleBody advances the row at pos to the next body in the table.
func (t *Table) CycleBody(pos int) error {
	t.mu.RLock()
	if pos < 0 || pos >= len(t.selections) {
		n := len(t.selections)
		t.mu.RUnlock()
		return fmt.Errorf("%w: %d of %d", ErrStageOutOfRange, pos, n)
	}
	next := t.bodies.Next(t.selections[pos])
	t.mu.RUnlock()
	return t.SelectBody(pos, next)
}

// Selection returns the body selected for the row at pos.
func (t *Table) Selection(pos int) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if pos < 0 || pos >= len(t.selections) {
		return "", fmt.Errorf("%w: %d of %d", ErrStageOutOfRange, pos, len(t.selections))
	}
	return t.selections[pos], nil
}

// Rows returns a copy of the current rows in display order.
func (t *Table) Rows() []Row {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Row, len(t.rows))
	copy(out, t.rows)
	return out
}

// Len is the number of displayed rows.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// TWRDecimals is the precision shared by both TWR columns.
func (t *Table) TWRDecimals() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	twrs := make([]float64, 0, 2*len(t.rows))
	for _, r := range t.rows {
		twrs = append(twrs, r.TWRVac, r.TWRASL)
	}
	return TWRDecimals(twrs)
}

func (t *Table) recompute() {
	t.rows = make([]Row, len(t.stages))
	for i := range t.stages {
		t.rows[i] = t.computeAt(i)
	}
}

func (t *Table) computeAt(pos int) Row {
	stage := t.stages[pos]
	name := t.selections[pos]

	factor, err := t.bodies.TWRFactor(name)
	if err != nil {
		logging.Warn(subsystem, "Using unscaled TWR for %s: %v", name, err)
	}

	ratio := 1.0
	label := name
	body, bodyErr := t.bodies.Get(name)
	ref, refErr := t.bodies.Reference()
	if bodyErr == nil && refErr == nil {
		ratio = DensityRatio(body, ref)
		label = body.Label()
	}

	row := ComputeRow(stage, factor, ratio)
	row.Number = Number(t.total, stage.Stage)
	row.Label = Label(row.Number)
	row.Body = name
	row.BodyLabel = label
	return row
}
