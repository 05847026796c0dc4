package telemetry

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Recording is the on-disk form of a replay.
type Recording struct {
	Frames []Snapshot `yaml:"frames"`
}

// Replay serves recorded snapshots in order, starting over after the last.
type Replay struct {
	mu     sync.Mutex
	frames []Snapshot
	next   int
}

// LoadReplay reads a YAML recording from path.
func LoadReplay(path string) (*Replay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	r, err := ParseRecording(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// ParseRecording decodes a YAML recording. A recording needs at least one
// frame.
func ParseRecording(data []byte) (*Replay, error) {
	var rec Recording
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parsing recording: %w", err)
	}
	if len(rec.Frames) == 0 {
		return nil, errors.New("recording has no frames")
	}
	return &Replay{frames: rec.Frames}, nil
}

// Snapshot implements Source.
func (r *Replay) Snapshot() *Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	frame := r.frames[r.next]
	r.next = (r.next + 1) % len(r.frames)
	return &frame
}

// Len is the number of frames.
func (r *Replay) Len() int {
	return len(r.frames)
}

// WriteRecording encodes snapshots as a YAML recording.
func WriteRecording(w io.Writer, snapshots []*Snapshot) error {
	rec := Recording{Frames: make([]Snapshot, 0, len(snapshots))}
	for _, s := range snapshots {
		if s != nil {
			rec.Frames = append(rec.Frames, *s)
		}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&rec); err != nil {
		return err
	}
	return enc.Close()
}
