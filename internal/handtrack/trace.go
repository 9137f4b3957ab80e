// Package handtrack supplies hand samples to the frame loop: recorded
// traces, a latest-sample mailbox for asynchronous trackers, and a replayer
// that feeds one into the other at the recorded cadence.
package handtrack

import (
	"fmt"
	"math"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"hand-showreel/internal/gesture"
)

// Source answers "what is the newest sample at time t (seconds)".
type Source interface {
	At(t float64) gesture.HandSample
}

// Timed is a hand sample stamped with its delivery time in seconds.
type Timed struct {
	T                  float64 `yaml:"t" json:"t"`
	gesture.HandSample `yaml:",inline"`
}

// Trace is a recorded sample stream ordered by time.
type Trace struct {
	Samples []Timed `yaml:"samples" json:"samples"`
}

// NewTrace sorts samples by time (stable for equal stamps).
func NewTrace(samples []Timed) *Trace {
	s := append([]Timed(nil), samples...)
	sort.SliceStable(s, func(i, j int) bool { return s[i].T < s[j].T })
	return &Trace{Samples: s}
}

// Load reads a YAML or JSON trace file.
func Load(path string) (*Trace, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("handtrack: read %s: %w", path, err)
	}

	var tr Trace
	if err := yaml.Unmarshal(raw, &tr); err != nil {
		return nil, fmt.Errorf("handtrack: parse %s: %w", path, err)
	}
	for i, s := range tr.Samples {
		if math.IsNaN(s.T) || math.IsInf(s.T, 0) || s.T < 0 {
			return nil, fmt.Errorf("handtrack: %s: sample %d has invalid time %v", path, i, s.T)
		}
	}
	return NewTrace(tr.Samples), nil
}

// Save writes the trace as YAML.
func (tr *Trace) Save(path string) error {
	data, err := yaml.Marshal(tr)
	if err != nil {
		return fmt.Errorf("handtrack: encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("handtrack: write %s: %w", path, err)
	}
	return nil
}

// At returns the most recent sample delivered at or before t. Before the
// first sample no hand is present.
func (tr *Trace) At(t float64) gesture.HandSample {
	i := sort.Search(len(tr.Samples), func(i int) bool { return tr.Samples[i].T > t })
	if i == 0 {
		return gesture.HandSample{}
	}
	return tr.Samples[i-1].HandSample
}

// Duration is the time of the last sample, or 0 for an empty trace.
func (tr *Trace) Duration() float64 {
	if len(tr.Samples) == 0 {
		return 0
	}
	return tr.Samples[len(tr.Samples)-1].T
}
