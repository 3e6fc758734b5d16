// Package perfstat reports hardware performance-counter deltas across named
// phases of a refinement run (the CLI records read, refine, write), the way a
// verbose batch invocation reports where cycles went. The real counter
// source wraps github.com/hodgesds/perf-utils; callers that only need the
// recording/reporting logic (tests, or a run on a kernel without
// perf_event_open access) can substitute any Source.
package perfstat

import (
	"fmt"
	"io"
	"sort"
)

// Sample is one named hardware counter reading, independent of the
// underlying profiling library's wire type.
type Sample struct {
	Name  string
	Value uint64
}

// Source is the hardware-counter surface Recorder drives. NewHardwareSource
// returns the real perf-utils-backed implementation; tests use a fake.
type Source interface {
	Start() error
	Stop() error
	Reset() error
	Read() ([]Sample, error)
}

// PhaseStat is one recorded phase's counter readings.
type PhaseStat struct {
	Name    string
	Samples []Sample
}

// Recorder accumulates PhaseStats across a run. A nil Source (or one that
// NewHardwareSource failed to open) makes every Phase call a plain pass
// through to fn, so an environment without counter access never fails a
// run just for lacking them.
type Recorder struct {
	src    Source
	phases []PhaseStat
}

// NewRecorder wraps src, which may be nil.
func NewRecorder(src Source) *Recorder {
	return &Recorder{src: src}
}

// Phase runs fn while src's counters are reset and running, then records
// the resulting reading as fn's phase delta. Any error opening or reading
// the counters is swallowed; fn's own error is what's returned.
func (r *Recorder) Phase(name string, fn func() error) error {
	if r.src == nil {
		return fn()
	}
	if err := r.src.Reset(); err != nil {
		return fn()
	}
	if err := r.src.Start(); err != nil {
		return fn()
	}
	runErr := fn()
	samples, readErr := r.src.Read()
	_ = r.src.Stop()
	if readErr == nil {
		r.phases = append(r.phases, PhaseStat{Name: name, Samples: samples})
	}
	return runErr
}

// Phases returns the recorded phase stats in the order they were recorded.
func (r *Recorder) Phases() []PhaseStat { return r.phases }

// Report writes one line per recorded phase/counter pair, counters sorted
// by name within each phase for stable output.
func (r *Recorder) Report(w io.Writer) {
	for _, p := range r.phases {
		samples := append([]Sample(nil), p.Samples...)
		sort.Slice(samples, func(i, j int) bool { return samples[i].Name < samples[j].Name })
		for _, s := range samples {
			fmt.Fprintf(w, "%-12s %-28s %d\n", p.Name, s.Name, s.Value)
		}
	}
}
