package perfstat

import (
	"fmt"
	"os"

	perf "github.com/hodgesds/perf-utils"
)

// libSource adapts perf-utils' HardwareProfiler to Source.
type libSource struct {
	hp perf.HardwareProfiler
}

// NewHardwareSource opens perf-utils' hardware counters for the calling
// process across all CPUs. Opening commonly fails outside a privileged
// environment (containers without CAP_PERFMON, a locked-down
// perf_event_paranoid sysctl); callers should treat that as "no counters
// available" rather than a fatal error, per Recorder's nil-Source contract.
func NewHardwareSource() (Source, error) {
	hp, err := perf.NewHardwareProfiler(os.Getpid(), -1, perf.AllHardwareProfilers)
	if err != nil {
		return nil, fmt.Errorf("perfstat: opening hardware profiler: %w", err)
	}
	return &libSource{hp: hp}, nil
}

func (s *libSource) Start() error { return s.hp.Start() }
func (s *libSource) Stop() error  { return s.hp.Stop() }
func (s *libSource) Reset() error { return s.hp.Reset() }

func (s *libSource) Read() ([]Sample, error) {
	var hwProfile perf.HardwareProfile
	if err := s.hp.Profile(&hwProfile); err != nil {
		return nil, err
	}
	named := []struct {
		name string
		val  *uint64
	}{
		{"cpu_cycles", hwProfile.CPUCycles},
		{"instructions", hwProfile.Instructions},
		{"cache_refs", hwProfile.CacheRefs},
		{"cache_misses", hwProfile.CacheMisses},
		{"branch_instr", hwProfile.BranchInstr},
		{"branch_misses", hwProfile.BranchMisses},
		{"bus_cycles", hwProfile.BusCycles},
		{"stalled_cycles_frontend", hwProfile.StalledCyclesFrontend},
		{"stalled_cycles_backend", hwProfile.StalledCyclesBackend},
		{"ref_cpu_cycles", hwProfile.RefCPUCycles},
	}
	out := make([]Sample, 0, len(named))
	for _, n := range named {
		if n.val == nil {
			continue
		}
		out = append(out, Sample{Name: n.name, Value: *n.val})
	}
	return out, nil
}
