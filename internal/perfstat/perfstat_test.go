package perfstat

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	started, stopped, reset int
	samples                 []Sample
	readErr                 error
}

func (f *fakeSource) Start() error { f.started++; return nil }
func (f *fakeSource) Stop() error  { f.stopped++; return nil }
func (f *fakeSource) Reset() error { f.reset++; return nil }
func (f *fakeSource) Read() ([]Sample, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.samples, nil
}

func TestPhaseRecordsSamplesFromSource(t *testing.T) {
	fs := &fakeSource{samples: []Sample{{Name: "instructions", Value: 100}, {Name: "cycles", Value: 250}}}
	r := NewRecorder(fs)

	ran := false
	err := r.Phase("divide", func() error { ran = true; return nil })
	require.NoError(t, err)
	require.True(t, ran)
	require.Equal(t, 1, fs.started)
	require.Equal(t, 1, fs.stopped)
	require.Equal(t, 1, fs.reset)

	phases := r.Phases()
	require.Len(t, phases, 1)
	require.Equal(t, "divide", phases[0].Name)
	require.Len(t, phases[0].Samples, 2)
}

func TestPhasePropagatesFnError(t *testing.T) {
	fs := &fakeSource{}
	r := NewRecorder(fs)
	wantErr := errors.New("divide failed")

	err := r.Phase("divide", func() error { return wantErr })
	require.Equal(t, wantErr, err)
}

func TestPhaseSkipsRecordingOnReadError(t *testing.T) {
	fs := &fakeSource{readErr: errors.New("counters unavailable")}
	r := NewRecorder(fs)

	require.NoError(t, r.Phase("partition", func() error { return nil }))
	require.Empty(t, r.Phases())
}

func TestNilSourceIsPassthrough(t *testing.T) {
	r := NewRecorder(nil)
	ran := false
	err := r.Phase("reconcile", func() error { ran = true; return nil })
	require.NoError(t, err)
	require.True(t, ran)
	require.Empty(t, r.Phases())
}

func TestReportSortsCountersByNameWithinPhase(t *testing.T) {
	fs := &fakeSource{samples: []Sample{{Name: "cycles", Value: 250}, {Name: "instructions", Value: 100}}}
	r := NewRecorder(fs)
	require.NoError(t, r.Phase("divide", func() error { return nil }))

	var buf bytes.Buffer
	r.Report(&buf)
	out := buf.String()

	cyclesIdx := bytesIndex(out, "cycles")
	instrIdx := bytesIndex(out, "instructions")
	require.Less(t, cyclesIdx, instrIdx)
}

func bytesIndex(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
