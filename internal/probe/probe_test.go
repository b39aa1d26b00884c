package probe

import (
	"testing"

	"github.com/iceman-lab/rfsignalcore/internal/waveform"
)

func TestProbeRestoresBufferAfterPSKAttempt(t *testing.T) {
	b := waveform.NewBuffer(10000)
	samples := make([]int, 4096)
	for i := range samples {
		if (i/40)%2 == 0 {
			samples[i] = 90
		} else {
			samples[i] = -90
		}
	}
	b.LoadSamples(samples)
	before := b.Len()

	_ = Probe(b, Options{})

	if b.Len() != before {
		t.Fatalf("expected probe to restore buffer length to %d, got %d", before, b.Len())
	}
}

func TestProbeReturnsEmptyOnNoise(t *testing.T) {
	b := waveform.NewBuffer(100)
	b.LoadSamples(make([]int, 100))
	reports := Probe(b, Options{})
	if len(reports) != 0 {
		t.Fatalf("expected no reports for a noise floor buffer, got %d", len(reports))
	}
}
