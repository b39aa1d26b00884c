package clockdetect

import (
	"testing"

	"github.com/iceman-lab/rfsignalcore/internal/waveform"
)

func squareWave(period, n int) []int {
	s := make([]int, n)
	for i := range s {
		if (i/period)%2 == 0 {
			s[i] = 80
		} else {
			s[i] = -80
		}
	}
	return s
}

func TestASKClockFindsCandidate(t *testing.T) {
	b := waveform.NewBuffer(10000)
	b.LoadSamples(squareWave(64, 4096))
	clk, err := ASKClock(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clk != 64 {
		t.Fatalf("expected clock 64, got %d", clk)
	}
}

func TestASKClockRejectsNoise(t *testing.T) {
	b := waveform.NewBuffer(100)
	b.LoadSamples(make([]int, 100))
	if _, err := ASKClock(b); err == nil {
		t.Fatalf("expected noise rejection")
	}
}

func TestAutoCorrelateSquareWave(t *testing.T) {
	b := waveform.NewBuffer(40000)
	// squareWave flips sign every `period` samples, so 32 gives a
	// square wave with a 64-sample period.
	b.LoadSamples(squareWave(32, 40000))
	res, err := AutoCorrelate(b, 4000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Distance != 64 {
		t.Fatalf("expected autocorrelation distance 64, got %d", res.Distance)
	}
}

func TestAutoCorrelateRejectsShortBuffer(t *testing.T) {
	b := waveform.NewBuffer(100)
	b.LoadSamples(squareWave(8, 100))
	if _, err := AutoCorrelate(b, 4000); err == nil {
		t.Fatalf("expected error for buffer shorter than window")
	}
}

func TestPSKClockUsesNRZConversion(t *testing.T) {
	b := waveform.NewBuffer(10000)
	b.LoadSamples(squareWave(50, 4096))
	clk, carrier, err := PSKClock(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clk <= 0 {
		t.Fatalf("expected positive clock estimate, got %d", clk)
	}
	_ = carrier
}
