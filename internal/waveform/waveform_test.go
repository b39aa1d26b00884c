package waveform

import (
	"math"
	"testing"
)

func TestHPFMeanNearZero(t *testing.T) {
	b := NewBuffer(1000)
	samples := make([]int, 0, 500)
	for i := 0; i < 500; i++ {
		samples = append(samples, 10+(i%7)-3)
	}
	b.LoadSamples(samples)
	HPF(b)
	props := b.ComputeProperties()
	if math.Abs(props.Mean) > 1 {
		t.Fatalf("expected |mean| <= 1 after HPF, got %f", props.Mean)
	}
}

func TestNormalizeSpanAndMidpoint(t *testing.T) {
	b := NewBuffer(1000)
	samples := make([]int, 0, 200)
	for i := 0; i < 10; i++ {
		samples = append(samples, 127) // front-of-trace artefact, ignored
	}
	for i := 0; i < 190; i++ {
		if i%2 == 0 {
			samples = append(samples, -50)
		} else {
			samples = append(samples, 50)
		}
	}
	b.LoadSamples(samples)
	Normalize(b)
	s := b.Samples()
	lo, hi := s[10], s[10]
	for _, v := range s[10:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi-lo > 256 {
		t.Fatalf("normalized span exceeds 256: got %d", hi-lo)
	}
	mid := (hi + lo) / 2
	if mid < -2 || mid > 2 {
		t.Fatalf("expected midpoint near 0, got %d", mid)
	}
}

func TestDecimateThenInterpolateRoundTrip(t *testing.T) {
	b := NewBuffer(1000)
	samples := make([]int, 400)
	for i := range samples {
		samples[i] = (i % 50) - 25
	}
	b.LoadSamples(samples)
	original := b.Len()
	if err := Decimate(b, 4); err != nil {
		t.Fatalf("decimate: %v", err)
	}
	if err := Interpolate(b, 4); err != nil {
		t.Fatalf("interpolate: %v", err)
	}
	diff := b.Len() - original
	if diff < 0 {
		diff = -diff
	}
	if diff > 4 {
		t.Fatalf("expected length within +/-4 of original %d, got %d", original, b.Len())
	}
}

func TestDirectionalThresholdRange(t *testing.T) {
	b := NewBuffer(1000)
	samples := []int{0, 5, 50, -60, 10, -5, 90, 0}
	b.LoadSamples(samples)
	DirectionalThreshold(b, 40, -40)
	for _, v := range b.Samples() {
		if v != -1 && v != 0 && v != 1 {
			t.Fatalf("directional threshold produced out-of-range value %d", v)
		}
	}
	s := b.Samples()
	if s[0] != s[1] {
		t.Fatalf("expected output[0] back-patched from output[1]")
	}
}

func TestEdgeDetectHoldsBetweenEdges(t *testing.T) {
	b := NewBuffer(1000)
	samples := []int{0, 0, 100, 100, 100, -100, -100}
	b.LoadSamples(samples)
	EdgeDetect(b, 30)
	s := b.Samples()
	if s[2] != SampleMax {
		t.Fatalf("expected rising edge to emit %d, got %d", SampleMax, s[2])
	}
	if s[3] != SampleMax || s[4] != SampleMax {
		t.Fatalf("expected held state between edges, got %v", s[2:5])
	}
	if s[5] != SampleMin {
		t.Fatalf("expected falling edge to emit %d, got %d", SampleMin, s[5])
	}
}

func TestSaturatingAdd(t *testing.T) {
	if v := SaturatingAdd(120, 50); v != SampleMax {
		t.Fatalf("expected saturation at %d, got %d", SampleMax, v)
	}
	if v := SaturatingAdd(-120, -50); v != SampleMin {
		t.Fatalf("expected saturation at %d, got %d", SampleMin, v)
	}
}

func TestIIRRejectsZeroCoefficient(t *testing.T) {
	b := NewBuffer(10)
	b.LoadSamples([]int{1, 2, 3})
	if err := IIR(b, 0); err == nil {
		t.Fatalf("expected error for zero IIR coefficient")
	}
}

func TestFSKToNRZRequiresPositiveParams(t *testing.T) {
	b := NewBuffer(100)
	b.LoadSamples(make([]int, 50))
	if err := FSKToNRZ(b, 0, 8, 10); err == nil {
		t.Fatalf("expected invalid-arg error for zero clk")
	}
}

func TestZeroCrossingsSinePeriod(t *testing.T) {
	const period = 100
	const n = 10000
	samples := make([]int, n)
	for i := range samples {
		samples[i] = int(100 * math.Sin(2*math.Pi*float64(i)/period))
	}
	b := NewBuffer(n)
	b.LoadSamples(samples)
	HPF(b)
	ZeroCrossings(b)

	out := b.Samples()
	var runs []int
	runStart := 0
	for i := 1; i <= len(out); i++ {
		if i == len(out) || out[i] != out[runStart] {
			runs = append(runs, out[i-1])
			runStart = i
		}
	}
	if len(runs) < 3 {
		t.Fatalf("expected several held-value runs, got %d", len(runs))
	}
	// Drop the first run: it carries the initial lastZc=0 held value
	// from before the first upward crossing.
	for _, v := range runs[1:] {
		if v == 0 {
			continue
		}
		diff := v - period
		if diff < 0 {
			diff = -diff
		}
		if diff > 2 {
			t.Fatalf("expected successive zero-crossing periods near %d, got %d", period, v)
		}
	}
}

func TestIsNoiseBelowThreshold(t *testing.T) {
	b := NewBuffer(100)
	samples := make([]int, 100)
	for i := range samples {
		samples[i] = (i % 3) - 1
	}
	b.LoadSamples(samples)
	props := b.ComputeProperties()
	if !props.IsNoise {
		t.Fatalf("expected low-amplitude trace to classify as noise")
	}
}
