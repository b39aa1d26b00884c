package clockdetect

import (
	"github.com/iceman-lab/rfsignalcore/internal/rferrors"
	"github.com/iceman-lab/rfsignalcore/internal/waveform"
)

// DefaultAutoCorrWindow matches the CLI's documented default (-w 4000).
const DefaultAutoCorrWindow = 4000

// AutoCorrelateResult carries the estimated clock distance plus the
// raw correlation trace, for callers that want to overwrite the
// SampleBuffer with it (the CLI's `-g` flag).
type AutoCorrelateResult struct {
	Distance int
	Trace    []int
	PeakIdx  int
}

// AutoCorrelate computes the unbiased autocorrelation for lags
// i in [0, N-window), resetting the running accumulator for every lag
// (the corrected behavior per the documented design note — the
// original console reused one accumulator across lags without
// resetting it). It tracks lastmax/correlation whenever the
// normalized value exceeds 1, then looks for the two largest peaks
// (hi,idx) and (hi_1,idx_1) with idx_1 > idx and idx_1 <= window,
// returning idx_1-idx when those two peaks are within 4% of their
// mean, else the tracked correlation.
func AutoCorrelate(b *waveform.Buffer, window int) (AutoCorrelateResult, error) {
	if window <= 0 {
		window = DefaultAutoCorrWindow
	}
	s := b.Samples()
	n := len(s)
	if n <= window {
		return AutoCorrelateResult{}, rferrors.NewSoftFail("buffer has %d samples, too short for window %d", n, window)
	}

	lagCount := n - window
	trace := make([]float64, lagCount)

	energy0 := 0
	for j := 0; j < window; j++ {
		energy0 += s[j] * s[j]
	}
	if energy0 == 0 {
		energy0 = 1
	}

	lastmax := 0
	correlation := 0
	for i := 0; i < lagCount; i++ {
		sum := 0 // accumulator reset for every lag
		for j := 0; j < window; j++ {
			sum += s[j] * s[j+i]
		}
		norm := float64(sum) / float64(energy0)
		trace[i] = norm
		if norm > 1 {
			correlation = i - lastmax
			lastmax = i
		}
	}

	hiIdx, hi := 0, trace[0]
	for i, v := range trace {
		if v > hi {
			hi = v
			hiIdx = i
		}
	}

	searchEnd := window
	if searchEnd > lagCount-1 {
		searchEnd = lagCount - 1
	}
	hi1Idx, hi1, found := -1, 0.0, false
	for i := hiIdx + 1; i <= searchEnd; i++ {
		if !found || trace[i] > hi1 {
			hi1 = trace[i]
			hi1Idx = i
			found = true
		}
	}

	distance := correlation
	if found {
		mean := (hi + hi1) / 2
		if mean != 0 {
			diff := hi - hi1
			if diff < 0 {
				diff = -diff
			}
			if diff <= 0.04*absF(mean) {
				distance = hi1Idx - hiIdx
			}
		}
	}

	intTrace := make([]int, lagCount)
	for i, v := range trace {
		intTrace[i] = int(v * float64(waveform.SampleMax))
		if intTrace[i] > waveform.SampleMax {
			intTrace[i] = waveform.SampleMax
		}
		if intTrace[i] < waveform.SampleMin {
			intTrace[i] = waveform.SampleMin
		}
	}

	return AutoCorrelateResult{Distance: distance, Trace: intTrace, PeakIdx: hiIdx}, nil
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
