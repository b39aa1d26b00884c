// Package clockdetect estimates bit-clock period and FSK field-clock
// pairs from a conditioned waveform.Buffer.
package clockdetect

import (
	"github.com/iceman-lab/rfsignalcore/internal/rferrors"
	"github.com/iceman-lab/rfsignalcore/internal/waveform"
)

// askCandidates is the fixed clock-period search set for ASK and NRZ
// detection.
var askCandidates = []int{8, 16, 32, 40, 50, 64, 100, 128}

// FSKClocks is the result of field-clock pair estimation: the field
// clock pair, the derived bit clock, and the index of the first
// non-zero sample.
type FSKClocks struct {
	FCLo       int
	FCHi       int
	Clk        int
	FirstEdge  int
}

// ASKClock searches the fixed candidate set for the period whose
// correlation with the hard-sliced sample stream is maximal,
// tie-breaking to the smaller period. Rejects noisy traces.
func ASKClock(b *waveform.Buffer) (int, error) {
	props := b.ComputeProperties()
	if props.IsNoise {
		return 0, rferrors.NewSoftFail("buffer classified as noise, cannot estimate ASK clock")
	}
	return candidateSearch(b, askCandidates), nil
}

// NRZClock runs the same candidate search as ASKClock but scores each
// candidate using sign-run lengths rather than hard-sliced means.
func NRZClock(b *waveform.Buffer) (int, error) {
	props := b.ComputeProperties()
	if props.IsNoise {
		return 0, rferrors.NewSoftFail("buffer classified as noise, cannot estimate NRZ clock")
	}
	samples := b.Samples()
	best, bestScore := askCandidates[0], -1
	for _, clk := range askCandidates {
		score := signRunScore(samples, clk)
		if score > bestScore {
			bestScore = score
			best = clk
		}
	}
	return best, nil
}

// candidateSearch scores each candidate clock by correlating a
// hard-sliced (mean threshold) bit stream against a square wave of
// that period, picking the highest-scoring, smallest-period winner.
func candidateSearch(b *waveform.Buffer, candidates []int) int {
	samples := b.Samples()
	mean := b.ComputeProperties().Mean
	best, bestScore := candidates[0], -1
	for _, clk := range candidates {
		score := 0
		for phase := 0; phase < clk; phase++ {
			sum := 0
			for i, v := range samples {
				sign := 1
				if float64(v) < mean {
					sign = -1
				}
				if ((i+phase)/clk)%2 == 1 {
					sign = -sign
				}
				sum += sign
			}
			score = max(score, abs(sum))
		}
		if score > bestScore {
			bestScore = score
			best = clk
		}
	}
	return best
}

func signRunScore(samples []int, clk int) int {
	score := 0
	lastSign := 0
	runLen := 0
	for _, v := range samples {
		s := 1
		if v < 0 {
			s = -1
		}
		if s == lastSign || lastSign == 0 {
			runLen++
			lastSign = s
			continue
		}
		if abs(runLen-clk) <= clk/8 {
			score++
		}
		runLen = 1
		lastSign = s
	}
	return score
}

// FSKClockPair derives (fc_lo, fc_hi) from the single most frequent
// inter-zero-crossing distance, snapped to each documented value set:
// a most frequent distance of 3 samples or less gives (5, 8), anything
// longer gives (8, 10); a second dominant distance is not looked for.
// The bit clock is the mean number of samples between sign changes
// over the whole trace, or 50 when there is no sign change or that
// mean is below 8; field-clock edges per bit are not counted.
func FSKClockPair(b *waveform.Buffer) (FSKClocks, error) {
	props := b.ComputeProperties()
	if props.IsNoise {
		return FSKClocks{}, rferrors.NewSoftFail("buffer classified as noise, cannot estimate FSK clocks")
	}
	samples := b.Samples()
	distances := interZeroCrossingDistances(samples)
	if len(distances) < 2 {
		return FSKClocks{}, rferrors.NewSoftFail("insufficient zero crossings to estimate FSK field clocks")
	}
	// distances are inter-zero-crossing (half-period) gaps, so the
	// match must happen in half-period space and then map back to the
	// documented fc values: fc_lo in {5,8} has half-periods {2,4},
	// fc_hi in {8,10} has half-periods {4,5}. The only possible
	// collision is both resolving to 8; break it toward FSK2 (10).
	fcLo := nearestHalfPeriodFC(distances, []int{2, 4}, map[int]int{2: 5, 4: 8})
	fcHi := nearestHalfPeriodFC(distances, []int{4, 5}, map[int]int{4: 8, 5: 10})
	if fcLo == fcHi {
		fcHi = 10
	}

	firstEdge := 0
	for i, v := range samples {
		if v != 0 {
			firstEdge = i
			break
		}
	}

	clk := estimateBitClockFromEdges(samples, fcLo, fcHi)
	return FSKClocks{FCLo: fcLo, FCHi: fcHi, Clk: clk, FirstEdge: firstEdge}, nil
}

func interZeroCrossingDistances(samples []int) []int {
	var distances []int
	last := -1
	lastSign := 0
	for i, v := range samples {
		s := 1
		if v < 0 {
			s = -1
		} else if v == 0 {
			continue
		}
		if lastSign != 0 && s != lastSign {
			if last >= 0 {
				distances = append(distances, i-last)
			}
			last = i
		} else if last < 0 {
			last = i
		}
		lastSign = s
	}
	return distances
}

// nearestHalfPeriodFC snaps the most frequent observed half-period
// distance to the closest candidate half-period, then maps that
// half-period to its field-clock value via toFC.
func nearestHalfPeriodFC(observed []int, halves []int, toFC map[int]int) int {
	counts := map[int]int{}
	for _, d := range observed {
		counts[d]++
	}
	mode, modeCount := observed[0], 0
	for d, c := range counts {
		if c > modeCount {
			modeCount = c
			mode = d
		}
	}
	best := halves[0]
	bestDist := abs(mode - best)
	for _, h := range halves[1:] {
		if d := abs(mode - h); d < bestDist {
			bestDist = d
			best = h
		}
	}
	return toFC[best]
}

func estimateBitClockFromEdges(samples []int, fcLo, fcHi int) int {
	edges := 0
	lastSign := 0
	for _, v := range samples {
		s := 1
		if v < 0 {
			s = -1
		} else if v == 0 {
			continue
		}
		if lastSign != 0 && s != lastSign {
			edges++
		}
		lastSign = s
	}
	if edges == 0 {
		return 50
	}
	est := len(samples) / edges
	if est < 8 {
		return 50
	}
	return est
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
