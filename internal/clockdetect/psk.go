package clockdetect

import (
	"github.com/iceman-lab/rfsignalcore/internal/rferrors"
	"github.com/iceman-lab/rfsignalcore/internal/waveform"
)

// PSKClock converts the buffer to an NRZ-like wave (counting samples
// per half-cycle to derive the carrier) and then runs NRZClock
// detection over the result, returning (clock, carrier).
func PSKClock(b *waveform.Buffer) (clock int, carrier int, err error) {
	props := b.ComputeProperties()
	if props.IsNoise {
		return 0, 0, rferrors.NewSoftFail("buffer classified as noise, cannot estimate PSK clock")
	}
	samples := b.Samples()
	carrier = carrierHalfCycle(samples)

	nrz := waveform.NewBuffer(b.Cap())
	nrzSamples := make([]int, len(samples))
	lastSign := 1
	for i, v := range samples {
		s := lastSign
		if v > 0 {
			s = 1
		} else if v < 0 {
			s = -1
		}
		if s == 0 {
			s = lastSign
		}
		nrzSamples[i] = s * waveform.SampleMax
		lastSign = s
	}
	nrz.LoadSamples(nrzSamples)

	clock, err = NRZClock(nrz)
	return clock, carrier, err
}

// carrierHalfCycle counts samples per half-cycle in the conditioned
// wave by averaging distances between sign changes.
func carrierHalfCycle(samples []int) int {
	total, count := 0, 0
	lastSign := 0
	last := 0
	for i, v := range samples {
		s := 1
		if v < 0 {
			s = -1
		} else if v == 0 {
			continue
		}
		if lastSign != 0 && s != lastSign {
			total += i - last
			count++
			last = i
		} else if lastSign == 0 {
			last = i
		}
		lastSign = s
	}
	if count == 0 {
		return 0
	}
	return total / count
}
