package waveform

import "github.com/iceman-lab/rfsignalcore/internal/rferrors"

// HPF removes DC offset by subtracting the mean from every sample,
// saturating to the sample range.
func HPF(b *Buffer) {
	props := b.ComputeProperties()
	mean := props.Mean
	s := b.Samples()
	for i, v := range s {
		s[i] = clamp(v - int(mean+sign(mean)*0.5))
	}
	b.Invalidate()
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// Normalize computes lo/hi over samples with index >= 10 (to avoid
// front-of-trace artefacts) and maps the midpoint of [lo,hi] to 0
// across a span of 256, saturating. A degenerate [lo,hi] (hi==lo)
// leaves the buffer untouched.
func Normalize(b *Buffer) {
	s := b.Samples()
	if len(s) <= 10 {
		return
	}
	lo, hi := s[10], s[10]
	for _, v := range s[10:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi == lo {
		return
	}
	mid := (hi + lo) / 2
	span := hi - lo
	for i, v := range s {
		scaled := (v - mid) * 256 / span
		s[i] = clamp(scaled)
	}
	b.Invalidate()
}

// Decimate keeps every n-th sample (n>=1, default 2); resulting length
// is floor(N/n).
func Decimate(b *Buffer, n int) error {
	if n < 1 {
		return rferrors.NewInvalidArg("decimate factor must be >= 1, got %d", n)
	}
	s := b.Samples()
	out := make([]int, 0, len(s)/n)
	for i := 0; i+n <= len(s); i += n {
		out = append(out, s[i])
	}
	b.Replace(out)
	return nil
}

// Interpolate expands each adjacent pair into n linearly interpolated
// samples, capped at buffer capacity.
func Interpolate(b *Buffer, n int) error {
	if n < 1 {
		return rferrors.NewInvalidArg("interpolate factor must be >= 1, got %d", n)
	}
	s := b.Samples()
	if len(s) < 2 {
		return nil
	}
	out := make([]int, 0, len(s)*n)
	for i := 0; i < len(s)-1; i++ {
		a, bb := s[i], s[i+1]
		for j := 0; j < n; j++ {
			v := a + (bb-a)*j/n
			out = append(out, clamp(v))
			if len(out) >= b.Cap() {
				b.Replace(out)
				return nil
			}
		}
	}
	out = append(out, s[len(s)-1])
	b.Replace(out)
	return nil
}

// Shift adds k to every sample, saturating.
func Shift(b *Buffer, k int) {
	s := b.Samples()
	for i, v := range s {
		s[i] = clamp(v + k)
	}
	b.Invalidate()
}

// DirectionalThreshold walks the sequence emitting +1 on a rising
// edge reaching >= up, -1 on a falling edge reaching <= down, and
// otherwise holds the previous output. output[0] is back-patched from
// output[1].
func DirectionalThreshold(b *Buffer, up, down int) {
	s := b.Samples()
	out := make([]int, len(s))
	state := 0
	prev := 0
	for i, v := range s {
		switch {
		case i > 0 && v >= up && v > prev:
			state = 1
		case i > 0 && v <= down && v < prev:
			state = -1
		}
		out[i] = state
		prev = v
	}
	if len(out) > 1 {
		out[0] = out[1]
	}
	copy(s, out)
	b.Invalidate()
}

// ZeroCrossings holds a running sample count across each full cycle
// (upward crossing to upward crossing) and writes the *previous*
// cycle's final count into every sample of the current one, only
// latching that count in on an upward (negative-to-positive)
// crossing; a downward crossing just flips the sign tracker without
// touching the held value. The two crossing samples of a cycle are
// not counted. Precondition: HPF has already been applied.
func ZeroCrossings(b *Buffer) {
	s := b.Samples()
	if len(s) == 0 {
		return
	}
	out := make([]int, len(s))
	sign, zc, lastZc := 1, 0, 0
	for i, v := range s {
		if v*sign >= 0 {
			zc++
			out[i] = lastZc
		} else {
			sign = -sign
			out[i] = lastZc
			if sign > 0 {
				lastZc = zc
				zc = 0
			}
		}
	}
	copy(s, out)
	b.Invalidate()
}


// EdgeDetect emits +127 when s[i]-s[i-1] >= threshold, -127 when
// <= -threshold, else holds the previous output.
func EdgeDetect(b *Buffer, threshold int) {
	s := b.Samples()
	if len(s) == 0 {
		return
	}
	out := make([]int, len(s))
	state := 0
	out[0] = 0
	for i := 1; i < len(s); i++ {
		d := s[i] - s[i-1]
		switch {
		case d >= threshold:
			state = SampleMax
		case d <= -threshold:
			state = SampleMin
		}
		out[i] = state
	}
	copy(s, out)
	b.Invalidate()
}

// IIR applies a one-pole Butterworth-style low-pass with a single
// integer divisor k >= 1 (k = 1 leaves the signal unchanged);
// y[i] = y[i-1] + (x[i]-y[i-1])/k.
// Grounded on the teacher's biquad state/Filter/Reset shape, reduced
// to the single-coefficient form this console exposes.
func IIR(b *Buffer, k int) error {
	if k <= 0 {
		return rferrors.NewInvalidArg("iir coefficient must be > 0, got %d", k)
	}
	s := b.Samples()
	if len(s) == 0 {
		return nil
	}
	y := float64(s[0])
	for i, v := range s {
		y += (float64(v) - y) / float64(k)
		s[i] = clamp(int(y))
	}
	b.Invalidate()
	return nil
}

// FSKToNRZ rewrites the waveform into an NRZ-like wave whose sign
// encodes the dominant tone, via matched-filter templates built with
// asymmetric left/right padding derived from clk%fc.
func FSKToNRZ(b *Buffer, clk, fcLo, fcHi int) error {
	if clk <= 0 || fcLo <= 0 || fcHi <= 0 {
		return rferrors.NewInvalidArg("fsktonrz requires clk, fc_lo and fc_hi all > 0")
	}
	s := b.Samples()
	n := len(s)
	if n <= clk+fcLo {
		return rferrors.NewSoftFail("buffer too short for fsktonrz window")
	}
	tmplLo := buildFSKTemplate(clk, fcLo)
	tmplHi := buildFSKTemplate(clk, fcHi)

	packedLen := n - clk
	packedLo := make([]int, packedLen)
	packedHi := make([]int, packedLen)
	for i := 0; i < packedLen; i++ {
		var sumLo, sumHi int
		for j := 0; j < clk; j++ {
			sumLo += tmplLo[j] * s[i+j]
			sumHi += tmplHi[j] * s[i+j]
		}
		packedLo[i] = abs(sumLo * 100 / clk)
		packedHi[i] = abs(sumHi * 100 / clk)
	}

	outLen := packedLen - fcHi
	if outLen <= 0 {
		return rferrors.NewSoftFail("fsktonrz window collapses output buffer")
	}
	out := make([]int, 0, outLen)
	for i := 0; i < outLen; i++ {
		loTot, hiTot := 0, 0
		for j := 0; j < fcLo && i+j < packedLen; j++ {
			loTot += packedLo[i+j]
		}
		for j := 0; j < fcHi && i+j < packedLen; j++ {
			hiTot += packedHi[i+j]
		}
		out = append(out, clamp(loTot-hiTot))
	}
	b.Replace(out)
	return nil
}

// buildFSKTemplate constructs a length-clk square wave alternating
// every fc/2 samples, padded left/right so the half-periods balance
// across clk%fc leftover samples; this asymmetry is load-bearing for
// bit alignment at the edges of long traces and must not be
// symmetrized away.
func buildFSKTemplate(clk, fc int) []int {
	tmpl := make([]int, clk)
	half := fc / 2
	if half == 0 {
		half = 1
	}
	leftover := clk % fc
	leftPad := leftover / 2
	rightPad := leftover - leftPad
	pos := 1
	idx := 0
	for idx < leftPad {
		tmpl[idx] = pos
		idx++
	}
	for idx < clk-rightPad {
		for k := 0; k < half && idx < clk-rightPad; k++ {
			tmpl[idx] = pos
			idx++
		}
		pos = -pos
	}
	for idx < clk {
		tmpl[idx] = pos
		idx++
	}
	return tmpl
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
