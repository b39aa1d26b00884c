// Package waveform owns the time-domain sample buffer and the pure
// conditioning transforms applied to it before clock detection and
// demodulation.
package waveform

import (
	"gonum.org/v1/gonum/stat"

	"github.com/iceman-lab/rfsignalcore/internal/rferrors"
)

// SampleMin and SampleMax bound every stored sample; every transform
// clamps to this range rather than relying on integer wraparound.
const (
	SampleMin = -127
	SampleMax = 127
)

// DefaultMaxSamples matches the "typical >= 40000" capacity named for
// the graph buffer.
const DefaultMaxSamples = 40000

// NoiseFloorThreshold is the fixed amplitude below which a trace is
// classified as noise. Exposed as a tunable on Buffer, not per call.
const NoiseFloorThreshold = 20

// Properties is a pure function of Buffer contents: min, max, mean,
// amplitude and the derived is-noise flag.
type Properties struct {
	Min       int
	Max       int
	Mean      float64
	Amplitude int
	IsNoise   bool
}

// Buffer is the session-owned graph buffer: an ordered sequence of
// signed samples plus a memoized Properties cache invalidated by any
// mutating operation.
type Buffer struct {
	samples       []int
	maxSamples    int
	noiseFloor    int
	propsValid    bool
	props         Properties
}

// NewBuffer constructs an empty Buffer with the given capacity. A
// zero or negative capacity falls back to DefaultMaxSamples.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultMaxSamples
	}
	return &Buffer{
		samples:    make([]int, 0, capacity),
		maxSamples: capacity,
		noiseFloor: NoiseFloorThreshold,
	}
}

// SetNoiseFloor overrides the noise-floor threshold used by IsNoise.
func (b *Buffer) SetNoiseFloor(threshold int) {
	b.noiseFloor = threshold
	b.propsValid = false
}

// Clear empties the buffer and invalidates the properties cache.
func (b *Buffer) Clear() {
	b.samples = b.samples[:0]
	b.propsValid = false
}

// LoadSamples replaces the buffer contents, truncating at capacity
// rather than reallocating beyond it (mirrors the fixed-size graph
// array in the source console).
func (b *Buffer) LoadSamples(seq []int) {
	n := len(seq)
	if n > b.maxSamples {
		n = b.maxSamples
	}
	b.samples = append(b.samples[:0], seq[:n]...)
	for i, v := range b.samples {
		b.samples[i] = clamp(v)
	}
	b.propsValid = false
}

// Len reports the current sample count.
func (b *Buffer) Len() int { return len(b.samples) }

// Cap reports the fixed maximum sample count.
func (b *Buffer) Cap() int { return b.maxSamples }

// Get returns the sample at i, or 0 if i is out of range.
func (b *Buffer) Get(i int) int {
	if i < 0 || i >= len(b.samples) {
		return 0
	}
	return b.samples[i]
}

// Set writes a saturated sample at i. Out-of-range i is a no-op.
func (b *Buffer) Set(i, v int) {
	if i < 0 || i >= len(b.samples) {
		return
	}
	b.samples[i] = clamp(v)
	b.propsValid = false
}

// Samples returns the live backing slice. Callers that intend to
// mutate it must call Invalidate afterward.
func (b *Buffer) Samples() []int { return b.samples }

// Invalidate forces the next ComputeProperties to rescan. Used by
// conditioners that write directly through Samples().
func (b *Buffer) Invalidate() { b.propsValid = false }

// Replace installs seq as the new contents (length already bounded by
// the caller), saturates it, and invalidates the cache.
func (b *Buffer) Replace(seq []int) {
	if len(seq) > b.maxSamples {
		seq = seq[:b.maxSamples]
	}
	b.samples = append(b.samples[:0], seq...)
	for i, v := range b.samples {
		b.samples[i] = clamp(v)
	}
	b.propsValid = false
}

// Snapshot is a value copy of the buffer contents, for the session
// save/restore slot.
type Snapshot struct {
	Samples []int
}

func (b *Buffer) Snapshot() Snapshot {
	cp := make([]int, len(b.samples))
	copy(cp, b.samples)
	return Snapshot{Samples: cp}
}

func (b *Buffer) Restore(s Snapshot) {
	b.Replace(s.Samples)
}

// ComputeProperties scans the buffer once (unless already cached) and
// returns min/max/mean/amplitude/is_noise.
func (b *Buffer) ComputeProperties() Properties {
	if b.propsValid {
		return b.props
	}
	if len(b.samples) == 0 {
		b.props = Properties{IsNoise: true}
		b.propsValid = true
		return b.props
	}
	lo, hi := b.samples[0], b.samples[0]
	floatSamples := make([]float64, len(b.samples))
	for i, v := range b.samples {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
		floatSamples[i] = float64(v)
	}
	mean := stat.Mean(floatSamples, nil)
	amp := hi - lo
	b.props = Properties{
		Min:       lo,
		Max:       hi,
		Mean:      mean,
		Amplitude: amp,
		IsNoise:   amp < b.noiseFloor,
	}
	b.propsValid = true
	return b.props
}

// RequireMinLength returns a SoftFailError when the buffer is shorter
// than min, for demodulators that need a working-buffer floor.
func (b *Buffer) RequireMinLength(min int) error {
	if b.Len() < min {
		return rferrors.NewSoftFail("sample buffer has %d samples, need at least %d", b.Len(), min)
	}
	return nil
}

func clamp(v int) int {
	if v < SampleMin {
		return SampleMin
	}
	if v > SampleMax {
		return SampleMax
	}
	return v
}

// SaturatingAdd adds delta to v and clamps to [SampleMin, SampleMax].
func SaturatingAdd(v, delta int) int {
	return clamp(v + delta)
}
