// Package demod implements the per-modulation symbol extractors that
// turn a conditioned waveform.Buffer into a DemodBuffer plus framing
// metadata, and the post-decoders (Manchester, biphase, PSK2) that
// operate purely on DemodBuffer.
package demod

import "github.com/iceman-lab/rfsignalcore/internal/rferrors"

// ErrorBit is the sentinel value meaning "the demodulator could not
// decide" inside a DemodBuffer. It is a legacy artifact preserved here
// because downstream printers and Manchester decoding key off it.
const ErrorBit byte = 7

// DefaultMaxBits matches the "typical 1024" length named for the
// decoded bit stream.
const DefaultMaxBits = 1024

// Buffer is the decoded bit-per-byte output of a Demodulator: every
// element is 0, 1, or ErrorBit.
type Buffer struct {
	bits   []byte
	maxLen int
}

// NewDemodBuffer constructs an empty Buffer bounded at capacity (or
// DefaultMaxBits when capacity <= 0).
func NewDemodBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultMaxBits
	}
	return &Buffer{bits: make([]byte, 0, capacity), maxLen: capacity}
}

func (d *Buffer) Len() int    { return len(d.bits) }
func (d *Buffer) Cap() int    { return d.maxLen }
func (d *Buffer) Bits() []byte { return d.bits }

// Set installs bits as the buffer's contents; a stream longer than the
// capacity is rejected with a ResourceError and the contents are left
// unchanged.
func (d *Buffer) Set(bits []byte) error {
	if len(bits) > d.maxLen {
		return rferrors.NewResource("decoded bit stream has %d bits, exceeds maximum %d", len(bits), d.maxLen)
	}
	d.bits = append(d.bits[:0], bits...)
	return nil
}

// Valid reports whether every element is 0, 1 or ErrorBit (invariant 1).
func (d *Buffer) Valid() bool {
	for _, b := range d.bits {
		if b != 0 && b != 1 && b != ErrorBit {
			return false
		}
	}
	return len(d.bits) <= d.maxLen
}

// Snapshot is a value copy used by the single-slot save/restore
// facility.
type Snapshot struct {
	Bits     []byte
	Clock    int
	StartIdx int
}

func (d *Buffer) Snapshot(f Framing) Snapshot {
	cp := make([]byte, len(d.bits))
	copy(cp, d.bits)
	return Snapshot{Bits: cp, Clock: f.Clock, StartIdx: f.StartIdx}
}

func (d *Buffer) RestoreFrom(s Snapshot) Framing {
	d.bits = append(d.bits[:0], s.Bits...)
	return Framing{Clock: s.Clock, StartIdx: s.StartIdx}
}

// Framing is the metadata associated with the current DemodBuffer.
type Framing struct {
	Clock    int // bit-clock period in samples, 0 when unset
	StartIdx int // index into the SampleBuffer where the first decoded bit begins
}

// Valid enforces 0 <= start_idx < n and clock in {0} U [8,n].
func (f Framing) Valid(n int) bool {
	if f.StartIdx < 0 || f.StartIdx >= n {
		return false
	}
	if f.Clock != 0 && (f.Clock < 8 || f.Clock > n) {
		return false
	}
	return true
}

// Config is the set of recognized demodulation options, shared by
// every entry point.
type Config struct {
	Clk      int  // 0 = autodetect
	Invert   bool
	MaxErr   int
	MaxLen   int // 0 = no limit
	Amplify  bool
	Verbose  bool
	EMSearch bool
	ASKType  int // 0 = raw, 1 = Manchester
}

// AskType constants named by the option table.
const (
	ASKTypeRaw       = 0
	ASKTypeManchester = 1
)
