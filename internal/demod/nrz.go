package demod

import (
	"github.com/iceman-lab/rfsignalcore/internal/clockdetect"
	"github.com/iceman-lab/rfsignalcore/internal/rferrors"
	"github.com/iceman-lab/rfsignalcore/internal/waveform"
)

// NRZResult is the outcome of NRZrawDemod.
type NRZResult struct {
	Buffer  *Buffer
	Framing Framing
}

// NRZrawDemod slices each bit interval by its mean sign to produce one
// bit per clock period (NRZ: one sample value per bit).
func NRZrawDemod(b *waveform.Buffer, cfg Config) (NRZResult, error) {
	props := b.ComputeProperties()
	if props.IsNoise {
		return NRZResult{}, rferrors.NewSoftFail("buffer classified as noise, cannot run nrz demod")
	}

	clk := cfg.Clk
	if clk == 0 {
		detected, err := clockdetect.NRZClock(b)
		if err != nil {
			return NRZResult{}, err
		}
		clk = detected
	}

	samples := b.Samples()
	var bits []byte
	for i := 0; i+clk <= len(samples); i += clk {
		s := integralSign(samples[i : i+clk])
		var bit byte
		if s >= 0 {
			bit = 1
		}
		if cfg.Invert {
			bit ^= 1
		}
		bits = append(bits, bit)
	}
	if len(bits) < 16 {
		return NRZResult{}, rferrors.NewSoftFail("nrz demod produced too few usable bits")
	}

	out := NewDemodBuffer(DefaultMaxBits)
	if err := out.Set(bits); err != nil {
		return NRZResult{}, err
	}
	return NRZResult{Buffer: out, Framing: Framing{Clock: clk, StartIdx: 0}}, nil
}
