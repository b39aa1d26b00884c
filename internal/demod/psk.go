package demod

import (
	"github.com/iceman-lab/rfsignalcore/internal/clockdetect"
	"github.com/iceman-lab/rfsignalcore/internal/rferrors"
	"github.com/iceman-lab/rfsignalcore/internal/waveform"
)

// PSKResult is the outcome of PSKDemod (PSK1). Carrier is the
// detected half-cycle sample count, reported only; it is 0 when the
// caller supplied the clock.
type PSKResult struct {
	Buffer  *Buffer
	Framing Framing
	Carrier int
}

// PSKDemod takes the sign of each clock period's sample sum as that
// period's phase and emits 1 where the phase differs from the previous
// period's, else 0. It does not correlate against the carrier.
func PSKDemod(b *waveform.Buffer, cfg Config) (PSKResult, error) {
	props := b.ComputeProperties()
	if props.IsNoise {
		return PSKResult{}, rferrors.NewSoftFail("buffer classified as noise, cannot run psk demod")
	}

	clk := cfg.Clk
	var carrier int
	if clk == 0 {
		detectedClk, detectedCarrier, err := clockdetect.PSKClock(b)
		if err != nil {
			return PSKResult{}, err
		}
		clk = detectedClk
		carrier = detectedCarrier
	}

	samples := b.Samples()
	var bits []byte
	prevPhase := 1
	for i := 0; i+clk <= len(samples); i += clk {
		phase := integralSign(samples[i : i+clk])
		if phase == 0 {
			phase = prevPhase
		}
		var bit byte
		if phase != prevPhase {
			bit = 1
		}
		if cfg.Invert {
			bit ^= 1
		}
		bits = append(bits, bit)
		prevPhase = phase
	}
	if len(bits) < 16 {
		return PSKResult{}, rferrors.NewSoftFail("psk demod produced too few usable bits")
	}

	out := NewDemodBuffer(DefaultMaxBits)
	if err := out.Set(bits); err != nil {
		return PSKResult{}, err
	}
	return PSKResult{Buffer: out, Framing: Framing{Clock: clk, StartIdx: 0}, Carrier: carrier}, nil
}

// PSK2Demod is PSK1 followed by PSK1ToPSK2 differentiation.
func PSK2Demod(b *waveform.Buffer, cfg Config) (PSKResult, error) {
	res, err := PSKDemod(b, cfg)
	if err != nil {
		return PSKResult{}, err
	}
	differentiated := PSK1ToPSK2(res.Buffer.Bits())
	out := NewDemodBuffer(DefaultMaxBits)
	if err := out.Set(differentiated); err != nil {
		return PSKResult{}, err
	}
	res.Buffer = out
	return res, nil
}
