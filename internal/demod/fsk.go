package demod

import (
	"github.com/iceman-lab/rfsignalcore/internal/clockdetect"
	"github.com/iceman-lab/rfsignalcore/internal/rferrors"
	"github.com/iceman-lab/rfsignalcore/internal/waveform"
)

// defaultFCLo/defaultFCHi/defaultFSKClk are the fallback field-clock
// pair and bit clock when auto-detection fails, per §4.4.3.
const (
	defaultFCLo   = 8
	defaultFCHi   = 10
	defaultFSKClk = 50
)

// FSKResult is the outcome of FSKrawDemod.
type FSKResult struct {
	Buffer  *Buffer
	Framing Framing
	Variant string
	FCLo    int
	FCHi    int
}

// FSKrawDemod correlates each bit interval against the two field-clock
// templates, emitting 1 when the high-tone response wins, else 0.
func FSKrawDemod(b *waveform.Buffer, cfg Config) (FSKResult, error) {
	props := b.ComputeProperties()
	if props.IsNoise {
		return FSKResult{}, rferrors.NewSoftFail("buffer classified as noise, cannot run fsk demod")
	}

	fcLo, fcHi, clk := cfg.Clk, 0, 0
	detected, err := clockdetect.FSKClockPair(b)
	if err == nil {
		fcLo, fcHi = detected.FCLo, detected.FCHi
		clk = detected.Clk
	} else {
		fcLo, fcHi = defaultFCLo, defaultFCHi
	}
	if cfg.Clk != 0 {
		clk = cfg.Clk
	}
	if clk == 0 {
		clk = defaultFSKClk
	}

	samples := b.Samples()
	tmplLo := fskTemplate(clk, fcLo)
	tmplHi := fskTemplate(clk, fcHi)

	var bits []byte
	for i := 0; i+clk <= len(samples); i += clk {
		var corrLo, corrHi int
		for j := 0; j < clk; j++ {
			corrLo += tmplLo[j] * samples[i+j]
			corrHi += tmplHi[j] * samples[i+j]
		}
		var bit byte
		if absInt(corrHi) >= absInt(corrLo) {
			bit = 1
		} else {
			bit = 0
		}
		if cfg.Invert {
			bit ^= 1
		}
		bits = append(bits, bit)
	}
	if len(bits) < 16 {
		return FSKResult{}, rferrors.NewSoftFail("fsk demod produced too few usable bits")
	}

	out := NewDemodBuffer(DefaultMaxBits)
	if err := out.Set(bits); err != nil {
		return FSKResult{}, err
	}
	variant := FSKVariantName(fcHi, fcLo, cfg.Invert)
	return FSKResult{
		Buffer:  out,
		Framing: Framing{Clock: clk, StartIdx: 0},
		Variant: variant,
		FCLo:    fcLo,
		FCHi:    fcHi,
	}, nil
}

// fskTemplate builds a length-clk square wave template alternating
// every fc/2 samples, matching the SignalConditioner's FSKToNRZ
// template shape (shared asymmetric padding rule).
func fskTemplate(clk, fc int) []int {
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

// FSKVariantName names the FSK variant by (fc_hi, fc_lo, invert) per
// the table in §4.4.3.
func FSKVariantName(fcHi, fcLo int, invert bool) string {
	switch {
	case fcHi == 10 && fcLo == 8 && !invert:
		return "FSK2"
	case fcHi == 10 && fcLo == 8 && invert:
		return "FSK2a"
	case fcHi == 8 && fcLo == 5 && !invert:
		return "FSK1a"
	case fcHi == 8 && fcLo == 5 && invert:
		return "FSK1"
	default:
		return "FSK??"
	}
}
