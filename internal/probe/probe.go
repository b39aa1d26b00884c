// Package probe implements ModulationProbe: trying each modulation in
// turn against a waveform.Buffer and returning a ranked list of
// plausible (modulation, clock, carrier) reports.
//
// The attempt-in-turn structure is grounded on the teacher's extension
// registry (a name-keyed table of attempts tried in order, each
// independent of the others) generalized from streaming audio
// extensions to one-shot sample-buffer probes.
package probe

import (
	"github.com/iceman-lab/rfsignalcore/internal/clockdetect"
	"github.com/iceman-lab/rfsignalcore/internal/demod"
	"github.com/iceman-lab/rfsignalcore/internal/waveform"
)

// DefaultPSKLeftTrim is the fixed empirical constant (in samples) PSK
// detection trims from the front of the trace to let the antenna
// settle before attempting a PSK demod.
const DefaultPSKLeftTrim = 160

// Report is the ranked outcome of one modulation attempt.
type Report struct {
	Modulation string
	Bitrate    int
	Carrier    int
	FC1        int
	FC2        int
}

// Options tunes probe behavior; PSKLeftTrim defaults to
// DefaultPSKLeftTrim when zero.
type Options struct {
	PSKLeftTrim int
}

// Probe tries each modulation attempt in turn and returns every
// successful report, in the documented priority order.
func Probe(b *waveform.Buffer, opts Options) []Report {
	trim := opts.PSKLeftTrim
	if trim <= 0 {
		trim = DefaultPSKLeftTrim
	}

	var reports []Report

	if fsk, ok := tryFSK(b); ok {
		reports = append(reports, fsk)
		return reports
	}

	if ask, ok := tryASK(b); ok {
		reports = append(reports, ask)
	}
	if bi, ok := tryBiphase(b); ok {
		reports = append(reports, bi)
	}
	if nrz, ok := tryNRZ(b); ok {
		reports = append(reports, nrz)
	}
	if psk, ok := tryPSK(b, trim); ok {
		reports = append(reports, psk)
	}

	return reports
}

func tryFSK(b *waveform.Buffer) (Report, bool) {
	clocks, err := clockdetect.FSKClockPair(b)
	if err != nil {
		return Report{}, false
	}
	plausible := (clocks.FCLo == 8 && clocks.FCHi == 10) || (clocks.FCLo == 5 && clocks.FCHi == 8)
	if !plausible {
		return Report{}, false
	}
	cfg := demod.Config{Clk: clocks.Clk}
	res, err := demod.FSKrawDemod(b, cfg)
	if err != nil {
		return Report{}, false
	}
	return Report{Modulation: res.Variant, Bitrate: res.Framing.Clock, FC1: res.FCLo, FC2: res.FCHi}, true
}

func tryASK(b *waveform.Buffer) (Report, bool) {
	clk, err := clockdetect.ASKClock(b)
	if err != nil || clk <= 0 {
		return Report{}, false
	}
	res, err := demod.ASKDemod(b, demod.Config{Clk: clk})
	if err != nil {
		return Report{}, false
	}
	return Report{Modulation: "ASK", Bitrate: res.Framing.Clock}, true
}

func tryBiphase(b *waveform.Buffer) (Report, bool) {
	res, err := demod.ASKbiphaseDemod(b, demod.Config{Invert: false})
	if err == nil {
		return Report{Modulation: "BI", Bitrate: res.Framing.Clock}, true
	}
	res, err = demod.ASKbiphaseDemod(b, demod.Config{Invert: true})
	if err == nil {
		return Report{Modulation: "BIa", Bitrate: res.Framing.Clock}, true
	}
	return Report{}, false
}

func tryNRZ(b *waveform.Buffer) (Report, bool) {
	res, err := demod.NRZrawDemod(b, demod.Config{})
	if err != nil {
		return Report{}, false
	}
	return Report{Modulation: "NRZ", Bitrate: res.Framing.Clock}, true
}

// tryPSK snapshots the buffer, left-trims the settle region, attempts
// a PSK1 demod, and always restores the snapshot regardless of
// outcome.
func tryPSK(b *waveform.Buffer, leftTrim int) (Report, bool) {
	snap := b.Snapshot()
	defer b.Restore(snap)

	samples := b.Samples()
	if leftTrim < len(samples) {
		b.Replace(samples[leftTrim:])
	}

	res, err := demod.PSKDemod(b, demod.Config{})
	if err != nil {
		return Report{}, false
	}
	return Report{Modulation: "PSK1", Bitrate: res.Framing.Clock, Carrier: res.Carrier}, true
}
