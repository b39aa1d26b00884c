package demod

import (
	"github.com/iceman-lab/rfsignalcore/internal/clockdetect"
	"github.com/iceman-lab/rfsignalcore/internal/rferrors"
	"github.com/iceman-lab/rfsignalcore/internal/waveform"
)

// minASKSamples is the working-buffer floor named by step 1 of ASKDemod.
const minASKSamples = 255

// stPreamble is the fixed Sequence Terminator preamble recognized
// ahead of bit slicing: a long high run followed by a short low run,
// matching the shape of the legacy ST pattern without hard-coding its
// exact tag-specific width.
var stPreamble = []int{1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0}

// ASKResult is the outcome of an ASKDemod run.
type ASKResult struct {
	Buffer   *Buffer
	Framing  Framing
	ErrCount int
	STFound  bool
	STClock  int
}

// ASKDemod runs the raw/Manchester ASK detector described in §4.4.1:
// pull samples, optionally amplify, detect the Sequence Terminator,
// adopt its clock when plausible, then slice half-bit integrals.
func ASKDemod(b *waveform.Buffer, cfg Config) (ASKResult, error) {
	if err := b.RequireMinLength(minASKSamples); err != nil {
		return ASKResult{}, err
	}
	samples := append([]int(nil), b.Samples()...)
	if cfg.MaxLen > 0 && cfg.MaxLen < len(samples) {
		samples = samples[:cfg.MaxLen]
	}
	if cfg.Amplify {
		amplify(samples)
	}

	stFound, stStart, stClock := detectST(samples)
	clk := cfg.Clk
	startIdx := 0
	if clk == 0 && stFound && (stClock == 32 || stClock == 64) {
		clk = stClock
		startIdx = stStart
	}
	if clk == 0 {
		tmp := waveform.NewBuffer(len(samples))
		tmp.LoadSamples(samples)
		detected, err := clockdetect.ASKClock(tmp)
		if err != nil {
			return ASKResult{}, err
		}
		clk = detected
	}

	bits, errCount := askSlice(samples, startIdx, clk, cfg.Invert, cfg.ASKType == ASKTypeManchester)
	if errCount < 0 || len(bits) < 16 {
		return ASKResult{}, rferrors.NewSoftFail("ask demod produced too few usable bits")
	}
	if cfg.MaxErr > 0 && errCount > cfg.MaxErr {
		return ASKResult{}, rferrors.NewSoftFail("ask demod error count %d exceeds budget %d", errCount, cfg.MaxErr)
	}

	out := NewDemodBuffer(DefaultMaxBits)
	if err := out.Set(bits); err != nil {
		return ASKResult{}, err
	}
	framing := Framing{Clock: clk, StartIdx: startIdx}
	return ASKResult{Buffer: out, Framing: framing, ErrCount: errCount, STFound: stFound, STClock: stClock}, nil
}

// amplify scales samples toward full range, preserving sign,
// saturating at the sample bounds.
func amplify(samples []int) {
	for i, v := range samples {
		samples[i] = waveform.SaturatingAdd(v, sign3(v)*20)
	}
}

func sign3(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

// detectST recognizes the fixed ST preamble pattern against a
// hard-sliced version of samples and, on a match, reports the index
// immediately after it plus the length of the high run that starts the
// match, snapped to the nearer of 32 and 64 (a candidate ASK clock
// value).
func detectST(samples []int) (found bool, start int, clk int) {
	sliced := hardSlice(samples)
	for i := 0; i+len(stPreamble) < len(sliced); i++ {
		match := true
		for j, want := range stPreamble {
			if sliced[i+j] != want {
				match = false
				break
			}
		}
		if match {
			highRun := 0
			for k := i; k < len(sliced) && sliced[k] == 1; k++ {
				highRun++
			}
			return true, i + len(stPreamble), nearestPow2Clock(highRun)
		}
	}
	return false, 0, 0
}

func nearestPow2Clock(run int) int {
	candidates := []int{32, 64}
	best := candidates[0]
	bestDist := absInt(run - best)
	for _, c := range candidates[1:] {
		if d := absInt(run - c); d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}

func hardSlice(samples []int) []int {
	out := make([]int, len(samples))
	for i, v := range samples {
		if v >= 0 {
			out[i] = 1
		} else {
			out[i] = 0
		}
	}
	return out
}

// askSlice is the core detector: it slices half-bit integrals to
// decide each symbol, emitting a bit stream and a running error
// count. When manchester is requested, two half-bit integrals per
// clock period are compared directly (10 -> 0, 01 -> 1) instead of a
// single full-period slice.
func askSlice(samples []int, start, clk int, invert, manchester bool) ([]byte, int) {
	if clk <= 0 {
		clk = 64
	}
	half := clk / 2
	if half == 0 {
		half = 1
	}
	var bits []byte
	errCount := 0
	i := start
	for i+clk <= len(samples) {
		if manchester {
			firstHalf := integralSign(samples[i : i+half])
			secondHalf := integralSign(samples[i+half : i+clk])
			var bit byte
			switch {
			case firstHalf == 1 && secondHalf == -1:
				bit = 0
			case firstHalf == -1 && secondHalf == 1:
				bit = 1
			default:
				bit = ErrorBit
				errCount++
			}
			if invert && bit != ErrorBit {
				bit ^= 1
			}
			bits = append(bits, bit)
		} else {
			s := integralSign(samples[i : i+clk])
			var bit byte
			if s >= 0 {
				bit = 1
			} else {
				bit = 0
			}
			if invert {
				bit ^= 1
			}
			bits = append(bits, bit)
		}
		i += clk
	}
	return bits, errCount
}

func integralSign(window []int) int {
	sum := 0
	for _, v := range window {
		sum += v
	}
	if sum > 0 {
		return 1
	}
	if sum < 0 {
		return -1
	}
	return 0
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ASKBiphaseResult is the outcome of ASKbiphaseDemod.
type ASKBiphaseResult struct {
	Buffer   *Buffer
	Framing  Framing
	ErrCount int
}

// ASKbiphaseDemod runs raw ASK demod with invert=0, then
// BiphaseRawDecode over the resulting bit stream, summing errors from
// both stages against max_err.
func ASKbiphaseDemod(b *waveform.Buffer, cfg Config) (ASKBiphaseResult, error) {
	rawCfg := cfg
	rawCfg.Invert = false
	rawCfg.ASKType = ASKTypeRaw
	raw, err := ASKDemod(b, rawCfg)
	if err != nil {
		return ASKBiphaseResult{}, err
	}
	decoded, biphaseErr, err := BiphaseRawDecode(raw.Buffer.Bits(), 0, cfg.Invert)
	if err != nil {
		return ASKBiphaseResult{}, err
	}
	totalErr := raw.ErrCount + biphaseErr
	if cfg.MaxErr > 0 && totalErr > cfg.MaxErr {
		return ASKBiphaseResult{}, rferrors.NewSoftFail("ask/biphase error count %d exceeds budget %d", totalErr, cfg.MaxErr)
	}
	out := NewDemodBuffer(DefaultMaxBits)
	if err := out.Set(decoded); err != nil {
		return ASKBiphaseResult{}, err
	}
	return ASKBiphaseResult{Buffer: out, Framing: raw.Framing, ErrCount: totalErr}, nil
}
