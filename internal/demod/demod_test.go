package demod

import (
	"testing"

	"github.com/iceman-lab/rfsignalcore/internal/clockdetect"
	"github.com/iceman-lab/rfsignalcore/internal/waveform"
)

func TestDemodBufferValidAfterSet(t *testing.T) {
	d := NewDemodBuffer(16)
	if err := d.Set([]byte{0, 1, 1, ErrorBit, 0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.Valid() {
		t.Fatalf("expected valid demod buffer")
	}
}

func TestDemodBufferRejectsOverflow(t *testing.T) {
	d := NewDemodBuffer(4)
	if err := d.Set([]byte{0, 1, 0, 1, 0}); err == nil {
		t.Fatalf("expected resource error on overflow")
	}
}

func TestFramingValidBounds(t *testing.T) {
	f := Framing{Clock: 64, StartIdx: 5}
	if !f.Valid(1000) {
		t.Fatalf("expected framing to be valid")
	}
	bad := Framing{Clock: 4, StartIdx: 5}
	if bad.Valid(1000) {
		t.Fatalf("expected framing with clock<8 to be invalid")
	}
}

func TestPSK1ToPSK2Differentiation(t *testing.T) {
	b := []byte{1, 0, 1, 1, 0}
	psk2 := PSK1ToPSK2(b)
	if psk2[0] != b[0] {
		t.Fatalf("expected psk2[0]==b[0]")
	}
	for i := 1; i < len(b); i++ {
		want := b[i] ^ b[i-1]
		if psk2[i] != want {
			t.Fatalf("psk2[%d]=%d, want %d", i, psk2[i], want)
		}
	}
}

func TestManchesterDecodeZeroErrorsOnCleanPairs(t *testing.T) {
	original := []byte{0, 1, 1, 0, 0, 1}
	var encoded []byte
	for _, bit := range original {
		if bit == 0 {
			encoded = append(encoded, 1, 0)
		} else {
			encoded = append(encoded, 0, 1)
		}
	}
	decoded, errCount, err := ManchesterDecode(encoded, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if errCount != 0 {
		t.Fatalf("expected zero errors, got %d", errCount)
	}
	if len(decoded) != len(original) {
		t.Fatalf("expected %d decoded bits, got %d", len(original), len(decoded))
	}
	for i := range original {
		if decoded[i] != original[i] {
			t.Fatalf("decoded[%d]=%d, want %d", i, decoded[i], original[i])
		}
	}
}

func TestBin2HexHex2BinRoundTrip(t *testing.T) {
	cases := []string{"55", "ff", "00", "a1b2c3", "0001020304"}
	for _, hex := range cases {
		bin, err := Hex2Bin(hex)
		if err != nil {
			t.Fatalf("hex2bin(%s): %v", hex, err)
		}
		back, err := Bin2Hex(bin)
		if err != nil {
			t.Fatalf("bin2hex: %v", err)
		}
		if back != hex {
			t.Fatalf("round trip mismatch: %s -> %s -> %s", hex, bin, back)
		}
	}
}

func TestBin2HexKnownVector(t *testing.T) {
	got, err := Bin2Hex("01010101")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "55" {
		t.Fatalf("expected 55, got %s", got)
	}
	bin, err := Hex2Bin("55")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bin != "01010101" {
		t.Fatalf("expected 01010101, got %s", bin)
	}
}

func buildEM410xFrame(id uint64) []byte {
	var frame []byte
	for i := 0; i < em410xHeaderBits; i++ {
		frame = append(frame, 1)
	}
	colParity := [4]byte{}
	for r := em410xRows - 1; r >= 0; r-- {
		nibble := byte(id>>uint(r*4)) & 0xF
		bits := [4]byte{(nibble >> 3) & 1, (nibble >> 2) & 1, (nibble >> 1) & 1, nibble & 1}
		parity := bits[0] ^ bits[1] ^ bits[2] ^ bits[3]
		for c := 0; c < 4; c++ {
			frame = append(frame, bits[c])
			colParity[c] ^= bits[c]
		}
		frame = append(frame, parity)
	}
	for c := 0; c < 4; c++ {
		frame = append(frame, colParity[c])
	}
	frame = append(frame, 0)
	return frame
}

func TestEm410xSearchDecodesCanonicalFrame(t *testing.T) {
	id := uint64(0x8001020304)
	frame := buildEM410xFrame(id)
	if len(frame) != em410xFrameBits {
		t.Fatalf("test frame has %d bits, want %d", len(frame), em410xFrameBits)
	}
	padded := append([]byte{0, 0, 0}, frame...)
	res, err := Em410xSearch(padded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Hi != 0 {
		t.Fatalf("expected hi=0, got %d", res.Hi)
	}
	if res.Lo != id {
		t.Fatalf("expected lo=0x%x, got 0x%x", id, res.Lo)
	}
}

func TestASKDemodRejectsShortBuffer(t *testing.T) {
	b := waveform.NewBuffer(100)
	b.LoadSamples(make([]int, 50))
	if _, err := ASKDemod(b, Config{}); err == nil {
		t.Fatalf("expected error for buffer shorter than minimum")
	}
}

// buildManchesterASKSamples renders bits as an RF/clk ASK/Manchester
// waveform: bit 0 is a (+,-) half-period pair, bit 1 is (-,+), matching
// askSlice's half-bit integral comparison.
func buildManchesterASKSamples(bits []byte, clk int) []int {
	half := clk / 2
	samples := make([]int, 0, len(bits)*clk)
	for _, bit := range bits {
		hiFirst, hiSecond := 100, -100
		if bit == 1 {
			hiFirst, hiSecond = -100, 100
		}
		for i := 0; i < half; i++ {
			samples = append(samples, hiFirst)
		}
		for i := 0; i < clk-half; i++ {
			samples = append(samples, hiSecond)
		}
	}
	return samples
}

func TestASKDemodManchesterEM410xEndToEnd(t *testing.T) {
	id := uint64(0x8001020304)
	frame := buildEM410xFrame(id)
	samples := buildManchesterASKSamples(frame, 64)

	b := waveform.NewBuffer(len(samples))
	b.LoadSamples(samples)

	res, err := ASKDemod(b, Config{Clk: 64, ASKType: ASKTypeManchester})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ErrCount != 0 {
		t.Fatalf("expected zero demod errors, got %d", res.ErrCount)
	}
	if res.Buffer.Len() != em410xFrameBits {
		t.Fatalf("expected %d decoded bits, got %d", em410xFrameBits, res.Buffer.Len())
	}

	search, err := Em410xSearch(res.Buffer.Bits())
	if err != nil {
		t.Fatalf("em410x search: unexpected error: %v", err)
	}
	if search.Hi != 0 {
		t.Fatalf("expected hi=0, got %d", search.Hi)
	}
	if search.Lo != id {
		t.Fatalf("expected lo=0x%x, got 0x%x", id, search.Lo)
	}
}

// buildFSK2Samples renders bits as field-clock tones using the same
// template shape FSKrawDemod correlates against, so the synthetic
// trace exercises the real matched-filter decision boundary.
func buildFSK2Samples(bits []byte, clk, fcLo, fcHi int) []int {
	samples := make([]int, 0, len(bits)*clk)
	for _, bit := range bits {
		fc := fcLo
		if bit == 1 {
			fc = fcHi
		}
		for _, v := range fskTemplate(clk, fc) {
			samples = append(samples, v*100)
		}
	}
	return samples
}

func TestFSKRawDemodFSK2EndToEnd(t *testing.T) {
	bits := buildEM410xFrame(0x8001020304)
	samples := buildFSK2Samples(bits, 50, 8, 10)

	b := waveform.NewBuffer(len(samples))
	b.LoadSamples(samples)

	clocks, err := clockdetect.FSKClockPair(b)
	if err != nil {
		t.Fatalf("fsk clock pair: unexpected error: %v", err)
	}
	if clocks.FCLo != 8 || clocks.FCHi != 10 {
		t.Fatalf("expected fc_lo=8 fc_hi=10, got fc_lo=%d fc_hi=%d", clocks.FCLo, clocks.FCHi)
	}
	if clocks.Clk != 50 {
		t.Fatalf("expected detected bit clock 50, got %d", clocks.Clk)
	}

	res, err := FSKrawDemod(b, Config{})
	if err != nil {
		t.Fatalf("fsk raw demod: unexpected error: %v", err)
	}
	if res.Variant != "FSK2" {
		t.Fatalf("expected FSK2 variant, got %s", res.Variant)
	}
	if res.Buffer.Len() < 32 {
		t.Fatalf("expected at least 32 decoded bits, got %d", res.Buffer.Len())
	}
}

func TestFSKVariantNaming(t *testing.T) {
	cases := []struct {
		fcHi, fcLo int
		invert     bool
		want       string
	}{
		{10, 8, false, "FSK2"},
		{10, 8, true, "FSK2a"},
		{8, 5, false, "FSK1a"},
		{8, 5, true, "FSK1"},
		{7, 3, false, "FSK??"},
	}
	for _, c := range cases {
		got := FSKVariantName(c.fcHi, c.fcLo, c.invert)
		if got != c.want {
			t.Fatalf("FSKVariantName(%d,%d,%v) = %s, want %s", c.fcHi, c.fcLo, c.invert, got, c.want)
		}
	}
}
