package demod

import (
	"fmt"
	"strings"

	"github.com/iceman-lab/rfsignalcore/internal/rferrors"
	"github.com/iceman-lab/rfsignalcore/internal/waveform"
)

// PrintMaxBits bounds printDemodBuff-style output at 512 bits.
const PrintMaxBits = 512

// GetBitStream runs HPF then hard-slices (>=1 -> 1, else 0) to derive
// a raw bit-per-sample stream directly from the waveform buffer.
func GetBitStream(b *waveform.Buffer) []byte {
	waveform.HPF(b)
	samples := b.Samples()
	out := make([]byte, len(samples))
	for i, v := range samples {
		if v >= 1 {
			out[i] = 1
		}
	}
	return out
}

// ConvertBitStream maps {0,1} bits back onto {-127,127} samples.
func ConvertBitStream(bits []byte) []int {
	out := make([]int, len(bits))
	for i, b := range bits {
		if b == 1 {
			out[i] = waveform.SampleMax
		} else {
			out[i] = waveform.SampleMin
		}
	}
	return out
}

// PrintDemodBuff renders bits starting at offset, optionally stripping
// leading zeros, inverting, or rendering hex, bounded at 512 bits.
func PrintDemodBuff(bits []byte, offset int, stripLeadingZeros, invert, hex bool) string {
	if offset < 0 {
		offset = 0
	}
	if offset > len(bits) {
		offset = len(bits)
	}
	view := bits[offset:]
	if len(view) > PrintMaxBits {
		view = view[:PrintMaxBits]
	}
	if stripLeadingZeros {
		i := 0
		for i < len(view) && view[i] == 0 {
			i++
		}
		view = view[i:]
	}
	work := make([]byte, len(view))
	copy(work, view)
	if invert {
		for i, b := range work {
			if b != ErrorBit {
				work[i] ^= 1
			}
		}
	}
	if hex {
		return BitsToHex(work)
	}
	return sprintBinBreak(work)
}

func sprintBinBreak(bits []byte) string {
	var sb strings.Builder
	for i, b := range bits {
		if i > 0 && i%8 == 0 {
			sb.WriteByte(' ')
		}
		switch b {
		case ErrorBit:
			sb.WriteByte('?')
		default:
			sb.WriteByte('0' + b)
		}
	}
	return sb.String()
}

// BitsToHex packs a 0/1 bit slice into a lowercase hex string, MSB
// first within each nibble, padding the final nibble with zeros.
func BitsToHex(bits []byte) string {
	const hexDigits = "0123456789abcdef"
	var sb strings.Builder
	for i := 0; i < len(bits); i += 4 {
		nibble := 0
		for j := 0; j < 4; j++ {
			nibble <<= 1
			if i+j < len(bits) && bits[i+j] == 1 {
				nibble |= 1
			}
		}
		sb.WriteByte(hexDigits[nibble])
	}
	return sb.String()
}

// SprintHexBreak renders bytes as lowercase hex pairs, space-separated,
// with a newline every breaks bytes (def 16). Mirrors the original
// console's print_hex_break row layout for the big-buffer hex dump.
func SprintHexBreak(data []byte, breaks int) string {
	if breaks <= 0 {
		breaks = 16
	}
	var sb strings.Builder
	for i, b := range data {
		switch {
		case i == 0:
		case i%breaks == 0:
			sb.WriteByte('\n')
		default:
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02x", b)
	}
	return sb.String()
}

// Bin2Hex converts a string of '0'/'1' characters to lowercase hex.
func Bin2Hex(bin string) (string, error) {
	if len(bin) == 0 {
		return "", rferrors.NewInvalidArg("bin2hex requires a non-empty bit string")
	}
	bits := make([]byte, len(bin))
	for i, c := range bin {
		switch c {
		case '0':
			bits[i] = 0
		case '1':
			bits[i] = 1
		default:
			return "", rferrors.NewInvalidArg("bin2hex: invalid character %q at position %d", c, i)
		}
	}
	return BitsToHex(bits), nil
}

// Hex2Bin converts a lowercase hex string to its '0'/'1' bit string,
// one hex digit expanding to 4 bits.
func Hex2Bin(hex string) (string, error) {
	if len(hex) == 0 {
		return "", rferrors.NewInvalidArg("hex2bin requires a non-empty hex string")
	}
	var sb strings.Builder
	for i, c := range hex {
		var v int
		switch {
		case c >= '0' && c <= '9':
			v = int(c - '0')
		case c >= 'a' && c <= 'f':
			v = int(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v = int(c-'A') + 10
		default:
			return "", rferrors.NewInvalidArg("hex2bin: invalid character %q at position %d", c, i)
		}
		for bit := 3; bit >= 0; bit-- {
			if v&(1<<uint(bit)) != 0 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}
	return sb.String(), nil
}
