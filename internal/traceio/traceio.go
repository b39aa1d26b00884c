// Package traceio implements the persisted-trace and device-wire-format
// collaborators named at interface level by the external interface
// spec: a decimal-per-line text trace format compatible with the
// source console's .pm3 traces, a PCM WAV export, and the big-buffer
// bit-unpacking rule for raw device reads.
package traceio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/iceman-lab/rfsignalcore/internal/rferrors"
	"github.com/iceman-lab/rfsignalcore/internal/waveform"
)

// LoadTrace reads a decimal-per-line trace file into samples,
// stopping once maxSamples is reached.
func LoadTrace(path string, maxSamples int) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, rferrors.NewInvalidArg("cannot open trace file %s: %v", path, err)
	}
	defer f.Close()

	var samples []int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if maxSamples > 0 && len(samples) >= maxSamples {
			break
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		v, err := strconv.Atoi(line)
		if err != nil {
			return nil, rferrors.NewInvalidArg("malformed sample %q in trace file %s", line, path)
		}
		samples = append(samples, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading trace file %s: %w", path, err)
	}
	return samples, nil
}

// SaveTrace writes samples as a decimal-per-line text trace.
func SaveTrace(path string, samples []int) error {
	f, err := os.Create(path)
	if err != nil {
		return rferrors.NewInvalidArg("cannot create trace file %s: %v", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, v := range samples {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return fmt.Errorf("writing trace file %s: %w", path, err)
		}
	}
	return w.Flush()
}

// wavSampleRate is a fixed nominal rate written into every WAV header;
// the real capture rate is not recorded in the container.
const wavSampleRate = 48000

// SaveWAV writes samples as a mono 8-bit-over-16-bit PCM WAV
// container. No WAV-writing library exists anywhere in the example
// pack's dependency graph (see DESIGN.md); encoding/binary is the
// pack-consistent fallback for a fixed, simple binary container.
func SaveWAV(path string, samples []int) error {
	f, err := os.Create(path)
	if err != nil {
		return rferrors.NewInvalidArg("cannot create wav file %s: %v", path, err)
	}
	defer f.Close()

	dataSize := len(samples) * 2
	if err := writeWAVHeader(f, dataSize); err != nil {
		return err
	}
	for _, v := range samples {
		if err := binary.Write(f, binary.LittleEndian, int16(v)*256); err != nil {
			return fmt.Errorf("writing wav samples: %w", err)
		}
	}
	return nil
}

func writeWAVHeader(w io.Writer, dataSize int) error {
	const (
		channels      = 1
		bitsPerSample = 16
	)
	byteRate := wavSampleRate * channels * bitsPerSample / 8
	blockAlign := channels * bitsPerSample / 8

	if _, err := w.Write([]byte("RIFF")); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(36+dataSize)); err != nil {
		return err
	}
	if _, err := w.Write([]byte("WAVEfmt ")); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(16)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint16(1)); err != nil { // PCM
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint16(channels)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(wavSampleRate)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(byteRate)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint16(blockAlign)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint16(bitsPerSample)); err != nil {
		return err
	}
	if _, err := w.Write([]byte("data")); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, uint32(dataSize))
}

// LoadBigBuffer unpacks raw device bytes per the big-buffer wire
// format: when bitsPerSample < 8, samples are unpacked MSB-first
// across bytes then biased by -127; otherwise sample = byte-127.
func LoadBigBuffer(raw []byte, bitsPerSample int) ([]int, error) {
	if bitsPerSample <= 0 || bitsPerSample > 8 {
		return nil, rferrors.NewInvalidArg("bits_per_sample must be in (0,8], got %d", bitsPerSample)
	}
	if bitsPerSample == 8 {
		out := make([]int, len(raw))
		for i, b := range raw {
			out[i] = int(b) - 127
		}
		return out, nil
	}

	var out []int
	totalBits := len(raw) * 8
	for pos := 0; pos+bitsPerSample <= totalBits; pos += bitsPerSample {
		v := 0
		for k := pos; k < pos+bitsPerSample; k++ {
			v = v<<1 | int((raw[k/8]>>uint(7-k%8))&1)
		}
		out = append(out, v-127)
	}
	return out, nil
}

// ClampedLoad loads a trace directly into a waveform.Buffer.
func ClampedLoad(b *waveform.Buffer, path string) error {
	samples, err := LoadTrace(path, b.Cap())
	if err != nil {
		return err
	}
	b.LoadSamples(samples)
	return nil
}
