package traceio

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadTraceRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trace.pm3")
	samples := []int{-127, -10, 0, 10, 127}
	if err := SaveTrace(path, samples); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := LoadTrace(path, 0)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != len(samples) {
		t.Fatalf("expected %d samples, got %d", len(samples), len(got))
	}
	for i := range samples {
		if got[i] != samples[i] {
			t.Fatalf("sample %d: got %d, want %d", i, got[i], samples[i])
		}
	}
}

func TestLoadTraceStopsAtMax(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trace.pm3")
	samples := make([]int, 100)
	if err := SaveTrace(path, samples); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := LoadTrace(path, 10)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("expected load to stop at 10 samples, got %d", len(got))
	}
}

func TestLoadBigBufferEightBit(t *testing.T) {
	raw := []byte{127, 0, 255}
	got, err := LoadBigBuffer(raw, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{0, -127, 128}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sample %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestLoadBigBufferSubByte(t *testing.T) {
	// bits_per_sample=1, MSB-first: byte 0b10110000 -> bits 1,0,1,1,0,0,0,0
	raw := []byte{0xB0}
	got, err := LoadBigBuffer(raw, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 8 {
		t.Fatalf("expected 8 unpacked samples, got %d", len(got))
	}
	wantBits := []int{1, 0, 1, 1, 0, 0, 0, 0}
	for i, wb := range wantBits {
		want := wb - 127
		if got[i] != want {
			t.Fatalf("sample %d: got %d, want %d", i, got[i], want)
		}
	}
}

func TestSaveWAVWritesHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trace.wav")
	if err := SaveWAV(path, []int{0, 10, -10, 127, -127}); err != nil {
		t.Fatalf("save wav: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read wav: %v", err)
	}
	if len(data) != 44+5*2 {
		t.Fatalf("expected 44-byte header plus 10 data bytes, got %d bytes", len(data))
	}
	if string(data[0:4]) != "RIFF" || string(data[8:16]) != "WAVEfmt " || string(data[36:40]) != "data" {
		t.Fatalf("unexpected wav header %q", data[:44])
	}
}
