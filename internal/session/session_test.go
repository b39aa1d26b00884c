package session

import (
	"testing"

	"github.com/iceman-lab/rfsignalcore/internal/demod"
)

func TestSaveRestoreRoundTrip(t *testing.T) {
	s := New(1000, 64)
	s.Samples.LoadSamples([]int{1, 2, 3, 4, 5})
	if err := s.ApplyDemod([]byte{0, 1, 1, 0}, demod.Framing{Clock: 64, StartIdx: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.SaveDB()

	s.Samples.LoadSamples([]int{9, 9, 9})
	if err := s.ApplyDemod([]byte{1, 1, 1}, demod.Framing{Clock: 32, StartIdx: 0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.RestoreDB()

	if s.Samples.Len() != 5 {
		t.Fatalf("expected restored sample length 5, got %d", s.Samples.Len())
	}
	if s.Demod.Len() != 4 {
		t.Fatalf("expected restored demod length 4, got %d", s.Demod.Len())
	}
	if s.Framing.Clock != 64 || s.Framing.StartIdx != 2 {
		t.Fatalf("expected restored framing {64,2}, got %+v", s.Framing)
	}
}

func TestSetClockGridClearsOnInvalidClock(t *testing.T) {
	s := New(1000, 64)
	s.Framing.Clock = 0
	s.SetClockGrid(10, 20)
	if s.Grid.Enabled {
		t.Fatalf("expected grid disabled for zero clock")
	}
}

func TestSessionIDIsUnique(t *testing.T) {
	a := New(10, 10)
	b := New(10, 10)
	if a.ID == b.ID {
		t.Fatalf("expected distinct session IDs")
	}
}
