package folio

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// Slot bookkeeping is pure and testable without a running game; the polling
// paths that call into ebiten are exercised by the examples.

func TestTouchSourceSlotMapping(t *testing.T) {
	s := NewTouchSource(NewEngine(Config{}))

	if got := s.slot(ebiten.TouchID(5)); got != 0 {
		t.Errorf("slot(5) = %d, want 0", got)
	}
	if got := s.slot(ebiten.TouchID(7)); got != 1 {
		t.Errorf("slot(7) = %d, want 1", got)
	}
	// Same ID maps to the same slot.
	if got := s.slot(ebiten.TouchID(5)); got != 0 {
		t.Errorf("slot(5) again = %d, want 0", got)
	}

	// Releasing slot 0 lets a new touch reuse it.
	s.slotUsed[0] = false
	if got := s.slot(ebiten.TouchID(9)); got != 0 {
		t.Errorf("slot(9) after release = %d, want 0", got)
	}
	// Touch 7 keeps its slot across the reuse.
	if got := s.slot(ebiten.TouchID(7)); got != 1 {
		t.Errorf("slot(7) = %d, want 1", got)
	}
}

func TestTouchSourceSlotExhaustion(t *testing.T) {
	s := NewTouchSource(NewEngine(Config{}))

	for i := 0; i < maxContacts; i++ {
		if got := s.slot(ebiten.TouchID(100 + i)); got != i {
			t.Fatalf("slot(%d) = %d, want %d", 100+i, got, i)
		}
	}
	if got := s.slot(ebiten.TouchID(999)); got != -1 {
		t.Errorf("slot(999) with all slots taken = %d, want -1", got)
	}
}

func TestNewTouchSourceDefaults(t *testing.T) {
	s := NewTouchSource(NewEngine(Config{}))
	if !s.MouseEnabled {
		t.Error("MouseEnabled = false, want true by default")
	}
	if s.WheelZoomStep != 1.1 {
		t.Errorf("WheelZoomStep = %v, want 1.1", s.WheelZoomStep)
	}
}
