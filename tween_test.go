package folio

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestAnimateToReachesTarget(t *testing.T) {
	e, _ := newTestEngine()

	a := e.AnimateTo(2, 100, 0, 0.5, ease.Linear)

	if done := a.Update(0.25); done {
		t.Fatal("animation reported done at half time")
	}
	mid := e.Snapshot()
	if mid.Scale != 1.5 {
		t.Errorf("Scale = %v at half time, want 1.5", mid.Scale)
	}
	if mid.TranslateX != 50 {
		t.Errorf("TranslateX = %v at half time, want 50", mid.TranslateX)
	}

	if done := a.Update(0.25); !done {
		t.Fatal("animation not done at full time")
	}
	end := e.Snapshot()
	if end.Scale != 2 || end.TranslateX != 100 {
		t.Errorf("end state = %+v, want Scale 2, TranslateX 100", end)
	}
	if !end.Zoomed {
		t.Error("Zoomed = false at scale 2")
	}
}

func TestAnimatorRespectsEngineInvariants(t *testing.T) {
	e, _ := newTestEngine()

	// Target scale beyond MaxScale and offset beyond the pan bounds;
	// every frame must come out clamped.
	a := e.AnimateTo(5, 10_000, -10_000, 1, ease.Linear)
	for i := 0; i < 25 && !a.Done; i++ {
		a.Update(0.05)
		assertInvariants(t, e)
	}
	if !a.Done {
		t.Fatal("animation never finished")
	}
	if got := e.Snapshot().Scale; got != 3 {
		t.Errorf("Scale = %v, want clamped 3", got)
	}
}

func TestAnimateZoomToggle(t *testing.T) {
	e, _ := newTestEngine()

	in := e.AnimateZoomToggle(0.25, ease.Linear)
	in.Update(0.25)
	if got := e.Snapshot().Scale; got != 2 {
		t.Errorf("Scale = %v after zoom-in toggle, want 2", got)
	}

	out := e.AnimateZoomToggle(0.25, ease.Linear)
	out.Update(0.25)
	if got := e.Snapshot(); got != Identity() {
		t.Errorf("Snapshot() = %+v after zoom-out toggle, want identity", got)
	}
}

func TestAnimateResetFromPannedState(t *testing.T) {
	e, c := newTestEngine()
	doubleTap(e, c, 300, 400)
	e.TouchStart([]Point{{300, 400}})
	e.TouchMove([]Point{{500, 400}}) // TranslateX 200
	e.TouchEnd(nil)

	a := e.AnimateReset(0.5, ease.Linear)
	for i := 0; i < 20 && !a.Done; i++ {
		a.Update(0.05)
		assertInvariants(t, e)
	}
	if got := e.Snapshot(); got != Identity() {
		t.Errorf("Snapshot() = %+v after animated reset, want identity", got)
	}
}

func TestAnimatorCancel(t *testing.T) {
	e, _ := newTestEngine()

	a := e.AnimateTo(2, 0, 0, 1, ease.Linear)
	a.Update(0.5)
	before := e.Snapshot()

	a.Cancel()
	if done := a.Update(0.5); !done {
		t.Error("Update after Cancel = false, want true")
	}
	if got := e.Snapshot(); got != before {
		t.Errorf("Snapshot() = %+v after canceled update, want unchanged %+v", got, before)
	}
}
