package folio

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TransformAnimator eases the engine's transform toward a target scale and
// offset. Create one via [Engine.AnimateTo], [Engine.AnimateZoomToggle], or
// [Engine.AnimateReset] and call Update(dt) each frame until it reports done.
//
// Writes go through the engine, so the usual invariants (scale clamping,
// offset zeroing at unit scale, pan bounds) hold on every intermediate
// frame. Starting a touch gesture mid-animation simply overwrites the
// animated values; call Cancel to stop pumping in that case.
//
// There is no global animation manager — users call Update themselves.
type TransformAnimator struct {
	engine *Engine
	scale  *gween.Tween
	tx     *gween.Tween
	ty     *gween.Tween
	Done   bool
}

// Update advances the animation by dt seconds and applies the eased values
// to the engine. Returns true when the animation has completed.
func (a *TransformAnimator) Update(dt float32) bool {
	if a.Done {
		return true
	}
	s, doneS := a.scale.Update(dt)
	x, doneX := a.tx.Update(dt)
	y, doneY := a.ty.Update(dt)
	a.engine.setTransform(float64(s), float64(x), float64(y))
	a.Done = doneS && doneX && doneY
	return a.Done
}

// Cancel marks the animation done without touching the transform further.
func (a *TransformAnimator) Cancel() {
	a.Done = true
}

// AnimateTo eases the transform from its current values to the given scale
// and offset over duration seconds.
func (e *Engine) AnimateTo(scale, tx, ty float64, duration float32, fn ease.TweenFunc) *TransformAnimator {
	t := e.transform
	return &TransformAnimator{
		engine: e,
		scale:  gween.New(float32(t.Scale), float32(scale), duration, fn),
		tx:     gween.New(float32(t.TranslateX), float32(tx), duration, fn),
		ty:     gween.New(float32(t.TranslateY), float32(ty), duration, fn),
	}
}

// AnimateZoomToggle eases toward the state an immediate double-tap toggle
// would produce: back to unit scale if zoomed, otherwise in to
// DoubleTapScale. Typical use is inside an OnDoubleTap callback of a second
// engine, or instead of the immediate toggle for hosts that zoom via their
// own chrome.
func (e *Engine) AnimateZoomToggle(duration float32, fn ease.TweenFunc) *TransformAnimator {
	if e.transform.Scale > 1 {
		return e.AnimateTo(1, 0, 0, duration, fn)
	}
	return e.AnimateTo(e.cfg.DoubleTapScale, 0, 0, duration, fn)
}

// AnimateReset eases back to the identity transform. The impatient
// equivalent is [Engine.ResetZoom].
func (e *Engine) AnimateReset(duration float32, fn ease.TweenFunc) *TransformAnimator {
	return e.AnimateTo(1, 0, 0, duration, fn)
}
