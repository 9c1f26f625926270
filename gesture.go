package folio

import (
	"math"
	"time"
)

// isTap reports whether a completed single-touch sequence qualifies as a
// tap: short, and barely moved on either axis.
func isTap(dur time.Duration, dx, dy float64, cfg Config) bool {
	return dur < cfg.TapMaxDuration &&
		math.Abs(dx) < cfg.TapMaxMovement &&
		math.Abs(dy) < cfg.TapMaxMovement
}

// classifyTap pairs a candidate tap with the previous one. Two candidates
// inside DoubleTapInterval make a double-tap, which toggles the zoom between
// unit scale and DoubleTapScale (centered, offset zeroed). A lone tap only
// stores its timestamp for pairing and notifies tap handlers; it never
// touches the transform.
func (e *Engine) classifyTap(s session, now time.Time) {
	ctx := TapContext{X: s.lastX, Y: s.lastY, Time: now}
	if e.hasLastTap && now.Sub(e.lastTap) < e.cfg.DoubleTapInterval {
		e.hasLastTap = false
		if e.transform.Scale > 1 {
			e.setTransform(1, 0, 0)
		} else {
			e.setTransform(e.cfg.DoubleTapScale, 0, 0)
		}
		e.fireDoubleTap(ctx)
		return
	}
	e.lastTap = now
	e.hasLastTap = true
	e.fireTap(ctx)
}

// classifySwipe evaluates a completed single-touch sequence as a page-turn
// swipe. Fires only for fast, mostly-horizontal motion: the horizontal
// travel must beat MinSwipeDistance, the speed must beat
// SwipeVelocityThreshold, and the vertical travel must be strictly smaller
// (rejecting scroll-like drags). Finger leftward turns to the next page,
// rightward to the previous.
func (e *Engine) classifySwipe(s session, dur time.Duration) {
	run := s.startX - s.lastX // positive when the finger moved leftward
	rise := s.startY - s.lastY
	ms := float64(dur) / float64(time.Millisecond)
	if ms <= 0 {
		return
	}
	travel := math.Abs(run)
	velocity := travel / ms
	if travel <= e.cfg.MinSwipeDistance ||
		velocity <= e.cfg.SwipeVelocityThreshold ||
		travel <= math.Abs(rise) {
		return
	}
	ctx := SwipeContext{
		StartX:   s.startX,
		StartY:   s.startY,
		EndX:     s.lastX,
		EndY:     s.lastY,
		Distance: travel,
		Velocity: velocity,
		Duration: dur,
	}
	if run > 0 {
		e.fireSwipeLeft(ctx)
	} else {
		e.fireSwipeRight(ctx)
	}
}
