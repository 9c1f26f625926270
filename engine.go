package folio

import "time"

// gesturePhase is the engine's explicit gesture mode. Exactly one phase is
// active at a time; transitions are driven only by touch-count changes and
// the zoom flag.
type gesturePhase int

const (
	phaseIdle gesturePhase = iota
	phaseSingleTouch
	phasePinch
	phasePanZoom
)

// session is the per-touch-sequence bookkeeping. It is created when the
// first finger lands and zeroed when the last finger lifts.
type session struct {
	startX, startY float64
	lastX, lastY   float64
	startTime      time.Time
	touchCount     int

	// Pinch anchors, valid while pinched is true.
	pinchStartDist  float64
	pinchStartScale float64

	// Pan anchors: the finger position and translate captured when the
	// current drag segment began.
	panAnchorX, panAnchorY float64
	panStartTX, panStartTY float64

	// pinched records that a pinch occurred at some point during this
	// sequence, which suppresses tap and swipe classification at the end.
	pinched bool
}

// Engine interprets an ordered stream of touch events as reading gestures:
// pinch-zoom, pan-while-zoomed, tap, double-tap zoom toggle, and horizontal
// page-turn swipes. It owns the single persistent Transform; hosts read
// snapshots and register callbacks, never write.
//
// The engine is synchronous and single-threaded: each event is processed to
// completion inside the call that delivers it, and all callbacks fire on the
// caller's goroutine. It performs no I/O and schedules nothing; elapsed time
// comes from wall-clock timestamps captured as events arrive. Malformed
// input (an empty point list, an end without a start) is absorbed as a no-op
// or a reset to idle, never a panic.
type Engine struct {
	cfg       Config
	transform Transform
	phase     gesturePhase
	session   session

	// Last candidate tap, for pairing into a double-tap. Survives session
	// resets so the two taps of a pair can live in separate sequences.
	lastTap    time.Time
	hasLastTap bool

	handlers handlerRegistry

	now func() time.Time // swapped out in tests
}

// NewEngine creates an engine at the identity transform. Zero-valued Config
// fields take package defaults; see Config.
func NewEngine(cfg Config) *Engine {
	return &Engine{
		cfg:       cfg.withDefaults(),
		transform: Identity(),
		now:       time.Now,
	}
}

// Snapshot returns the current transform. The returned value never changes;
// call again after the next event for the updated one.
func (e *Engine) Snapshot() Transform {
	return e.transform
}

// ResetZoom unconditionally restores the identity transform and abandons any
// in-progress gesture. This is the only external state reset.
func (e *Engine) ResetZoom() {
	e.phase = phaseIdle
	e.session = session{}
	e.transform = Identity()
	e.fireTransformChanged()
}

// SetViewport updates the measured dimensions of the zoomable viewport,
// re-clamping the current pan offset to the new bounds. Call on layout
// changes (rotation, window resize).
func (e *Engine) SetViewport(width, height float64) {
	e.cfg.ViewportWidth = width
	e.cfg.ViewportHeight = height
	tx := clampTranslate(e.transform.TranslateX, e.transform.Scale, width)
	ty := clampTranslate(e.transform.TranslateY, e.transform.Scale, height)
	if tx != e.transform.TranslateX || ty != e.transform.TranslateY {
		e.transform.TranslateX = tx
		e.transform.TranslateY = ty
		e.fireTransformChanged()
	}
}

// ZoomBy multiplies the current scale by factor, clamped to the configured
// range, keeping as much of the pan offset as the new bounds allow. Intended
// for non-touch zoom inputs such as a mouse wheel or keyboard shortcut.
func (e *Engine) ZoomBy(factor float64) {
	if factor <= 0 {
		return
	}
	e.setTransform(e.transform.Scale*factor, e.transform.TranslateX, e.transform.TranslateY)
}

// --- Touch event intake ---

// TouchStart begins or extends a touch sequence. points holds every contact
// currently down, the new one included. An empty list is a no-op.
func (e *Engine) TouchStart(points []Point) {
	if len(points) == 0 {
		return
	}
	p := points[0]
	if e.phase == phaseIdle {
		e.session = session{
			startX: p.X, startY: p.Y,
			lastX: p.X, lastY: p.Y,
			startTime:  e.now(),
			touchCount: len(points),
			panAnchorX: p.X, panAnchorY: p.Y,
			panStartTX: e.transform.TranslateX,
			panStartTY: e.transform.TranslateY,
		}
		e.phase = phaseSingleTouch
	} else {
		e.session.touchCount = len(points)
	}
	if e.session.touchCount >= 2 {
		e.beginPinch(points[0], points[1])
	}
}

// TouchMove updates the active sequence with the current contact positions.
// Ignored while idle or when points is empty.
func (e *Engine) TouchMove(points []Point) {
	if e.phase == phaseIdle || len(points) == 0 {
		return
	}
	// A count change here means a start or end was missed; re-anchor
	// rather than fail.
	if len(points) != e.session.touchCount {
		e.session.touchCount = len(points)
		if len(points) >= 2 && e.phase != phasePinch {
			e.beginPinch(points[0], points[1])
			return
		}
	}
	if e.phase == phasePinch {
		if len(points) >= 2 {
			e.updatePinch(points[0], points[1])
		}
		return
	}
	p := points[0]
	e.session.lastX, e.session.lastY = p.X, p.Y
	if e.transform.Scale > 1 {
		e.pan(p)
	}
}

// TouchEnd removes lifted fingers. remaining holds the contacts still down;
// pass nil or an empty slice when the last finger lifts, which classifies
// the sequence (tap, double-tap, or swipe — at most one fires) and returns
// the engine to idle.
func (e *Engine) TouchEnd(remaining []Point) {
	if e.phase == phaseIdle {
		return // end without a matching start
	}
	if len(remaining) > 0 {
		e.demote(remaining)
		return
	}
	e.finish()
}

// --- Pinch ---

func (e *Engine) beginPinch(p0, p1 Point) {
	e.session.pinchStartDist = distance(p0, p1)
	e.session.pinchStartScale = e.transform.Scale
	e.session.pinched = true
	e.phase = phasePinch
	if !e.transform.Pinching {
		e.transform.Pinching = true
		e.fireTransformChanged()
	}
}

func (e *Engine) updatePinch(p0, p1 Point) {
	s := &e.session
	if s.pinchStartDist <= 0 {
		return // fingers landed on the same pixel; wait for them to separate
	}
	factor := distance(p0, p1) / s.pinchStartDist
	scale := clamp(s.pinchStartScale*factor, e.cfg.MinScale, e.cfg.MaxScale)
	e.transform.Scale = scale
	e.transform.Pinching = true
	e.transform.Zoomed = scale > 1
	if scale <= 1 {
		e.transform.TranslateX = 0
		e.transform.TranslateY = 0
	} else {
		// Zooming out shrinks the pan range; keep the offset legal.
		e.transform.TranslateX = clampTranslate(e.transform.TranslateX, scale, e.cfg.ViewportWidth)
		e.transform.TranslateY = clampTranslate(e.transform.TranslateY, scale, e.cfg.ViewportHeight)
	}
	e.fireTransformChanged()
}

// --- Pan ---

func (e *Engine) pan(p Point) {
	e.phase = phasePanZoom
	s := &e.session
	tx := s.panStartTX + (p.X - s.panAnchorX)
	ty := s.panStartTY + (p.Y - s.panAnchorY)
	tx = clampTranslate(tx, e.transform.Scale, e.cfg.ViewportWidth)
	ty = clampTranslate(ty, e.transform.Scale, e.cfg.ViewportHeight)
	if tx != e.transform.TranslateX || ty != e.transform.TranslateY {
		e.transform.TranslateX = tx
		e.transform.TranslateY = ty
		e.fireTransformChanged()
	}
}

// --- Sequence end ---

// demote drops the session to the remaining contacts after a finger lifts.
func (e *Engine) demote(remaining []Point) {
	s := &e.session
	s.touchCount = len(remaining)
	p := remaining[0]
	s.lastX, s.lastY = p.X, p.Y
	if e.phase == phasePinch && len(remaining) < 2 {
		// Pinch over: the achieved scale and offset stay. Re-anchor the
		// surviving finger so a continued drag pans from here.
		e.phase = phaseSingleTouch
		s.panAnchorX, s.panAnchorY = p.X, p.Y
		s.panStartTX = e.transform.TranslateX
		s.panStartTY = e.transform.TranslateY
		e.transform.Pinching = false
		e.fireTransformChanged()
	}
}

// finish classifies the completed sequence and resets to idle. At most one
// of tap/double-tap or swipe fires.
func (e *Engine) finish() {
	s := e.session
	e.phase = phaseIdle
	e.session = session{}

	if s.pinched {
		if e.transform.Pinching {
			e.transform.Pinching = false
			e.fireTransformChanged()
		}
		return
	}

	now := e.now()
	dur := now.Sub(s.startTime)
	if isTap(dur, s.lastX-s.startX, s.lastY-s.startY, e.cfg) {
		e.classifyTap(s, now)
		return
	}
	// Swipes only page-turn at rest; the identical motion while zoomed is
	// a pan and was already applied.
	if e.transform.Scale <= 1 {
		e.classifySwipe(s, dur)
	}
}

// setTransform applies a candidate scale and translate with all invariants
// enforced: scale clamped to the configured range, translate zeroed at or
// below unit scale and clamped to the pan bounds otherwise.
func (e *Engine) setTransform(scale, tx, ty float64) {
	scale = clamp(scale, e.cfg.MinScale, e.cfg.MaxScale)
	if scale <= 1 {
		tx, ty = 0, 0
	}
	e.transform.Scale = scale
	e.transform.Zoomed = scale > 1
	e.transform.TranslateX = clampTranslate(tx, scale, e.cfg.ViewportWidth)
	e.transform.TranslateY = clampTranslate(ty, scale, e.cfg.ViewportHeight)
	e.fireTransformChanged()
}
