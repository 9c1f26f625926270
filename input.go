package folio

import "github.com/hajimehoshi/ebiten/v2"

const maxContacts = 10

// TouchSource polls Ebitengine input once per frame and converts it into the
// ordered start/move/end stream an [Engine] consumes. Touch IDs are mapped to
// stable slots so finger identity survives across frames, and a left-button
// mouse drag stands in for a single touch on desktop builds.
//
// Call Update from the host's ebiten.Game.Update. While any touch contact is
// down, mouse input is ignored.
type TouchSource struct {
	engine *Engine

	touchIDs []ebiten.TouchID
	slotID   [maxContacts]ebiten.TouchID
	slotUsed [maxContacts]bool

	points    []Point
	prevCount int

	// MouseEnabled maps a left-button drag to a single touch so the demos
	// work without a touchscreen. On by default.
	MouseEnabled bool
	// WheelZoomStep is the zoom factor applied per mouse-wheel notch.
	// Set to 0 to disable wheel zoom.
	WheelZoomStep float64

	mouseDown bool
}

// NewTouchSource creates a source feeding the given engine, with mouse
// fallback enabled and a 1.1x wheel zoom step.
func NewTouchSource(e *Engine) *TouchSource {
	return &TouchSource{engine: e, MouseEnabled: true, WheelZoomStep: 1.1}
}

// Update polls input and delivers at most one engine event per frame.
func (s *TouchSource) Update() {
	if s.pollTouches() {
		return
	}
	if s.MouseEnabled {
		s.pollMouse()
	}
}

// pollTouches diffs the current touch contacts against the previous frame
// and delivers the corresponding event. Reports whether any contact was
// down this frame.
func (s *TouchSource) pollTouches() bool {
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])

	var active [maxContacts]bool
	for _, tid := range s.touchIDs {
		slot := s.slot(tid)
		if slot < 0 {
			continue
		}
		active[slot] = true
	}
	for i := range s.slotUsed {
		if s.slotUsed[i] && !active[i] {
			s.slotUsed[i] = false
		}
	}

	// Collect positions in slot order so the engine sees a stable finger
	// ordering. The slice is reused; the engine reads it synchronously and
	// never retains it.
	s.points = s.points[:0]
	for i := range s.slotUsed {
		if !s.slotUsed[i] {
			continue
		}
		x, y := ebiten.TouchPosition(s.slotID[i])
		s.points = append(s.points, Point{X: float64(x), Y: float64(y)})
	}

	cur := len(s.points)
	switch {
	case cur > s.prevCount:
		s.engine.TouchStart(s.points)
	case cur < s.prevCount:
		s.engine.TouchEnd(s.points)
	case cur > 0:
		s.engine.TouchMove(s.points)
	}
	wasActive := cur > 0 || s.prevCount > 0
	s.prevCount = cur
	return wasActive
}

// slot maps an ebiten.TouchID to a contact slot, allocating one if the ID is
// new. Returns -1 when all slots are taken.
func (s *TouchSource) slot(tid ebiten.TouchID) int {
	for i := range s.slotUsed {
		if s.slotUsed[i] && s.slotID[i] == tid {
			return i
		}
	}
	for i := range s.slotUsed {
		if !s.slotUsed[i] {
			s.slotUsed[i] = true
			s.slotID[i] = tid
			return i
		}
	}
	return -1
}

// pollMouse maps the left button to a single touch and the wheel to zoom
// steps.
func (s *TouchSource) pollMouse() {
	if s.WheelZoomStep > 0 {
		if _, wy := ebiten.Wheel(); wy != 0 {
			if wy > 0 {
				s.engine.ZoomBy(s.WheelZoomStep)
			} else {
				s.engine.ZoomBy(1 / s.WheelZoomStep)
			}
		}
	}

	mx, my := ebiten.CursorPosition()
	p := Point{X: float64(mx), Y: float64(my)}
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	switch {
	case pressed && !s.mouseDown:
		s.mouseDown = true
		s.engine.TouchStart([]Point{p})
	case pressed:
		s.engine.TouchMove([]Point{p})
	case s.mouseDown:
		s.mouseDown = false
		s.engine.TouchEnd(nil)
	}
}
