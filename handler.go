package folio

import "time"

// EventType identifies which gesture a CallbackHandle was registered for.
type EventType int

const (
	EventSwipeLeft EventType = iota
	EventSwipeRight
	EventTap
	EventDoubleTap
	EventTransform
)

// SwipeContext carries the geometry of a recognized page-turn swipe.
type SwipeContext struct {
	// StartX, StartY and EndX, EndY are the first and last contact
	// positions of the swipe in viewport pixels.
	StartX, StartY float64
	EndX, EndY     float64
	// Distance is the horizontal travel in pixels (always positive).
	Distance float64
	// Velocity is the swipe speed in pixels per millisecond.
	Velocity float64
	// Duration is the elapsed time between touch start and touch end.
	Duration time.Duration
}

// TapContext carries the position and time of a recognized tap.
// For a double-tap, it describes the second tap of the pair.
type TapContext struct {
	X, Y float64
	Time time.Time
}

// --- Handler registry ---

type swipeHandler struct {
	id uint32
	fn func(SwipeContext)
}

type tapHandler struct {
	id uint32
	fn func(TapContext)
}

type transformHandler struct {
	id uint32
	fn func(Transform)
}

type handlerRegistry struct {
	swipeLeft  []swipeHandler
	swipeRight []swipeHandler
	tap        []tapHandler
	doubleTap  []tapHandler
	transform  []transformHandler
	nextID     uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventSwipeLeft:
		h.reg.swipeLeft = removeSwipeHandler(h.reg.swipeLeft, h.id)
	case EventSwipeRight:
		h.reg.swipeRight = removeSwipeHandler(h.reg.swipeRight, h.id)
	case EventTap:
		h.reg.tap = removeTapHandler(h.reg.tap, h.id)
	case EventDoubleTap:
		h.reg.doubleTap = removeTapHandler(h.reg.doubleTap, h.id)
	case EventTransform:
		h.reg.transform = removeTransformHandler(h.reg.transform, h.id)
	}
}

func removeSwipeHandler(s []swipeHandler, id uint32) []swipeHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = swipeHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeTapHandler(s []tapHandler, id uint32) []tapHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = tapHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeTransformHandler(s []transformHandler, id uint32) []transformHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = transformHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Registration ---

// OnSwipeLeft registers a callback fired when the reader swipes to the next
// page (finger travels leftward).
func (e *Engine) OnSwipeLeft(fn func(SwipeContext)) CallbackHandle {
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.swipeLeft = append(e.handlers.swipeLeft, swipeHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &e.handlers, event: EventSwipeLeft}
}

// OnSwipeRight registers a callback fired when the reader swipes to the
// previous page (finger travels rightward).
func (e *Engine) OnSwipeRight(fn func(SwipeContext)) CallbackHandle {
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.swipeRight = append(e.handlers.swipeRight, swipeHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &e.handlers, event: EventSwipeRight}
}

// OnTap registers a callback fired for a lone tap. A lone tap never changes
// the transform; what it means (show chrome, jump a page) is up to the host.
func (e *Engine) OnTap(fn func(TapContext)) CallbackHandle {
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.tap = append(e.handlers.tap, tapHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &e.handlers, event: EventTap}
}

// OnDoubleTap registers a callback fired after a double-tap has toggled the
// zoom. The transform snapshot already reflects the toggle when it fires.
func (e *Engine) OnDoubleTap(fn func(TapContext)) CallbackHandle {
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.doubleTap = append(e.handlers.doubleTap, tapHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &e.handlers, event: EventDoubleTap}
}

// OnTransformChanged registers a callback fired with the new snapshot every
// time the transform changes. Hosts typically request a redraw here.
func (e *Engine) OnTransformChanged(fn func(Transform)) CallbackHandle {
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.transform = append(e.handlers.transform, transformHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &e.handlers, event: EventTransform}
}

// --- Dispatch ---

func (e *Engine) fireSwipeLeft(ctx SwipeContext) {
	for _, h := range e.handlers.swipeLeft {
		h.fn(ctx)
	}
}

func (e *Engine) fireSwipeRight(ctx SwipeContext) {
	for _, h := range e.handlers.swipeRight {
		h.fn(ctx)
	}
}

func (e *Engine) fireTap(ctx TapContext) {
	for _, h := range e.handlers.tap {
		h.fn(ctx)
	}
}

func (e *Engine) fireDoubleTap(ctx TapContext) {
	for _, h := range e.handlers.doubleTap {
		h.fn(ctx)
	}
}

func (e *Engine) fireTransformChanged() {
	for _, h := range e.handlers.transform {
		h.fn(e.transform)
	}
}
