// Package folio is a multi-touch gesture engine for reader applications.
//
// Folio turns a raw stream of touch-point updates into the semantic gestures
// an e-book or document reader needs: pinch-zoom, pan-while-zoomed,
// tap/double-tap zoom toggling, and fast horizontal swipes that turn pages.
// The engine maintains a single persistent view [Transform] (scale + offset)
// across gesture boundaries and enforces zoom and pan bounds; the host
// applies the snapshot when rendering and reacts to swipe callbacks.
//
// # Quick start
//
//	engine := folio.NewEngine(folio.Config{
//		ViewportWidth:  640,
//		ViewportHeight: 480,
//	})
//	engine.OnSwipeLeft(func(folio.SwipeContext) { book.NextPage() })
//	engine.OnSwipeRight(func(folio.SwipeContext) { book.PrevPage() })
//
// Feed it ordered touch events (every currently-down contact per call):
//
//	engine.TouchStart(points)
//	engine.TouchMove(points)
//	engine.TouchEnd(remaining) // nil when the last finger lifts
//
// and read the result each frame:
//
//	t := engine.Snapshot()
//	// draw content scaled by t.Scale, offset by t.TranslateX/Y
//
// # Ebitengine integration
//
// The engine core is framework-independent and fully testable with synthetic
// events. For [Ebitengine] hosts, [TouchSource] polls touch and mouse input
// once per frame and produces the event stream for you:
//
//	src := folio.NewTouchSource(engine)
//
//	func (g *Game) Update() error { src.Update(); return nil }
//
// # Gestures
//
// Exactly one gesture is interpreted at a time, chosen by touch count and
// the current zoom state. Two fingers pinch-zoom, clamped to
// [Config.MinScale, Config.MaxScale]. One finger while zoomed pans, clamped
// so the content edge never crosses the viewport center line. One finger at
// rest either taps (a double-tap toggles zoom between 1x and
// [Config.DoubleTapScale]) or, when fast and mostly horizontal, swipes to
// turn the page. A sequence fires at most one of tap or swipe.
//
// Smooth zoom transitions are available through [TransformAnimator], a
// host-pumped tween over the engine transform (via [gween]).
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package folio
