package folio

import "math"

// Transform is the engine's persistent view transform: the scale and offset
// the host applies when rendering page content, plus two gesture flags.
//
// Engines hand out Transform by value; a snapshot never changes after it is
// returned. Invariants maintained by the engine:
//
//   - MinScale ≤ Scale ≤ MaxScale
//   - Zoomed ⇔ Scale > 1
//   - Scale ≤ 1 ⇒ TranslateX = TranslateY = 0
//   - |TranslateX| ≤ (Scale−1)·ViewportWidth/2, likewise for Y
type Transform struct {
	// Scale is the zoom factor (1.0 = fit, >1 = zoomed in).
	Scale float64
	// TranslateX and TranslateY offset the zoomed content in viewport pixels.
	TranslateX float64
	TranslateY float64
	// Pinching is true while a two-finger pinch is in progress.
	Pinching bool
	// Zoomed is true whenever Scale > 1.
	Zoomed bool
}

// Identity returns the resting transform: unit scale, zero offset, no
// active gesture.
func Identity() Transform {
	return Transform{Scale: 1}
}

// Matrix returns the transform as a 2D affine matrix [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
//
// Composition order is Scale then Translate, so a viewport point maps as
// (x·Scale + TranslateX, y·Scale + TranslateY).
func (t Transform) Matrix() [6]float64 {
	return [6]float64{t.Scale, 0, 0, t.Scale, t.TranslateX, t.TranslateY}
}

// Apply maps a content point through the transform.
func (t Transform) Apply(x, y float64) (float64, float64) {
	return x*t.Scale + t.TranslateX, y*t.Scale + t.TranslateY
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// panBounds returns the half-extent each translate axis may reach at the
// given scale: ±(scale−1)·viewportExtent/2. Zero (panning pinned) when the
// viewport extent is unset or the content is not zoomed in.
func panBounds(scale, viewportExtent float64) float64 {
	if scale <= 1 || viewportExtent <= 0 {
		return 0
	}
	return (scale - 1) * viewportExtent / 2
}

// clampTranslate restricts a candidate translate to the pan bounds for the
// given scale and viewport extent.
func clampTranslate(v, scale, viewportExtent float64) float64 {
	bound := panBounds(scale, viewportExtent)
	return clamp(v, -bound, bound)
}
