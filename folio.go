package folio

import (
	"math"
	"time"
)

// Point is a single touch contact position in viewport pixels.
// The coordinate system has its origin at the top-left, with Y increasing
// downward.
type Point struct {
	X, Y float64
}

// distance returns the Euclidean distance between two points.
func distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Default gesture tuning. All distances are in viewport pixels; velocity is
// in pixels per millisecond.
const (
	defaultMinSwipeDistance       = 50.0
	defaultSwipeVelocityThreshold = 0.3
	defaultMinScale               = 1.0
	defaultMaxScale               = 3.0
	defaultDoubleTapScale         = 2.0
	defaultTapMaxMovement         = 20.0
	defaultTapMaxDuration         = 200 * time.Millisecond
	defaultDoubleTapInterval      = 300 * time.Millisecond
)

// Config tunes gesture recognition. The zero value of every field means
// "use the default"; pass Config{} to accept all defaults.
//
// ViewportWidth and ViewportHeight bound panning while zoomed and must be
// the real measured dimensions of the reading surface, not guesses — each
// translate axis is clamped to ±(scale−1)·extent/2. While both are zero,
// panning is disabled (the translate stays pinned at the origin).
type Config struct {
	// MinSwipeDistance is the minimum horizontal travel, in pixels, for a
	// page-turn swipe.
	MinSwipeDistance float64
	// SwipeVelocityThreshold is the minimum swipe speed in pixels per
	// millisecond.
	SwipeVelocityThreshold float64
	// MinScale and MaxScale clamp pinch zoom.
	MinScale float64
	MaxScale float64
	// DoubleTapScale is the zoom level a double-tap toggles to.
	DoubleTapScale float64
	// TapMaxDuration and TapMaxMovement bound what still counts as a tap.
	TapMaxDuration time.Duration
	TapMaxMovement float64
	// DoubleTapInterval is the maximum gap between two taps for them to
	// pair into a double-tap.
	DoubleTapInterval time.Duration
	// ViewportWidth and ViewportHeight are the dimensions of the zoomable
	// viewport in pixels. See the type comment.
	ViewportWidth  float64
	ViewportHeight float64
}

// withDefaults returns a copy of c with zero-valued fields replaced by the
// package defaults. Viewport dimensions have no default.
func (c Config) withDefaults() Config {
	if c.MinSwipeDistance == 0 {
		c.MinSwipeDistance = defaultMinSwipeDistance
	}
	if c.SwipeVelocityThreshold == 0 {
		c.SwipeVelocityThreshold = defaultSwipeVelocityThreshold
	}
	if c.MinScale == 0 {
		c.MinScale = defaultMinScale
	}
	if c.MaxScale == 0 {
		c.MaxScale = defaultMaxScale
	}
	if c.DoubleTapScale == 0 {
		c.DoubleTapScale = defaultDoubleTapScale
	}
	if c.TapMaxDuration == 0 {
		c.TapMaxDuration = defaultTapMaxDuration
	}
	if c.TapMaxMovement == 0 {
		c.TapMaxMovement = defaultTapMaxMovement
	}
	if c.DoubleTapInterval == 0 {
		c.DoubleTapInterval = defaultDoubleTapInterval
	}
	return c
}
