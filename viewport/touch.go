package viewport

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// finger is one tracked touch point. Positions are normalized to [0,1]
// surface coordinates.
type finger struct {
	id  int64
	pos mgl64.Vec2
}

// Touch disambiguates tap, double-tap, pan, pinch and hold-zoom from a
// stream of finger events for up to two concurrent fingers. Losing one
// finger of a pinch promotes the survivor straight into panning.
type Touch struct {
	cfg    Config
	view   *View
	marker *Marker

	fingers    [2]finger
	numFingers int

	panning bool
	panLast mgl64.Vec2

	// downPos is the first finger's position at finger-down; taps, pan
	// activation and hold-zoom anchoring all measure against it.
	downPos mgl64.Vec2

	// Pinch baseline, captured at second-finger-down.
	pinchDist   float64
	pinchZoom   float64
	pinchCenter mgl64.Vec2 // world point under the initial midpoint

	// Hold-zoom state. holdEligible goes false forever (for the current
	// finger-down sequence) once the finger moves far enough.
	holdStart    time.Time
	holdActive   bool
	holdEligible bool

	// Tap memory, in render-pixel coordinates.
	lastTap    time.Time
	lastTapPos mgl64.Vec2
	lastZoom   time.Time

	width, height int
}

func NewTouch(cfg Config, view *View, marker *Marker) *Touch {
	return &Touch{cfg: cfg, view: view, marker: marker}
}

// SetSize tells the machine the current render surface size.
func (t *Touch) SetSize(width, height int) {
	t.width, t.height = width, height
}

// normalize maps stray raw-pixel coordinates into [0,1]. Some event
// substrates deliver touch positions in pixels despite advertising
// normalized coordinates.
func (t *Touch) normalize(x, y float64) mgl64.Vec2 {
	if x > 1 || y > 1 {
		x /= float64(t.width)
		y /= float64(t.height)
	}
	return mgl64.Vec2{x, y}
}

// distance is the span between the two tracked fingers in surface pixels.
func (t *Touch) distance() float64 {
	dx := (t.fingers[1].pos[0] - t.fingers[0].pos[0]) * float64(t.width)
	dy := (t.fingers[1].pos[1] - t.fingers[0].pos[1]) * float64(t.height)
	return math.Hypot(dx, dy)
}

func (t *Touch) reset() {
	t.numFingers = 0
	t.fingers[0] = finger{}
	t.fingers[1] = finger{}
	t.panning = false
	t.holdActive = false
	t.holdEligible = false
}

// FingerDown tracks a new finger. The first finger arms tap and hold-zoom
// detection; a second finger starts a pinch. Fingers beyond two are ignored.
func (t *Touch) FingerDown(id int64, x, y float64, now time.Time) {
	pos := t.normalize(x, y)

	switch t.numFingers {
	case 0:
		t.fingers[0] = finger{id: id, pos: pos}
		t.numFingers = 1
		t.panning = false
		t.panLast = pos
		t.downPos = pos
		t.holdStart = now
		t.holdActive = false
		t.holdEligible = true

	case 1:
		t.fingers[1] = finger{id: id, pos: pos}
		t.numFingers = 2
		t.panning = false

		t.pinchDist = t.distance()
		t.pinchZoom = t.view.Zoom

		mid := t.midpointPixels()
		t.pinchCenter = t.view.ScreenToWorld(mid[0], mid[1], t.width, t.height)
	}
}

func (t *Touch) midpointPixels() mgl64.Vec2 {
	return mgl64.Vec2{
		(t.fingers[0].pos[0] + t.fingers[1].pos[0]) / 2 * float64(t.width),
		(t.fingers[0].pos[1] + t.fingers[1].pos[1]) / 2 * float64(t.height),
	}
}

// FingerUp stops tracking a finger. A short, still, one-finger contact is
// evaluated as a tap; losing one finger of a pinch promotes the survivor to
// primary and resumes one-finger tracking in panning mode, without
// re-arming hold-zoom. It reports whether the view changed.
func (t *Touch) FingerUp(id int64, x, y float64, now time.Time) bool {
	pos := t.normalize(x, y)

	switch {
	case t.numFingers == 1 && id == t.fingers[0].id:
		dx := math.Abs(pos[0]-t.downPos[0]) * float64(t.width)
		dy := math.Abs(pos[1]-t.downPos[1]) * float64(t.height)

		dirty := false
		if !t.panning && dx < t.cfg.TapMoveThreshold && dy < t.cfg.TapMoveThreshold {
			dirty = t.tap(pos, now)
		}
		t.reset()
		return dirty

	case t.numFingers == 2:
		if id == t.fingers[0].id {
			t.fingers[0] = t.fingers[1]
		}
		t.fingers[1] = finger{}
		t.numFingers = 1
		t.panning = true
		t.panLast = t.fingers[0].pos
		t.downPos = t.fingers[0].pos
		return false

	case id == t.fingers[0].id:
		// Stale finger id with nothing tracked; clear defensively.
		t.reset()
		return false
	}
	return false
}

// tap resolves a finished tap against the tap memory: double-tap resets the
// view, a tap too close to the previous zoom is debounced to bookkeeping
// only, anything else is a discrete zoom-in at the tap point.
func (t *Touch) tap(pos mgl64.Vec2, now time.Time) bool {
	tapPx := mgl64.Vec2{pos[0] * float64(t.width), pos[1] * float64(t.height)}

	if t.marker != nil {
		t.marker.Set(tapPx, now)
	}

	dist := tapPx.Sub(t.lastTapPos).Len()
	sinceTap := now.Sub(t.lastTap)

	switch {
	case sinceTap < t.cfg.DoubleTapTime && dist < t.cfg.DoubleTapDist:
		t.view.Reset()
		t.lastZoom = now
		t.lastTap = time.Time{}
		t.lastTapPos = mgl64.Vec2{}
		return true

	case now.Sub(t.lastZoom) < t.cfg.TapDebounceTime:
		t.lastTapPos = tapPx
		return false

	default:
		dirty := false
		if t.view.Zoom*t.cfg.ClickZoomFactor <= t.cfg.MaxZoom {
			world := t.view.ScreenToWorld(tapPx[0], tapPx[1], t.width, t.height)
			t.view.ZoomToward(world, tapPx[0], tapPx[1], t.width, t.height, t.cfg.ClickZoomFactor)
			t.lastZoom = now
			dirty = true
		}
		t.lastTap = now
		t.lastTapPos = tapPx
		return dirty
	}
}

// FingerMove updates a tracked finger. With one finger it decides between
// staying tap-eligible, cancelling hold-zoom and panning; with two it
// drives the pinch. It reports whether the view changed.
func (t *Touch) FingerMove(id int64, x, y float64) bool {
	pos := t.normalize(x, y)

	switch {
	case t.numFingers == 1 && id == t.fingers[0].id:
		moveDist := pos.Sub(t.downPos).Len() * float64(t.width)

		if moveDist > t.cfg.TouchHoldCancelDist {
			t.holdActive = false
			t.holdEligible = false
		}
		if moveDist > t.cfg.TouchPanThreshold && !t.panning {
			t.panning = true
			t.panLast = pos
			t.fingers[0].pos = pos
			return false
		}
		if !t.panning {
			return false
		}

		dx := pos[0] - t.panLast[0]
		dy := pos[1] - t.panLast[1]
		scale := t.view.Scale(t.width)
		t.view.Center = t.view.Center.Sub(mgl64.Vec2{
			dx * float64(t.width) * scale,
			dy * float64(t.height) * scale,
		})
		t.panLast = pos
		t.fingers[0].pos = pos
		return true

	case t.numFingers == 2:
		switch id {
		case t.fingers[0].id:
			t.fingers[0].pos = pos
		case t.fingers[1].id:
			t.fingers[1].pos = pos
		default:
			return false
		}
		return t.pinch()
	}
	return false
}

// pinch rescales around the gesture baseline: zoom follows the ratio of the
// current to the initial finger distance, and the world point that started
// under the midpoint is pinned to the current midpoint.
func (t *Touch) pinch() bool {
	if t.pinchDist <= 0 {
		return false
	}

	zoom := t.pinchZoom * (t.distance() / t.pinchDist)
	if zoom < t.cfg.MinZoom {
		zoom = t.cfg.MinZoom
	}
	if zoom > t.cfg.MaxZoom {
		zoom = t.cfg.MaxZoom
	}
	t.view.Zoom = zoom

	mid := t.midpointPixels()
	scale := t.view.Scale(t.width)
	t.view.Center = mgl64.Vec2{
		t.pinchCenter[0] - (mid[0]-float64(t.width)/2)*scale,
		t.pinchCenter[1] - (mid[1]-float64(t.height)/2)*scale,
	}
	return true
}

// Tick drives continuous hold-zoom: a single still finger held past the
// delay zooms in toward its down position every tick. Touch hold-zoom has
// no zoom-out variant. It reports whether the view changed.
func (t *Touch) Tick(now time.Time) bool {
	if t.numFingers != 1 || t.panning || !t.holdEligible {
		return false
	}
	if !t.holdActive {
		if now.Sub(t.holdStart) < t.cfg.HoldZoomDelay {
			return false
		}
		t.holdActive = true
	}

	if t.view.Zoom*t.cfg.HoldZoomRate > t.cfg.MaxZoom {
		return false
	}
	anchor := mgl64.Vec2{t.downPos[0] * float64(t.width), t.downPos[1] * float64(t.height)}
	world := t.view.ScreenToWorld(anchor[0], anchor[1], t.width, t.height)
	t.view.ZoomToward(world, anchor[0], anchor[1], t.width, t.height, t.cfg.HoldZoomRate)
	return true
}
