package viewport

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Button identifies a pointer button in the abstract event stream.
type Button int

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonSecondary
	ButtonMiddle
)

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	case ButtonMiddle:
		return "middle"
	}
	return "none"
}

type pointerPhase int

const (
	pointerIdle pointerPhase = iota
	pointerPressed
	pointerPanning
	pointerHoldZoom
	pointerMiddlePan
)

// Pointer disambiguates click-zoom, drag-pan and continuous hold-zoom from a
// stream of pointer events. Exactly one of {panning, hold-zooming, neither}
// holds while a button is down; release returns the machine to idle.
type Pointer struct {
	cfg  Config
	view *View

	phase  pointerPhase
	button Button

	origin    mgl64.Vec2
	pressedAt time.Time
	panLast   mgl64.Vec2

	// cursor is the latest known pointer position, tracked across all
	// phases; hold-zoom anchors here rather than at the press origin.
	cursor mgl64.Vec2

	width, height int
}

func NewPointer(cfg Config, view *View) *Pointer {
	return &Pointer{cfg: cfg, view: view}
}

// SetSize tells the machine the current render surface size.
func (p *Pointer) SetSize(width, height int) {
	p.width, p.height = width, height
}

// ButtonDown starts a press cycle. The middle button pans immediately;
// primary/secondary stay ambiguous until movement or time resolves them.
func (p *Pointer) ButtonDown(b Button, x, y float64, now time.Time) {
	p.cursor = mgl64.Vec2{x, y}

	switch b {
	case ButtonMiddle:
		p.phase = pointerMiddlePan
		p.button = b
		p.panLast = p.cursor
	case ButtonPrimary, ButtonSecondary:
		p.phase = pointerPressed
		p.button = b
		p.origin = p.cursor
		p.pressedAt = now
	}
}

// Move updates the cursor and advances the press cycle. It reports whether
// the view changed.
func (p *Pointer) Move(x, y float64) bool {
	p.cursor = mgl64.Vec2{x, y}

	switch p.phase {
	case pointerPressed, pointerHoldZoom:
		dx := math.Abs(x - p.origin[0])
		dy := math.Abs(y - p.origin[1])
		if dx > p.cfg.PointerPanThreshold || dy > p.cfg.PointerPanThreshold {
			p.phase = pointerPanning
			p.panLast = p.cursor
		}
		return false
	case pointerPanning, pointerMiddlePan:
		return p.pan(x, y)
	}
	return false
}

func (p *Pointer) pan(x, y float64) bool {
	delta := mgl64.Vec2{x - p.panLast[0], y - p.panLast[1]}
	if delta[0] == 0 && delta[1] == 0 {
		return false
	}
	scale := p.view.Scale(p.width)
	p.view.Center = p.view.Center.Sub(delta.Mul(scale))
	p.panLast = mgl64.Vec2{x, y}
	return true
}

// ButtonUp ends the press cycle. A press that never panned and never
// activated hold-zoom is a discrete click-zoom anchored at the release
// position. It reports whether the view changed.
func (p *Pointer) ButtonUp(b Button, x, y float64) bool {
	if b != p.button {
		return false
	}

	phase := p.phase
	p.phase = pointerIdle
	p.button = ButtonNone
	p.cursor = mgl64.Vec2{x, y}

	if phase != pointerPressed {
		return false
	}

	factor := p.cfg.ClickZoomFactor
	if b == ButtonSecondary {
		factor = 1 / factor
	}
	world := p.view.ScreenToWorld(x, y, p.width, p.height)
	p.view.ZoomToward(world, x, y, p.width, p.height, factor)
	return true
}

// Wheel applies one discrete zoom step at the cursor, independent of any
// held button. delta > 0 zooms in.
func (p *Pointer) Wheel(delta int, x, y float64) bool {
	if delta == 0 {
		return false
	}
	p.cursor = mgl64.Vec2{x, y}

	factor := p.cfg.WheelZoomFactor
	if delta < 0 {
		factor = 1 / factor
	}
	world := p.view.ScreenToWorld(x, y, p.width, p.height)
	p.view.ZoomToward(world, x, y, p.width, p.height, factor)
	return true
}

// Tick drives continuous hold-zoom. Once a press has been held still past
// the delay it zooms toward the current cursor position every tick until
// release or movement. It reports whether the view changed.
func (p *Pointer) Tick(now time.Time) bool {
	switch p.phase {
	case pointerPressed:
		if now.Sub(p.pressedAt) < p.cfg.HoldZoomDelay {
			return false
		}
		p.phase = pointerHoldZoom
	case pointerHoldZoom:
	default:
		return false
	}

	factor := p.cfg.HoldZoomRate
	if p.button == ButtonSecondary {
		factor = 1 / factor
	}
	if !p.view.ZoomInBounds(factor) {
		return false
	}
	world := p.view.ScreenToWorld(p.cursor[0], p.cursor[1], p.width, p.height)
	p.view.ZoomToward(world, p.cursor[0], p.cursor[1], p.width, p.height, factor)
	return true
}
