package viewport

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Default view: the whole set centered, 4 world-units of width.
const (
	DefaultZoom    = 1.0
	DefaultCenterX = -0.5
	DefaultCenterY = 0.0
)

// View is the shared view transform every gesture mutates and the renderer
// consumes. It is owned by a single controller and never touched concurrently.
type View struct {
	Zoom    float64
	Center  mgl64.Vec2
	MaxIter int

	minZoom, maxZoom float64
}

func NewView(cfg Config) *View {
	v := &View{
		MaxIter: cfg.DefaultMaxIter,
		minZoom: cfg.MinZoom,
		maxZoom: cfg.MaxZoom,
	}
	v.Reset()
	return v
}

// Reset restores the default transform. The iteration cap is left alone;
// it is a quality setting, not part of the navigation state.
func (v *View) Reset() {
	v.Zoom = DefaultZoom
	v.Center = mgl64.Vec2{DefaultCenterX, DefaultCenterY}
}

// Scale is the width of one pixel in world units. The view always spans
// 4.0 world units of width at Zoom == 1.
func (v *View) Scale(width int) float64 {
	return 4.0 / (float64(width) * v.Zoom)
}

// ScreenToWorld maps a screen pixel to the complex plane. The horizontal
// scale drives both axes, so non-square windows get anisotropic pixels.
func (v *View) ScreenToWorld(sx, sy float64, width, height int) mgl64.Vec2 {
	scale := v.Scale(width)
	return mgl64.Vec2{
		v.Center[0] + (sx-float64(width)/2)*scale,
		v.Center[1] + (sy-float64(height)/2)*scale,
	}
}

// ZoomToward multiplies the zoom by factor, clamps it, and recenters so that
// world keeps mapping to the screen position (sx, sy). Every gesture funnels
// through this one primitive.
func (v *View) ZoomToward(world mgl64.Vec2, sx, sy float64, width, height int, factor float64) {
	v.Zoom *= factor
	v.ClampZoom()
	scale := v.Scale(width)
	v.Center = mgl64.Vec2{
		world[0] - (sx-float64(width)/2)*scale,
		world[1] - (sy-float64(height)/2)*scale,
	}
}

func (v *View) ClampZoom() {
	if v.Zoom < v.minZoom {
		v.Zoom = v.minZoom
	}
	if v.Zoom > v.maxZoom {
		v.Zoom = v.maxZoom
	}
}

// ZoomInBounds reports whether multiplying the zoom by factor stays inside
// the configured range. Continuous gestures use it to stop at the bounds
// instead of grinding against the clamp every tick.
func (v *View) ZoomInBounds(factor float64) bool {
	z := v.Zoom * factor
	return z >= v.minZoom && z <= v.maxZoom
}

// Healthy reports whether the transform can be rendered. A false return
// means floating point corruption leaked in; callers reset and move on.
func (v *View) Healthy() bool {
	return v.Zoom > 0 &&
		!math.IsNaN(v.Zoom) && !math.IsInf(v.Zoom, 0) &&
		!math.IsNaN(v.Center[0]) && !math.IsInf(v.Center[0], 0) &&
		!math.IsNaN(v.Center[1]) && !math.IsInf(v.Center[1], 0)
}
