package viewport

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func almostEqual(a, b float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	largest := math.Max(math.Abs(a), math.Abs(b))
	return diff <= 1e-9*largest
}

func TestScreenToWorldIdentity(t *testing.T) {
	v := NewView(DefaultConfig())

	got := v.ScreenToWorld(400, 300, 800, 600)
	if !almostEqual(got[0], -0.5) || !almostEqual(got[1], 0) {
		t.Errorf("center pixel maps to %v, want (-0.5, 0)", got)
	}
}

func TestScreenToWorldUsesHorizontalScale(t *testing.T) {
	// The vertical mapping reuses the horizontal scale; a non-square
	// window must not introduce a separate y-scale.
	v := NewView(DefaultConfig())

	got := v.ScreenToWorld(400, 400, 800, 600)
	want := 0 + (400.0-300.0)*v.Scale(800)
	if !almostEqual(got[1], want) {
		t.Errorf("y mapping = %v, want %v", got[1], want)
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		name  string
		zoom  float64
		width int
		want  float64
	}{
		{"Unit zoom", 1, 800, 0.005},
		{"Double zoom", 2, 800, 0.0025},
		{"Narrow window", 1, 400, 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewView(DefaultConfig())
			v.Zoom = tt.zoom
			if got := v.Scale(tt.width); !almostEqual(got, tt.want) {
				t.Errorf("Scale(%d) = %v, want %v", tt.width, got, tt.want)
			}
		})
	}
}

func TestZoomTowardKeepsAnchorFixed(t *testing.T) {
	tests := []struct {
		name   string
		sx, sy float64
		factor float64
	}{
		{"Zoom in off-center", 200, 300, 1.15},
		{"Zoom out off-center", 200, 300, 1 / 1.15},
		{"Zoom in corner", 0, 0, 1.5},
		{"Zoom in at center", 400, 300, 1.5},
		{"Repeated zoom", 123, 456, 1.16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewView(DefaultConfig())
			v.Zoom = 3
			v.Center = mgl64.Vec2{-0.7, 0.2}

			world := v.ScreenToWorld(tt.sx, tt.sy, 800, 600)
			v.ZoomToward(world, tt.sx, tt.sy, 800, 600, tt.factor)

			after := v.ScreenToWorld(tt.sx, tt.sy, 800, 600)
			if !almostEqual(after[0], world[0]) || !almostEqual(after[1], world[1]) {
				t.Errorf("anchor drifted: %v -> %v", world, after)
			}
		})
	}
}

func TestZoomTowardClamps(t *testing.T) {
	cfg := DefaultConfig()
	v := NewView(cfg)

	v.Zoom = cfg.MaxZoom
	v.ZoomToward(mgl64.Vec2{0, 0}, 400, 300, 800, 600, 10)
	if v.Zoom != cfg.MaxZoom {
		t.Errorf("zoom exceeded max: %v", v.Zoom)
	}

	v.Zoom = cfg.MinZoom
	v.ZoomToward(mgl64.Vec2{0, 0}, 400, 300, 800, 600, 0.1)
	if v.Zoom != cfg.MinZoom {
		t.Errorf("zoom fell below min: %v", v.Zoom)
	}
}

func TestZoomInBounds(t *testing.T) {
	cfg := DefaultConfig()
	v := NewView(cfg)

	if !v.ZoomInBounds(1.16) {
		t.Error("zoom from 1 by 1.16 should be in bounds")
	}
	v.Zoom = cfg.MaxZoom
	if v.ZoomInBounds(1.16) {
		t.Error("zoom past max should be out of bounds")
	}
	v.Zoom = cfg.MinZoom
	if v.ZoomInBounds(1 / 1.16) {
		t.Error("zoom past min should be out of bounds")
	}
}

func TestHealthy(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*View)
		healthy bool
	}{
		{"Defaults", func(v *View) {}, true},
		{"Zero zoom", func(v *View) { v.Zoom = 0 }, false},
		{"Negative zoom", func(v *View) { v.Zoom = -1 }, false},
		{"NaN zoom", func(v *View) { v.Zoom = math.NaN() }, false},
		{"Inf center x", func(v *View) { v.Center[0] = math.Inf(1) }, false},
		{"NaN center y", func(v *View) { v.Center[1] = math.NaN() }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewView(DefaultConfig())
			tt.mutate(v)
			if got := v.Healthy(); got != tt.healthy {
				t.Errorf("Healthy() = %v, want %v", got, tt.healthy)
			}
		})
	}
}

func TestReset(t *testing.T) {
	v := NewView(DefaultConfig())
	v.Zoom = 1e6
	v.Center = mgl64.Vec2{1.23, -4.56}
	v.MaxIter = 1024

	v.Reset()

	if v.Zoom != DefaultZoom || v.Center[0] != DefaultCenterX || v.Center[1] != DefaultCenterY {
		t.Errorf("reset left zoom=%v center=%v", v.Zoom, v.Center)
	}
	if v.MaxIter != 1024 {
		t.Errorf("reset clobbered the iteration cap: %d", v.MaxIter)
	}
}
