package viewport

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

var t0 = time.Unix(1000, 0)

func newPointerPair() (*Pointer, *View) {
	cfg := DefaultConfig()
	v := NewView(cfg)
	p := NewPointer(cfg, v)
	p.SetSize(800, 600)
	return p, v
}

func TestClickZoom(t *testing.T) {
	tests := []struct {
		name     string
		button   Button
		wantZoom float64
	}{
		{"Primary zooms in", ButtonPrimary, 1.5},
		{"Secondary zooms out", ButtonSecondary, 1 / 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, v := newPointerPair()

			p.ButtonDown(tt.button, 400, 300, t0)
			if !p.ButtonUp(tt.button, 400, 300) {
				t.Fatal("click release should change the view")
			}
			if !almostEqual(v.Zoom, tt.wantZoom) {
				t.Errorf("zoom = %v, want %v", v.Zoom, tt.wantZoom)
			}
			// The anchor was the view center, so the center must not move.
			if !almostEqual(v.Center[0], -0.5) || !almostEqual(v.Center[1], 0) {
				t.Errorf("center moved to %v", v.Center)
			}
		})
	}
}

func TestClickZoomAnchorsAtRelease(t *testing.T) {
	p, v := newPointerPair()

	world := v.ScreenToWorld(200, 150, 800, 600)
	p.ButtonDown(ButtonPrimary, 200, 150, t0)
	p.ButtonUp(ButtonPrimary, 200, 150)

	after := v.ScreenToWorld(200, 150, 800, 600)
	if !almostEqual(after[0], world[0]) || !almostEqual(after[1], world[1]) {
		t.Errorf("anchor drifted: %v -> %v", world, after)
	}
}

func TestWheelAnchorInvariant(t *testing.T) {
	p, v := newPointerPair()

	world := v.ScreenToWorld(200, 300, 800, 600)
	if !p.Wheel(1, 200, 300) {
		t.Fatal("wheel should change the view")
	}

	if !almostEqual(v.Zoom, 1.15) {
		t.Errorf("zoom = %v, want 1.15", v.Zoom)
	}
	after := v.ScreenToWorld(200, 300, 800, 600)
	if !almostEqual(after[0], world[0]) || !almostEqual(after[1], world[1]) {
		t.Errorf("world point under cursor drifted: %v -> %v", world, after)
	}
}

func TestWheelIgnoresZeroDelta(t *testing.T) {
	p, v := newPointerPair()
	if p.Wheel(0, 200, 300) {
		t.Error("zero delta should be a no-op")
	}
	if v.Zoom != 1 {
		t.Errorf("zoom changed to %v", v.Zoom)
	}
}

func TestDragPan(t *testing.T) {
	p, v := newPointerPair()
	scale := v.Scale(800)

	p.ButtonDown(ButtonPrimary, 100, 100, t0)

	// Crossing the threshold arms panning but pans from there, not from
	// the press origin.
	if p.Move(115, 100) {
		t.Error("threshold crossing alone should not move the view")
	}
	if !p.Move(130, 90) {
		t.Fatal("pan move should change the view")
	}

	want := mgl64.Vec2{-0.5 - 15*scale, 0 + 10*scale}
	if !almostEqual(v.Center[0], want[0]) || !almostEqual(v.Center[1], want[1]) {
		t.Errorf("center = %v, want %v", v.Center, want)
	}

	// Ending a pan must not click-zoom.
	if p.ButtonUp(ButtonPrimary, 130, 90) {
		t.Error("pan release should not change the view")
	}
	if !almostEqual(v.Zoom, 1) {
		t.Errorf("pan release zoomed to %v", v.Zoom)
	}
}

func TestSmallMoveStillClicks(t *testing.T) {
	p, v := newPointerPair()

	p.ButtonDown(ButtonPrimary, 100, 100, t0)
	p.Move(105, 103)
	if !p.ButtonUp(ButtonPrimary, 105, 103) {
		t.Fatal("sub-threshold move should still click-zoom")
	}
	if !almostEqual(v.Zoom, 1.5) {
		t.Errorf("zoom = %v, want 1.5", v.Zoom)
	}
}

func TestMiddleButtonPansImmediately(t *testing.T) {
	p, v := newPointerPair()
	scale := v.Scale(800)

	p.ButtonDown(ButtonMiddle, 100, 100, t0)
	if !p.Move(101, 100) {
		t.Fatal("middle drag should pan without any threshold")
	}
	if !almostEqual(v.Center[0], -0.5-1*scale) {
		t.Errorf("center = %v", v.Center)
	}
	if p.ButtonUp(ButtonMiddle, 101, 100) {
		t.Error("middle release should not zoom")
	}
}

func TestHoldZoom(t *testing.T) {
	p, v := newPointerPair()

	p.ButtonDown(ButtonPrimary, 200, 300, t0)

	if p.Tick(t0.Add(100 * time.Millisecond)) {
		t.Error("hold-zoom fired before the delay")
	}

	world := v.ScreenToWorld(200, 300, 800, 600)
	if !p.Tick(t0.Add(160 * time.Millisecond)) {
		t.Fatal("hold-zoom should fire after the delay")
	}
	if !almostEqual(v.Zoom, 1.16) {
		t.Errorf("zoom = %v, want 1.16", v.Zoom)
	}
	after := v.ScreenToWorld(200, 300, 800, 600)
	if !almostEqual(after[0], world[0]) || !almostEqual(after[1], world[1]) {
		t.Errorf("hold anchor drifted: %v -> %v", world, after)
	}

	// Each further tick compounds.
	p.Tick(t0.Add(176 * time.Millisecond))
	if !almostEqual(v.Zoom, 1.16*1.16) {
		t.Errorf("zoom = %v, want %v", v.Zoom, 1.16*1.16)
	}

	// Release after hold-zoom adds no discrete click-zoom.
	if p.ButtonUp(ButtonPrimary, 200, 300) {
		t.Error("release after hold-zoom should not change the view")
	}
}

func TestHoldZoomSecondaryZoomsOut(t *testing.T) {
	p, v := newPointerPair()
	v.Zoom = 4

	p.ButtonDown(ButtonSecondary, 200, 300, t0)
	if !p.Tick(t0.Add(200 * time.Millisecond)) {
		t.Fatal("hold-zoom should fire")
	}
	if !almostEqual(v.Zoom, 4/1.16) {
		t.Errorf("zoom = %v, want %v", v.Zoom, 4/1.16)
	}
}

func TestHoldZoomCancelledByMovement(t *testing.T) {
	p, v := newPointerPair()

	p.ButtonDown(ButtonPrimary, 100, 100, t0)
	p.Tick(t0.Add(200 * time.Millisecond))
	zoomed := v.Zoom

	// Moving past the pan threshold turns the hold into a pan.
	p.Move(150, 100)
	if p.Tick(t0.Add(300 * time.Millisecond)) {
		t.Error("hold-zoom should stop once panning")
	}
	if v.Zoom != zoomed {
		t.Errorf("zoom changed after pan took over: %v", v.Zoom)
	}
}

func TestHoldZoomStopsAtBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxZoom = 1.1
	v := NewView(cfg)
	p := NewPointer(cfg, v)
	p.SetSize(800, 600)

	p.ButtonDown(ButtonPrimary, 400, 300, t0)
	if p.Tick(t0.Add(200 * time.Millisecond)) {
		t.Error("hold-zoom should not fire when the next step exceeds max zoom")
	}
	if v.Zoom != 1 {
		t.Errorf("zoom = %v, want 1", v.Zoom)
	}
}

func TestMismatchedButtonUpIgnored(t *testing.T) {
	p, v := newPointerPair()

	p.ButtonDown(ButtonPrimary, 100, 100, t0)
	if p.ButtonUp(ButtonSecondary, 100, 100) {
		t.Error("release of a button that is not held should be ignored")
	}
	if v.Zoom != 1 {
		t.Errorf("zoom = %v", v.Zoom)
	}
	// The original press is still live and clicks on its own release.
	if !p.ButtonUp(ButtonPrimary, 100, 100) {
		t.Error("held button release should still click-zoom")
	}
}
