// Package explorer wires the gesture machines, the view transform and the
// renderer into a single controller driven by an abstract event stream, so
// that any backend able to poll input and blit an ARGB buffer can host it.
package explorer

import "mandelzoom/viewport"

// Event is one discrete input occurrence. Backends synthesize these from
// whatever their substrate reports; unrecognized concrete types are ignored.
type Event interface {
	isEvent()
}

// Key is an abstract key action; backends map their raw key codes onto it.
type Key int

const (
	KeyQuit Key = iota
	KeyReset
	KeySnapshot
	KeyIterUp
	KeyIterDown
)

type PointerDown struct {
	Button viewport.Button
	X, Y   float64
}

type PointerUp struct {
	Button viewport.Button
	X, Y   float64
}

type PointerMove struct {
	X, Y float64
}

// Wheel carries the scroll direction (sign of Delta) and the cursor
// position the zoom anchors at.
type Wheel struct {
	Delta int
	X, Y  float64
}

// TouchDown begins tracking a finger. Coordinates are normalized to [0,1];
// values above 1 are taken as raw pixels and normalized by the machine.
type TouchDown struct {
	ID   int64
	X, Y float64
}

type TouchUp struct {
	ID   int64
	X, Y float64
}

type TouchMove struct {
	ID   int64
	X, Y float64
}

type SurfaceResized struct {
	Width, Height int
}

type KeyPress struct {
	Key Key
}

type Quit struct{}

func (PointerDown) isEvent()    {}
func (PointerUp) isEvent()      {}
func (PointerMove) isEvent()    {}
func (Wheel) isEvent()          {}
func (TouchDown) isEvent()      {}
func (TouchUp) isEvent()        {}
func (TouchMove) isEvent()      {}
func (SurfaceResized) isEvent() {}
func (KeyPress) isEvent()       {}
func (Quit) isEvent()           {}
