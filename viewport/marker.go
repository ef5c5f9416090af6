package viewport

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	markerTTL   = 2 * time.Second
	markerSize  = 20
	markerColor = 0xFF00FF00
)

// Marker is the cosmetic tap indicator: a green cross drawn over the frame
// at the last tap position for two seconds. Purely diagnostic.
type Marker struct {
	pos mgl64.Vec2
	at  time.Time
	set bool
}

func (m *Marker) Set(pos mgl64.Vec2, now time.Time) {
	m.pos = pos
	m.at = now
	m.set = true
}

func (m *Marker) Clear() {
	m.set = false
}

func (m *Marker) Active(now time.Time) bool {
	return m.set && now.Sub(m.at) < markerTTL
}

// Draw stamps the cross into an ARGB pixel buffer, clipped to the frame.
func (m *Marker) Draw(pix []uint32, width, height int, now time.Time) {
	if !m.Active(now) {
		return
	}

	cx, cy := int(m.pos[0]), int(m.pos[1])
	for i := -markerSize; i <= markerSize; i++ {
		if x := cx + i; x >= 0 && x < width && cy >= 0 && cy < height {
			pix[cy*width+x] = markerColor
		}
		if y := cy + i; y >= 0 && y < height && cx >= 0 && cx < width {
			pix[y*width+cx] = markerColor
		}
	}
}
