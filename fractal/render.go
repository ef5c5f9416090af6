package fractal

import (
	"log"

	"mandelzoom/viewport"
)

// Renderer owns the pixel buffer and recomputes the whole frame from the
// view transform on every render. The buffer is reallocated on resize,
// never resized in place.
type Renderer struct {
	pix           []uint32
	width, height int

	// palette caches ColorFor per iteration count; rebuilt when the
	// iteration cap changes.
	palette    []uint32
	paletteCap int
}

func NewRenderer(width, height int) *Renderer {
	r := &Renderer{}
	r.Resize(width, height)
	return r
}

func (r *Renderer) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	r.width, r.height = width, height
	r.pix = make([]uint32, width*height)
}

func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// Pix returns the most recently rendered frame without re-rendering.
func (r *Renderer) Pix() []uint32 {
	return r.pix
}

func (r *Renderer) buildPalette(maxIter int) {
	r.palette = make([]uint32, maxIter+1)
	for i := 0; i <= maxIter; i++ {
		r.palette[i] = ColorFor(i, maxIter)
	}
	r.paletteCap = maxIter
}

// Frame renders the view into the buffer and returns it. A corrupted view
// transform is reset to defaults before rendering; that is recovery, not an
// error, so the caller always gets a frame.
func (r *Renderer) Frame(v *viewport.View) []uint32 {
	if !v.Healthy() {
		log.Printf("invalid view transform (zoom=%v center=%v), resetting", v.Zoom, v.Center)
		v.Reset()
	}

	if r.paletteCap != v.MaxIter || r.palette == nil {
		r.buildPalette(v.MaxIter)
	}

	w, h := r.width, r.height
	scale := v.Scale(w)
	for py := 0; py < h; py++ {
		ci := v.Center[1] + (float64(py)-float64(h)/2)*scale
		row := r.pix[py*w : (py+1)*w]
		for px := 0; px < w; px++ {
			cr := v.Center[0] + (float64(px)-float64(w)/2)*scale
			row[px] = r.palette[Iterate(cr, ci, v.MaxIter)]
		}
	}
	return r.pix
}
