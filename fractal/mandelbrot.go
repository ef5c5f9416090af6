// Package fractal renders the Mandelbrot set into an ARGB8888 pixel buffer.
package fractal

// Iterate counts escape-time iterations of z <- z^2 + c for c = cr + ci*i,
// up to maxIter. Squares are carried between steps so each iteration costs
// three multiplications.
func Iterate(cr, ci float64, maxIter int) int {
	var zr, zi, zr2, zi2 float64
	iter := 0
	for zr2+zi2 <= 4 && iter < maxIter {
		zi = 2*zr*zi + ci
		zr = zr2 - zi2 + cr
		zr2 = zr * zr
		zi2 = zi * zi
		iter++
	}
	return iter
}

// ColorFor maps an iteration count to a packed ARGB word. Points that never
// escape are opaque black; everything else follows a polynomial gradient on
// the normalized count.
func ColorFor(iter, maxIter int) uint32 {
	if iter == maxIter {
		return 0xFF000000
	}

	t := float64(iter) / float64(maxIter)
	r := clampChannel(int(9 * (1 - t) * t * t * t * 255))
	g := clampChannel(int(15 * (1 - t) * (1 - t) * t * t * 255))
	b := clampChannel(int(8.5 * (1 - t) * (1 - t) * (1 - t) * t * 255))

	return 0xFF000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

func clampChannel(c int) int {
	if c < 0 {
		return 0
	}
	if c > 255 {
		return 255
	}
	return c
}
