package fractal

import (
	"fmt"
	"image"
	"image/png"
	"io"
)

// WritePNG encodes an ARGB8888 frame as a PNG.
func WritePNG(w io.Writer, pix []uint32, width, height int) error {
	if len(pix) != width*height {
		return fmt.Errorf("snapshot: buffer holds %d pixels, frame is %dx%d", len(pix), width, height)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i, c := range pix {
		j := i * 4
		img.Pix[j+0] = uint8(c >> 16)
		img.Pix[j+1] = uint8(c >> 8)
		img.Pix[j+2] = uint8(c)
		img.Pix[j+3] = uint8(c >> 24)
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}
