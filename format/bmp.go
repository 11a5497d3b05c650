package format

import (
	"image"
	"io"

	gobmp "golang.org/x/image/bmp"
)

// x/image/bmp writes paletted images as 8-bit indexed, so a two color QR
// code stays small without a conversion step.
func encodeBMP(w io.Writer, img image.Image) error {
	return gobmp.Encode(w, img)
}
