// Package logo loads, scales and composites logo images over QR codes.
package logo

import (
	"errors"
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"
	_ "golang.org/x/image/webp"
)

var logger = logrus.WithField("component", "logo")

// ErrLoad is returned when a logo cannot be read or decoded.
var ErrLoad = errors.New("logo load failed")

// DefaultSize bounds both dimensions of a logo.
const DefaultSize = 60

// Policy decides the thumbnail size of an oversized logo.
type Policy string

const (
	// PolicyClamp clamps each dimension to the bound independently, so
	// aspect ratio is lost when only one side exceeds it.
	PolicyClamp Policy = "clamp"
	// PolicyFit scales to fit a bound x bound box keeping the aspect ratio.
	PolicyFit Policy = "fit"
)

func (p *Policy) UnmarshalText(text []byte) error {
	switch v := Policy(strings.ToLower(strings.TrimSpace(string(text)))); v {
	case PolicyClamp, PolicyFit:
		*p = v
		return nil
	}
	return fmt.Errorf("unknown logo scaling policy %q (want clamp or fit)", text)
}

// Load reads the image at path. PNG, JPEG, GIF, BMP, TIFF and WebP are supported.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
	}
	logger.WithFields(logrus.Fields{"path": path, "size": img.Bounds().Size()}).Debug("logo loaded")
	return img, nil
}

// Decode reads a logo image from r.
func Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return img, nil
}

// Scale returns img unchanged when neither side exceeds bound, otherwise a
// Lanczos-resampled thumbnail sized by policy.
func Scale(img image.Image, bound int, policy Policy) image.Image {
	size := img.Bounds().Size()
	if size.X <= bound && size.Y <= bound {
		return img
	}

	var out *image.NRGBA
	switch policy {
	case PolicyFit:
		out = imaging.Fit(img, bound, bound, imaging.Lanczos)
	default:
		out = imaging.Resize(img, min(size.X, bound), min(size.Y, bound), imaging.Lanczos)
	}
	logger.WithFields(logrus.Fields{
		"from":   size,
		"to":     out.Bounds().Size(),
		"policy": policy,
	}).Debug("logo scaled")
	return out
}
