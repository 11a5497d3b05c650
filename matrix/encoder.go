// Package matrix computes QR module grids by delegating the symbol algorithm
// to an external barcode library.
package matrix

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("component", "matrix")

// ErrEncode is returned when the text, size and options cannot form a QR symbol.
var ErrEncode = errors.New("qr encoding failed")

// Options is the configuration surface of the symbol encoder.
type Options struct {
	CharacterSet    string
	ErrorCorrection Level
	Margin          int // quiet zone, in modules
}

// DefaultOptions are UTF-8, level M and a two module margin.
var DefaultOptions = Options{
	CharacterSet:    "UTF-8",
	ErrorCorrection: LevelM,
	Margin:          2,
}

// Encoder turns text into a module grid scaled to width x height pixels.
// A grid may be larger than requested when the symbol does not fit.
type Encoder interface {
	Encode(text string, width, height int) (*Grid, error)
}

// New returns the encoder for backend.
func New(backend Backend, opts Options) (Encoder, error) {
	if opts.Margin < 0 {
		return nil, fmt.Errorf("%w: negative margin %d", ErrEncode, opts.Margin)
	}
	switch backend {
	case BackendZXing, "":
		return &ZXing{opts: opts}, nil
	case BackendSkip2:
		return &Skip2{opts: opts}, nil
	}
	return nil, fmt.Errorf("%w: unknown backend %q", ErrEncode, backend)
}

func checkInput(text string, width, height int) error {
	if text == "" {
		return fmt.Errorf("%w: empty contents", ErrEncode)
	}
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: requested dimensions are too small: %dx%d", ErrEncode, width, height)
	}
	return nil
}
