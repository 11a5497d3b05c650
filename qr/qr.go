// Package qr generates QR code images, optionally with a framed logo in the
// center.
package qr

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/alapierre/qr-logo-generator/config"
	"github.com/alapierre/qr-logo-generator/logo"
	"github.com/alapierre/qr-logo-generator/matrix"
	"github.com/alapierre/qr-logo-generator/raster"
)

var logger = logrus.WithField("component", "qr")

// ErrUnscannable is returned in verify mode when a produced image does not
// decode back to its text.
var ErrUnscannable = errors.New("qr code is not scannable")

// Generator holds immutable settings and is safe for concurrent use.
type Generator struct {
	cfg     config.Config
	encoder matrix.Encoder
	palette raster.Palette
}

type Option func(*Generator)

// WithEncoder replaces the encoder chosen by the configured backend.
func WithEncoder(enc matrix.Encoder) Option {
	return func(g *Generator) {
		g.encoder = enc
	}
}

func WithPalette(p raster.Palette) Option {
	return func(g *Generator) {
		g.palette = p
	}
}

func New(cfg config.Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Generator{cfg: cfg, palette: raster.DefaultPalette}
	for _, opt := range opts {
		opt(g)
	}
	if g.encoder == nil {
		enc, err := matrix.New(cfg.Backend, cfg.Matrix())
		if err != nil {
			return nil, err
		}
		g.encoder = enc
	}
	return g, nil
}

func (g *Generator) Config() config.Config {
	return g.cfg
}

// Encode returns the QR code for text without a logo.
func (g *Generator) Encode(text string) (image.Image, error) {
	grid, err := g.encoder.Encode(text, g.cfg.Size, g.cfg.Size)
	if err != nil {
		return nil, err
	}
	img := raster.Rasterize(grid, false, g.palette)
	if err := g.verify(img, text); err != nil {
		return nil, err
	}
	return img, nil
}

// EncodeWithLogo returns the QR code for text with logo composited in the
// center. The logo is drawn at its own size; use LoadLogo or logo.Scale to
// bound it first.
func (g *Generator) EncodeWithLogo(text string, lg image.Image) (*image.RGBA, error) {
	if lg == nil {
		return nil, fmt.Errorf("%w: nil logo image", logo.ErrLoad)
	}
	grid, err := g.encoder.Encode(text, g.cfg.Size, g.cfg.Size)
	if err != nil {
		return nil, err
	}
	base := raster.ToRGBA(raster.Rasterize(grid, true, g.palette))
	img := logo.Insert(base, lg, g.cfg.Frame())
	if err := g.verify(img, text); err != nil {
		return nil, err
	}
	return img, nil
}

// EncodeFile encodes text with the logo at logoPath. An empty path means no
// logo; a logo that fails to load is an error, never a silent fallback.
func (g *Generator) EncodeFile(text, logoPath string) (image.Image, error) {
	if logoPath == "" {
		return g.Encode(text)
	}
	lg, err := g.LoadLogo(logoPath)
	if err != nil {
		return nil, err
	}
	img, err := g.EncodeWithLogo(text, lg)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// LoadLogo loads the image at path and bounds it to the configured logo size.
func (g *Generator) LoadLogo(path string) (image.Image, error) {
	lg, err := logo.Load(path)
	if err != nil {
		return nil, err
	}
	return logo.Scale(lg, g.cfg.LogoSize, g.cfg.LogoScaling), nil
}

// Write encodes img to w in the configured format.
func (g *Generator) Write(w io.Writer, img image.Image) error {
	return g.cfg.Format.Encode(w, img)
}

func (g *Generator) WriteFile(path string, img image.Image) error {
	data, err := g.cfg.Format.Bytes(img)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{"path": path, "bytes": len(data)}).Debug("image written")
	return nil
}

func (g *Generator) verify(img image.Image, text string) error {
	if !g.cfg.Verify {
		return nil
	}
	got, err := Decode(img)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnscannable, err)
	}
	if got != text {
		return fmt.Errorf("%w: decoded %q", ErrUnscannable, got)
	}
	return nil
}
