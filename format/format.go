// Package format encodes QR images into lossless output formats.
package format

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/image/tiff"
)

var logger = logrus.WithField("component", "format")

type Format string

const (
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

func Parse(s string) (Format, error) {
	var f Format
	err := f.UnmarshalText([]byte(s))
	return f, err
}

func (f *Format) UnmarshalText(text []byte) error {
	switch v := Format(strings.ToLower(strings.TrimSpace(string(text)))); v {
	case PNG, BMP, TIFF:
		*f = v
		return nil
	case "tif":
		*f = TIFF
		return nil
	}
	return fmt.Errorf("unsupported image format %q (want png, bmp or tiff)", text)
}

// Extension is the file name extension, without the dot.
func (f Format) Extension() string {
	return string(f)
}

// Compressed reports whether the encoded bytes are already compressed, in
// which case deflating them again in an archive is wasted work.
func (f Format) Compressed() bool {
	return f == PNG || f == TIFF
}

// Encode writes img to w in format f.
func (f Format) Encode(w io.Writer, img image.Image) error {
	switch f {
	case PNG, "":
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		return enc.Encode(w, img)
	case BMP:
		return encodeBMP(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	}
	return fmt.Errorf("unsupported image format %q", string(f))
}

// Bytes encodes img in memory.
func (f Format) Bytes(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Encode(&buf, img); err != nil {
		return nil, err
	}
	logger.WithFields(logrus.Fields{"format": f, "bytes": buf.Len()}).Debug("image encoded")
	return buf.Bytes(), nil
}
