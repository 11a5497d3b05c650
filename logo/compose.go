package logo

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
)

// Frame is the rounded border stroked around a composited logo.
type Frame struct {
	Radius float64
	Width  float64
	Color  color.Color
}

var DefaultFrame = Frame{
	Radius: 15,
	Width:  3,
	Color:  color.White,
}

// Offset returns the top-left corner that centers a logo of size s on base.
func Offset(base image.Rectangle, s image.Point) image.Point {
	return image.Point{
		X: base.Min.X + (base.Dx()-s.X)/2,
		Y: base.Min.Y + (base.Dy()-s.Y)/2,
	}
}

// Insert draws logo at the center of base, frames it and returns base.
// A zero frame width skips the frame.
func Insert(base *image.RGBA, logo image.Image, frame Frame) *image.RGBA {
	lb := logo.Bounds()
	at := Offset(base.Bounds(), lb.Size())
	box := image.Rectangle{Min: at, Max: at.Add(lb.Size())}

	draw.Draw(base, box, logo, lb.Min, draw.Over)

	if frame.Width > 0 {
		w, h := float64(box.Dx()), float64(box.Dy())
		dc := gg.NewContextForRGBA(base)
		dc.DrawRoundedRectangle(float64(box.Min.X), float64(box.Min.Y), w, h, min(frame.Radius, w/2, h/2))
		dc.SetLineWidth(frame.Width)
		dc.SetColor(frame.Color)
		dc.Stroke()
	}

	logger.WithField("box", box).Debug("logo inserted")
	return base
}
