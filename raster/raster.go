// Package raster turns module grids into pixel images.
package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/alapierre/qr-logo-generator/matrix"
)

// Palette holds the two colors of a rasterized symbol.
type Palette struct {
	Foreground color.Color
	Background color.Color
}

var DefaultPalette = Palette{
	Foreground: color.Black,
	Background: color.White,
}

// Rasterize draws grid with one pixel per grid cell.
//
// Without a logo the result is a two color *image.Paletted, which PNG encodes
// at one bit per pixel. With a logo it is an *image.RGBA so that the logo and
// its anti-aliased frame can be drawn on it.
func Rasterize(grid *matrix.Grid, hasLogo bool, p Palette) image.Image {
	rect := image.Rect(0, 0, grid.Width(), grid.Height())
	if hasLogo {
		return rasterizeRGBA(grid, rect, p)
	}
	return rasterizePaletted(grid, rect, p)
}

func rasterizePaletted(grid *matrix.Grid, rect image.Rectangle, p Palette) *image.Paletted {
	const (
		on  uint8 = 0
		off uint8 = 1
	)
	img := image.NewPaletted(rect, color.Palette{p.Foreground, p.Background})
	for y := 0; y < rect.Dy(); y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+rect.Dx()]
		for x := range row {
			if grid.At(x, y) {
				row[x] = on
			} else {
				row[x] = off
			}
		}
	}
	return img
}

func rasterizeRGBA(grid *matrix.Grid, rect image.Rectangle, p Palette) *image.RGBA {
	on := color.RGBAModel.Convert(p.Foreground).(color.RGBA)
	off := color.RGBAModel.Convert(p.Background).(color.RGBA)
	img := image.NewRGBA(rect)
	for y := 0; y < rect.Dy(); y++ {
		for x := 0; x < rect.Dx(); x++ {
			if grid.At(x, y) {
				img.SetRGBA(x, y, on)
			} else {
				img.SetRGBA(x, y, off)
			}
		}
	}
	return img
}

// ToRGBA returns img as an *image.RGBA, copying when it is of another type.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
