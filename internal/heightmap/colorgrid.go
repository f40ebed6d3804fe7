package heightmap

import (
	"image"
	"image/color"
)

// RGB is an opaque 8-bit color
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}.RGBA()
}

// ColorGrid is a grid of RGB colors stored row-major
type ColorGrid struct {
	Width  int
	Height int
	Pix    []RGB
}

// NewColorGrid creates a black color grid of given size. Negative sizes are treated as 0.
func NewColorGrid(width, height int) *ColorGrid {
	width, height = clampSize(width, height)

	return &ColorGrid{
		Width:  width,
		Height: height,
		Pix:    make([]RGB, width*height),
	}
}

// At returns the color at x, y
func (g *ColorGrid) At(x, y int) RGB {
	return g.Pix[y*g.Width+x]
}

// Set sets the color at x, y
func (g *ColorGrid) Set(x, y int, c RGB) {
	g.Pix[y*g.Width+x] = c
}

// Bounds of the grid in image coordinates
func (g *ColorGrid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.Width, g.Height)
}

// RGBA converts the grid to an opaque image
func (g *ColorGrid) RGBA() *image.RGBA {
	img := image.NewRGBA(g.Bounds())

	for y := 0; y < g.Height; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < g.Width; x++ {
			c := g.Pix[y*g.Width+x]
			row[x*4+0] = c.R
			row[x*4+1] = c.G
			row[x*4+2] = c.B
			row[x*4+3] = 255
		}
	}

	return img
}
