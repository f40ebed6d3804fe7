package heightmap

import (
	"image"
	"image/color"
)

// Heightmap is a grid of 8-bit elevation samples stored row-major
type Heightmap struct {
	Width  int
	Height int
	Pix    []uint8
}

// New creates an empty heightmap of given size. Negative sizes are treated as 0.
func New(width, height int) *Heightmap {
	width, height = clampSize(width, height)

	return &Heightmap{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// At returns the raw sample at x, y
func (h *Heightmap) At(x, y int) uint8 {
	return h.Pix[y*h.Width+x]
}

// Set sets the raw sample at x, y
func (h *Heightmap) Set(x, y int, v uint8) {
	h.Pix[y*h.Width+x] = v
}

// Stepped returns the sample at x, y quantized down to a multiple of step
func (h *Heightmap) Stepped(x, y int, step uint8) uint8 {
	return Step(h.At(x, y), step)
}

// Bounds of the heightmap in image coordinates
func (h *Heightmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, h.Width, h.Height)
}

// Gray converts the heightmap to a grayscale image
func (h *Heightmap) Gray() *image.Gray {
	img := image.NewGray(h.Bounds())
	for y := 0; y < h.Height; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+h.Width], h.Pix[y*h.Width:(y+1)*h.Width])
	}
	return img
}

// FromImage reads the red channel of every pixel of img into a new heightmap.
// Green, blue and alpha are ignored.
func FromImage(img image.Image) *Heightmap {
	b := img.Bounds()
	h := New(b.Dx(), b.Dy())

	switch src := img.(type) {
	case *image.Gray:
		for y := 0; y < h.Height; y++ {
			start := (y+b.Min.Y-src.Rect.Min.Y)*src.Stride + (b.Min.X - src.Rect.Min.X)
			copy(h.Pix[y*h.Width:(y+1)*h.Width], src.Pix[start:start+h.Width])
		}
	default:
		for y := 0; y < h.Height; y++ {
			for x := 0; x < h.Width; x++ {
				// non-premultiplied, so pixels with partial alpha keep their red value
				c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				h.Pix[y*h.Width+x] = c.R
			}
		}
	}

	return h
}

// Step quantizes v down to the nearest multiple of step
func Step(v, step uint8) uint8 {
	if step <= 1 {
		return v
	}
	return v / step * step
}

func clampSize(width, height int) (int, int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return width, height
}
