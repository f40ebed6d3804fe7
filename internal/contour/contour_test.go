package contour

import (
	"testing"

	"github.com/gruppe-adler/heightmap-colorizer/internal/classify"
	"github.com/gruppe-adler/heightmap-colorizer/internal/heightmap"
	"github.com/gruppe-adler/heightmap-colorizer/internal/palette"
)

var cfg = palette.Default()

func grid(width, height int, values ...uint8) *heightmap.Heightmap {
	hm := heightmap.New(width, height)
	copy(hm.Pix, values)
	return hm
}

func shade(hm *heightmap.Heightmap) *heightmap.ColorGrid {
	return Shade(hm, classify.Classify(hm, cfg), cfg)
}

func TestShadeReturnsSameGrid(t *testing.T) {
	hm := grid(2, 2, 100, 80, 10, 200)
	colors := classify.Classify(hm, cfg)

	if got := Shade(hm, colors, cfg); got != colors {
		t.Error("Shade did not return the grid it was given")
	}
}

func TestShadeWaterNeighbours(t *testing.T) {
	hm := grid(3, 3,
		10, 10, 10,
		10, 100, 10,
		10, 10, 10,
	)

	colors := shade(hm)

	if got := colors.At(1, 1); got != cfg.ShoreColor {
		t.Errorf("center = %v, want %v", got, cfg.ShoreColor)
	}

	// water is left as classified
	water := classify.Color(10, cfg)
	for i, c := range colors.Pix {
		if i == 4 {
			continue
		}
		if c != water {
			t.Errorf("Pix[%d] = %v, want %v", i, c, water)
		}
	}
}

func TestShadeFlat(t *testing.T) {
	hm := heightmap.New(5, 4)
	for i := range hm.Pix {
		hm.Pix[i] = 200
	}

	colors := shade(hm)
	want := classify.Color(200, cfg)

	for i, c := range colors.Pix {
		if c != want {
			t.Errorf("Pix[%d] = %v, want %v", i, c, want)
		}
	}
}

func TestShadeLowerNeighbour(t *testing.T) {
	hm := grid(3, 3,
		80, 100, 100,
		100, 100, 100,
		100, 100, 100,
	)

	colors := shade(hm)

	// difference 20 -> line intensity 34
	c := classify.Color(100, cfg)
	want := heightmap.RGB{R: c.R - 34, G: c.G - 34, B: c.B - 34}

	for _, p := range []struct{ x, y int }{{1, 0}, {0, 1}, {1, 1}} {
		if got := colors.At(p.x, p.y); got != want {
			t.Errorf("(%d, %d) = %v, want %v", p.x, p.y, got, want)
		}
	}

	// no lower neighbour
	for _, p := range []struct{ x, y int }{{0, 0}, {2, 0}, {2, 2}} {
		if got, want := colors.At(p.x, p.y), classify.Color(hm.At(p.x, p.y), cfg); got != want {
			t.Errorf("(%d, %d) = %v, want %v", p.x, p.y, got, want)
		}
	}
}

func TestShadeLowestNeighbourWins(t *testing.T) {
	hm := grid(3, 1, 90, 150, 120)

	colors := shade(hm)

	// difference to 90 is 60 -> line intensity 74
	c := classify.Color(150, cfg)
	want := heightmap.RGB{R: c.R - 74, G: c.G - 74, B: c.B - 74}
	if got := colors.At(1, 0); got != want {
		t.Errorf("center = %v, want %v", got, want)
	}
}

func TestShadeLargeDifference(t *testing.T) {
	hm := grid(2, 1, 50, 255)

	colors := shade(hm)

	// difference 205 -> line intensity 219, 255 - 219 = 36
	want := heightmap.RGB{R: 36, G: 36, B: 36}
	if got := colors.At(1, 0); got != want {
		t.Errorf("(1, 0) = %v, want %v", got, want)
	}

	hm = grid(2, 1, 50, 200)
	colors = shade(hm)

	// 223, 221, 216 minus 164 -> 59, 57, 52
	want = heightmap.RGB{R: 59, G: 57, B: 52}
	if got := colors.At(1, 0); got != want {
		t.Errorf("(1, 0) = %v, want %v", got, want)
	}
}

func TestShadeWaterAndLowerLand(t *testing.T) {
	tests := []struct {
		name string
		hm   *heightmap.Heightmap
	}{
		{"water first", grid(3, 1, 10, 100, 80)},
		{"water last", grid(3, 1, 80, 100, 10)},
	}

	// shore color darkened by 34 and clamped
	want := heightmap.RGB{R: 15, G: 15, B: 15}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shade(tt.hm).At(1, 0); got != want {
				t.Errorf("center = %v, want %v", got, want)
			}
		})
	}
}

func TestShadeUsesSteppedValues(t *testing.T) {
	// 103 and 100 share a step, 52 is land although 52 - 50 < 5
	hm := grid(3, 1, 100, 103, 52)

	colors := shade(hm)

	if got, want := colors.At(0, 0), classify.Color(100, cfg); got != want {
		t.Errorf("(0, 0) = %v, want %v", got, want)
	}
	if got := colors.At(1, 0); got == classify.Color(103, cfg) {
		t.Errorf("(1, 0) = %v, want darkened by neighbour 52", got)
	}
	if got, want := colors.At(2, 0), classify.Color(52, cfg); got != want {
		t.Errorf("(2, 0) = %v, want %v", got, want)
	}
}

func TestShadeEmpty(t *testing.T) {
	for _, size := range [][2]int{{0, 0}, {0, 4}, {4, 0}} {
		hm := heightmap.New(size[0], size[1])
		colors := shade(hm)

		if colors.Width != hm.Width || colors.Height != hm.Height || len(colors.Pix) != 0 {
			t.Errorf("shade(%dx%d) = %dx%d", hm.Width, hm.Height, colors.Width, colors.Height)
		}
	}
}
