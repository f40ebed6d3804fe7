package contour

import (
	"image"

	"github.com/gruppe-adler/heightmap-colorizer/internal/heightmap"
	"github.com/gruppe-adler/heightmap-colorizer/internal/palette"
)

// Shade darkens the land pixels of grid which border water or lower terrain.
// grid has to be the classified color grid of hm; it is modified in place and
// returned.
//
// A land pixel next to water is set to cfg.ShoreColor. A land pixel with a
// lower land neighbour is darkened by the (stepped) elevation difference to its
// lowest neighbour plus cfg.LineOffset. Both apply in that order, so a pixel
// next to water and lower land ends up as a darkened shore color. The result
// does not depend on the neighbour order.
func Shade(hm *heightmap.Heightmap, grid *heightmap.ColorGrid, cfg palette.Config) *heightmap.ColorGrid {
	neighbors := make([]image.Point, 0, 8)

	for y := 0; y < hm.Height; y++ {
		for x := 0; x < hm.Width; x++ {
			elevation := hm.Stepped(x, y, cfg.StepSize)

			// water stays as classified
			if !cfg.IsLand(elevation) {
				continue
			}

			minValue := elevation
			nextToWater := false

			neighbors = heightmap.AppendNeighborPixels(neighbors[:0], x, y, hm.Width, hm.Height)
			for _, n := range neighbors {
				neighborElevation := hm.Stepped(n.X, n.Y, cfg.StepSize)

				if !cfg.IsLand(neighborElevation) {
					nextToWater = true
				} else if neighborElevation < minValue {
					minValue = neighborElevation
				}
			}

			if nextToWater {
				grid.Set(x, y, cfg.ShoreColor)
			}

			difference := int(elevation - minValue)
			if difference > 0 {
				grid.Set(x, y, darken(grid.At(x, y), difference+cfg.LineOffset, cfg.MinChannel))
			}
		}
	}

	return grid
}

func darken(c heightmap.RGB, intensity, floor int) heightmap.RGB {
	return heightmap.RGB{
		R: clampChannel(int(c.R)-intensity, floor),
		G: clampChannel(int(c.G)-intensity, floor),
		B: clampChannel(int(c.B)-intensity, floor),
	}
}

func clampChannel(v, floor int) uint8 {
	if v < floor {
		return uint8(floor)
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
