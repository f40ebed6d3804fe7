package render

import (
	"github.com/gruppe-adler/heightmap-colorizer/internal/classify"
	"github.com/gruppe-adler/heightmap-colorizer/internal/contour"
	"github.com/gruppe-adler/heightmap-colorizer/internal/heightmap"
	"github.com/gruppe-adler/heightmap-colorizer/internal/palette"
)

// Heightmap colorizes hm: it is classified by elevation first and then
// contour shaded.
func Heightmap(hm *heightmap.Heightmap, cfg palette.Config) *heightmap.ColorGrid {
	grid := classify.Classify(hm, cfg)
	return contour.Shade(hm, grid, cfg)
}
