package utils

import (
	"image"
	"math"
)

// CalcMaxLod calculates the maximum LOD at which tiles of given image are
// not upscaled
func CalcMaxLod(bounds image.Rectangle) uint8 {
	w := bounds.Dx()
	if bounds.Dy() > w {
		w = bounds.Dy()
	}

	if w <= TileSize {
		return 0
	}

	tilesPerRowCol := math.Ceil(float64(w) / TileSize)

	return uint8(math.Ceil(math.Log2(tilesPerRowCol)))
}
