package mounts

import (
	"fmt"
	"sort"

	"github.com/gruppe-adler/heightmap-colorizer/internal/heightmap"
	"github.com/gruppe-adler/heightmap-colorizer/internal/palette"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Find returns a feature for every land peak of hm. Points are in pixel
// coordinates (pixel centers), features are sorted by ascending elevation.
func Find(hm *heightmap.Heightmap, cfg palette.Config) *geojson.FeatureCollection {

	mounts := geojson.NewFeatureCollection()

	// for all cells (except edges)
	for y := 1; y < hm.Height-1; y++ {
		for x := 1; x < hm.Width-1; x++ {
			elevation := hm.At(x, y)

			// we'll only create mounts for peaks, which are above the water level
			if !cfg.IsLand(elevation) {
				continue
			}

			if !isPeak(hm, x, y) {
				continue
			}

			feature := geojson.NewFeature(orb.Point{float64(x) + 0.5, float64(y) + 0.5})
			feature.Properties["elevation"] = int(elevation)
			feature.Properties["text"] = fmt.Sprintf("%d", elevation)

			mounts.Append(feature)
		}
	}

	sort.SliceStable(mounts.Features, func(i, j int) bool {
		return mounts.Features[i].Properties["elevation"].(int) < mounts.Features[j].Properties["elevation"].(int)
	})

	return mounts
}

// isPeak reports whether all neighbours of x, y are lower. Neighbours with
// the same elevation disqualify the cell, because we don't want to generate a
// "mount" for cells that are in the middle of a plane.
func isPeak(hm *heightmap.Heightmap, x, y int) bool {
	elevation := hm.At(x, y)

	for _, n := range heightmap.NeighborPixels(x, y, hm.Width, hm.Height) {
		if hm.At(n.X, n.Y) >= elevation {
			return false
		}
	}

	return true
}
