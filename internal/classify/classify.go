package classify

import (
	"github.com/gruppe-adler/heightmap-colorizer/internal/heightmap"
	"github.com/gruppe-adler/heightmap-colorizer/internal/palette"
)

// Classify maps every sample of hm to its elevation color. The returned grid
// has the same size as hm.
func Classify(hm *heightmap.Heightmap, cfg palette.Config) *heightmap.ColorGrid {
	grid := heightmap.NewColorGrid(hm.Width, hm.Height)

	for i, v := range hm.Pix {
		grid.Pix[i] = Color(v, cfg)
	}

	return grid
}

// Color returns the elevation color of a single raw sample
func Color(v uint8, cfg palette.Config) heightmap.RGB {
	if !cfg.IsLand(v) {
		return waterColor(v, cfg)
	}

	// land is tinted along low -> high in steps of cfg.StepSize
	delta := heightmap.Step(v-cfg.WaterLevel, cfg.StepSize)
	factor := float64(delta) / cfg.GradientSpan

	return heightmap.RGB{
		R: lerp(cfg.LowColor.R, cfg.HighColor.R, factor),
		G: lerp(cfg.LowColor.G, cfg.HighColor.G, factor),
		B: lerp(cfg.LowColor.B, cfg.HighColor.B, factor),
	}
}

func waterColor(v uint8, cfg palette.Config) heightmap.RGB {
	for i, limit := range cfg.WaterBands {
		if v < limit {
			return cfg.Water[i]
		}
	}
	return cfg.Water[len(cfg.Water)-1]
}

// lerp truncates towards zero and clamps to a byte
func lerp(low, high uint8, factor float64) uint8 {
	f := float64(low) + (float64(high)-float64(low))*factor
	if f < 0 {
		return 0
	}
	if f > 255 {
		return 255
	}
	return uint8(f)
}
