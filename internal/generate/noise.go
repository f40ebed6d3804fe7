package generate

import (
	"github.com/aquilax/go-perlin"
	"github.com/gruppe-adler/heightmap-colorizer/internal/heightmap"
)

const (
	frequency     = 0.01
	zoneFrequency = 0.0015

	// baseLevel shifts the noise so roughly half of the map ends up as land
	baseLevel = 70
)

// Generator generates a heightmap using perlin noise.
type Generator struct {
	// Land/coast heightmap noise
	landHi *perlin.Perlin // for smaller/higher frequency details
	landLo *perlin.Perlin // for larger/lower frequency details

	// Open water depth floor heightmap noise
	waterLo *perlin.Perlin
}

// New creates a new Generator with a seed.
func New(seed int64) *Generator {
	return &Generator{
		landHi:  perlin.NewPerlin(1.5, 2.0, 4, seed),
		landLo:  perlin.NewPerlin(2.5, 3.0, 4, seed+1),
		waterLo: perlin.NewPerlin(2, 3.0, 3, seed+2),
	}
}

// Generate a width*height heightmap. The same seed always yields the same heightmap.
func (g *Generator) Generate(width, height int) *heightmap.Heightmap {
	hm := heightmap.New(width, height)

	for j := 0; j < hm.Height; j++ {
		for i := 0; i < hm.Width; i++ {
			x := float64(i)
			y := float64(j)

			h := g.landHi.Noise2D(x*frequency, y*frequency)*250 + baseLevel

			// zone is very low frequency
			zone := g.landLo.Noise2D(x*zoneFrequency, y*zoneFrequency)*2.0 + 0.6
			if zone > 1 {
				zone = 1
			}
			h *= zone

			depthFloor := clamp((g.waterLo.Noise2D(x*zoneFrequency, y*zoneFrequency)+0.3)*4, 0, 1) * 40

			if depthFloor > h {
				h = depthFloor
			}

			hm.Set(i, j, clampToByte(h))
		}
	}

	return hm
}

func clamp(f, min, max float64) float64 {
	if f < min {
		return min
	}
	if f > max {
		return max
	}
	return f
}

func clampToByte(f float64) byte {
	if f < 0 {
		return 0
	}
	if f > 255 {
		return 255
	}
	return byte(f)
}
