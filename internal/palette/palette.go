package palette

import "github.com/gruppe-adler/heightmap-colorizer/internal/heightmap"

// Config holds the fixed colors and thresholds used to colorize a heightmap.
// It is built once with Default and passed by value, so it is never mutated.
type Config struct {
	// WaterLevel is the lowest sample value which counts as land
	WaterLevel uint8
	// StepSize is the quantization step applied to samples before shading
	StepSize uint8
	// GradientSpan is the stepped land delta which maps to HighColor
	GradientSpan float64

	LowColor  heightmap.RGB
	HighColor heightmap.RGB

	// Water holds the depth band colors from deepest to shallowest. Band i
	// covers samples below WaterBands[i], the last band covers the rest.
	Water      [4]heightmap.RGB
	WaterBands [3]uint8

	// ShoreColor marks land pixels next to water
	ShoreColor heightmap.RGB
	// LineOffset is added to the elevation difference to get the contour darkening
	LineOffset int
	// MinChannel is the lowest channel value contour darkening may produce
	MinChannel int
}

// Default returns the terrain palette
func Default() Config {
	return Config{
		WaterLevel:   50,
		StepSize:     5,
		GradientSpan: 205.0,

		LowColor:  heightmap.RGB{R: 0x8A, G: 0x82, B: 0x70}, // #8A8270
		HighColor: heightmap.RGB{R: 0xFF, G: 0xFF, B: 0xFF}, // #FFFFFF

		Water: [4]heightmap.RGB{
			{R: 0x4A, G: 0x6E, B: 0x75}, // #4A6E75
			{R: 0x4A, G: 0x7D, B: 0x88}, // #4A7D88
			{R: 0x4D, G: 0x8D, B: 0x9A}, // #4D8D9A
			{R: 0x4D, G: 0x9C, B: 0xAA}, // #4D9CAA
		},
		WaterBands: [3]uint8{20, 30, 40},

		ShoreColor: heightmap.RGB{R: 32, G: 32, B: 32},
		LineOffset: 14,
		MinChannel: 15,
	}
}

// IsLand reports whether a (stepped) sample lies at or above the water level
func (c Config) IsLand(v uint8) bool {
	return v >= c.WaterLevel
}
