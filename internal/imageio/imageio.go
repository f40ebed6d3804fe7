package imageio

import (
	"fmt"
	"image"
	"image/png"
	"os"

	// additional decoders for Load
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/gruppe-adler/heightmap-colorizer/internal/heightmap"
)

// Load reads the raster image at given path into a heightmap.
// Only the red channel of each pixel is used.
func Load(path string) (*heightmap.Heightmap, error) {
	img, err := Decode(path)
	if err != nil {
		return nil, err
	}

	return heightmap.FromImage(img), nil
}

// Decode reads and decodes the raster image at given path
func Decode(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return img, nil
}

// Save writes the color grid as opaque PNG to given path
func Save(grid *heightmap.ColorGrid, path string) error {
	return SaveImage(grid.RGBA(), path)
}

// SaveGray writes the heightmap as 8-bit grayscale PNG to given path
func SaveGray(hm *heightmap.Heightmap, path string) error {
	return SaveImage(hm.Gray(), path)
}

// SaveImage encodes img as PNG to given path
func SaveImage(img image.Image, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}

	err = png.Encode(out, img)
	if err != nil {
		out.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	return out.Close()
}
