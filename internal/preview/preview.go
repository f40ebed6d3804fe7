package preview

import (
	"context"
	"fmt"
	"image"
	"path"

	"github.com/gruppe-adler/heightmap-colorizer/internal/imageio"
	"github.com/nfnt/resize"
	"golang.org/x/sync/errgroup"
)

// Sizes are the preview heights in px
var Sizes = []uint{128, 256, 512, 1024}

// FileName returns the file name of the preview with given height
func FileName(size uint) string {
	return fmt.Sprintf("preview_%d.png", size)
}

// Build writes one downscaled copy of img per size into outputDirectory.
// The height of each copy equals size, the aspect ratio is kept.
func Build(ctx context.Context, img image.Image, outputDirectory string, sizes []uint) error {
	height := img.Bounds().Dy()
	width := img.Bounds().Dx()
	if height == 0 || width == 0 {
		return fmt.Errorf("cannot build previews of an empty image")
	}

	g, ctx := errgroup.WithContext(ctx)

	for _, size := range sizes {
		size := size
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			factor := float64(size) / float64(height)
			w := uint(float64(width) * factor)
			if w == 0 {
				w = 1
			}

			scaled := resize.Resize(w, size, img, resize.MitchellNetravali)
			return imageio.SaveImage(scaled, path.Join(outputDirectory, FileName(size)))
		})
	}

	return g.Wait()
}
