package tiles

import (
	"context"
	"errors"
	"image"
	"time"

	"github.com/gruppe-adler/heightmap-colorizer/internal/utils"
)

// Build writes the xyz tile pyramid of img from LOD 0 up to the max LOD into
// outputDirectory. done is called after each finished LOD and may be nil.
func Build(ctx context.Context, img *image.RGBA, outputDirectory string, done func(lod uint8, d time.Duration)) (uint8, error) {
	if img.Bounds().Empty() {
		return 0, errors.New("cannot build tiles of an empty image")
	}

	maxLod := utils.CalcMaxLod(img.Bounds())

	for lod := uint8(0); lod <= maxLod; lod++ {
		timer := time.Now()

		err := utils.BuildTileSet(ctx, lod, img, outputDirectory)
		if err != nil {
			return maxLod, err
		}

		if done != nil {
			done(lod, time.Since(timer))
		}
	}

	return maxLod, nil
}
