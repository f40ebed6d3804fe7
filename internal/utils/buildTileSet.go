package utils

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path"
	"runtime"

	"github.com/nfnt/resize"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// TileSize is the width and height of a single tile in px
const TileSize = 256

// BuildTileSet builds tiles for given LOD from given image into outputDirectory.
// Tiles are written as <outputDirectory>/<lod>/<col>/<row>.png
func BuildTileSet(ctx context.Context, lod uint8, img *image.RGBA, outputDirectory string) error {
	outputDirectory = path.Join(outputDirectory, fmt.Sprintf("%d", lod))

	tilesPerRowCol := 1 << lod

	// make col directories
	for col := 0; col < tilesPerRowCol; col++ {
		err := EnsureDirectory(path.Join(outputDirectory, fmt.Sprintf("%d", col)))
		if err != nil {
			return err
		}
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	tileWidth := width / tilesPerRowCol
	tileHeight := height / tilesPerRowCol

	// remaining pixels
	widthRemainder := width % tilesPerRowCol
	heightRemainder := height % tilesPerRowCol

	sem := semaphore.NewWeighted(int64(runtime.NumCPU()))
	g, gctx := errgroup.WithContext(ctx)

	x := bounds.Min.X
	for col := 0; col < tilesPerRowCol; col++ {
		w := tileWidth
		// if we have any remaining pixels we'll distribute them to the first cols / rows
		if col < widthRemainder {
			w++
		}

		y := bounds.Min.Y
		for row := 0; row < tilesPerRowCol; row++ {
			h := tileHeight
			if row < heightRemainder {
				h++
			}

			rect := image.Rect(x, y, x+w, y+h)
			tilePath := path.Join(outputDirectory, fmt.Sprintf("%d", col), fmt.Sprintf("%d.png", row))

			if err := sem.Acquire(gctx, 1); err != nil {
				break
			}
			g.Go(func() error {
				defer sem.Release(1)
				return createTile(img, rect, tilePath)
			})

			y += h
		}
		x += w
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return ctx.Err()
}

func createTile(img *image.RGBA, rect image.Rectangle, tilePath string) error {
	subImg := img.SubImage(rect)

	tile := resize.Resize(TileSize, TileSize, subImg, resize.MitchellNetravali)

	out, err := os.Create(tilePath)
	if err != nil {
		return err
	}

	err = png.Encode(out, tile)
	if err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
