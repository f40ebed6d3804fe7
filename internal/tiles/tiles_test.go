package tiles

import (
	"context"
	"image"
	"path/filepath"
	"testing"
	"time"

	"github.com/gruppe-adler/heightmap-colorizer/internal/utils"
)

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 300, 300))

	var finished []uint8
	maxLod, err := Build(context.Background(), img, dir, func(lod uint8, d time.Duration) {
		finished = append(finished, lod)
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if maxLod != 1 {
		t.Errorf("Build() maxLod = %d, want 1", maxLod)
	}
	if len(finished) != 2 || finished[0] != 0 || finished[1] != 1 {
		t.Errorf("finished LODs = %v, want [0 1]", finished)
	}

	for _, tile := range []string{"0/0/0.png", "1/0/0.png", "1/0/1.png", "1/1/0.png", "1/1/1.png"} {
		if !utils.IsFile(filepath.Join(dir, filepath.FromSlash(tile))) {
			t.Errorf("tile %s missing", tile)
		}
	}
}

func TestBuildEmpty(t *testing.T) {
	if _, err := Build(context.Background(), image.NewRGBA(image.Rectangle{}), t.TempDir(), nil); err == nil {
		t.Error("Build() expected error for empty image")
	}
}
