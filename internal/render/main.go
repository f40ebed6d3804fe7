package render

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/gruppe-adler/heightmap-colorizer/internal/imageio"
	"github.com/gruppe-adler/heightmap-colorizer/internal/palette"
	"github.com/gruppe-adler/heightmap-colorizer/internal/validate"
)

const (
	// DefaultInput is the heightmap read when no -in flag is given
	DefaultInput = "heightmap.png"
	// DefaultOutput is the image written when no -out flag is given
	DefaultOutput = "heightmap_transformed.png"
)

// Run is the program's entrypoint
func Run(flagSet *flag.FlagSet, args []string) {
	inputPtr := flagSet.String("in", DefaultInput, "Path to grayscale heightmap image")
	outputPtr := flagSet.String("out", DefaultOutput, "Path to output PNG")
	verbosePtr := flagSet.Bool("v", false, "Print progress")

	flagSet.Parse(args)

	err := validate.InputFile(*inputPtr)
	if err != nil {
		log.Fatal(err)
	}

	err = File(*inputPtr, *outputPtr, palette.Default(), *verbosePtr)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("Image saved !")
}

// File loads the heightmap at inputPath, colorizes it and saves it to outputPath
func File(inputPath string, outputPath string, cfg palette.Config, verbose bool) error {
	var timer time.Time
	start := time.Now()

	progress := func(a ...interface{}) {
		if verbose {
			fmt.Println(a...)
		}
	}

	timer = time.Now()
	progress("▶️  Loading heightmap")
	hm, err := imageio.Load(inputPath)
	if err != nil {
		return err
	}
	progress("✔️  Loaded", hm.Width, "x", hm.Height, "heightmap in", time.Since(timer).String())

	timer = time.Now()
	progress("▶️  Colorizing heightmap")
	grid := Heightmap(hm, cfg)
	progress("✔️  Colorized heightmap in", time.Since(timer).String())

	timer = time.Now()
	progress("▶️  Saving image")
	err = imageio.Save(grid, outputPath)
	if err != nil {
		return err
	}
	progress("✔️  Saved image in", time.Since(timer).String())

	progress(fmt.Sprintf("\n    🎉  Finished in %s", time.Since(start).String()))

	return nil
}
