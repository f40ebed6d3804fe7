package generate

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/gruppe-adler/heightmap-colorizer/internal/imageio"
	"github.com/gruppe-adler/heightmap-colorizer/internal/render"
)

// Run is the program's entrypoint
func Run(flagSet *flag.FlagSet, args []string) {
	start := time.Now()

	outputPtr := flagSet.String("out", render.DefaultInput, "Path to output heightmap PNG")
	sizePtr := flagSet.Int("size", 512, "Width and height of the heightmap in px")
	seedPtr := flagSet.Int64("seed", 56, "Noise seed")

	flagSet.Parse(args)

	if *sizePtr <= 0 {
		flagSet.PrintDefaults()
		log.Fatal("-size must be greater than 0")
	}

	fmt.Printf("▶️  Generating %dx%d heightmap with seed %d\n", *sizePtr, *sizePtr, *seedPtr)
	hm := New(*seedPtr).Generate(*sizePtr, *sizePtr)

	err := imageio.SaveGray(hm, *outputPtr)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("✔️  Wrote %s in %s\n", *outputPtr, time.Since(start).String())
}
