package tiles

import (
	"context"
	"flag"
	"fmt"
	"log"
	"path"
	"time"

	"github.com/gruppe-adler/heightmap-colorizer/internal/imageio"
	"github.com/gruppe-adler/heightmap-colorizer/internal/palette"
	"github.com/gruppe-adler/heightmap-colorizer/internal/render"
	"github.com/gruppe-adler/heightmap-colorizer/internal/tilejson"
	"github.com/gruppe-adler/heightmap-colorizer/internal/validate"
)

// Run is the program's entrypoint
func Run(flagSet *flag.FlagSet, args []string) {

	var timer time.Time
	start := time.Now()

	outputPtr := flagSet.String("out", "", "Path to output directory")
	inputPtr := flagSet.String("in", render.DefaultInput, "Path to grayscale heightmap image")

	flagSet.Parse(args)

	// make sure both flags are present
	if *outputPtr == "" || *inputPtr == "" {
		flagSet.PrintDefaults()
		log.Fatal("missing -in or -out")
	}

	err := validate.OutputDirectory(*outputPtr)
	if err != nil {
		log.Fatal(err)
	}

	err = validate.InputFile(*inputPtr)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("✔️  Validated input and output")

	// load heightmap
	timer = time.Now()
	fmt.Println("▶️  Loading heightmap")
	hm, err := imageio.Load(*inputPtr)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("✔️  Loaded heightmap in", time.Since(timer).String())

	// colorize
	timer = time.Now()
	fmt.Println("▶️  Colorizing heightmap")
	img := render.Heightmap(hm, palette.Default()).RGBA()
	fmt.Println("✔️  Colorized heightmap in", time.Since(timer).String())

	maxLod, err := Build(context.Background(), img, *outputPtr, func(lod uint8, d time.Duration) {
		fmt.Println("    ✔️  Finished tiles for LOD", lod, "in", d.String())
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("ℹ️  Calculated max lod:", maxLod)

	// write tile.json
	timer = time.Now()
	fmt.Println("▶️  Creating tile.json")
	name := path.Base(*inputPtr)
	tj := tilejson.New(fmt.Sprintf("%s Terrain Tiles", name), fmt.Sprintf("Colorized terrain tiles of %s", name), maxLod, hm.Width, hm.Height)
	err = tilejson.Write(*outputPtr, tj)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("✔️  Created tile.json in", time.Since(timer).String())

	fmt.Printf("\n    🎉  Finished in %s\n", time.Since(start).String())
}
