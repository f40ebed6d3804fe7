package mounts

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gruppe-adler/heightmap-colorizer/internal/imageio"
	"github.com/gruppe-adler/heightmap-colorizer/internal/palette"
	"github.com/gruppe-adler/heightmap-colorizer/internal/render"
	"github.com/gruppe-adler/heightmap-colorizer/internal/validate"
)

// Run is the program's entrypoint
func Run(flagSet *flag.FlagSet, args []string) {

	var timer time.Time
	start := time.Now()

	inputPtr := flagSet.String("in", render.DefaultInput, "Path to grayscale heightmap image")
	outputPtr := flagSet.String("out", "mounts.geojson", "Path to output GeoJSON file")

	flagSet.Parse(args)

	err := validate.InputFile(*inputPtr)
	if err != nil {
		log.Fatal(err)
	}

	timer = time.Now()
	fmt.Println("▶️  Loading heightmap")
	hm, err := imageio.Load(*inputPtr)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("✔️  Loaded heightmap in", time.Since(timer).String())

	timer = time.Now()
	fmt.Println("▶️  Building mounts")
	mounts := Find(hm, palette.Default())
	fmt.Printf("✔️  Built %d mounts in %s\n", len(mounts.Features), time.Since(timer).String())

	bytes, err := mounts.MarshalJSON()
	if err != nil {
		log.Fatal(err)
	}

	err = os.WriteFile(*outputPtr, bytes, 0644)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("\n    🎉  Finished in %s\n", time.Since(start).String())
}
