package preview

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

	timer = time.Now()
	fmt.Println("▶️  Loading heightmap")
	hm, err := imageio.Load(*inputPtr)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("✔️  Loaded heightmap in", time.Since(timer).String())

	timer = time.Now()
	fmt.Println("▶️  Colorizing heightmap")
	img := render.Heightmap(hm, palette.Default()).RGBA()
	fmt.Println("✔️  Colorized heightmap in", time.Since(timer).String())

	timer = time.Now()
	fmt.Println("▶️  Writing original preview image to output")
	err = imageio.SaveImage(img, path.Join(*outputPtr, "preview.png"))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("✔️  Wrote original preview image in", time.Since(timer).String())

	timer = time.Now()
	fmt.Printf("▶️  Building %v images\n", Sizes)
	err = Build(context.Background(), img, *outputPtr, Sizes)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("✔️  Built preview images in", time.Since(timer).String())

	fmt.Printf("\n    🎉  Finished in %s\n", time.Since(start).String())
}
