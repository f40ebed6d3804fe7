package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gruppe-adler/heightmap-colorizer/internal/generate"
	"github.com/gruppe-adler/heightmap-colorizer/internal/mounts"
	"github.com/gruppe-adler/heightmap-colorizer/internal/preview"
	"github.com/gruppe-adler/heightmap-colorizer/internal/render"
	"github.com/gruppe-adler/heightmap-colorizer/internal/tiles"
)

type command struct {
	name        string
	description string
	run         func(*flag.FlagSet, []string)
}

var subCommands []command

func init() {
	subCommands = []command{
		{"render", "Colorize a grayscale heightmap (default).", render.Run},
		{"preview", "Colorize a heightmap and build preview resolutions.", preview.Run},
		{"tiles", "Colorize a heightmap and build xyz tiles.", tiles.Run},
		{"mounts", "Export the peaks of a heightmap as GeoJSON.", mounts.Run},
		{"generate", "Generate a perlin noise heightmap.", generate.Run},
		{"help", "Print this message.", func(*flag.FlagSet, []string) { printUsage() }},
	}
}

func printUsage() {
	fmt.Printf("USAGE:\n    %s [SUBCOMMAND] [SUBCOMMAND FLAGS]\n\n", os.Args[0])
	fmt.Print("SUBCOMMANDS: \n")

	for i := 0; i < len(subCommands); i++ {
		name := subCommands[i].name

		fmt.Printf("%12s    %s\n", name, subCommands[i].description)
	}

	fmt.Printf("\nWithout a subcommand %s reads %s and writes %s.\n", os.Args[0], render.DefaultInput, render.DefaultOutput)
	fmt.Printf("Use -h as SUBCOMMAND FLAG to print help for each subcommand.\n\n")
}

func main() {

	// no subcommand -> colorize the default heightmap
	if len(os.Args) < 2 {
		render.Run(flag.NewFlagSet("render", flag.ExitOnError), []string{})
		return
	}

	cmd := os.Args[1]

	for i := 0; i < len(subCommands); i++ {
		if subCommands[i].name == cmd {
			set := flag.NewFlagSet(cmd, flag.ExitOnError)
			subCommands[i].run(set, os.Args[2:])
			return
		}
	}

	fmt.Printf("\nERROR: Subcommand '%s' was not found.\n\n", cmd)
	printUsage()
	os.Exit(1)
}
