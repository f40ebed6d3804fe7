package tilejson

import (
	"os"
	"path"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// TileJSON represents a tile.json
type TileJSON struct {
	TileJSON    string   `json:"tilejson"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Scheme      string   `json:"scheme"`
	Tiles       []string `json:"tiles"`
	Minzoom     uint8    `json:"minzoom"`
	Maxzoom     uint8    `json:"maxzoom"`
	Bounds      [4]int   `json:"bounds"`
}

// New creates a tile.json for an xyz tile pyramid of an image with given size
func New(name string, description string, maxLod uint8, width, height int) TileJSON {
	return TileJSON{
		TileJSON:    "2.2.0",
		Name:        name,
		Description: description,
		Scheme:      "xyz",
		Tiles:       []string{"{z}/{x}/{y}.png"},
		Minzoom:     0,
		Maxzoom:     maxLod,
		Bounds:      [4]int{0, 0, width, height},
	}
}

// Write a tile.json into outputDirectory
func Write(outputDirectory string, obj TileJSON) error {
	// marshal
	bytes, err := json.MarshalIndent(obj, "", "    ")
	if err != nil {
		return err
	}

	// create file
	f, err := os.Create(path.Join(outputDirectory, "tile.json"))
	if err != nil {
		return err
	}

	// write file
	_, err = f.Write(bytes)
	if err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// Read a tile.json from given path
func Read(filePath string) (TileJSON, error) {
	var val TileJSON

	bytes, err := os.ReadFile(filePath)
	if err != nil {
		return val, err
	}

	err = json.Unmarshal(bytes, &val)
	return val, err
}
