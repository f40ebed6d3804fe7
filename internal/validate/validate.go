package validate

import (
	"fmt"

	"github.com/gruppe-adler/heightmap-colorizer/internal/utils"
)

// InputFile validates that given path exists and is a file
func InputFile(filePath string) error {
	if filePath == "" {
		return fmt.Errorf("no input file given")
	}

	if !utils.IsFile(filePath) {
		return fmt.Errorf("%s does not exists or is no file", filePath)
	}

	return nil
}

// OutputDirectory validates that given path exists and is a directory
func OutputDirectory(dirPath string) error {
	if dirPath == "" {
		return fmt.Errorf("no output directory given")
	}

	if !utils.IsDirectory(dirPath) {
		return fmt.Errorf("%s does not exists or is no directory", dirPath)
	}

	return nil
}
