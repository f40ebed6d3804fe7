package validate

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInputFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "heightmap.png")
	if err := os.WriteFile(file, []byte{}, 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"file", file, false},
		{"directory", dir, true},
		{"missing", filepath.Join(dir, "missing.png"), true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := InputFile(tt.path); (err != nil) != tt.wantErr {
				t.Errorf("InputFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestOutputDirectory(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"directory", dir, false},
		{"missing", filepath.Join(dir, "missing"), true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := OutputDirectory(tt.path); (err != nil) != tt.wantErr {
				t.Errorf("OutputDirectory(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}
