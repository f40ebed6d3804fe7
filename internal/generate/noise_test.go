package generate

import (
	"bytes"
	"testing"
)

func TestGenerateDeterministic(t *testing.T) {
	a := New(56).Generate(64, 32)
	b := New(56).Generate(64, 32)

	if a.Width != 64 || a.Height != 32 {
		t.Fatalf("Generate() size = %dx%d, want 64x32", a.Width, a.Height)
	}

	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("Generate() with the same seed returned different heightmaps")
	}
}

func TestGenerateEmpty(t *testing.T) {
	hm := New(1).Generate(0, 0)
	if len(hm.Pix) != 0 {
		t.Errorf("Generate(0, 0) returned %d samples", len(hm.Pix))
	}
}

func TestClampToByte(t *testing.T) {
	tests := []struct {
		f    float64
		want byte
	}{
		{-3, 0},
		{0, 0},
		{12.9, 12},
		{255, 255},
		{300, 255},
	}

	for _, tt := range tests {
		if got := clampToByte(tt.f); got != tt.want {
			t.Errorf("clampToByte(%v) = %d, want %d", tt.f, got, tt.want)
		}
	}
}
