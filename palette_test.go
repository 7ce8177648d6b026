package allrgb

import (
	"path/filepath"
	"testing"

	"github.com/wbrown/allrgb/imageutil"
)

func TestFifteenBitPalette(t *testing.T) {
	palette := FifteenBitPalette()
	if len(palette) != 32768 {
		t.Fatalf("Expected 32768 colors, got %d", len(palette))
	}

	// Red outermost, then green, then blue.
	tests := []struct {
		index    int
		expected RGB
	}{
		{0, RGB{0, 0, 0}},
		{1, RGB{0, 0, 8}},
		{31, RGB{0, 0, 248}},
		{32, RGB{0, 8, 0}},
		{1024, RGB{8, 0, 0}},
		{32767, RGB{248, 248, 248}},
	}
	for _, tt := range tests {
		if palette[tt.index] != tt.expected {
			t.Errorf("palette[%d]: expected %v, got %v", tt.index, tt.expected, palette[tt.index])
		}
	}

	seen := make(map[RGB]bool, len(palette))
	for _, c := range palette {
		if seen[c] {
			t.Fatalf("Duplicate color %v in palette", c)
		}
		seen[c] = true
	}
}

func TestPaletteFromImage(t *testing.T) {
	img := imageutil.NewRGBAImage(2, 2)
	img.SetRGB(0, 0, imageutil.RGB{R: 10})
	img.SetRGB(1, 0, imageutil.RGB{G: 20})
	img.SetRGB(0, 1, imageutil.RGB{B: 30})
	img.SetRGB(1, 1, imageutil.RGB{R: 10}) // duplicate of (0,0)

	colors := PaletteFromImage(img)
	expected := []RGB{
		{10, 0, 0},
		{0, 20, 0},
		{0, 0, 30},
		{10, 0, 0},
	}
	if len(colors) != len(expected) {
		t.Fatalf("Expected %d colors, got %d", len(expected), len(colors))
	}
	for i := range expected {
		if colors[i] != expected[i] {
			t.Errorf("colors[%d]: expected %v, got %v", i, expected[i], colors[i])
		}
	}
}

func TestLoadColorSourceDefault(t *testing.T) {
	colors, conv, err := LoadColorSource("")
	if err != nil {
		t.Fatalf("LoadColorSource failed: %v", err)
	}
	if len(colors) != 32768 {
		t.Errorf("Expected 32768 colors, got %d", len(colors))
	}
	if conv.Width != 256 || conv.Height != 128 {
		t.Errorf("Expected 256x128 grid, got %dx%d", conv.Width, conv.Height)
	}
}

func TestLoadColorSourceFromImage(t *testing.T) {
	img := imageutil.CreateGradientImage(5, 3)
	path := filepath.Join(t.TempDir(), "source.png")
	if err := imageutil.SavePNG(img, path); err != nil {
		t.Fatalf("Saving source image failed: %v", err)
	}

	colors, conv, err := LoadColorSource(path)
	if err != nil {
		t.Fatalf("LoadColorSource failed: %v", err)
	}
	if conv.Width != 5 || conv.Height != 3 {
		t.Errorf("Expected 5x3 grid, got %dx%d", conv.Width, conv.Height)
	}
	if len(colors) != 15 {
		t.Errorf("Expected 15 colors, got %d", len(colors))
	}
	// Row-major: the first color is the leftmost gradient value.
	if colors[0] != (RGB{0, 0, 0}) {
		t.Errorf("Expected {0 0 0} first, got %v", colors[0])
	}
	if colors[4] != (RGB{255, 255, 255}) {
		t.Errorf("Expected {255 255 255} at end of first row, got %v", colors[4])
	}
}

func TestLoadColorSourceMissingFile(t *testing.T) {
	if _, _, err := LoadColorSource("/nonexistent/source.png"); err == nil {
		t.Error("Expected error for missing source file")
	}
}
