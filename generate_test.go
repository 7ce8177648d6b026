package allrgb

import (
	"path/filepath"
	"testing"

	"github.com/wbrown/allrgb/imageutil"
)

// writeSourceImage saves a 4x4 PNG with 16 distinct colors and returns
// its path and the colors in row-major order.
func writeSourceImage(t *testing.T) (string, []RGB) {
	t.Helper()
	colors := testColors(16)
	img := imageutil.NewRGBAImage(4, 4)
	for i, c := range colors {
		img.SetRGB(i%4, i/4, imageutil.RGB{R: c.R, G: c.G, B: c.B})
	}
	path := filepath.Join(t.TempDir(), "source.png")
	if err := imageutil.SavePNG(img, path); err != nil {
		t.Fatalf("Saving source image failed: %v", err)
	}
	return path, colors
}

func imageColorCounts(img *imageutil.RGBAImage) map[RGB]int {
	counts := make(map[RGB]int)
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			c := img.GetRGB(x, y)
			counts[RGB{R: c.R, G: c.G, B: c.B}]++
		}
	}
	return counts
}

func checkImageMultiset(t *testing.T, img *imageutil.RGBAImage, colors []RGB) {
	t.Helper()
	want := colorCounts(colors)
	got := imageColorCounts(img)
	if len(got) != len(want) {
		t.Fatalf("Expected %d distinct colors, got %d", len(want), len(got))
	}
	for c, n := range want {
		if got[c] != n {
			t.Errorf("Color %v: expected count %d, got %d", c, n, got[c])
		}
	}
}

func TestGenerateGreedyFromSource(t *testing.T) {
	path, colors := writeSourceImage(t)
	opts := DefaultOptions()
	opts.SourcePath = path
	opts.Rand = NewRand(31)

	img, err := GenerateGreedy(opts)
	if err != nil {
		t.Fatalf("GenerateGreedy failed: %v", err)
	}
	if img.Width() != 4 || img.Height() != 4 {
		t.Fatalf("Expected 4x4 output, got %dx%d", img.Width(), img.Height())
	}
	checkImageMultiset(t, img, colors)
}

func TestGenerateRandomWalkFromSource(t *testing.T) {
	path, colors := writeSourceImage(t)
	opts := DefaultOptions()
	opts.SourcePath = path
	opts.Rand = NewRand(31)

	img, err := GenerateRandomWalk(opts)
	if err != nil {
		t.Fatalf("GenerateRandomWalk failed: %v", err)
	}
	if img.Width() != 4 || img.Height() != 4 {
		t.Fatalf("Expected 4x4 output, got %dx%d", img.Width(), img.Height())
	}
	checkImageMultiset(t, img, colors)
}

func TestGenerateScaledOutput(t *testing.T) {
	path, _ := writeSourceImage(t)
	opts := DefaultOptions()
	opts.SourcePath = path
	opts.Width = 8
	opts.Height = 8
	opts.Rand = NewRand(31)

	img, err := GenerateGreedy(opts)
	if err != nil {
		t.Fatalf("GenerateGreedy failed: %v", err)
	}
	if img.Width() != 8 || img.Height() != 8 {
		t.Errorf("Expected 8x8 output, got %dx%d", img.Width(), img.Height())
	}
}

func TestGenerateMissingSource(t *testing.T) {
	opts := DefaultOptions()
	opts.SourcePath = "/nonexistent/source.png"
	if _, err := GenerateGreedy(opts); err == nil {
		t.Error("Expected error for missing source")
	}
	if _, err := GenerateRandomWalk(opts); err == nil {
		t.Error("Expected error for missing source")
	}
}

func TestNewRandReproducible(t *testing.T) {
	a, b := NewRand(12345), NewRand(12345)
	for i := 0; i < 100; i++ {
		if a.IntN(1000) != b.IntN(1000) {
			t.Fatal("Same seed produced different IntN sequences")
		}
	}
	pa, pb := a.Perm(50), b.Perm(50)
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatal("Same seed produced different permutations")
		}
	}
}
