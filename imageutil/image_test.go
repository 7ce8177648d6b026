package imageutil

import (
	"image/color"
	"testing"
)

func TestNewRGBAImage(t *testing.T) {
	img := NewRGBAImage(10, 20)
	if img.Width() != 10 {
		t.Errorf("Expected width 10, got %d", img.Width())
	}
	if img.Height() != 20 {
		t.Errorf("Expected height 20, got %d", img.Height())
	}
}

func TestGetSetRGB(t *testing.T) {
	img := NewRGBAImage(4, 4)
	c := RGB{R: 12, G: 34, B: 56}
	img.SetRGB(2, 3, c)
	if got := img.GetRGB(2, 3); got != c {
		t.Errorf("Expected %v, got %v", c, got)
	}
	if got := img.GetRGB(0, 0); got != (RGB{}) {
		t.Errorf("Expected zero value at untouched pixel, got %v", got)
	}
}

func TestRGBColorConversion(t *testing.T) {
	c := RGB{R: 100, G: 150, B: 200}
	rgba := c.ToColor()
	if rgba.A != 255 {
		t.Errorf("Expected alpha 255, got %d", rgba.A)
	}
	if back := RGBFromColor(rgba); back != c {
		t.Errorf("Round trip of %v gave %v", c, back)
	}
	if got := RGBFromColor(color.White); got != (RGB{255, 255, 255}) {
		t.Errorf("Expected white, got %v", got)
	}
}

func TestClone(t *testing.T) {
	img := CreateGradientImage(8, 8)
	clone := img.Clone()
	if mse := CalculateMSE(img, clone); mse != 0 {
		t.Errorf("Expected identical clone, MSE=%f", mse)
	}

	clone.SetRGB(0, 0, RGB{R: 255})
	if img.GetRGB(0, 0) == (RGB{R: 255}) {
		t.Error("Mutating the clone changed the original")
	}
}

func TestCalculateMSE(t *testing.T) {
	a := CreateSolidImage(4, 4, RGB{100, 100, 100})
	b := CreateSolidImage(4, 4, RGB{110, 100, 100})
	// One channel off by 10 on every pixel: 100/3 per pixel-channel.
	expected := 100.0 / 3.0
	if mse := CalculateMSE(a, b); mse < expected-0.01 || mse > expected+0.01 {
		t.Errorf("Expected MSE %f, got %f", expected, mse)
	}

	c := CreateSolidImage(2, 2, RGB{})
	if mse := CalculateMSE(a, c); mse < 1e17 {
		t.Errorf("Expected huge MSE for size mismatch, got %f", mse)
	}
}

func TestResizeNearestNeighbor(t *testing.T) {
	img := NewRGBAImage(2, 2)
	img.SetRGB(0, 0, RGB{R: 255})
	img.SetRGB(1, 0, RGB{G: 255})
	img.SetRGB(0, 1, RGB{B: 255})
	img.SetRGB(1, 1, RGB{R: 255, G: 255})

	resized := Resize(img, 4, 4, InterpolationNearest)
	if resized.Width() != 4 || resized.Height() != 4 {
		t.Fatalf("Expected 4x4, got %dx%d", resized.Width(), resized.Height())
	}
	// Each source pixel becomes a 2x2 block with no blending.
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := img.GetRGB(x/2, y/2)
			if got := resized.GetRGB(x, y); got != want {
				t.Errorf("Pixel (%d, %d): expected %v, got %v", x, y, want, got)
			}
		}
	}
}

func TestResizeDownscale(t *testing.T) {
	img := CreateSolidImage(8, 8, RGB{40, 80, 120})
	resized := Resize(img, 2, 2, InterpolationNearest)
	if resized.Width() != 2 || resized.Height() != 2 {
		t.Fatalf("Expected 2x2, got %dx%d", resized.Width(), resized.Height())
	}
	if got := resized.GetRGB(1, 1); got != (RGB{40, 80, 120}) {
		t.Errorf("Expected solid color preserved, got %v", got)
	}
}
