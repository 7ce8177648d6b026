package imageutil

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybons/gogif"
	_ "golang.org/x/image/tiff" // Register TIFF decoder
)

// LoadImage loads an image from the specified path.
// Supports PNG, JPEG, GIF, and TIFF formats.
func LoadImage(path string) (*RGBAImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return RGBAImageFromImage(img), nil
}

// SaveImage saves an image to the specified path.
// Format is determined by file extension (png, jpg/jpeg, gif).
func SaveImage(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png":
		return png.Encode(f, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, img, &jpeg.Options{Quality: 95})
	case ".gif":
		return gif.Encode(f, img, nil)
	default:
		// Default to PNG
		return png.Encode(f, img)
	}
}

// SavePNG saves an image as PNG to the specified path.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	return png.Encode(f, img)
}

// gifPaletteSize is the color budget per animation frame. GIF frames
// carry at most 256 palette entries, so frames of wider multisets are
// median-cut quantized down to fit.
const gifPaletteSize = 256

// QuantizeFrame reduces a frame to a paletted image suitable for GIF
// encoding using median-cut quantization.
func QuantizeFrame(img *RGBAImage) *image.Paletted {
	bounds := img.Bounds()
	paletted := image.NewPaletted(bounds, nil)
	quantizer := gogif.MedianCutQuantizer{NumColor: gifPaletteSize}
	quantizer.Quantize(paletted, bounds, img.RGBA, image.Point{})
	return paletted
}

// SaveAnimatedGIF assembles the frames into an animated GIF with the
// given per-frame delay in milliseconds and loop count (0 loops
// forever).
func SaveAnimatedGIF(path string, frames []*RGBAImage, delayMS, loopCount int) error {
	if len(frames) == 0 {
		return fmt.Errorf("no frames to encode")
	}

	anim := gif.GIF{LoopCount: loopCount}
	delay := delayMS / 10 // image/gif counts in 100ths of a second
	for _, frame := range frames {
		anim.Image = append(anim.Image, QuantizeFrame(frame))
		anim.Delay = append(anim.Delay, delay)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if err := gif.EncodeAll(f, &anim); err != nil {
		return fmt.Errorf("failed to encode gif: %w", err)
	}
	return nil
}
