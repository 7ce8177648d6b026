package allrgb

import (
	"fmt"

	"github.com/wbrown/allrgb/imageutil"
)

// FifteenBitPalette returns the synthetic palette of all 32768 15-bit
// colors: every combination of {0, 8, ..., 248} per channel, red
// outermost. Paired with the default 256x128 grid it fills the image
// exactly.
func FifteenBitPalette() []RGB {
	colors := make([]RGB, 0, 32*32*32)
	for r := 0; r < 32; r++ {
		for g := 0; g < 32; g++ {
			for b := 0; b < 32; b++ {
				colors = append(colors, RGB{
					R: uint8(r * 8),
					G: uint8(g * 8),
					B: uint8(b * 8),
				})
			}
		}
	}
	return colors
}

// PaletteFromImage samples one color per pixel of the image, row by
// row. Duplicate colors are preserved, so the generated image keeps the
// color distribution of the source.
func PaletteFromImage(img *imageutil.RGBAImage) []RGB {
	w, h := img.Width(), img.Height()
	colors := make([]RGB, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := img.GetRGB(x, y)
			colors = append(colors, RGB{R: c.R, G: c.G, B: c.B})
		}
	}
	return colors
}

// LoadColorSource resolves a color source path into the color multiset
// and the grid shape it implies. An empty path selects the 15-bit
// palette with the default 256x128 grid; otherwise the colors are
// sampled from the image and the grid matches the image's dimensions.
func LoadColorSource(path string) ([]RGB, ShapeConverter, error) {
	if path == "" {
		return FifteenBitPalette(), DefaultShapeConverter(), nil
	}
	img, err := imageutil.LoadImage(path)
	if err != nil {
		return nil, ShapeConverter{}, fmt.Errorf("loading color source: %w", err)
	}
	conv := NewShapeConverter(img.Width(), img.Height())
	colors := PaletteFromImage(img)
	if len(colors) != conv.N {
		return nil, ShapeConverter{}, fmt.Errorf(
			"color source %s: %d colors for %d grid points", path, len(colors), conv.N)
	}
	return colors, conv, nil
}
