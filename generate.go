// Package allrgb generates images in which every color from a fixed
// multiset appears exactly once, placed so that visually similar colors
// cluster spatially. The multiset is either the synthetic 15-bit
// palette (32768 colors on a 256x128 grid) or one color per pixel of a
// source image. Placement is greedy flood fill or a self-avoiding
// random walk; a third, self-crossing walk produces animations instead
// of full coverings.
package allrgb

import (
	"fmt"

	"github.com/wbrown/allrgb/imageutil"
)

// Options configures GenerateGreedy and GenerateRandomWalk.
type Options struct {
	// SourcePath names an image whose pixels supply the color multiset
	// and grid dimensions. Empty selects the 15-bit palette on the
	// default 256x128 grid.
	SourcePath string
	// SeedPoint is the flattened index of the starting point, 0 being
	// the top-left corner. Negative draws one at random.
	SeedPoint int
	// Width and Height size the output image; zero keeps the grid's
	// native dimension. Upscaling is nearest-neighbor so the placed
	// colors survive verbatim.
	Width  int
	Height int
	// Rand is the random source; nil creates a fresh, non-reproducible
	// one.
	Rand Rand
}

// DefaultOptions returns Options with a random seed point and native
// output size.
func DefaultOptions() Options {
	return Options{SeedPoint: -1}
}

// GenerateGreedy builds the color multiset, places it by greedy flood
// fill over the ALL neighborhood, and rasterizes the result.
func GenerateGreedy(opts Options) (*imageutil.RGBAImage, error) {
	colors, conv, err := LoadColorSource(opts.SourcePath)
	if err != nil {
		return nil, fmt.Errorf("generate greedy: %w", err)
	}
	grid := NewPointGrid(conv, NeighborhoodAll)
	if err := GreedyFill(grid, colors, opts.SeedPoint, opts.Rand); err != nil {
		return nil, fmt.Errorf("generate greedy: %w", err)
	}
	return grid.Rasterize(opts.Width, opts.Height), nil
}

// GenerateRandomWalk builds the color multiset, places it by
// self-avoiding random walks over the CROSS neighborhood, and
// rasterizes the result.
func GenerateRandomWalk(opts Options) (*imageutil.RGBAImage, error) {
	colors, conv, err := LoadColorSource(opts.SourcePath)
	if err != nil {
		return nil, fmt.Errorf("generate random walk: %w", err)
	}
	grid := NewPointGrid(conv, NeighborhoodCross)
	if err := RandomWalkFill(grid, colors, opts.SeedPoint, opts.Rand); err != nil {
		return nil, fmt.Errorf("generate random walk: %w", err)
	}
	return grid.Rasterize(opts.Width, opts.Height), nil
}
