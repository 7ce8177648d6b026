package allrgb

import (
	"fmt"

	"github.com/wbrown/allrgb/imageutil"
)

// snapshotInterval is the number of walk steps between animation
// frames. A final frame is always emitted after the walk regardless of
// interval alignment.
const snapshotInterval = 100

// frameDelayMS is the per-frame display duration of the animated GIF.
const frameDelayMS = 100

// WalkAnimationOptions configures GenerateWalkAnimation.
type WalkAnimationOptions struct {
	// Shuffle picks a random starting color and re-sorts the list by
	// distance to it before walking; otherwise the list is walked as
	// given.
	Shuffle bool
	// Size is the side length of the square grid the walker roams, in
	// pixels.
	Size int
	// Scale multiplies Size for the emitted frames, so Scale 2 with the
	// default Size produces 256x256 output.
	Scale int
	// MaxSteps caps the walk length; zero walks until the colors run
	// out.
	MaxSteps int
	// Rand is the random source; nil creates a fresh one.
	Rand Rand
}

// DefaultWalkAnimationOptions returns the options for a 128x128 walk at
// native scale through the whole color list.
func DefaultWalkAnimationOptions() WalkAnimationOptions {
	return WalkAnimationOptions{
		Shuffle: true,
		Size:    128,
		Scale:   1,
	}
}

// GenerateWalkAnimation walks a bug across a square grid, dropping one
// color from the list on each point it visits. Unlike RandomWalkFill
// the bug may cross its own path: a revisited point is overwritten and
// the last writer wins, which is the intended visual effect, so the
// walk has no dead ends and never re-seeds. Every 100th step is
// snapshotted and the frames are assembled into an animated GIF at
// gifPath (skipped when empty). Returns the final frame.
func GenerateWalkAnimation(colors []RGB, gifPath string, opts WalkAnimationOptions) (*imageutil.RGBAImage, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("walk animation: empty color list")
	}
	if opts.Size <= 0 {
		return nil, fmt.Errorf("walk animation: size %d: %w", opts.Size, ErrOutOfRange)
	}
	rnd := orDefault(opts.Rand)

	grid := NewPointGrid(NewShapeConverter(opts.Size, opts.Size), NeighborhoodCross)
	p0 := rnd.IntN(grid.N())

	list := append([]RGB{}, colors...)
	if opts.Shuffle {
		c0 := list[rnd.IntN(len(list))]
		list = SortByDistance(list, c0)
	}

	maxSteps := opts.MaxSteps
	if maxSteps <= 0 {
		maxSteps = len(list)
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	frameSize := scale * opts.Size

	var frames []*imageutil.RGBAImage
	for step := 0; step < maxSteps && len(list) > 0; step++ {
		grid.Point(p0).forceColor(list[0])
		list = list[1:]
		if step%snapshotInterval == 0 {
			frames = append(frames, grid.Rasterize(frameSize, frameSize))
		}
		nbrs := grid.Point(p0).Nbrs
		p0 = nbrs[rnd.IntN(len(nbrs))]
	}
	frames = append(frames, grid.Rasterize(frameSize, frameSize))

	if gifPath != "" {
		if err := imageutil.SaveAnimatedGIF(gifPath, frames, frameDelayMS, 0); err != nil {
			return nil, fmt.Errorf("walk animation: %w", err)
		}
	}
	return frames[len(frames)-1], nil
}
