package allrgb

import (
	"fmt"

	"github.com/wbrown/allrgb/imageutil"
)

// PointGrid owns every Point of a Width x Height grid along with the
// ShapeConverter that sized it. A grid is built once per generation
// run, colored exactly once by a placement algorithm, rasterized, and
// discarded.
type PointGrid struct {
	Conv   ShapeConverter
	points []Point
}

// NewPointGrid builds a grid of empty points, precomputing every
// point's neighbor list for the given topology.
func NewPointGrid(conv ShapeConverter, nbrhood Neighborhood) *PointGrid {
	grid := &PointGrid{
		Conv:   conv,
		points: make([]Point, conv.N),
	}
	for i := 0; i < conv.N; i++ {
		x, y, err := conv.IndexToCoords(i)
		if err != nil {
			panic(fmt.Sprintf("allrgb: grid index out of its own range: %v", err))
		}
		grid.points[i] = Point{
			Index: i,
			X:     x,
			Y:     y,
			Nbrs:  computeNbrs(i, x, y, conv, nbrhood),
		}
	}
	return grid
}

// Point returns the point at the given index.
func (g *PointGrid) Point(index int) *Point {
	return &g.points[index]
}

// N returns the number of points in the grid.
func (g *PointGrid) N() int {
	return g.Conv.N
}

// NeighborMinDistance returns the minimum color distance from c to any
// already-colored neighbor of the point at index. Callers must
// guarantee at least one neighbor is colored; querying a point with no
// colored neighbors is a precondition violation and panics.
func (g *PointGrid) NeighborMinDistance(index int, c RGB) float64 {
	best := -1.0
	for _, n := range g.points[index].Nbrs {
		nc, ok := g.points[n].Color()
		if !ok {
			continue
		}
		d := c.Distance(nc)
		if best < 0 || d < best {
			best = d
		}
	}
	if best < 0 {
		panic(fmt.Sprintf("allrgb: point %d has no colored neighbors", index))
	}
	return best
}

// Rasterize materializes the grid into a pixel buffer at its native
// size and resizes it to (width, height), defaulting to the native
// size when a dimension is zero. Resampling is always nearest-neighbor:
// a smoothing filter would blend colors and obscure the placement
// structure the algorithms produce.
func (g *PointGrid) Rasterize(width, height int) *imageutil.RGBAImage {
	img := imageutil.NewRGBAImage(g.Conv.Width, g.Conv.Height)
	for i := range g.points {
		p := &g.points[i]
		c := p.RasterColor()
		img.SetRGB(p.X, p.Y, imageutil.RGB{R: c.R, G: c.G, B: c.B})
	}
	if width <= 0 {
		width = g.Conv.Width
	}
	if height <= 0 {
		height = g.Conv.Height
	}
	if width == g.Conv.Width && height == g.Conv.Height {
		return img
	}
	return imageutil.Resize(img, width, height, imageutil.InterpolationNearest)
}
