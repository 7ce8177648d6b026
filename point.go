package allrgb

import "fmt"

// Neighborhood selects which cells of the 3x3 window around a point
// count as its neighbors.
type Neighborhood int

const (
	// NeighborhoodAll includes every cell of the clipped 3x3 window
	// except the point itself: up to 8 neighbors, fewer at edges and
	// corners.
	NeighborhoodAll Neighborhood = iota
	// NeighborhoodCross includes only cells sharing the point's row or
	// column within the clipped window: up to 4 neighbors.
	NeighborhoodCross
)

func (n Neighborhood) String() string {
	switch n {
	case NeighborhoodAll:
		return "all"
	case NeighborhoodCross:
		return "cross"
	default:
		return fmt.Sprintf("Neighborhood(%d)", int(n))
	}
}

// Point is one grid cell: its linear index, coordinates, and the
// neighbor indices computed once at grid construction. The color slot
// starts empty and is assigned during placement.
type Point struct {
	Index int
	X, Y  int
	Nbrs  []int

	color   RGB
	colored bool
}

// Color returns the assigned color and whether one has been assigned.
func (p *Point) Color() (RGB, bool) {
	return p.color, p.colored
}

// RasterColor returns the assigned color, or black for an uncolored
// point. A completed grid has no uncolored points; black only shows up
// in animation snapshots of partially walked grids.
func (p *Point) RasterColor() RGB {
	if !p.colored {
		return RGB{}
	}
	return p.color
}

// setColor assigns the point's color. Assigning a colored point is a
// logic defect in the caller, not a runtime condition, so it panics.
// The self-crossing walk overwrites on purpose and uses forceColor.
func (p *Point) setColor(c RGB) {
	if p.colored {
		panic(fmt.Sprintf("allrgb: point %d colored twice", p.Index))
	}
	p.color = c
	p.colored = true
}

// forceColor assigns the point's color, overwriting any previous
// assignment. Last writer wins.
func (p *Point) forceColor(c RGB) {
	p.color = c
	p.colored = true
}

// computeNbrs finds the point's neighbors as indices within the clipped
// 3x3 window. The iteration order is deterministic and load-bearing:
// it fixes tie-breaking in the greedy fill and the indexing of random
// neighbor choices in the walks.
func computeNbrs(index, x, y int, conv ShapeConverter, nbrhood Neighborhood) []int {
	x0, x1 := max(x-1, 0), min(x+1, conv.Width-1)
	y0, y1 := max(y-1, 0), min(y+1, conv.Height-1)

	var nbrs []int
	switch nbrhood {
	case NeighborhoodAll:
		// Columns outer, rows inner.
		for xi := x0; xi <= x1; xi++ {
			for yi := y0; yi <= y1; yi++ {
				pix, err := conv.CoordsToIndex(xi, yi)
				if err != nil {
					panic(fmt.Sprintf("allrgb: neighbor of in-range point out of range: %v", err))
				}
				if pix != index {
					nbrs = append(nbrs, pix)
				}
			}
		}
	case NeighborhoodCross:
		// Row matches first, then column matches.
		for xi := x0; xi <= x1; xi++ {
			pix, err := conv.CoordsToIndex(xi, y)
			if err != nil {
				panic(fmt.Sprintf("allrgb: neighbor of in-range point out of range: %v", err))
			}
			if pix != index {
				nbrs = append(nbrs, pix)
			}
		}
		for yi := y0; yi <= y1; yi++ {
			pix, err := conv.CoordsToIndex(x, yi)
			if err != nil {
				panic(fmt.Sprintf("allrgb: neighbor of in-range point out of range: %v", err))
			}
			if pix != index {
				nbrs = append(nbrs, pix)
			}
		}
	default:
		panic(fmt.Sprintf("allrgb: unrecognized neighborhood %d", int(nbrhood)))
	}
	return nbrs
}
