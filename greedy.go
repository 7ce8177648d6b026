package allrgb

import (
	"fmt"
	"math"
)

// GreedyFill colors every point of the grid with the given color
// multiset by greedy flood fill. A seed point takes a random color, its
// neighbors take the colors closest to it, and every remaining color is
// placed on the boundary point whose colored neighbors it most closely
// matches. Intended for grids built with NeighborhoodAll.
//
// seedPoint selects the starting index; a negative value draws one
// uniformly at random. The color list must have exactly one color per
// grid point. Invariant violations during the fill (no boundary
// candidate, count mismatch, uncolored points at termination) panic:
// they indicate a topology or seed defect, not a runtime condition.
func GreedyFill(grid *PointGrid, colors []RGB, seedPoint int, rnd Rand) error {
	rnd = orDefault(rnd)
	n := grid.N()
	if n <= 0 {
		return fmt.Errorf("greedy fill: empty grid")
	}
	if len(colors) != n {
		return fmt.Errorf("greedy fill: %d colors for %d grid points", len(colors), n)
	}
	if seedPoint >= n {
		return fmt.Errorf("greedy fill: seed point %d: %w", seedPoint, ErrOutOfRange)
	}
	p0 := seedPoint
	if p0 < 0 {
		p0 = rnd.IntN(n)
	}

	// Shuffle the colors and take the first as the seed color.
	list := make([]RGB, len(colors))
	for i, j := range rnd.Perm(len(colors)) {
		list[i] = colors[j]
	}
	c0 := list[0]
	list = list[1:]
	grid.Point(p0).setColor(c0)

	// Re-sort the remaining colors by distance to the seed color. The
	// list is never re-sorted after this point: the main loop consumes
	// the order established here even as the fill moves away from c0.
	// Deliberate - re-sorting per step would silently change the
	// output distribution.
	list = SortByDistance(list, c0)

	// Bootstrap: hand the seed's neighbors the closest colors outright,
	// in neighbor order, with no distance comparison.
	seedNbrs := grid.Point(p0).Nbrs
	for _, b := range seedNbrs {
		grid.Point(b).setColor(list[0])
		list = list[1:]
	}

	filled := make(map[int]bool, n)
	filled[p0] = true
	for _, b := range seedNbrs {
		filled[b] = true
	}

	// Initial boundary: unfilled neighbors of everything filled so far,
	// seed first, then its neighbors in neighbor order.
	boundary := NewOrderedSet()
	for _, f := range append([]int{p0}, seedNbrs...) {
		for _, nb := range grid.Point(f).Nbrs {
			if !filled[nb] {
				boundary.Add(nb)
			}
		}
	}

	for len(list) > 0 {
		color := list[0]
		list = list[1:]

		// Scan the boundary in insertion order; the first point at the
		// strict minimum wins ties.
		best := -1
		bestDist := math.Inf(1)
		boundary.Iterate(func(b int) bool {
			d := grid.NeighborMinDistance(b, color)
			if d < bestDist {
				bestDist = d
				best = b
			}
			return true
		})
		if best < 0 {
			panic(fmt.Sprintf("allrgb: greedy fill has %d colors left but no boundary candidates", len(list)+1))
		}

		grid.Point(best).setColor(color)
		filled[best] = true
		boundary.Delete(best)
		for _, nb := range grid.Point(best).Nbrs {
			if !filled[nb] {
				boundary.Add(nb)
			}
		}

		if len(filled) != n-len(list) {
			panic(fmt.Sprintf("allrgb: greedy fill filled %d points with %d colors left of %d",
				len(filled), len(list), n))
		}
	}

	for i := 0; i < n; i++ {
		if _, ok := grid.Point(i).Color(); !ok {
			panic(fmt.Sprintf("allrgb: greedy fill terminated with point %d uncolored", i))
		}
	}
	return nil
}
