package allrgb

import "fmt"

// indexPool tracks the unfilled point indices with O(1) removal and
// uniform random draws. Removal swaps with the last element, so the
// pool's order is arbitrary but fully determined by the removal
// sequence, keeping seeded runs reproducible.
type indexPool struct {
	items []int
	pos   []int
}

func newIndexPool(n int) *indexPool {
	p := &indexPool{
		items: make([]int, n),
		pos:   make([]int, n),
	}
	for i := 0; i < n; i++ {
		p.items[i] = i
		p.pos[i] = i
	}
	return p
}

func (p *indexPool) len() int { return len(p.items) }

func (p *indexPool) remove(index int) {
	at := p.pos[index]
	last := len(p.items) - 1
	moved := p.items[last]
	p.items[at] = moved
	p.pos[moved] = at
	p.items = p.items[:last]
	p.pos[index] = -1
}

func (p *indexPool) draw(rnd Rand) int {
	return p.items[rnd.IntN(len(p.items))]
}

// RandomWalkFill colors every point of the grid by a series of
// self-avoiding random walks. The walk assigns colors in ascending
// distance from the current walk's seed color, stepping to a uniformly
// random unfilled neighbor each time. At a dead end it re-seeds: a new
// random unfilled point, a new random color, and a re-sort of the
// remainder against that color. Intended for grids built with
// NeighborhoodCross.
//
// seedPoint selects the first walk's start; a negative value draws one
// at random. The color list must have exactly one color per grid point.
func RandomWalkFill(grid *PointGrid, colors []RGB, seedPoint int, rnd Rand) error {
	rnd = orDefault(rnd)
	n := grid.N()
	if n <= 0 {
		return fmt.Errorf("random walk fill: empty grid")
	}
	if len(colors) != n {
		return fmt.Errorf("random walk fill: %d colors for %d grid points", len(colors), n)
	}
	if seedPoint >= n {
		return fmt.Errorf("random walk fill: seed point %d: %w", seedPoint, ErrOutOfRange)
	}

	unfilled := newIndexPool(n)
	filled := make(map[int]bool, n)

	p0 := seedPoint
	if p0 < 0 {
		p0 = unfilled.draw(rnd)
	}

	// Pick a random seed color and re-sort; the stable sort leaves the
	// seed color (or its first duplicate) at the front.
	list := append([]RGB{}, colors...)
	c0 := list[rnd.IntN(len(list))]
	list = SortByDistance(list, c0)
	if list[0] != c0 {
		panic("allrgb: seed color not first after distance sort")
	}

	assign := func(index int, c RGB) {
		grid.Point(index).setColor(c)
		filled[index] = true
		unfilled.remove(index)
	}
	assign(p0, list[0])
	list = list[1:]

	for len(list) > 0 {
		var choices []int
		for _, nb := range grid.Point(p0).Nbrs {
			if !filled[nb] {
				choices = append(choices, nb)
			}
		}
		if len(choices) > 0 {
			pnext := choices[rnd.IntN(len(choices))]
			assign(pnext, list[0])
			list = list[1:]
			p0 = pnext
		} else {
			// Dead end: start a fresh walk from a random unfilled point
			// with a fresh random color.
			p0 = unfilled.draw(rnd)
			c0 = list[rnd.IntN(len(list))]
			list = SortByDistance(list, c0)
			assign(p0, list[0])
			list = list[1:]
		}

		if unfilled.len() != len(list) {
			panic(fmt.Sprintf("allrgb: random walk has %d unfilled points but %d colors left",
				unfilled.len(), len(list)))
		}
	}

	for i := 0; i < n; i++ {
		if _, ok := grid.Point(i).Color(); !ok {
			panic(fmt.Sprintf("allrgb: random walk terminated with point %d uncolored", i))
		}
	}
	return nil
}
