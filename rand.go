package allrgb

import "math/rand/v2"

// Rand is the random source consumed by the placement algorithms. It is
// passed explicitly into every entry point so a caller can reproduce a
// run by supplying the same seeded source; passing nil creates a fresh,
// non-reproducible source.
type Rand interface {
	// IntN returns a uniformly random int in [0, n). Panics if n <= 0.
	IntN(n int) int
	// Perm returns a uniformly random permutation of [0, n).
	Perm(n int) []int
}

// randSource adapts math/rand/v2 to the Rand interface.
type randSource struct {
	r *rand.Rand
}

// NewRand creates a deterministic Rand seeded with the given value.
func NewRand(seed uint64) Rand {
	return &randSource{r: rand.New(rand.NewPCG(seed, 0))}
}

// newDefaultRand returns a fresh, non-reproducible source.
func newDefaultRand() Rand {
	return &randSource{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

func (s *randSource) IntN(n int) int { return s.r.IntN(n) }

func (s *randSource) Perm(n int) []int { return s.r.Perm(n) }

// orDefault substitutes a fresh source when the caller supplied none.
func orDefault(rnd Rand) Rand {
	if rnd == nil {
		return newDefaultRand()
	}
	return rnd
}
