package allrgb

// OrderedSet is a set of point indices that preserves insertion order.
// The greedy flood fill scans its boundary in roughly temporal order of
// insertion; a plain map would lose that order and with it the
// deterministic tie-breaking between boundary points at equal distance.
type OrderedSet struct {
	keys    []int
	present map[int]struct{}
}

// NewOrderedSet creates an empty OrderedSet.
func NewOrderedSet() *OrderedSet {
	return &OrderedSet{
		keys:    make([]int, 0),
		present: make(map[int]struct{}),
	}
}

// Add appends the key if it is not already present.
func (s *OrderedSet) Add(key int) {
	if _, exists := s.present[key]; !exists {
		s.keys = append(s.keys, key)
		s.present[key] = struct{}{}
	}
}

// Has reports whether the key is in the set.
func (s *OrderedSet) Has(key int) bool {
	_, exists := s.present[key]
	return exists
}

// Delete removes the key, keeping the relative order of the remaining
// keys intact.
func (s *OrderedSet) Delete(key int) {
	if _, exists := s.present[key]; !exists {
		return
	}
	delete(s.present, key)
	for i, k := range s.keys {
		if k == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
}

// Keys returns a copy of the keys in insertion order.
func (s *OrderedSet) Keys() []int {
	return append([]int{}, s.keys...)
}

// Iterate calls f for each key in insertion order until f returns false.
func (s *OrderedSet) Iterate(f func(key int) bool) {
	for _, k := range s.keys {
		if !f(k) {
			return
		}
	}
}

// Len returns the number of keys in the set.
func (s *OrderedSet) Len() int {
	return len(s.keys)
}
