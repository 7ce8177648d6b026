package allrgb

import (
	"math"
	"sort"
)

// RGB represents a color in the RGB color space with 8-bit channels,
// where each channel ranges from 0 to 255. A color multiset may contain
// duplicate RGB values; duplicates are distinct entries with zero
// distance to one another.
type RGB struct {
	R, G, B uint8
}

// ToUint32 converts an RGB color to a 32-bit unsigned integer.
func (c RGB) ToUint32() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// RGBFromUint32 converts a 32-bit unsigned integer to an RGB color.
func RGBFromUint32(color uint32) RGB {
	return RGB{
		R: uint8(color >> 16),
		G: uint8(color >> 8),
		B: uint8(color),
	}
}

// Distance calculates the Euclidean distance between two RGB colors in
// the RGB color space. It is symmetric and zero iff the colors are
// component-wise equal.
func (c RGB) Distance(other RGB) float64 {
	dr := int(c.R) - int(other.R)
	dg := int(c.G) - int(other.G)
	db := int(c.B) - int(other.B)
	return math.Sqrt(float64(dr*dr + dg*dg + db*db))
}

// SortByDistance returns a new slice holding the colors ordered by
// ascending distance to ref. The sort is stable: colors at equal
// distance keep their original relative order, which makes placement
// reproducible for multisets with duplicates.
func SortByDistance(colors []RGB, ref RGB) []RGB {
	distances := make([]float64, len(colors))
	for i, c := range colors {
		distances[i] = c.Distance(ref)
	}
	order := make([]int, len(colors))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return distances[order[i]] < distances[order[j]]
	})
	sorted := make([]RGB, len(colors))
	for i, idx := range order {
		sorted[i] = colors[idx]
	}
	return sorted
}
