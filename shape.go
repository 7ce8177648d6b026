package allrgb

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when an index or coordinate falls outside the
// valid range of a ShapeConverter. Range errors are signaled immediately at
// the conversion boundary, never silently clamped.
var ErrOutOfRange = errors.New("out of range")

// DefaultWidth and DefaultHeight are the grid dimensions used when no
// source image supplies them. 256x128 holds the 32768 colors of the
// 15-bit palette exactly.
const (
	DefaultWidth  = 256
	DefaultHeight = 128
)

// ShapeConverter maps between a linear index in [0, N) and (col, row)
// coordinates of a Width x Height grid. The two conversions are mutual
// inverses over the valid domain.
type ShapeConverter struct {
	Width  int
	Height int
	N      int
}

// NewShapeConverter creates a converter for the given grid dimensions.
func NewShapeConverter(width, height int) ShapeConverter {
	return ShapeConverter{
		Width:  width,
		Height: height,
		N:      width * height,
	}
}

// DefaultShapeConverter returns the 256x128 converter used for the
// synthetic 15-bit palette.
func DefaultShapeConverter() ShapeConverter {
	return NewShapeConverter(DefaultWidth, DefaultHeight)
}

// IndexToCoords converts an index in [0, N) to (col, row) coordinates.
func (s ShapeConverter) IndexToCoords(index int) (int, int, error) {
	if index < 0 || index >= s.N {
		return 0, 0, fmt.Errorf("index %d: %w", index, ErrOutOfRange)
	}
	row := index / s.Width
	col := index - row*s.Width
	return col, row, nil
}

// CoordsToIndex converts (col, row) coordinates to an index in [0, N).
func (s ShapeConverter) CoordsToIndex(col, row int) (int, error) {
	if col < 0 || col >= s.Width {
		return 0, fmt.Errorf("column %d: %w", col, ErrOutOfRange)
	}
	if row < 0 || row >= s.Height {
		return 0, fmt.Errorf("row %d: %w", row, ErrOutOfRange)
	}
	return row*s.Width + col, nil
}
