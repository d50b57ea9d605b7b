// Package grid provides row-major index arithmetic for small square boards.
package grid

import (
	"github.com/zyedidia/generic/mapset"
)

// Square is an N×N board addressed by row-major cell index
type Square struct {
	size int
}

// NewSquare creates a square board description with the given side length
func NewSquare(size int) Square {
	if size < 1 {
		size = 1
	}
	return Square{size: size}
}

// Size returns the side length of the board
func (s Square) Size() int {
	return s.size
}

// Cells returns the number of cells on the board
func (s Square) Cells() int {
	return s.size * s.size
}

// IsValidIndex checks if a cell index is on the board
func (s Square) IsValidIndex(i int) bool {
	return i >= 0 && i < s.Cells()
}

// IsValidPosition checks if a row/col position is within board bounds
func (s Square) IsValidPosition(row, col int) bool {
	return row >= 0 && row < s.size && col >= 0 && col < s.size
}

// Position returns the row and column of a cell index
func (s Square) Position(i int) (row, col int) {
	return i / s.size, i % s.size
}

// Index returns the cell index of a row/col position, or -1 if out of bounds
func (s Square) Index(row, col int) int {
	if !s.IsValidPosition(row, col) {
		return -1
	}
	return row*s.size + col
}

// Neighbor returns the index of the cell next to i in direction d
func (s Square) Neighbor(i int, d Direction) (int, bool) {
	if !s.IsValidIndex(i) || !d.IsValid() {
		return -1, false
	}
	row, col := s.Position(i)
	rowDelta, colDelta := d.Delta()
	n := s.Index(row+rowDelta, col+colDelta)
	return n, n >= 0
}

// Neighbors returns the set of cells 4-adjacent to i
func (s Square) Neighbors(i int) mapset.Set[int] {
	set := mapset.New[int]()
	for _, d := range AllDirections() {
		if n, ok := s.Neighbor(i, d); ok {
			set.Put(n)
		}
	}
	return set
}

// Distance returns the Manhattan distance between two cells
func (s Square) Distance(a, b int) int {
	rowA, colA := s.Position(a)
	rowB, colB := s.Position(b)
	return abs(rowA-rowB) + abs(colA-colB)
}

// Adjacent reports whether two valid cells share an edge
func (s Square) Adjacent(a, b int) bool {
	if !s.IsValidIndex(a) || !s.IsValidIndex(b) {
		return false
	}
	return s.Distance(a, b) == 1
}

// abs returns the absolute value of an integer
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
