// Package puzzle implements the 3x3 sliding-tile puzzle: solvable shuffles,
// move validation and solved detection.
package puzzle

import "puzzleadventure/pkg/engine/grid"

// Size is the board width and height
const Size = 3

// Cells is the number of board slots
const Cells = Size * Size

// Empty is the tile value of the blank slot
const Empty = 0

// Board maps slot index to tile value. Index 0 is top-left, row-major.
type Board [Cells]int

var square = grid.NewSquare(Size)

// Solved returns the finished layout: every slot holds its own index,
// so the blank sits top-left.
func Solved() Board {
	var b Board
	for i := range b {
		b[i] = i
	}
	return b
}

// IsSolved reports whether every slot holds its own index
func (b Board) IsSolved() bool {
	for i, v := range b {
		if v != i {
			return false
		}
	}
	return true
}

// EmptyIndex returns the slot holding the blank, or -1
func (b Board) EmptyIndex() int {
	for i, v := range b {
		if v == Empty {
			return i
		}
	}
	return -1
}

// IsPermutation reports whether the board holds each of 0..Cells-1 once
func (b Board) IsPermutation() bool {
	var seen [Cells]bool
	for _, v := range b {
		if v < 0 || v >= Cells || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// Inversions counts pairs of non-blank tiles that are out of order
func (b Board) Inversions() int {
	inv := 0
	for i := 0; i < Cells; i++ {
		if b[i] == Empty {
			continue
		}
		for j := i + 1; j < Cells; j++ {
			if b[j] != Empty && b[i] > b[j] {
				inv++
			}
		}
	}
	return inv
}

// IsSolvable reports whether the solved layout can be reached by sliding.
// On an odd-width board that holds exactly when the inversion count is even.
func (b Board) IsSolvable() bool {
	return b.Inversions()%2 == 0
}
