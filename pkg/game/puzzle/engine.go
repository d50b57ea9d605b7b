package puzzle

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"puzzleadventure/pkg/engine/grid"
)

// MaxShuffleAttempts bounds the rejection sampler in NewGame
const MaxShuffleAttempts = 10000

// ErrShuffleExhausted is returned when no playable shuffle was found
var ErrShuffleExhausted = errors.New("puzzle: no solvable shuffle found")

// ErrInvalidBoard is returned when loading a layout that cannot be played
var ErrInvalidBoard = errors.New("puzzle: invalid board")

// MoveOutcome is the result of a move attempt
type MoveOutcome int

const (
	// Moved means the tile slid into the blank
	Moved MoveOutcome = iota
	// Invalid means the slot is not next to the blank; the board is unchanged
	Invalid
	// Ignored means the puzzle is already solved
	Ignored
)

// String returns the outcome name
func (o MoveOutcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Invalid:
		return "invalid"
	case Ignored:
		return "ignored"
	default:
		return "unknown"
	}
}

// Engine holds one puzzle in progress. It is not safe for concurrent use.
type Engine struct {
	rng     *rand.Rand
	shuffle func(b *Board)
	board   Board
	empty   int
	solved  bool
}

// NewEngine creates an engine drawing shuffles from rng.
// The engine starts on the solved board until NewGame is called.
func NewEngine(rng *rand.Rand) *Engine {
	e := &Engine{
		rng:    rng,
		board:  Solved(),
		empty:  0,
		solved: true,
	}
	e.shuffle = e.fisherYates
	return e
}

func (e *Engine) fisherYates(b *Board) {
	e.rng.Shuffle(len(b), func(i, j int) {
		b[i], b[j] = b[j], b[i]
	})
}

// NewGame shuffles a fresh board that is solvable and not already solved.
// The previous board is kept if no such shuffle turns up.
func (e *Engine) NewGame() (Board, error) {
	for attempt := 0; attempt < MaxShuffleAttempts; attempt++ {
		b := Solved()
		e.shuffle(&b)
		if b.IsSolvable() && !b.IsSolved() {
			return b, e.Load(b)
		}
	}
	return e.board, fmt.Errorf("%w after %d attempts", ErrShuffleExhausted, MaxShuffleAttempts)
}

// Load replaces the current board with a given layout. The layout must be a
// solvable permutation; a solved layout loads as finished.
func (e *Engine) Load(b Board) error {
	if !b.IsPermutation() {
		return fmt.Errorf("%w: %v is not a permutation", ErrInvalidBoard, b)
	}
	if !b.IsSolvable() {
		return fmt.Errorf("%w: %v cannot be solved", ErrInvalidBoard, b)
	}
	e.board = b
	e.empty = b.EmptyIndex()
	e.solved = b.IsSolved()
	return nil
}

// Board returns a copy of the current board
func (e *Engine) Board() Board {
	return e.board
}

// EmptyIndex returns the slot holding the blank
func (e *Engine) EmptyIndex() int {
	return e.empty
}

// Solved reports whether the current board is finished
func (e *Engine) Solved() bool {
	return e.solved
}

// TryMove slides the tile at index into the blank if they are adjacent
func (e *Engine) TryMove(index int) MoveOutcome {
	if e.solved {
		return Ignored
	}
	if !square.IsValidIndex(index) || !square.Adjacent(index, e.empty) {
		return Invalid
	}

	e.board[index], e.board[e.empty] = e.board[e.empty], e.board[index]
	e.empty = index
	e.solved = e.board.IsSolved()
	return Moved
}

// Target returns the slot whose tile an arrow key slides into the blank.
// Pressing Up pushes the tile below the blank upwards, and so on, so the
// target is the blank's neighbour opposite the key's direction.
func (e *Engine) Target(d grid.Direction) (int, bool) {
	if !d.IsValid() {
		return -1, false
	}
	return square.Neighbor(e.empty, d.Opposite())
}

// MoveDirection resolves an arrow key and applies the move.
// ok is false when no tile can slide that way; the key is then ignored.
func (e *Engine) MoveDirection(d grid.Direction) (outcome MoveOutcome, ok bool) {
	target, ok := e.Target(d)
	if !ok {
		return Ignored, false
	}
	return e.TryMove(target), true
}

// Movable returns the slots whose tile could slide right now
func (e *Engine) Movable() mapset.Set[int] {
	if e.solved {
		return mapset.New[int]()
	}
	return square.Neighbors(e.empty)
}
