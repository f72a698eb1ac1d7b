package game

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/samber/lo"
)

// Board is a square grid of cell states, addressed by (x, y) with
// 0 <= x, y < Size(). A cell leaves Empty at most once per game.
type Board struct {
	size  int
	cells []CellState // Indexed by y*size + x
}

// NewBoard returns a size x size board with every cell Empty.
func NewBoard(size int) *Board {
	if size <= 0 {
		panic("board size must be positive")
	}
	return &Board{
		size:  size,
		cells: make([]CellState, size*size),
	}
}

// ParseBoard builds a board from rows of cell runes ('.', 'u', 'U', 'c', 'C'),
// one row per y coordinate. All rows must have the same length as the number of rows.
func ParseBoard(rows ...string) (*Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("board needs at least one row")
	}
	b := NewBoard(len(rows))
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != b.size {
			return nil, fmt.Errorf("row %d has %d cells, expected %d", y, len(runes), b.size)
		}
		for x, r := range runes {
			state, ok := cellStateFromRune(r)
			if !ok {
				return nil, fmt.Errorf("unknown cell %q at (%d,%d)", r, x, y)
			}
			b.set(x, y, state)
		}
	}
	return b, nil
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.size && y >= 0 && y < b.size
}

// OnEdge reports whether (x, y) lies on the outer ring of the board.
func (b *Board) OnEdge(x, y int) bool {
	return x == 0 || y == 0 || x == b.size-1 || y == b.size-1
}

// Cell returns the state at (x, y).
func (b *Board) Cell(x, y int) (CellState, error) {
	if !b.InBounds(x, y) {
		return Empty, fmt.Errorf("cell (%d,%d) on %dx%d board: %w", x, y, b.size, b.size, ErrOutOfBounds)
	}
	return b.at(x, y), nil
}

// Place puts a stone of player p on the empty cell (x, y).
func (b *Board) Place(x, y int, p Player) error {
	if p != User && p != Computer {
		return fmt.Errorf("place for %s at (%d,%d): %w", p, x, y, ErrInvalidMove)
	}
	if !b.InBounds(x, y) {
		return fmt.Errorf("place at (%d,%d) outside %dx%d board: %w", x, y, b.size, b.size, ErrInvalidMove)
	}
	if current := b.at(x, y); current != Empty {
		return fmt.Errorf("place at (%d,%d) occupied by %s: %w", x, y, current, ErrInvalidMove)
	}
	b.set(x, y, p.Owned())
	return nil
}

// Snapshot returns a deep, independent copy of the board.
func (b *Board) Snapshot() *Board {
	cellsCopy := make([]CellState, len(b.cells))
	copy(cellsCopy, b.cells)
	return &Board{
		size:  b.size,
		cells: cellsCopy,
	}
}

// Empties lists the empty cells in row-major order (y, then x).
func (b *Board) Empties() []Cell {
	empties := make([]Cell, 0, len(b.cells))
	for i, state := range b.cells {
		if state == Empty {
			empties = append(empties, b.cellAt(i))
		}
	}
	return empties
}

func (b *Board) Count(state CellState) int {
	return lo.Count(b.cells, state)
}

func (b *Board) Full() bool {
	return !lo.Contains(b.cells, Empty)
}

// Hash fingerprints the position; equal boards hash equally.
func (b *Board) Hash() StateHash {
	buf := make([]byte, 0, len(b.cells)+1)
	buf = append(buf, byte(b.size))
	for _, state := range b.cells {
		buf = append(buf, byte(state))
	}
	return StateHash(xxhash.Sum64(buf))
}

func (b *Board) Equal(other *Board) bool {
	if other == nil || b.size != other.size {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Score tallies the enemy stones each player has enclosed.
func (b *Board) Score() Score {
	return Score{
		User:     b.Count(User.Side().Captures),
		Computer: b.Count(Computer.Side().Captures),
	}
}

func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			sb.WriteRune(b.at(x, y).Rune())
		}
		if y < b.size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (b *Board) at(x, y int) CellState {
	return b.cells[y*b.size+x]
}

func (b *Board) set(x, y int, state CellState) {
	b.cells[y*b.size+x] = state
}

func (b *Board) cellAt(index int) Cell {
	return Cell{X: index % b.size, Y: index / b.size}
}

// is reports whether (x, y) is on the board and holds state.
func (b *Board) is(x, y int, state CellState) bool {
	return b.InBounds(x, y) && b.at(x, y) == state
}

// Score counts captured stones per player.
type Score struct {
	User     int
	Computer int
}

// Winner returns the player with more captures, NoPlayer on a tie.
func (s Score) Winner() Player {
	switch {
	case s.User > s.Computer:
		return User
	case s.Computer > s.User:
		return Computer
	default:
		return NoPlayer
	}
}

// Margin is the computer's capture lead over the user.
func (s Score) Margin() int {
	return s.Computer - s.User
}
