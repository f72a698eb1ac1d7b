package game

import "errors"

var (
	// ErrInvalidMove is returned when a placement targets an occupied cell or
	// a cell outside the board.
	ErrInvalidMove = errors.New("invalid move")
	// ErrOutOfBounds is returned when a coordinate falls outside the board.
	ErrOutOfBounds = errors.New("coordinates out of bounds")
)

type StateHash uint64

// Player identifies one of the two sides. The zero value means nobody.
type Player int

const (
	NoPlayer Player = iota
	User
	Computer
)

func (p Player) Opponent() Player {
	switch p {
	case User:
		return Computer
	case Computer:
		return User
	default:
		return NoPlayer
	}
}

// Owned is the state a freshly placed stone of p takes.
func (p Player) Owned() CellState {
	switch p {
	case User:
		return OwnedByUser
	case Computer:
		return OwnedByComputer
	default:
		return Empty
	}
}

// Captured is the state a stone of p takes once the opponent encloses it.
func (p Player) Captured() CellState {
	switch p {
	case User:
		return CapturedFromUser
	case Computer:
		return CapturedFromComputer
	default:
		return Empty
	}
}

// Side names the cell states that count for a player: its live stones and
// the enemy stones it has enclosed.
func (p Player) Side() Side {
	return Side{Stone: p.Owned(), Captures: p.Opponent().Captured()}
}

func (p Player) String() string {
	switch p {
	case User:
		return "user"
	case Computer:
		return "computer"
	default:
		return "none"
	}
}

type Side struct {
	Stone    CellState
	Captures CellState
}

// Evaluate scores the placement m on a board that already reflects it
// (stone placed, captures resolved). Higher is better for m.Player.
type Evaluate func(b *Board, m Move) float64
