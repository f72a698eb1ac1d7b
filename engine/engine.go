package engine

import (
	"context"
	"errors"
	"fmt"

	"enclosure/game"
	"enclosure/searcher"
)

// ErrGameOver is returned when a move is attempted after the board filled up.
var ErrGameOver = errors.New("game is over - no moves allowed")

// NewBoard returns an empty size x size board.
func NewBoard(size int) *game.Board {
	return game.NewBoard(size)
}

// ApplyHumanMove returns a copy of b with the user's stone at (x, y) placed
// and captures resolved. b itself is left untouched.
func ApplyHumanMove(b *game.Board, x, y int) (*game.Board, error) {
	next, _, err := apply(b, game.Move{X: x, Y: y, Player: game.User})
	return next, err
}

// ApplyAIMove is ApplyHumanMove for the computer.
func ApplyAIMove(b *game.Board, x, y int) (*game.Board, error) {
	next, _, err := apply(b, game.Move{X: x, Y: y, Player: game.Computer})
	return next, err
}

// ComputeAIMove searches b for the computer's reply.
func ComputeAIMove(ctx context.Context, b *game.Board, options ...searcher.Option) (searcher.Decision, error) {
	decision, _, err := searcher.NewSearcher(options...).FindMove(ctx, b)
	return decision, err
}

// CellStateFor reads a single cell for rendering.
func CellStateFor(b *game.Board, x, y int) (game.CellState, error) {
	return b.Cell(x, y)
}

func apply(b *game.Board, m game.Move) (*game.Board, int, error) {
	next := b.Snapshot()
	captured, err := game.Play(next, m)
	if err != nil {
		return nil, 0, fmt.Errorf("%s move: %w", m.Player, err)
	}
	return next, captured, nil
}
