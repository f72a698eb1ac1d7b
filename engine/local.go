package engine

import (
	"context"

	"enclosure/game"
	"enclosure/searcher"

	"github.com/rs/zerolog/log"
)

// Opponent stands in for the human: it picks the user's cell each turn.
type Opponent interface {
	FindMove(b *game.Board) game.Cell
}

type Engine struct {
	Controller *Controller
	Opponent   Opponent
}

func LocalEngine(size int, opponent Opponent, s *searcher.Searcher) *Engine {
	if opponent == nil {
		panic("need an opponent")
	}
	return &Engine{
		Controller: NewController(game.NewBoard(size), s),
		Opponent:   opponent,
	}
}

// Run plays turns until the board is full and returns the winner along with
// every turn played.
func (e *Engine) Run(ctx context.Context) (game.Player, []TurnResult, error) {
	var turns []TurnResult

	log.Info().Msgf("starting game on a %dx%d board", e.Controller.board.Size(), e.Controller.board.Size())

	for e.Controller.State() != GameOver {
		cell := e.pick()
		result, err := e.Controller.PlayTurn(ctx, cell.X, cell.Y)
		if err != nil {
			return game.NoPlayer, turns, err
		}
		turns = append(turns, result)
	}

	winner, _ := e.Controller.Winner()
	return winner, turns, nil
}

// pick asks the opponent for a cell and replaces an illegal answer with the
// first empty cell.
func (e *Engine) pick() game.Cell {
	b := e.Controller.Board()
	candidate := e.Opponent.FindMove(b)
	if state, err := b.Cell(candidate.X, candidate.Y); err == nil && state == game.Empty {
		return candidate
	}

	log.Warn().Msgf("opponent returned an illegal cell (%d,%d) => forcing first empty cell", candidate.X, candidate.Y)
	empties := b.Empties()
	if len(empties) == 0 {
		panic("no empty cells at all")
	}
	return empties[0]
}
