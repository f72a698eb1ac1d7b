package engine

import (
	"context"

	"enclosure/game"
	"enclosure/searcher"

	"github.com/rs/zerolog/log"
)

// State is the controller's position in the turn cycle.
type State int

const (
	WaitingForHuman State = iota
	ResolvingHumanCapture
	ComputingAIMove
	ResolvingAICapture
	GameOver
)

func (s State) String() string {
	switch s {
	case WaitingForHuman:
		return "WaitingForHuman"
	case ResolvingHumanCapture:
		return "ResolvingHumanCapture"
	case ComputingAIMove:
		return "ComputingAIMove"
	case ResolvingAICapture:
		return "ResolvingAICapture"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// TurnResult records one completed turn.
type TurnResult struct {
	Turn          int
	Human         game.Move
	HumanCaptures int
	AI            *searcher.Decision // nil when the human move ended the game
	AICaptures    int
	Metrics       searcher.Metrics
	Score         game.Score
	Hash          game.StateHash
	State         State
}

// Controller owns the authoritative board and runs full turns: the user's
// placement, its captures, the computer's search, its placement and its
// captures. A failed turn leaves the board as it was.
type Controller struct {
	board    *game.Board
	searcher *searcher.Searcher
	state    State
	turns    int
}

// NewController takes ownership of b.
func NewController(b *game.Board, s *searcher.Searcher) *Controller {
	c := &Controller{
		board:    b,
		searcher: s,
		state:    WaitingForHuman,
	}
	if b.Full() {
		c.state = GameOver
	}
	return c
}

// Board returns a copy of the current board.
func (c *Controller) Board() *game.Board {
	return c.board.Snapshot()
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Turns() int {
	return c.turns
}

func (c *Controller) CellState(x, y int) (game.CellState, error) {
	return CellStateFor(c.board, x, y)
}

// Winner returns the player with more captures once the game is over.
// ok is false while the game is still running; a draw is NoPlayer.
func (c *Controller) Winner() (winner game.Player, ok bool) {
	if c.state != GameOver {
		return game.NoPlayer, false
	}
	return c.board.Score().Winner(), true
}

// Reset starts a new game on an empty board of the same size.
func (c *Controller) Reset() {
	c.board = game.NewBoard(c.board.Size())
	c.state = WaitingForHuman
	c.turns = 0
}

// PlayTurn plays the user's stone at (x, y) and the computer's reply.
func (c *Controller) PlayTurn(ctx context.Context, x, y int) (TurnResult, error) {
	if c.state == GameOver {
		return TurnResult{}, ErrGameOver
	}

	turn := c.turns + 1
	human := game.Move{X: x, Y: y, Player: game.User}

	c.transition(ResolvingHumanCapture, turn)
	work, humanCaptures, err := apply(c.board, human)
	if err != nil {
		c.transition(WaitingForHuman, turn)
		return TurnResult{}, err
	}

	result := TurnResult{
		Turn:          turn,
		Human:         human,
		HumanCaptures: humanCaptures,
	}

	if !work.Full() {
		c.transition(ComputingAIMove, turn)
		decision, metrics, err := c.searcher.FindMove(ctx, work)
		if err != nil {
			c.transition(WaitingForHuman, turn)
			return TurnResult{}, err
		}

		c.transition(ResolvingAICapture, turn)
		next, aiCaptures, err := apply(work, decision.Move)
		if err != nil {
			c.transition(WaitingForHuman, turn)
			return TurnResult{}, err
		}
		work = next
		result.AI = &decision
		result.AICaptures = aiCaptures
		result.Metrics = metrics
	}

	// Commit
	c.board = work
	c.turns = turn
	if work.Full() {
		c.transition(GameOver, turn)
		score := work.Score()
		log.Info().Msgf("game over after %d turns: user %d, computer %d, winner %s", turn, score.User, score.Computer, score.Winner())
	} else {
		c.transition(WaitingForHuman, turn)
	}

	result.Score = work.Score()
	result.Hash = work.Hash()
	result.State = c.state
	return result, nil
}

func (c *Controller) transition(next State, turn int) {
	log.Debug().Int("turn", turn).Msgf("%s -> %s", c.state, next)
	c.state = next
}
