package experiments

import (
	"enclosure/game"

	"golang.org/x/exp/rand"
)

// RandomOpponent plays the user's side by picking a uniformly random empty
// cell. Games with the same seed replay the same human moves as long as the
// computer answers the same way.
type RandomOpponent struct {
	rng *rand.Rand
}

func NewRandomOpponent(seed uint64) *RandomOpponent {
	return &RandomOpponent{rng: rand.New(rand.NewSource(seed))}
}

func (o *RandomOpponent) FindMove(b *game.Board) game.Cell {
	empties := b.Empties()
	if len(empties) == 0 {
		return game.Cell{X: -1, Y: -1}
	}
	return empties[o.rng.Intn(len(empties))]
}
