package searcher

import (
	"enclosure/game"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// rule proposes a cell from the empty candidates, or reports none.
type rule struct {
	name string
	pick func(b *game.Board, candidates []game.Cell) (game.Cell, bool)
}

// rules are tried in order; the first that proposes a cell wins.
var rules = []rule{
	{name: "capture", pick: mostCaptures(game.Computer)},
	{name: "block", pick: mostCaptures(game.User)},
	{name: "extend", pick: nextToOwn},
	{name: "first", pick: firstCandidate},
}

// Fallback picks the computer's move by fixed rule priority: take the
// largest capture, else deny the user's largest capture, else extend from an
// existing computer stone, else play the first empty cell in row-major order.
func Fallback(b *game.Board) (game.Move, error) {
	candidates := b.Empties()
	if len(candidates) == 0 {
		return game.Move{}, ErrSearchExhausted
	}
	for _, r := range rules {
		if c, ok := r.pick(b, candidates); ok {
			log.Debug().Str("rule", r.name).Msgf("fallback picked (%d,%d)", c.X, c.Y)
			return game.Move{X: c.X, Y: c.Y, Player: game.Computer}, nil
		}
	}
	// firstCandidate always proposes when candidates is non-empty
	panic("no fallback rule matched")
}

// mostCaptures proposes the candidate where a stone of p would capture the
// most, keeping the earliest on ties.
func mostCaptures(p game.Player) func(b *game.Board, candidates []game.Cell) (game.Cell, bool) {
	return func(b *game.Board, candidates []game.Cell) (game.Cell, bool) {
		best, bestCount := game.Cell{}, 0
		for _, c := range candidates {
			count, err := game.Play(b.Snapshot(), game.Move{X: c.X, Y: c.Y, Player: p})
			if err != nil {
				continue
			}
			if count > bestCount {
				best, bestCount = c, count
			}
		}
		return best, bestCount > 0
	}
}

func nextToOwn(b *game.Board, candidates []game.Cell) (game.Cell, bool) {
	adjacent := lo.Filter(candidates, func(c game.Cell, _ int) bool {
		for _, n := range []game.Cell{{X: c.X + 1, Y: c.Y}, {X: c.X, Y: c.Y + 1}, {X: c.X - 1, Y: c.Y}, {X: c.X, Y: c.Y - 1}} {
			if state, err := b.Cell(n.X, n.Y); err == nil && state == game.OwnedByComputer {
				return true
			}
		}
		return false
	})
	return lo.First(adjacent)
}

func firstCandidate(b *game.Board, candidates []game.Cell) (game.Cell, bool) {
	return lo.First(candidates)
}
