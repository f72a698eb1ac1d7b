package searcher

import (
	"errors"
	"math"

	"enclosure/game"
)

// Score bounds used as the initial alpha-beta window. They lie outside any
// finite evaluation, so only a tree without finite leaves yields NoLeaf.
var (
	MinScore = math.Inf(-1)
	MaxScore = math.Inf(1)
)

// NoLeaf marks a Value that did not come from any leaf.
const NoLeaf = -1

// ErrSearchExhausted is returned when a move is requested on a full board.
var ErrSearchExhausted = errors.New("no legal move left")

// Source tells whether a decision came from the search or the rule fallback.
type Source int

const (
	SourceSearch Source = iota
	SourceFallback
)

func (s Source) String() string {
	if s == SourceFallback {
		return "fallback"
	}
	return "search"
}

// Decision is the computer's chosen reply.
type Decision struct {
	Move   game.Move
	Score  float64 // Zero for fallback decisions
	Leaf   int     // NoLeaf for fallback decisions
	Source Source
}
