package game

const (
	MaterialWeight = 100.0
	PatternWeight  = 10.0
	// NoPattern is the local score when no pattern matches.
	NoPattern = -1.0
)

// neighbourhood is the view of the cells around a placed stone, from the
// placing side's point of view.
type neighbourhood struct {
	board *Board
	x, y  int
	own   CellState
	enemy CellState
}

func (n neighbourhood) is(dx, dy int, state CellState) bool {
	return n.board.is(n.x+dx, n.y+dy, state)
}

func (n neighbourhood) count(state CellState) int {
	count := 0
	for _, d := range directions {
		if n.is(d.X, d.Y, state) {
			count++
		}
	}
	return count
}

type pattern struct {
	name  string
	match func(n neighbourhood) bool
	value float64
}

// patterns is evaluated in order; the highest matching value wins.
// Offboard cells never satisfy a predicate.
var patterns = []pattern{
	{
		name: "surrounded",
		match: func(n neighbourhood) bool {
			return n.count(n.own) == 4
		},
		value: 1.0,
	},
	{
		name: "vertical-pin",
		match: func(n neighbourhood) bool {
			return n.is(0, -1, n.own) && n.is(0, 1, n.own) &&
				n.is(-1, 0, n.enemy) && n.is(1, 0, n.enemy)
		},
		value: 0.9,
	},
	{
		name: "horizontal-pin",
		match: func(n neighbourhood) bool {
			return n.is(-1, 0, n.own) && n.is(1, 0, n.own) &&
				n.is(0, -1, n.enemy) && n.is(0, 1, n.enemy)
		},
		value: 0.9,
	},
	{
		name: "linked",
		match: func(n neighbourhood) bool {
			return n.count(n.own) >= 1
		},
		value: 0.05,
	},
	{
		name: "three-sided",
		match: func(n neighbourhood) bool {
			return n.count(n.own) == 3 && n.count(Empty) == 1
		},
		value: 0.8,
	},
	{
		name: "isolated",
		match: func(n neighbourhood) bool {
			return n.count(Empty) == 4
		},
		value: 0.01,
	},
	{
		name: "pincered",
		match: func(n neighbourhood) bool {
			if n.count(n.own) > 0 {
				return false
			}
			return (n.is(-1, 0, n.enemy) && n.is(1, 0, n.enemy)) ||
				(n.is(0, -1, n.enemy) && n.is(0, 1, n.enemy))
		},
		value: -0.5,
	},
}

// LocalPattern returns the best pattern value matched around (x, y) for a
// stone of player, or NoPattern.
func LocalPattern(b *Board, x, y int, player, opponent Side) float64 {
	n := neighbourhood{board: b, x: x, y: y, own: player.Stone, enemy: opponent.Stone}
	best := NoPattern
	for _, p := range patterns {
		if p.value > best && p.match(n) {
			best = p.value
		}
	}
	return best
}

// Heuristic scores a hypothetical placement at (x, y) for player on a board
// that already reflects it. It combines the global capture balance with the
// local pattern around the placed stone and never mutates b.
func Heuristic(b *Board, x, y int, player, opponent Side) float64 {
	material := float64(b.Count(player.Captures) - b.Count(opponent.Captures))
	local := LocalPattern(b, x, y, player, opponent)
	return MaterialWeight*material + PatternWeight*(-local)
}

// EvaluatePlacement is the default Evaluate: Heuristic from the mover's side.
func EvaluatePlacement(b *Board, m Move) float64 {
	return Heuristic(b, m.X, m.Y, m.Player.Side(), m.Player.Opponent().Side())
}
