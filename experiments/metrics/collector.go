package metrics

import (
	"time"

	"enclosure/engine"
	"enclosure/game"
	"enclosure/searcher"
)

// SearchConfig describes one computer configuration under test.
type SearchConfig struct {
	ID         int
	Depth      int
	Goroutines int
	Prune      bool
}

type MoveMetric struct {
	Turn          int
	Human         game.Cell
	AI            game.Cell
	HumanCaptures int
	AICaptures    int
	Fallback      bool
	Duration      time.Duration
	Leaves        int64
	Nodes         int64
	Cutoffs       int64
}

type GameMetric struct {
	Winner    string
	Score     game.Score
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Turns     int
}

// Collector turns the engine's turn results into game and move metrics.
type Collector struct {
	startTime time.Time
	moves     []MoveMetric
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Start() {
	c.startTime = time.Now()
	c.moves = nil
}

// AddTurn records one turn. A turn that ended the game on the human move has
// no search and only contributes the human's side.
func (c *Collector) AddTurn(t engine.TurnResult) {
	m := MoveMetric{
		Turn:          t.Turn,
		Human:         t.Human.Cell(),
		HumanCaptures: t.HumanCaptures,
		AICaptures:    t.AICaptures,
	}
	if t.AI != nil {
		m.AI = t.AI.Move.Cell()
		m.Fallback = t.AI.Source == searcher.SourceFallback
		m.Duration = t.Metrics.Duration
		m.Leaves = t.Metrics.Leaves
		m.Nodes = t.Metrics.Nodes
		m.Cutoffs = t.Metrics.Cutoffs
	}
	c.moves = append(c.moves, m)
}

func (c *Collector) Complete(winner game.Player, score game.Score) (GameMetric, []MoveMetric) {
	end := time.Now()
	return GameMetric{
		Winner:    winner.String(),
		Score:     score,
		StartTime: c.startTime,
		EndTime:   end,
		Duration:  end.Sub(c.startTime),
		Turns:     len(c.moves),
	}, c.moves
}
