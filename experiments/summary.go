package experiments

import (
	"enclosure/experiments/metrics"
	"enclosure/game"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the games played by one search configuration.
type Summary struct {
	Config       int
	Games        int
	ComputerWins int
	UserWins     int
	Draws        int
	MeanMargin   float64 // Computer captures minus user captures
	StdMargin    float64
	MeanSearchMs float64 // Per computer move
	StdSearchMs  float64
	Fallbacks    int
}

func Summarize(config int, games []metrics.GameRecord, moves []metrics.MoveRecord) Summary {
	games = lo.Filter(games, func(g metrics.GameRecord, _ int) bool { return g.Config == config })
	ids := lo.SliceToMap(games, func(g metrics.GameRecord) (int, struct{}) { return g.ID, struct{}{} })
	moves = lo.Filter(moves, func(m metrics.MoveRecord, _ int) bool {
		_, ok := ids[m.Game]
		return ok
	})

	s := Summary{
		Config:       config,
		Games:        len(games),
		ComputerWins: lo.CountBy(games, func(g metrics.GameRecord) bool { return g.Winner == game.Computer.String() }),
		UserWins:     lo.CountBy(games, func(g metrics.GameRecord) bool { return g.Winner == game.User.String() }),
		Fallbacks:    lo.CountBy(moves, func(m metrics.MoveRecord) bool { return m.Fallback }),
	}
	s.Draws = s.Games - s.ComputerWins - s.UserWins

	margins := lo.Map(games, func(g metrics.GameRecord, _ int) float64 { return float64(g.Score.Margin()) })
	s.MeanMargin, s.StdMargin = meanStdDev(margins)

	searched := lo.Filter(moves, func(m metrics.MoveRecord, _ int) bool { return m.Leaves > 0 || m.Fallback })
	durations := lo.Map(searched, func(m metrics.MoveRecord, _ int) float64 {
		return float64(m.Duration.Microseconds()) / 1000
	})
	s.MeanSearchMs, s.StdSearchMs = meanStdDev(durations)
	return s
}

// meanStdDev is stat.MeanStdDev with zero spread for fewer than two samples.
func meanStdDev(x []float64) (float64, float64) {
	switch len(x) {
	case 0:
		return 0, 0
	case 1:
		return x[0], 0
	}
	return stat.MeanStdDev(x, nil)
}
