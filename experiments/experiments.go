package experiments

import (
	"context"
	"fmt"

	"enclosure/config"
	"enclosure/engine"
	"enclosure/experiments/metrics"
	"enclosure/searcher"

	"github.com/rs/zerolog/log"
)

// Result holds everything an experiment produced.
type Result struct {
	Configs   []metrics.SearchConfig
	Games     []metrics.GameRecord
	Moves     []metrics.MoveRecord
	Summaries []Summary
	Dir       string // Empty when nothing was written
}

// RunPruningExperiment plays cfg.Games games per configuration: sequential
// alpha-beta, parallel alpha-beta and parallel plain minimax. Every
// configuration sees the same seeds, so the pruned and unpruned searchers
// should produce identical games at different node counts.
func RunPruningExperiment(ctx context.Context, cfg config.Config) (Result, error) {
	configs := []metrics.SearchConfig{
		{ID: 1, Depth: cfg.Depth, Goroutines: 1, Prune: true},
		{ID: 2, Depth: cfg.Depth, Goroutines: cfg.Goroutines, Prune: true},
		{ID: 3, Depth: cfg.Depth, Goroutines: cfg.Goroutines, Prune: false},
	}
	return runExperiment(ctx, "pruning", cfg, configs)
}

func runExperiment(ctx context.Context, name string, cfg config.Config, configs []metrics.SearchConfig) (Result, error) {
	result := Result{Configs: configs}
	count := 0

	log.Info().Msgf("starting %s experiment...", name)

	for ci, sc := range configs {
		log.Info().Msgf("starting config %d of %d: %+v", ci+1, len(configs), sc)

		for i := 0; i < cfg.Games; i++ {
			seed := cfg.Seed + uint64(i)
			gameMetric, moveMetrics, err := runGame(ctx, cfg.BoardSize, seed, sc)
			if err != nil {
				return result, fmt.Errorf("config %d game %d: %w", sc.ID, i+1, err)
			}
			count++
			result.Games = append(result.Games, metrics.GameRecord{
				ID:         count,
				Config:     sc.ID,
				Seed:       seed,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				result.Moves = append(result.Moves, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed config %d game %d of %d with winner: %s (%d-%d)",
				sc.ID, i+1, cfg.Games, gameMetric.Winner, gameMetric.Score.User, gameMetric.Score.Computer)
		}
		result.Summaries = append(result.Summaries, Summarize(sc.ID, result.Games, result.Moves))
	}

	log.Info().Msgf("completed %s experiment", name)

	if cfg.OutputDir == "" {
		return result, nil
	}
	dir, err := store(cfg.OutputDir, name, result)
	if err != nil {
		return result, err
	}
	result.Dir = dir
	return result, nil
}

// runGame plays one game of the computer configured by sc against a random
// human stand-in seeded with seed.
func runGame(ctx context.Context, size int, seed uint64, sc metrics.SearchConfig) (metrics.GameMetric, []metrics.MoveMetric, error) {
	s := searcher.NewSearcher(
		searcher.WithDepth(sc.Depth),
		searcher.WithGoroutines(sc.Goroutines),
		searcher.WithPruning(sc.Prune),
		searcher.WithMetrics(),
	)
	e := engine.LocalEngine(size, NewRandomOpponent(seed), s)

	collector := metrics.NewCollector()
	collector.Start()
	winner, turns, err := e.Run(ctx)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	for _, t := range turns {
		collector.AddTurn(t)
	}

	gameMetric, moveMetrics := collector.Complete(winner, e.Controller.Board().Score())
	return gameMetric, moveMetrics, nil
}

func store(root, name string, result Result) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteSearchConfigs(result.Configs); err != nil {
		return "", fmt.Errorf("failed to store search configs: %w", err)
	}
	log.Info().Msg("stored search configs")

	if err := writer.WriteGameRecords(result.Games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(result.Moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
