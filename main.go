package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"enclosure/config"
	"enclosure/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.ApplyLogLevel(); err != nil {
		log.Fatal().Err(err).Msg("failed to set log level")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := experiments.RunPruningExperiment(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}

	for _, s := range result.Summaries {
		log.Info().
			Int("config", s.Config).
			Int("games", s.Games).
			Int("computer_wins", s.ComputerWins).
			Int("user_wins", s.UserWins).
			Int("draws", s.Draws).
			Int("fallbacks", s.Fallbacks).
			Msgf("margin %.2f±%.2f, search %.2f±%.2fms", s.MeanMargin, s.StdMargin, s.MeanSearchMs, s.StdSearchMs)
	}
	if result.Dir != "" {
		log.Info().Msgf("records written to %s", result.Dir)
	}
}
