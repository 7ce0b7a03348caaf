package main

import (
	"context"
	"log/slog"

	"github.com/CraneCD/dnd-55e-character-sheet/internal/clients/external"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/config"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/engine"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/errors"
	characterorchestrator "github.com/CraneCD/dnd-55e-character-sheet/internal/orchestrators/character"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/orchestrators/dice"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/redis"
	characterrepo "github.com/CraneCD/dnd-55e-character-sheet/internal/repositories/character"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/services/character"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/services/content"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/services/conversion"
)

// app is the wired set of services a command runs against
type app struct {
	service character.Service

	// pingStore checks the character store before store commands; nil skips it
	pingStore func(ctx context.Context) error
	close     func() error
}

// appBuilder wires an app from configuration
type appBuilder func(ctx context.Context, cfg *config.Config) (*app, error)

func buildApp(ctx context.Context, cfg *config.Config) (*app, error) {
	redisClient, err := redis.NewClient(cfg.RedisAddr, &redis.Options{
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		UseTLS:   cfg.RedisTLS,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create redis client")
	}

	repo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: redisClient})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character repository")
	}

	externalClient, err := external.New(&external.Config{
		BaseURL:     cfg.DND5eAPIURL,
		HTTPTimeout: cfg.HTTPTimeout,
		CacheTTL:    cfg.CacheTTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create reference data client")
	}

	eng, err := engine.New(&engine.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create engine")
	}

	converter, err := conversion.NewSnapshotConverter(&conversion.SnapshotConverterConfig{Engine: eng})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create converter")
	}

	var homebrew *content.Catalog
	if cfg.HomebrewPath != "" {
		homebrew, err = content.LoadHomebrew(cfg.HomebrewPath)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load homebrew content")
		}
		slog.InfoContext(ctx, "Loaded homebrew content",
			"path", cfg.HomebrewPath,
			"entries", homebrew.Len())
	}

	orchestrator, err := characterorchestrator.New(&characterorchestrator.Config{
		CharacterRepo:  repo,
		Engine:         eng,
		ExternalClient: externalClient,
		Converter:      converter,
		DiceService:    dice.NewDefault(),
		Homebrew:       homebrew,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character orchestrator")
	}

	return &app{
		service: orchestrator,
		pingStore: func(ctx context.Context) error {
			return redis.Ping(ctx, redisClient)
		},
		close: redisClient.Close,
	}, nil
}
