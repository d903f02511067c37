package main

import (
	"log/slog"
	"os"

	"github.com/xavierbriand/dolmenwood-sub001/internal/config"
	"github.com/xavierbriand/dolmenwood-sub001/internal/errors"
	"github.com/xavierbriand/dolmenwood-sub001/internal/orchestrators/encounter"
	"github.com/xavierbriand/dolmenwood-sub001/internal/pkg/clock"
	"github.com/xavierbriand/dolmenwood-sub001/internal/pkg/idgen"
	"github.com/xavierbriand/dolmenwood-sub001/internal/redis"
	"github.com/xavierbriand/dolmenwood-sub001/internal/repositories/creatures"
	"github.com/xavierbriand/dolmenwood-sub001/internal/repositories/history"
	"github.com/xavierbriand/dolmenwood-sub001/internal/repositories/tables"
)

// app bundles the wired-up dependencies a command needs.
type app struct {
	cfg          *config.Config
	tableRepo    tables.Repository
	creatureRepo creatures.Repository
	service      encounter.Service
}

// newApp loads configuration and wires repositories and the
// orchestrator. With a Redis address configured the data source is
// Redis and session history is available; otherwise tables and
// creatures come from flat YAML files and history is disabled.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	setupLogging(cfg.LogLevel)

	var (
		tableRepo    tables.Repository
		creatureRepo creatures.Repository
		historyRepo  history.Repository
	)

	if cfg.RedisAddr != "" {
		client, err := redis.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create redis client")
		}

		tableRepo, err = tables.NewRedisRepository(&tables.RedisConfig{Client: client})
		if err != nil {
			return nil, err
		}
		creatureRepo, err = creatures.NewRedisRepository(&creatures.RedisConfig{Client: client})
		if err != nil {
			return nil, err
		}
		historyRepo, err = history.NewRedisRepository(&history.Config{
			Client: client,
			Clock:  clock.New(),
		})
		if err != nil {
			return nil, err
		}
	} else {
		tableRepo, err = tables.NewYAMLRepository(&tables.YAMLConfig{Dir: cfg.TablesDir()})
		if err != nil {
			return nil, err
		}
		creatureRepo, err = creatures.NewYAMLRepository(&creatures.YAMLConfig{Dir: cfg.CreaturesDir()})
		if err != nil {
			return nil, err
		}
	}

	service, err := encounter.NewOrchestrator(&encounter.Config{
		TableRepo:    tableRepo,
		CreatureRepo: creatureRepo,
		HistoryRepo:  historyRepo,
		HistoryTTL:   cfg.HistoryTTL,
		IDGenerator:  idgen.NewUUID("enc"),
		Clock:        clock.New(),
	})
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:          cfg,
		tableRepo:    tableRepo,
		creatureRepo: creatureRepo,
		service:      service,
	}, nil
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: lvl,
	})))
}
