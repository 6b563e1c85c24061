package main

import (
	"context"
	"fmt"
	"time"

	"github.com/hanzikit/hanzikit/internal/config"
	"github.com/hanzikit/hanzikit/internal/database"
	"github.com/hanzikit/hanzikit/internal/detail"
	"github.com/hanzikit/hanzikit/internal/dictionary"
	"github.com/hanzikit/hanzikit/internal/frequency"
	"github.com/hanzikit/hanzikit/internal/linguist"
	"github.com/hanzikit/hanzikit/internal/search"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.Load > %w", err)
	}
	return cfg, nil
}

// app bundles the wired components a command works with.
type app struct {
	store    *dictionary.Store
	engine   *search.Engine
	resolver *detail.Resolver
}

func newApp(cfg *config.Config) (*app, error) {
	cache, err := newCacheStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("newCacheStore > %w", err)
	}

	store := dictionary.NewStore(
		dictionary.NewHTTPFetcher(cfg.Dictionary.URL),
		cache,
		dictionary.WithTTL(time.Duration(cfg.Dictionary.TTLDays)*24*time.Hour),
	)

	freq, err := frequency.NewTable()
	if err != nil {
		return nil, fmt.Errorf("frequency.NewTable > %w", err)
	}

	ling := linguist.New()
	return &app{
		store:    store,
		engine:   search.NewEngine(store, ling, freq),
		resolver: detail.NewResolver(store, ling),
	}, nil
}

func newCacheStore(cfg *config.Config) (dictionary.CacheStore, error) {
	switch cfg.Cache.Backend {
	case "mysql":
		db, err := database.Open(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("database.Open > %w", err)
		}
		if err := database.EnsureSchema(context.Background(), db); err != nil {
			return nil, fmt.Errorf("database.EnsureSchema > %w", err)
		}
		return dictionary.NewDBStore(db), nil
	default:
		return dictionary.NewFileStore(cfg.Cache.Directory), nil
	}
}
