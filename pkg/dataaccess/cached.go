package dataaccess

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Jacobbrewer1/artemis/pkg/entities"
	"github.com/Jacobbrewer1/artemis/pkg/logging"
)

const cachedDalName = "cached_settings"

type cachedStore struct {
	l *slog.Logger

	// cache is the in process copy of the configurations.
	cache SettingsStore

	// backing is the durable store.
	backing SettingsStore
}

// NewCachedStore puts an in memory cache in front of a durable store. Writes go to the durable store first so the
// cache never holds a configuration that was not persisted.
func NewCachedStore(l *slog.Logger, backing SettingsStore) SettingsStore {
	return &cachedStore{
		l:       l.With(slog.String(logging.KeyDal, cachedDalName)),
		cache:   NewMemoryStore(),
		backing: backing,
	}
}

func (c *cachedStore) Set(ctx context.Context, cfg *entities.GuildConfig) error {
	if err := c.backing.Set(ctx, cfg); err != nil {
		return fmt.Errorf("error saving guild configuration: %w", err)
	}
	return c.cache.Set(ctx, cfg)
}

func (c *cachedStore) Get(ctx context.Context, guildID string) (*entities.GuildConfig, error) {
	cfg, err := c.cache.Get(ctx, guildID)
	if err == nil {
		return cfg, nil
	}

	cfg, err = c.backing.Get(ctx, guildID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error getting guild configuration: %w", err)
	}

	if err := c.cache.Set(ctx, cfg); err != nil {
		c.l.Warn("Error caching guild configuration",
			slog.String(logging.KeyGuild, guildID),
			slog.String(logging.KeyError, err.Error()),
		)
	}
	return clone(cfg), nil
}

// Ping pings the durable store if it supports it.
func (c *cachedStore) Ping(ctx context.Context) error {
	p, ok := c.backing.(Pinger)
	if !ok {
		return nil
	}
	return p.Ping(ctx)
}
