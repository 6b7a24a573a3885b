package dataaccess

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Jacobbrewer1/artemis/pkg/dataaccess/monitoring"
	"github.com/Jacobbrewer1/artemis/pkg/entities"
	"github.com/Jacobbrewer1/artemis/pkg/logging"
	"github.com/redis/go-redis/v9"
)

const (
	redisDalName = "redis_settings"

	// redisKeyPrefix is prepended to the guild ID to build the key a configuration is stored under.
	redisKeyPrefix = "artemis:guild:"
)

type redisStore struct {
	l *slog.Logger

	client redis.UniversalClient
}

// NewRedisStore creates a settings store backed by Redis. Each configuration is stored as JSON.
func NewRedisStore(l *slog.Logger, client redis.UniversalClient) SettingsStore {
	return &redisStore{
		l:      l.With(slog.String(logging.KeyDal, redisDalName)),
		client: client,
	}
}

func redisKey(guildID string) string {
	return redisKeyPrefix + guildID
}

func (r *redisStore) Set(ctx context.Context, cfg *entities.GuildConfig) error {
	if cfg == nil {
		return errors.New("guild configuration is nil")
	}

	defer monitoring.TrackRedis(redisDalName, "set_guild_config")()

	b, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshalling guild configuration: %w", err)
	}

	if err := r.client.Set(ctx, redisKey(cfg.GuildID), b, 0).Err(); err != nil {
		return fmt.Errorf("error setting guild configuration: %w", err)
	}
	return nil
}

func (r *redisStore) Get(ctx context.Context, guildID string) (*entities.GuildConfig, error) {
	defer monitoring.TrackRedis(redisDalName, "get_guild_config")()

	b, err := r.client.Get(ctx, redisKey(guildID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error getting guild configuration: %w", err)
	}

	cfg := new(entities.GuildConfig)
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling guild configuration: %w", err)
	}
	return cfg, nil
}

func (r *redisStore) Ping(ctx context.Context) error {
	defer monitoring.TrackRedis("health_check", "ping")()

	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping Redis: %w", err)
	}
	return nil
}
