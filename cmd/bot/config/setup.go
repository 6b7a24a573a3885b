package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrMissingToken is returned when no bot token is configured.
var ErrMissingToken = errors.New("bot token is required")

// Parse reads the configuration from the environment.
func Parse(l *slog.Logger) error {
	BotToken = os.Getenv(EnvBotToken)
	if BotToken == "" {
		if legacy := os.Getenv(EnvLegacyToken); legacy != "" {
			l.Debug("Found bot token in legacy environment variable", slog.String("key", EnvLegacyToken))
			BotToken = legacy
		}
	} else {
		l.Debug("Found bot token in environment", slog.String("key", EnvBotToken))
	}

	if BotToken == "" {
		return ErrMissingToken
	}

	ApplicationId = os.Getenv(EnvApplicationId)
	DevGuildId = os.Getenv(EnvDevGuildId)

	SettingsBackend = strings.ToLower(strings.TrimSpace(os.Getenv(EnvSettingsBackend)))
	if SettingsBackend == "" {
		SettingsBackend = BackendMemory
		l.Info("No settings backend provided, guild configurations will not survive a restart",
			slog.String("key", EnvSettingsBackend))
	}

	MongoUri = os.Getenv(EnvMongoUri)
	MongoDatabase = valueOr(EnvMongoDatabase, defaultMongoDatabase)
	RedisAddr = os.Getenv(EnvRedisAddr)
	RedisPassword = os.Getenv(EnvRedisPassword)

	switch SettingsBackend {
	case BackendMemory:
	case BackendMongo:
		if MongoUri == "" {
			return fmt.Errorf("%s is required for the %s backend", EnvMongoUri, BackendMongo)
		}
	case BackendRedis:
		if RedisAddr == "" {
			return fmt.Errorf("%s is required for the %s backend", EnvRedisAddr, BackendRedis)
		}
	default:
		return fmt.Errorf("unknown settings backend %q", SettingsBackend)
	}

	RedisDb = 0
	if raw := os.Getenv(EnvRedisDb); raw != "" {
		db, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", EnvRedisDb, err)
		}
		RedisDb = db
	}

	AmqpUrl = os.Getenv(EnvAmqpUrl)
	AmqpExchange = valueOr(EnvAmqpExchange, defaultAmqpExchange)

	DeleteGracePeriod = defaultDeleteGracePeriod
	if raw := os.Getenv(EnvDeleteGracePeriod); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", EnvDeleteGracePeriod, err)
		} else if d <= 0 {
			return fmt.Errorf("%s must be positive", EnvDeleteGracePeriod)
		}
		DeleteGracePeriod = d
	}

	if envMonitoringPort := os.Getenv(EnvMonitoringPort); envMonitoringPort != "" {
		l.Debug("Found monitoring port in environment", slog.String("key", EnvMonitoringPort))
		MonitoringPort = envMonitoringPort
	} else {
		MonitoringPort = defaultMonitoringPort
		l.Info("No monitoring port provided in environment, defaulting to 8080", slog.String("key", EnvMonitoringPort))
	}

	l.Debug("Configuration parsed",
		slog.String("settings_backend", SettingsBackend),
		slog.Bool("events_enabled", AmqpUrl != ""),
		slog.Duration("delete_grace_period", DeleteGracePeriod),
	)
	return nil
}

func valueOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
