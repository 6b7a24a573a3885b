package config

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// clearEnv blanks every variable read by Parse so the host environment does not leak into tests.
func clearEnv(t *testing.T) {
	for _, key := range []string{
		EnvBotToken, EnvLegacyToken, EnvApplicationId, EnvDevGuildId, EnvSettingsBackend, EnvMongoUri,
		EnvMongoDatabase, EnvRedisAddr, EnvRedisPassword, EnvRedisDb, EnvAmqpUrl, EnvAmqpExchange,
		EnvDeleteGracePeriod, EnvMonitoringPort,
	} {
		t.Setenv(key, "")
	}
}

func TestParse_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvBotToken, "token")

	require.NoError(t, Parse(testLogger()))
	require.Equal(t, "token", BotToken)
	require.Equal(t, BackendMemory, SettingsBackend)
	require.Equal(t, "artemis", MongoDatabase)
	require.Equal(t, "artemis.tickets", AmqpExchange)
	require.Equal(t, 5*time.Second, DeleteGracePeriod)
	require.Equal(t, "8080", MonitoringPort)
	require.Zero(t, RedisDb)
}

func TestParse_LegacyToken(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLegacyToken, "legacy")

	require.NoError(t, Parse(testLogger()))
	require.Equal(t, "legacy", BotToken)
}

func TestParse_MissingToken(t *testing.T) {
	clearEnv(t)
	require.ErrorIs(t, Parse(testLogger()), ErrMissingToken)
}

func TestParse_Backends(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{name: "mongo", env: map[string]string{EnvSettingsBackend: "mongo", EnvMongoUri: "mongodb://localhost"}},
		{name: "mongo without uri", env: map[string]string{EnvSettingsBackend: "mongo"}, wantErr: true},
		{name: "redis", env: map[string]string{EnvSettingsBackend: "Redis", EnvRedisAddr: "localhost:6379", EnvRedisDb: "2"}},
		{name: "redis without addr", env: map[string]string{EnvSettingsBackend: "redis"}, wantErr: true},
		{name: "redis bad db", env: map[string]string{EnvSettingsBackend: "redis", EnvRedisAddr: "x", EnvRedisDb: "two"}, wantErr: true},
		{name: "unknown", env: map[string]string{EnvSettingsBackend: "sqlite"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(EnvBotToken, "token")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			err := Parse(testLogger())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestParse_RedisDb(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvBotToken, "token")
	t.Setenv(EnvSettingsBackend, BackendRedis)
	t.Setenv(EnvRedisAddr, "localhost:6379")
	t.Setenv(EnvRedisDb, "3")

	require.NoError(t, Parse(testLogger()))
	require.Equal(t, BackendRedis, SettingsBackend)
	require.Equal(t, 3, RedisDb)
}

func TestParse_GracePeriod(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvBotToken, "token")
	t.Setenv(EnvDeleteGracePeriod, "30s")

	require.NoError(t, Parse(testLogger()))
	require.Equal(t, 30*time.Second, DeleteGracePeriod)

	t.Setenv(EnvDeleteGracePeriod, "soon")
	require.Error(t, Parse(testLogger()))

	t.Setenv(EnvDeleteGracePeriod, "-1s")
	require.Error(t, Parse(testLogger()))
}
