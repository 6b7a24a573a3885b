package logging

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	// KeyError is the key for an error attribute.
	KeyError = "err"

	// KeyDal is the key for the data access layer name.
	KeyDal = "dal"

	// KeyGuild is the key for a guild ID.
	KeyGuild = "guild_id"

	// KeyChannel is the key for a channel ID.
	KeyChannel = "channel_id"

	// KeyUser is the key for a user ID.
	KeyUser = "user_id"

	// KeyAction is the key for a ticket action or command name.
	KeyAction = "action"

	// keyApp is the key for the application name.
	keyApp = "app"
)

// EnvLogLevel is the environment variable for the log level.
const EnvLogLevel = `LOG_LEVEL`

// Name is the name of the application the logger is created for.
type Name string

// Config is the configuration for the common logger.
type Config struct {
	// appName is the name attached to every record.
	appName Name

	// level is the minimum level that will be written.
	level slog.Level

	// w is where the records are written to.
	w io.Writer
}

// NewConfig creates a logger configuration for the given application. The level is read from LOG_LEVEL and
// defaults to debug.
func NewConfig(appName Name) *Config {
	return &Config{
		appName: appName,
		level:   ParseLevel(os.Getenv(EnvLogLevel)),
		w:       os.Stdout,
	}
}

// WithWriter sets the writer the logger writes to.
func (c *Config) WithWriter(w io.Writer) *Config {
	c.w = w
	return c
}

// ParseLevel converts a level name into a slog level. Unknown names return debug.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}

// CommonLogger creates the JSON logger used across the application and sets it as the default logger.
func CommonLogger(c *Config) (*slog.Logger, error) {
	if c == nil {
		return nil, errors.New("logging config is nil")
	}
	if c.appName == "" {
		return nil, errors.New("application name is required")
	}

	w := c.w
	if w == nil {
		w = os.Stdout
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource: true,
		Level:     c.level,
	})

	l := slog.New(h).With(slog.String(keyApp, string(c.appName)))
	slog.SetDefault(l)
	return l, nil
}
