package dataaccess

import (
	"context"
	"errors"

	"github.com/Jacobbrewer1/artemis/pkg/entities"
)

// ErrNotFound is returned when a guild has no ticket configuration.
var ErrNotFound = errors.New("guild configuration not found")

// SettingsStore holds the ticket configuration of every guild.
type SettingsStore interface {
	// Set overwrites the configuration for the guild in cfg.GuildID.
	Set(ctx context.Context, cfg *entities.GuildConfig) error

	// Get gets the configuration for a guild. ErrNotFound is returned if the guild has not been set up.
	Get(ctx context.Context, guildID string) (*entities.GuildConfig, error)
}

// Pinger is implemented by stores that talk to an external database.
type Pinger interface {
	// Ping checks that the database can be reached.
	Ping(ctx context.Context) error
}

// clone copies a configuration so callers never share a value held by a store.
func clone(cfg *entities.GuildConfig) *entities.GuildConfig {
	if cfg == nil {
		return nil
	}
	c := *cfg
	return &c
}
