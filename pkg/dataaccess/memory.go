package dataaccess

import (
	"context"
	"errors"
	"sync"

	"github.com/Jacobbrewer1/artemis/pkg/entities"
)

type memoryStore struct {
	mut sync.RWMutex

	// configs is the configuration per guild ID.
	configs map[string]entities.GuildConfig
}

// NewMemoryStore creates a settings store that lives for the lifetime of the process.
func NewMemoryStore() SettingsStore {
	return &memoryStore{
		configs: make(map[string]entities.GuildConfig),
	}
}

func (m *memoryStore) Set(_ context.Context, cfg *entities.GuildConfig) error {
	if cfg == nil {
		return errors.New("guild configuration is nil")
	}

	m.mut.Lock()
	defer m.mut.Unlock()

	m.configs[cfg.GuildID] = *cfg
	return nil
}

func (m *memoryStore) Get(_ context.Context, guildID string) (*entities.GuildConfig, error) {
	m.mut.RLock()
	defer m.mut.RUnlock()

	cfg, ok := m.configs[guildID]
	if !ok {
		return nil, ErrNotFound
	}
	return &cfg, nil
}
