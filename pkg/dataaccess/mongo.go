package dataaccess

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Jacobbrewer1/artemis/pkg/dataaccess/monitoring"
	"github.com/Jacobbrewer1/artemis/pkg/entities"
	"github.com/Jacobbrewer1/artemis/pkg/logging"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	mongoDalName = "mongo_settings"

	// guildConfigCollection is the collection the guild configurations are stored in.
	guildConfigCollection = "guild_configs"
)

type mongoStore struct {
	// l is the logger.
	l *slog.Logger

	// client is the database.
	client *mongo.Client

	// database is the name of the database.
	database string
}

// NewMongoStore creates a settings store backed by MongoDB.
func NewMongoStore(l *slog.Logger, client *mongo.Client, database string) SettingsStore {
	l = l.With(slog.String(logging.KeyDal, mongoDalName))

	if client == nil {
		l.Warn("MongoDB is nil, this can cause a panic. Proceeding...")
	}

	return &mongoStore{
		l:        l,
		client:   client,
		database: database,
	}
}

func (m *mongoStore) Set(ctx context.Context, cfg *entities.GuildConfig) error {
	if cfg == nil {
		return errors.New("guild configuration is nil")
	}

	// Get the guild configuration collection.
	collection := m.client.Database(m.database).Collection(guildConfigCollection)

	defer monitoring.TrackMongo(mongoDalName, "set_guild_config", m.database, guildConfigCollection)()

	// Replace the whole document, a configuration is never partially updated.
	opts := options.Replace().SetUpsert(true)
	if _, err := collection.ReplaceOne(ctx, bson.M{"guild_id": cfg.GuildID}, cfg, opts); err != nil {
		return fmt.Errorf("error replacing guild configuration: %w", err)
	}
	return nil
}

func (m *mongoStore) Get(ctx context.Context, guildID string) (*entities.GuildConfig, error) {
	// Get the guild configuration collection.
	collection := m.client.Database(m.database).Collection(guildConfigCollection)

	defer monitoring.TrackMongo(mongoDalName, "get_guild_config", m.database, guildConfigCollection)()

	cfg := new(entities.GuildConfig)
	err := collection.FindOne(ctx, bson.M{"guild_id": guildID}).Decode(cfg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error getting guild configuration: %w", err)
	}
	return cfg, nil
}

func (m *mongoStore) Ping(ctx context.Context) error {
	defer monitoring.TrackMongo("health_check", "ping", "-", "-")()

	if err := m.client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return nil
}
