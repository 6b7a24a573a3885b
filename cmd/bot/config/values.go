package config

import "time"

const (
	// AppName is the name of the application.
	AppName = "artemis"

	// EnvBotToken is the environment variable for the bot token.
	EnvBotToken = `BOT_TOKEN`

	// EnvLegacyToken is read when BOT_TOKEN is not set.
	EnvLegacyToken = `TOKEN`

	// EnvApplicationId is the environment variable for the application ID.
	EnvApplicationId = `APPLICATION_ID`

	// EnvDevGuildId is the environment variable for the guild that commands are registered in during development.
	EnvDevGuildId = `DEV_GUILD_ID`

	// EnvSettingsBackend is the environment variable for where guild configurations are stored.
	EnvSettingsBackend = `SETTINGS_BACKEND`

	// EnvMongoUri is the environment variable for the MongoDB URI.
	EnvMongoUri = `MONGO_URI`

	// EnvMongoDatabase is the environment variable for the MongoDB database.
	EnvMongoDatabase = `MONGO_DATABASE`

	// EnvRedisAddr is the environment variable for the Redis address.
	EnvRedisAddr = `REDIS_ADDR`

	// EnvRedisPassword is the environment variable for the Redis password.
	EnvRedisPassword = `REDIS_PASSWORD`

	// EnvRedisDb is the environment variable for the Redis database number.
	EnvRedisDb = `REDIS_DB`

	// EnvAmqpUrl is the environment variable for the AMQP broker that lifecycle events are published to.
	EnvAmqpUrl = `AMQP_URL`

	// EnvAmqpExchange is the environment variable for the exchange that lifecycle events are published to.
	EnvAmqpExchange = `AMQP_EXCHANGE`

	// EnvDeleteGracePeriod is the environment variable for the delay before a ticket is deleted.
	EnvDeleteGracePeriod = `DELETE_GRACE_PERIOD`

	// EnvMonitoringPort is the environment variable for the monitoring port.
	EnvMonitoringPort = `MONITORING_PORT`
)

// Settings backends.
const (
	BackendMemory = "memory"
	BackendMongo  = "mongo"
	BackendRedis  = "redis"
)

const (
	defaultMongoDatabase     = "artemis"
	defaultAmqpExchange      = "artemis.tickets"
	defaultDeleteGracePeriod = 5 * time.Second
	defaultMonitoringPort    = "8080"
)

var (
	// BotToken is the token for the bot.
	BotToken string

	// ApplicationId is the ID of the application. It is taken from the ready event when empty.
	ApplicationId string

	// DevGuildId is the guild commands are registered in. Commands are registered globally when empty.
	DevGuildId string

	// SettingsBackend is where guild configurations are stored.
	SettingsBackend string

	// MongoUri is the URI for the MongoDB database.
	MongoUri string

	// MongoDatabase is the MongoDB database name.
	MongoDatabase string

	// RedisAddr is the address of the Redis server.
	RedisAddr string

	// RedisPassword is the password for the Redis server.
	RedisPassword string

	// RedisDb is the Redis database number.
	RedisDb int

	// AmqpUrl is the URL of the AMQP broker. Events are not published when empty.
	AmqpUrl string

	// AmqpExchange is the exchange events are published to.
	AmqpExchange string

	// DeleteGracePeriod is the delay between a delete request and the removal of the channel.
	DeleteGracePeriod time.Duration

	// MonitoringPort is the port for the monitoring server.
	MonitoringPort string
)
