// Package monitoring holds the metrics of the settings stores.
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MongoLatency is the duration of Mongo queries.
	MongoLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "dataaccess_mongo_latency",
			Help: "Duration of Mongo queries",
		},
		[]string{"dal", "query", "database", "collection"},
	)

	// MongoTotalRequests is the total number of Mongo requests.
	MongoTotalRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataaccess_mongo_total_requests",
			Help: "Total number of Mongo requests",
		},
		[]string{"dal", "query", "database", "collection"},
	)

	// RedisLatency is the duration of Redis commands.
	RedisLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "dataaccess_redis_latency",
			Help: "Duration of Redis commands",
		},
		[]string{"dal", "query"},
	)

	// RedisTotalRequests is the total number of Redis commands.
	RedisTotalRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataaccess_redis_total_requests",
			Help: "Total number of Redis commands",
		},
		[]string{"dal", "query"},
	)
)

// TrackMongo counts a Mongo query and returns the function that records its duration.
//
//	defer monitoring.TrackMongo(dal, "get_guild_config", db, coll)()
func TrackMongo(dal, query, database, collection string) func() {
	MongoTotalRequests.WithLabelValues(dal, query, database, collection).Inc()
	t := prometheus.NewTimer(MongoLatency.WithLabelValues(dal, query, database, collection))
	return func() { t.ObserveDuration() }
}

// TrackRedis counts a Redis command and returns the function that records its duration.
func TrackRedis(dal, query string) func() {
	RedisTotalRequests.WithLabelValues(dal, query).Inc()
	t := prometheus.NewTimer(RedisLatency.WithLabelValues(dal, query))
	return func() { t.ObserveDuration() }
}
