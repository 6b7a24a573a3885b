// Package monitoring holds the process metrics of the bot.
package monitoring

import (
	"strconv"
	"time"

	"github.com/Jacobbrewer1/artemis/cmd/bot/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// unknownEvent labels gateway events that carry neither a type nor an operation.
const unknownEvent = "UNKNOWN"

var (
	gatewayEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.AppName,
			Name:      "total_discord_events",
			Help:      "Total number of gateway events",
		},
		[]string{"event"},
	)

	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.AppName,
			Name:      "http_total_requests",
			Help:      "Total number of http requests",
		},
		[]string{"path", "method", "status_code"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: config.AppName,
			Name:      "http_request_duration",
			Help:      "Duration of the http request",
		},
		[]string{"path", "method", "status_code"},
	)

	guilds = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: config.AppName,
			Name:      "total_discord_guilds",
			Help:      "Total number of discord guilds",
		},
	)

	interactionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: config.AppName,
			Name:      "discord_interaction_duration",
			Help:      "Duration of the discord interaction",
		},
		[]string{"interaction"},
	)

	interactionErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.AppName,
			Name:      "discord_interaction_errors",
			Help:      "Total number of failed discord interactions",
		},
		[]string{"interaction"},
	)
)

// GatewayEvent counts a gateway event by name.
func GatewayEvent(name string) {
	if name == "" {
		name = unknownEvent
	}
	gatewayEvents.WithLabelValues(name).Inc()
}

// HTTPRequest records a served http request.
func HTTPRequest(path, method string, status int, took time.Duration) {
	code := strconv.Itoa(status)
	httpRequests.WithLabelValues(path, method, code).Inc()
	httpDuration.WithLabelValues(path, method, code).Observe(took.Seconds())
}

// SetGuilds sets the number of guilds the bot is in.
func SetGuilds(n int) {
	guilds.Set(float64(n))
}

// Interaction starts timing an interaction. The returned function records the duration and, when failed is true,
// counts the interaction as an error.
func Interaction(name string) func(failed bool) {
	start := time.Now()
	return func(failed bool) {
		interactionDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
		if failed {
			interactionErrors.WithLabelValues(name).Inc()
		}
	}
}
