package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Jacobbrewer1/artemis/pkg/dataaccess"
	"github.com/alexliesenfeld/health"
)

func (a *App) statusListener(component string) func(ctx context.Context, name string, state health.CheckState) {
	return func(ctx context.Context, name string, state health.CheckState) {
		a.Info(component+" health check status changed",
			slog.String("name", name),
			slog.String("state", string(state.Status)),
		)
	}
}

func (a *App) healthCheck() http.HandlerFunc {
	opts := []health.CheckerOption{
		// Set a TTL of 1 second for the results of the checks.
		health.WithCacheDuration(1 * time.Second),

		// Set a timeout of 2 seconds for the checks.
		health.WithTimeout(2 * time.Second),

		// Monitor the health of the Discord API.
		health.WithPeriodicCheck(15*time.Second, 5*time.Second, health.Check{
			Name: "Discord_API",
			Check: func(ctx context.Context) error {
				if _, err := a.dg.GatewayBot(); err != nil {
					return fmt.Errorf("failed to ping Discord API: %w", err)
				}
				return nil
			},
			Timeout:        3 * time.Second,
			StatusListener: a.statusListener("Discord API"),
		}),
	}

	// The memory store and the nop publisher have nothing to ping.
	if p, ok := a.store.(dataaccess.Pinger); ok {
		opts = append(opts, a.pingCheck("Settings_Store", "Settings store", p))
	}
	if p, ok := a.publisher.(dataaccess.Pinger); ok {
		opts = append(opts, a.pingCheck("Event_Stream", "Event stream", p))
	}

	return health.NewHandler(health.NewChecker(opts...))
}

func (a *App) pingCheck(name, component string, p dataaccess.Pinger) health.CheckerOption {
	return health.WithCheck(health.Check{
		Name: name,
		Check: func(ctx context.Context) error {
			if err := p.Ping(ctx); err != nil {
				return fmt.Errorf("%s is unavailable: %w", strings.ToLower(component), err)
			}
			return nil
		},
		Timeout:        2 * time.Second,
		StatusListener: a.statusListener(component),
	})
}
