package main

import (
	"fmt"

	"github.com/Jacobbrewer1/artemis/pkg/botinfo"
)

const (
	// PathMetrics is the path for metrics.
	PathMetrics = "/metrics"

	// PathHealth is the path for the health check.
	PathHealth = "/health"
)

// InfoPath is the path of the bot branding file.
type InfoPath string

func loadBotInfo(path InfoPath) (*botinfo.Info, error) {
	info, err := botinfo.Load(string(path))
	if err != nil {
		return nil, fmt.Errorf("error loading bot info: %w", err)
	}
	return info, nil
}
