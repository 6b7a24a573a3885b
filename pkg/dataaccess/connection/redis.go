package connection

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ErrMissingAddr is returned when no Redis address was configured.
var ErrMissingAddr = errors.New("redis address is required")

// Redis describes how to reach the Redis settings store.
type Redis struct {
	Addr     string
	Password string
	DB       int
}

// Connect creates a Redis client and checks that the server answers.
func (r *Redis) Connect(ctx context.Context) (*redis.Client, error) {
	if r.Addr == "" {
		return nil, ErrMissingAddr
	}

	client := redis.NewClient(&redis.Options{
		Addr:        r.Addr,
		Password:    r.Password,
		DB:          r.DB,
		DialTimeout: connectTimeout,
	})

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("error pinging redis: %w", err)
	}
	return client, nil
}
