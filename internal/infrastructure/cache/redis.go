package cache

import (
	"context"
	"fmt"
	"net"
	"time"

	"doctor-profile-service/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	dialTimeout  = 5 * time.Second
	readTimeout  = 2 * time.Second
	writeTimeout = 2 * time.Second
)

// NewRedisClient connects to Redis and pings it once. Timeouts are kept
// short because every cache read has a database fallback.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  dialTimeout,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}

	logrus.WithField("addr", addr).Info("Successfully connected to Redis")

	return client, nil
}
