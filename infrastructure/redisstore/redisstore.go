// Package redisstore holds the Redis-backed collaborators of the ingestion
// pipeline: the session cookie store, the seen canceled orders set and the
// notification queue. All of them are small wrappers over one shared
// connection, safe for concurrent use from overlapping job ticks.
package redisstore

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/goretsky-band/dodo-reports/internal/config"
)

type Connection struct {
	rdb *redis.Client
}

func NewConnection(ctx context.Context, cfg config.Redis) (*Connection, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Connection{rdb: rdb}, nil
}

func (c *Connection) Close() error {
	return c.rdb.Close()
}
