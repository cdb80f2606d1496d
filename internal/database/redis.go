package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisPingTimeout = 10 * time.Second

// RedisClients splits the service's two Redis roles over separate
// connections: Queue carries booking-dispatch jobs and refresh tokens,
// PubSub carries the user-updates subscriptions feeding the websocket hub.
// Blocking subscribe traffic must never queue in front of BLPop/LPUSH.
type RedisClients struct {
	Queue  *redis.Client
	PubSub *redis.Client
}

func NewRedisClients(redisURL string) (*RedisClients, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	queue, err := connect(opt, "queue")
	if err != nil {
		return nil, err
	}

	pubsub, err := connect(opt, "pubsub")
	if err != nil {
		queue.Close()
		return nil, err
	}

	return &RedisClients{Queue: queue, PubSub: pubsub}, nil
}

func connect(opt *redis.Options, role string) (*redis.Client, error) {
	o := *opt
	client := redis.NewClient(&o)

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping Redis (%s): %w", role, err)
	}
	return client, nil
}

func (r *RedisClients) Close() {
	r.Queue.Close()
	r.PubSub.Close()
}
