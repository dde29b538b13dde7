package redis

import (
	"context"
	"fmt"

	"github.com/agreetime/agreetime-backend/internal/adapters/database/redis/notifications"
	"github.com/redis/go-redis/v9"
)

type Client struct {
	Notifications *notifications.Publisher
}

type Options struct {
	Host     string
	Port     string
	Password string
	Channel  string
}

func New(opts Options) (*Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", opts.Host, opts.Port),
		Password: opts.Password,
		DB:       0,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping notification storage: %w", err)
	}

	return &Client{
		Notifications: notifications.NewPublisher(client, opts.Channel),
	}, nil
}
