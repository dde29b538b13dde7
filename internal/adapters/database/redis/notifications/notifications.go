package notifications

import (
	"context"
	"encoding/json"
	"time"

	"github.com/agreetime/agreetime-backend/internal/domain/entity"
	"github.com/redis/go-redis/v9"
)

// Publisher fans persisted notifications out on a redis channel for the
// delivery workers (push/e-mail gateways) to pick up. Delivery is
// fire-and-forget from the core's perspective.
type Publisher struct {
	client  *redis.Client
	channel string
}

func NewPublisher(client *redis.Client, channel string) *Publisher {
	return &Publisher{
		client:  client,
		channel: channel,
	}
}

type message struct {
	ID          string    `json:"id"`
	RecipientID string    `json:"recipient_id"`
	EventID     *string   `json:"event_id,omitempty"`
	Type        string    `json:"type"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}

func (p *Publisher) Publish(ctx context.Context, notification *entity.Notification) error {
	body, err := json.Marshal(message{
		ID:          notification.ID,
		RecipientID: notification.RecipientID,
		EventID:     notification.EventID,
		Type:        string(notification.Type),
		Message:     notification.Message,
		CreatedAt:   notification.CreatedAt,
	})
	if err != nil {
		return err
	}
	return p.client.Publish(ctx, p.channel, body).Err()
}
