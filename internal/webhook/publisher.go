package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/shelter_guard/internal/models"
)

//go:generate mockgen -source=publisher.go -destination=mocks/publisher_mock.go -package=mocks

const (
	webhookQueueKey = "webhook_events"
)

type EventType string

const (
	EventBottleCreated     EventType = "bottle.created"
	EventBottleResponded   EventType = "bottle.responded"
	EventShelterRegistered EventType = "shelter.registered"
)

// WebhookEvent - событие для внешних интеграций
type WebhookEvent struct {
	Type      EventType              `json:"type"`
	AccountID uuid.UUID              `json:"account_id"`
	Timestamp time.Time              `json:"timestamp"`
	Bottle    *models.Bottle         `json:"bottle,omitempty"`
	Response  *models.BottleResponse `json:"response,omitempty"`
	Shelter   *models.Shelter        `json:"shelter,omitempty"`
}

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event WebhookEvent) error
}

// RedisWebhookPublisher кладет события в список Redis, откуда их забирает WebhookWorker
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event WebhookEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH + BRPOP в воркере дают FIFO
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
