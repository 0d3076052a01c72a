package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/shelter_guard/internal/config"
	"github.com/sirupsen/logrus"
)

// popTimeout ограничивает BRPOP, чтобы воркер замечал отмену контекста
const popTimeout = 5 * time.Second

// WebhookWorker забирает события из очереди и доставляет их по WEBHOOK_URL
type WebhookWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

func NewWebhookWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *WebhookWorker {
	return &WebhookWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Run обрабатывает очередь до отмены контекста
func (w *WebhookWorker) Run(ctx context.Context) error {
	w.logger.Info("Starting webhook worker...")
	for {
		if ctx.Err() != nil {
			w.logger.Info("Stopping webhook worker.")
			return nil
		}

		result, err := w.redisClient.BRPop(ctx, popTimeout, webhookQueueKey).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) {
				continue
			}
			w.logger.WithError(err).Error("Failed to pop webhook event from Redis")
			sleepCtx(ctx, w.cfg.WebhookBaseDelay)
			continue
		}

		// result[0] - ключ, result[1] - значение
		payload := result[1]
		var event WebhookEvent
		if err := json.Unmarshal([]byte(payload), &event); err != nil {
			w.logger.WithError(err).Error("Failed to unmarshal webhook event from Redis")
			continue
		}

		if err := w.Deliver(ctx, event, []byte(payload)); err != nil {
			w.logger.WithError(err).WithField("event_type", event.Type).Error("Webhook event dropped")
		}
	}
}

// Deliver отправляет событие с экспоненциальной задержкой между попытками
func (w *WebhookWorker) Deliver(ctx context.Context, event WebhookEvent, rawPayload []byte) error {
	log := w.logger.WithFields(logrus.Fields{
		"event_type":       event.Type,
		"event_account_id": event.AccountID,
	})
	log.Debug("Processing webhook event...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping webhook delivery.")
		return nil
	}

	maxRetries := w.cfg.WebhookMaxRetries
	delay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		status, err := w.send(ctx, rawPayload)
		if err == nil && status >= 200 && status < 300 {
			log.Info("Webhook delivered successfully.")
			return nil
		}

		if err != nil {
			log.WithError(err).Warnf("Failed to send webhook. Retries left: %d", maxRetries-1-i)
		} else {
			log.Warnf("Webhook delivery failed with status code %d. Retries left: %d", status, maxRetries-1-i)
		}

		if i == maxRetries-1 {
			break
		}
		if !sleepCtx(ctx, delay) {
			return ctx.Err()
		}
		delay *= 2
	}

	return fmt.Errorf("failed to deliver webhook after %d attempts", maxRetries)
}

func (w *WebhookWorker) send(ctx context.Context, rawPayload []byte) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewReader(rawPayload))
	if err != nil {
		return 0, fmt.Errorf("create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Добавляем HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set("X-Webhook-Signature", generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

// sleepCtx ждет d или отмены контекста; false, если контекст отменен
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
