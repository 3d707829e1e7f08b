package notify

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Publisher is the subset of the go-redis client used for realtime pushes.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisConfig defines connection parameters for Redis.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	UseTLS   bool
}

// NewRedisClient returns a go-redis client for cfg.
func NewRedisClient(cfg RedisConfig) *redis.Client {
	opts := &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.UseTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	return redis.NewClient(opts)
}

// RealtimePublisher pushes notifications to connected clients over Redis pub/sub.
type RealtimePublisher struct {
	client Publisher
	logger *slog.Logger
}

func NewRealtimePublisher(client Publisher, logger *slog.Logger) *RealtimePublisher {
	return &RealtimePublisher{client: client, logger: logger.With("component", "realtime")}
}

type realtimeMessage struct {
	Type    string    `json:"type"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	SentAt  time.Time `json:"sent_at"`
}

// Channel is the pub/sub channel a user's client subscribes to.
func Channel(userID uint) string {
	return fmt.Sprintf("user_%d_notifications", userID)
}

func (p *RealtimePublisher) Notify(ctx context.Context, userID uint, title, message string) error {
	payload, err := json.Marshal(realtimeMessage{
		Type:    "notification",
		Title:   title,
		Message: message,
		SentAt:  time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}

	receivers, err := p.client.Publish(ctx, Channel(userID), payload).Result()
	if err != nil {
		return fmt.Errorf("redis publish %s: %w", Channel(userID), err)
	}
	p.logger.DebugContext(ctx, "notification published", "user_id", userID, "receivers", receivers)
	return nil
}
