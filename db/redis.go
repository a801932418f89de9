package db

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	GenerationQueueKey = "minagallery:queue:ingest:generation"
	FeedbackQueueKey   = "minagallery:queue:ingest:feedback"
	DeadLetterKey      = "minagallery:queue:failed"
)

func ConnectRedis() (*redis.Client, error) {
	redisURL := os.Getenv("REDIS_URL")

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	client := redis.NewClient(opt)

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		client.Close()
		return nil, err
	}

	return client, nil
}

func PushToQueue(ctx context.Context, client *redis.Client, queueKey string, data string) error {
	return client.LPush(ctx, queueKey, data).Err()
}

func PopFromQueue(ctx context.Context, client *redis.Client, queueKey string, timeout time.Duration) (string, error) {
	result, err := client.BRPop(ctx, timeout, queueKey).Result()
	if err != nil {
		return "", err
	}
	return result[1], nil
}

func QueueLength(ctx context.Context, client *redis.Client, queueKey string) (int64, error) {
	return client.LLen(ctx, queueKey).Result()
}
