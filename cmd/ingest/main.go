package main

import (
	"context"
	"encoding/json"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"minagallery/db"
	"minagallery/internal/model"
	"minagallery/internal/repository"
)

// ingest drains raw record payloads from the redis queues and persists
// them as opaque jsonb rows.
func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	conn, err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer conn.Close()

	redisClient, err := db.ConnectRedis()
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer redisClient.Close()

	recordRepo := repository.NewRecordRepository(conn)
	ctx := context.Background()

	queues := []struct {
		key  string
		save func(accountID string, payload model.RawRecord) (int64, error)
	}{
		{db.GenerationQueueKey, recordRepo.SaveGeneration},
		{db.FeedbackQueueKey, recordRepo.SaveFeedback},
	}

	var saved, skipped, errors int

	for {
		idle := true

		for _, q := range queues {
			raw, err := db.PopFromQueue(ctx, redisClient, q.key, 2*time.Second)
			if err != nil {
				continue
			}
			idle = false

			var envelope struct {
				AccountID string          `json:"account_id"`
				Payload   model.RawRecord `json:"payload"`
			}
			if err := json.Unmarshal([]byte(raw), &envelope); err != nil || envelope.AccountID == "" || envelope.Payload == nil {
				slog.Warn("malformed ingest payload skipped", "queue", q.key, "error", err)
				if err := db.PushToQueue(ctx, redisClient, db.DeadLetterKey, raw); err != nil {
					slog.Error("error pushing to dead letter queue, payload lost", "queue", q.key, "error", err)
				}
				skipped++
				continue
			}

			id, err := q.save(envelope.AccountID, envelope.Payload)
			if err != nil {
				slog.Error("error saving record", "queue", q.key, "error", err, "account", envelope.AccountID)
				if err := db.PushToQueue(ctx, redisClient, db.DeadLetterKey, raw); err != nil {
					slog.Error("error pushing to dead letter queue, payload lost", "queue", q.key, "error", err)
				}
				errors++
				continue
			}

			saved++
			slog.Info("record ingested", "queue", q.key, "record_id", id, "account", envelope.AccountID)
		}

		if idle && saved+skipped+errors > 0 {
			backlog, _ := db.QueueLength(ctx, redisClient, db.DeadLetterKey)
			slog.Info("ingest batch complete", "saved", saved, "skipped", skipped, "errors", errors, "dead_letter", backlog)
			saved, skipped, errors = 0, 0, 0
		}
	}
}
