package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"minagallery/internal/model"
)

const RecreateQueueKey = "minagallery:queue:recreate"

// QueueRecreateSink forwards recreate drafts to the generator over a
// redis queue.
type QueueRecreateSink struct {
	client *redis.Client
}

func NewQueueRecreateSink(client *redis.Client) *QueueRecreateSink {
	return &QueueRecreateSink{client: client}
}

type recreateEnvelope struct {
	AccountID string              `json:"account_id"`
	Draft     model.RecreateDraft `json:"draft"`
}

func (s *QueueRecreateSink) Recreate(ctx context.Context, accountID string, draft model.RecreateDraft) error {
	raw, err := json.Marshal(recreateEnvelope{AccountID: accountID, Draft: draft})
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}

	if err := s.client.LPush(ctx, RecreateQueueKey, raw).Err(); err != nil {
		return fmt.Errorf("queue draft: %w", err)
	}
	return nil
}
