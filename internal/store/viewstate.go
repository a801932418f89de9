package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"minagallery/internal/model"
)

const viewStateTTL = 24 * time.Hour

// ViewStateStore persists per-session gallery view state in redis.
type ViewStateStore struct {
	client *redis.Client
}

func NewViewStateStore(client *redis.Client) *ViewStateStore {
	return &ViewStateStore{client: client}
}

func viewStateKey(sessionID string) string {
	return "minagallery:view:" + sessionID
}

// Get returns defaults for a new or expired session.
func (s *ViewStateStore) Get(ctx context.Context, sessionID string) (model.ViewState, error) {
	defaults := model.ViewState{MotionFilter: model.MotionFilterAll}

	raw, err := s.client.Get(ctx, viewStateKey(sessionID)).Result()
	if err == redis.Nil {
		return defaults, nil
	}
	if err != nil {
		return defaults, fmt.Errorf("view state get: %w", err)
	}

	var state model.ViewState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		// Corrupted state falls back to defaults.
		return defaults, nil
	}

	if state.MotionFilter == "" {
		state.MotionFilter = model.MotionFilterAll
	}
	return state, nil
}

func (s *ViewStateStore) Put(ctx context.Context, sessionID string, state model.ViewState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("view state marshal: %w", err)
	}

	if err := s.client.Set(ctx, viewStateKey(sessionID), raw, viewStateTTL).Err(); err != nil {
		return fmt.Errorf("view state set: %w", err)
	}
	return nil
}
