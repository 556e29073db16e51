// Package repository implements the data access layer.
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"culturebridge/internal/model"

	"github.com/go-redis/redis/v8"
)

const (
	// historyLimit caps how many turns a session keeps; older turns are
	// dropped from the front.
	historyLimit = 20
	historyTTL   = 7 * 24 * time.Hour
)

// ConversationRepository defines access to per-session chat history.
type ConversationRepository interface {
	GetHistory(ctx context.Context, sessionID string) ([]model.Message, error)
	AppendMessages(ctx context.Context, sessionID string, messages ...model.Message) error
	ClearHistory(ctx context.Context, sessionID string) error
}

type redisConversationRepository struct {
	redisClient *redis.Client
}

// NewConversationRepository creates a ConversationRepository backed by Redis.
func NewConversationRepository(redisClient *redis.Client) ConversationRepository {
	return &redisConversationRepository{redisClient: redisClient}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("conversation:%s", sessionID)
}

// GetHistory returns the stored turns for a session, oldest first. A
// session with no history yields an empty slice, not an error.
func (r *redisConversationRepository) GetHistory(ctx context.Context, sessionID string) ([]model.Message, error) {
	jsonData, err := r.redisClient.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return []model.Message{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation history: %w", err)
	}
	var messages []model.Message
	if err := json.Unmarshal([]byte(jsonData), &messages); err != nil {
		return nil, fmt.Errorf("failed to unmarshal conversation history: %w", err)
	}
	return messages, nil
}

// AppendMessages appends new turns to a session and refreshes its TTL.
func (r *redisConversationRepository) AppendMessages(ctx context.Context, sessionID string, messages ...model.Message) error {
	history, err := r.GetHistory(ctx, sessionID)
	if err != nil {
		return err
	}
	history = append(history, messages...)
	if len(history) > historyLimit {
		history = history[len(history)-historyLimit:]
	}
	jsonData, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("failed to marshal conversation history: %w", err)
	}
	if err := r.redisClient.Set(ctx, sessionKey(sessionID), jsonData, historyTTL).Err(); err != nil {
		return fmt.Errorf("failed to save conversation history: %w", err)
	}
	return nil
}

// ClearHistory removes a session's history.
func (r *redisConversationRepository) ClearHistory(ctx context.Context, sessionID string) error {
	if err := r.redisClient.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear conversation history: %w", err)
	}
	return nil
}
