package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "chat_session:"
	sessionTTL       = 30 * 24 * time.Hour
)

// TurnMessage is one chat turn in a session transcript.
type TurnMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"` // "user" or "assistant"
	Content   string    `json:"content"`
	UserEmail string    `json:"user_email,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// SessionStore persists chat sessions as append-only Redis lists, one list
// per session id.
type SessionStore struct {
	redis    *redis.Client
	maxTurns int64
}

// NewSessionStore creates a session store; a nil client disables persistence.
func NewSessionStore(redisClient *redis.Client) *SessionStore {
	if redisClient == nil {
		return nil
	}
	return &SessionStore{
		redis:    redisClient,
		maxTurns: 200,
	}
}

// Append pushes one turn onto the session list.
func (s *SessionStore) Append(ctx context.Context, sessionID string, msg TurnMessage) error {
	if s == nil || s.redis == nil {
		return nil
	}
	if sessionID == "" {
		return errors.New("chat: session id required")
	}

	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now().UTC()
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("chat: marshal session turn: %w", err)
	}

	key := sessionKey(sessionID)
	pipe := s.redis.TxPipeline()
	pipe.RPush(ctx, key, data)
	pipe.Expire(ctx, key, sessionTTL)
	if s.maxTurns > 0 {
		pipe.LTrim(ctx, key, -s.maxTurns, -1)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("chat: append session turn: %w", err)
	}
	return nil
}

// List returns the most recent turns of a session, oldest first.
func (s *SessionStore) List(ctx context.Context, sessionID string, limit int64) ([]TurnMessage, error) {
	if s == nil || s.redis == nil {
		return nil, nil
	}
	if sessionID == "" {
		return nil, errors.New("chat: session id required")
	}

	start := int64(0)
	end := int64(-1)
	if limit > 0 {
		start = -limit
	}

	key := sessionKey(sessionID)
	raw, err := s.redis.LRange(ctx, key, start, end).Result()
	if err != nil {
		if err == redis.Nil {
			return []TurnMessage{}, nil
		}
		return nil, fmt.Errorf("chat: list session turns: %w", err)
	}

	out := make([]TurnMessage, 0, len(raw))
	for _, item := range raw {
		var msg TurnMessage
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			continue
		}
		out = append(out, msg)
	}
	return out, nil
}

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}
