package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/thewellnesslondon/wellness-api/internal/observability/metrics"
	"github.com/thewellnesslondon/wellness-api/pkg/logging"
)

// systemPrompt is the fixed oracle instruction for every chat turn.
const systemPrompt = "You are a helpful medical assistant for The Wellness London. Provide helpful, accurate medical information but always recommend seeing a doctor for serious concerns."

const historyLimit = 20

// Service answers chat messages via the oracle with deterministic fallback,
// and appends each turn to the session transcript.
type Service struct {
	client    LLMClient
	sessions  *SessionStore
	signer    *SessionSigner
	timeout   time.Duration
	maxTokens int32
	metrics   *metrics.ClinicMetrics
	logger    *logging.Logger
}

// NewService creates a chat service. The client is usually a
// FallbackLLMClient so oracle outages degrade to canned replies.
func NewService(client LLMClient, sessions *SessionStore, signer *SessionSigner, timeout time.Duration, maxTokens int, m *metrics.ClinicMetrics, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	if signer == nil {
		signer = NewSessionSigner("")
	}
	if timeout <= 0 {
		timeout = 6 * time.Second
	}
	if maxTokens <= 0 {
		maxTokens = 200
	}
	return &Service{
		client:    client,
		sessions:  sessions,
		signer:    signer,
		timeout:   timeout,
		maxTokens: int32(maxTokens),
		metrics:   m,
		logger:    logger,
	}
}

// Reply is the outcome of one chat turn.
type Reply struct {
	Response  string
	SessionID string
	Timestamp time.Time
}

// Respond answers one chat message. A missing session id mints a new one;
// transcript writes are best-effort and never fail the turn.
func (s *Service) Respond(ctx context.Context, sessionID, message string) (*Reply, error) {
	if message == "" {
		return nil, ErrMissingMessage
	}
	if sessionID == "" {
		sessionID = s.signer.Mint()
	}

	s.logger.Info("chat message received", "session_id", sessionID, "message_prefix", truncate(message, 50))

	messages := s.history(ctx, sessionID)
	messages = append(messages, ChatMessage{Role: ChatRoleUser, Content: message})

	llmCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.Complete(llmCtx, LLMRequest{
		System:    []string{systemPrompt},
		Messages:  messages,
		MaxTokens: s.maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("chat: complete: %w", err)
	}

	now := time.Now().UTC()
	s.appendTurn(ctx, sessionID, ChatRoleUser, message, now)
	s.appendTurn(ctx, sessionID, ChatRoleAssistant, resp.Text, now)

	s.metrics.ObserveChatTurn(resp.Source)

	return &Reply{
		Response:  resp.Text,
		SessionID: sessionID,
		Timestamp: now,
	}, nil
}

// History returns the most recent turns of a session.
func (s *Service) History(ctx context.Context, sessionID string, limit int64) ([]TurnMessage, error) {
	return s.sessions.List(ctx, sessionID, limit)
}

func (s *Service) history(ctx context.Context, sessionID string) []ChatMessage {
	turns, err := s.sessions.List(ctx, sessionID, historyLimit)
	if err != nil {
		s.logger.Warn("failed to load session history", "error", err, "session_id", sessionID)
		return nil
	}
	out := make([]ChatMessage, 0, len(turns))
	for _, turn := range turns {
		out = append(out, ChatMessage{Role: turn.Role, Content: turn.Content})
	}
	return out
}

func (s *Service) appendTurn(ctx context.Context, sessionID, role, content string, ts time.Time) {
	if err := s.sessions.Append(ctx, sessionID, TurnMessage{
		Role:      role,
		Content:   content,
		Timestamp: ts,
	}); err != nil {
		s.logger.Warn("failed to append session turn", "error", err, "session_id", sessionID, "role", role)
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
