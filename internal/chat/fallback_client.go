package chat

import (
	"context"

	"github.com/thewellnesslondon/wellness-api/pkg/logging"
)

// FallbackLLMClient wraps a primary LLM client with a fallback responder.
// If the primary fails, it automatically retries with the fallback.
type FallbackLLMClient struct {
	primary  LLMClient
	fallback LLMClient
	logger   *logging.Logger
}

// NewFallbackLLMClient creates a new fallback-enabled LLM client.
// A nil primary means the fallback handles every request.
func NewFallbackLLMClient(primary, fallback LLMClient, logger *logging.Logger) *FallbackLLMClient {
	if logger == nil {
		logger = logging.Default()
	}
	return &FallbackLLMClient{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// Complete sends a completion request to the primary LLM.
// If it fails and a fallback is configured, retries with the fallback.
func (c *FallbackLLMClient) Complete(ctx context.Context, req LLMRequest) (LLMResponse, error) {
	if c.primary != nil {
		resp, err := c.primary.Complete(ctx, req)
		if err == nil {
			if resp.Source == "" {
				resp.Source = SourceOracle
			}
			return resp, nil
		}

		c.logger.Warn("primary LLM failed, attempting fallback",
			"error", err.Error(),
			"fallback_available", c.fallback != nil,
		)

		if c.fallback == nil {
			return LLMResponse{}, err
		}
	}

	if c.fallback == nil {
		return LLMResponse{}, ErrNoResponder
	}

	resp, err := c.fallback.Complete(ctx, req)
	if err != nil {
		c.logger.Error("fallback responder also failed", "error", err.Error())
		return LLMResponse{}, err
	}
	if resp.Source == "" {
		resp.Source = SourceFallback
	}
	return resp, nil
}

var _ LLMClient = (*FallbackLLMClient)(nil)
