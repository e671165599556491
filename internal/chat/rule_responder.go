package chat

import (
	"context"
	"strings"
)

// Canned replies for the deterministic responder.
const (
	replyBooking = "I can help you book an appointment. We offer GP consultations, blood testing, IV therapy, weight management programs, PRP treatments, and medical facials. Which service interests you?"
	replyPricing = "Our prices start from £45 for GP consultations, £400 for blood tests, £295 for IV therapy, £349 for weight programs, and £475 for PRP treatments."
	replyHours   = "We're open Monday-Friday 8am-8pm, Saturday 9am-5pm, and Sunday 10am-4pm."
	replyGeneric = "I'm here to help with your health needs. You can ask about our services, book appointments, or get health information. How can I assist you today?"
)

// RuleResponder is the deterministic keyword responder used whenever the
// oracle is unavailable. It implements LLMClient so the fallback wrapper
// can substitute it transparently.
type RuleResponder struct{}

// NewRuleResponder creates the deterministic responder.
func NewRuleResponder() *RuleResponder {
	return &RuleResponder{}
}

// Complete answers the last user message with the first matching canned
// reply. Keyword checks are case-insensitive substring matches over the
// whole message, in a fixed order.
func (r *RuleResponder) Complete(ctx context.Context, req LLMRequest) (LLMResponse, error) {
	var message string
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if req.Messages[i].Role == ChatRoleUser {
			message = req.Messages[i].Content
			break
		}
	}

	return LLMResponse{
		Text:   Respond(message),
		Source: SourceFallback,
	}, nil
}

// Respond maps a free-text message to a canned reply.
func Respond(message string) string {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "appointment") || strings.Contains(lower, "book"):
		return replyBooking
	case strings.Contains(lower, "price") || strings.Contains(lower, "cost"):
		return replyPricing
	case strings.Contains(lower, "hours") || strings.Contains(lower, "open"):
		return replyHours
	default:
		return replyGeneric
	}
}

var _ LLMClient = (*RuleResponder)(nil)
