package webchat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thewellnesslondon/wellness-api/internal/chat"
	"github.com/thewellnesslondon/wellness-api/pkg/logging"
)

// mockResponder answers with a fixed reply and records calls.
type mockResponder struct {
	reply   string
	err     error
	history map[string][]chat.TurnMessage

	calls []string
}

func newMockResponder(reply string) *mockResponder {
	return &mockResponder{
		reply:   reply,
		history: make(map[string][]chat.TurnMessage),
	}
}

func (m *mockResponder) Respond(_ context.Context, sessionID, message string) (*chat.Reply, error) {
	m.calls = append(m.calls, message)
	if m.err != nil {
		return nil, m.err
	}
	return &chat.Reply{
		Response:  m.reply,
		SessionID: sessionID,
		Timestamp: time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
	}, nil
}

func (m *mockResponder) History(_ context.Context, sessionID string, limit int64) ([]chat.TurnMessage, error) {
	msgs := m.history[sessionID]
	if int64(len(msgs)) > limit {
		msgs = msgs[:limit]
	}
	return msgs, nil
}

func TestGenerateSessionID(t *testing.T) {
	s1 := generateSessionID()
	s2 := generateSessionID()
	assert.NotEmpty(t, s1)
	assert.NotEqual(t, s1, s2)
	assert.Len(t, s1, 32) // 16 bytes = 32 hex chars
}

func TestHandleMessage_HTTP(t *testing.T) {
	resp := newMockResponder("Hi there!")
	h := NewHandler(resp, []byte("// widget"), logging.New("error"))

	body := `{"session_id":"sess1","text":"Hello"}`
	req := httptest.NewRequest(http.MethodPost, "/webchat/message", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	h.HandleMessage(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var out map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "Hi there!", out["response"])
	assert.Equal(t, "sess1", out["session_id"])
	_, err := time.Parse(time.RFC3339, out["timestamp"])
	assert.NoError(t, err)

	require.Len(t, resp.calls, 1)
	assert.Equal(t, "Hello", resp.calls[0])
}

func TestHandleMessage_MissingText(t *testing.T) {
	h := NewHandler(newMockResponder(""), nil, logging.New("error"))

	body := `{"session_id":"sess1","text":"  "}`
	req := httptest.NewRequest(http.MethodPost, "/webchat/message", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	h.HandleMessage(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleMessage_GeneratesSessionID(t *testing.T) {
	h := NewHandler(newMockResponder("ok"), nil, logging.New("error"))

	body := `{"text":"Hi"}`
	req := httptest.NewRequest(http.MethodPost, "/webchat/message", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	h.HandleMessage(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var out map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.NotEmpty(t, out["session_id"])
}

func TestHandleMessage_ResponderError(t *testing.T) {
	resp := newMockResponder("")
	resp.err = errors.New("oracle down")
	h := NewHandler(resp, nil, logging.New("error"))

	body := `{"session_id":"sess1","text":"Hello"}`
	req := httptest.NewRequest(http.MethodPost, "/webchat/message", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.HandleMessage(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandleHistory(t *testing.T) {
	resp := newMockResponder("")
	resp.history["sess1"] = []chat.TurnMessage{
		{Role: "user", Content: "Hello"},
		{Role: "assistant", Content: "Hi there!"},
	}
	h := NewHandler(resp, nil, logging.New("error"))

	req := httptest.NewRequest(http.MethodGet, "/webchat/history?session=sess1", nil)
	w := httptest.NewRecorder()

	h.HandleHistory(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Messages []HistoryMessage `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out.Messages, 2)
	assert.Equal(t, "user", out.Messages[0].Role)
	assert.Equal(t, "Hello", out.Messages[0].Text)
	assert.Equal(t, "assistant", out.Messages[1].Role)
}

func TestHandleHistory_MissingSession(t *testing.T) {
	h := NewHandler(newMockResponder(""), nil, logging.New("error"))

	req := httptest.NewRequest(http.MethodGet, "/webchat/history", nil)
	w := httptest.NewRecorder()

	h.HandleHistory(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleWidgetJS(t *testing.T) {
	widgetContent := []byte("(function(){ /* widget */ })();")
	h := NewHandler(newMockResponder(""), widgetContent, logging.New("error"))

	req := httptest.NewRequest(http.MethodGet, "/webchat/widget.js", nil)
	w := httptest.NewRecorder()

	h.HandleWidgetJS(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/javascript", w.Header().Get("Content-Type"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, string(widgetContent), w.Body.String())
}

func TestHandleWidgetJS_Default(t *testing.T) {
	h := NewHandler(newMockResponder(""), nil, logging.New("error"))

	req := httptest.NewRequest(http.MethodGet, "/webchat/widget.js", nil)
	w := httptest.NewRecorder()

	h.HandleWidgetJS(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Body.String())
}
