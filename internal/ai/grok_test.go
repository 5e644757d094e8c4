// README: Grok client tests against a fake upstream; verifies the error taxonomy end to end.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tripper/internal/apperr"
)

const testKey = "xai-test-key-0123456789"

// newTestProvider points a provider at a fake upstream.
func newTestProvider(t *testing.T, handler http.HandlerFunc) *GrokProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	p := NewGrokProvider(testKey, "")
	p.baseURL = srv.URL
	return p
}

func chatReply(content string) string {
	body, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	})
	return string(body)
}

func TestGrokComplete_Success(t *testing.T) {
	var gotAuth string
	var gotReq grokChatRequest
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(chatReply(`{"ok":true}`)))
	})

	out, err := p.Complete(context.Background(), "system text", "user text")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if out != `{"ok":true}` {
		t.Errorf("content = %q", out)
	}
	if gotAuth != "Bearer "+testKey {
		t.Errorf("auth header = %q", gotAuth)
	}
	if gotReq.Model != DefaultGrokModel {
		t.Errorf("model = %q, want %q", gotReq.Model, DefaultGrokModel)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" || gotReq.Messages[1].Role != "user" {
		t.Errorf("messages = %+v", gotReq.Messages)
	}
	if gotReq.Temperature != grokTemperature || gotReq.MaxTokens != grokMaxTokens {
		t.Errorf("temperature/max_tokens = %g/%d", gotReq.Temperature, gotReq.MaxTokens)
	}
}

func TestGrokComplete_MissingKey(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	p := NewGrokProvider("", "")
	p.baseURL = srv.URL

	_, err := p.Complete(context.Background(), "s", "u")
	assertKindStatus(t, err, apperr.KindConfig, http.StatusInternalServerError)
	if called {
		t.Error("missing key must not produce an outbound call")
	}
}

func TestGrokComplete_PlaceholderKey(t *testing.T) {
	p := NewGrokProvider("your_grok_api_key_here", "")
	_, err := p.Complete(context.Background(), "s", "u")
	assertKindStatus(t, err, apperr.KindConfig, http.StatusInternalServerError)
}

func TestGrokComplete_StatusMapping(t *testing.T) {
	tests := []struct {
		status     int
		body       string
		wantKind   apperr.Kind
		wantStatus int
	}{
		{401, `{"error":{"message":"bad key"}}`, apperr.KindAuth, 401},
		{429, `{"error":{"message":"slow down"}}`, apperr.KindRateLimit, 429},
		{503, `{"message":"maintenance"}`, apperr.KindUpstream, 503},
		{502, `gateway`, apperr.KindUpstream, 502},
		{500, `{"error":{"message":"boom"}}`, apperr.KindUpstream, 500},
	}
	for _, tt := range tests {
		p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
			_, _ = w.Write([]byte(tt.body))
		})
		_, err := p.Complete(context.Background(), "s", "u")
		assertKindStatus(t, err, tt.wantKind, tt.wantStatus)
	}
}

func TestGrokComplete_ModelNotFound(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"message":"model grok-9 not found"}}`))
	})
	_, err := p.Complete(context.Background(), "s", "u")
	assertKindStatus(t, err, apperr.KindUpstream, http.StatusNotFound)

	var ae *apperr.Error
	_ = errors.As(err, &ae)
	if ae.UserMessage != apperr.MsgModelUnavailable {
		t.Errorf("userMessage = %q, want model-unavailable", ae.UserMessage)
	}
}

func TestGrokComplete_EmptyChoices(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})
	_, err := p.Complete(context.Background(), "s", "u")
	assertKindStatus(t, err, apperr.KindBadModelOutput, http.StatusInternalServerError)
}

func TestGrokComplete_BlankContent(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chatReply("   ")))
	})
	_, err := p.Complete(context.Background(), "s", "u")
	assertKindStatus(t, err, apperr.KindBadModelOutput, http.StatusInternalServerError)
}

func TestGrokComplete_Timeout(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte(chatReply("late")))
	})
	p.httpClient = &http.Client{Timeout: 50 * time.Millisecond}

	_, err := p.Complete(context.Background(), "s", "u")
	assertKindStatus(t, err, apperr.KindTimeout, http.StatusRequestTimeout)
}

func TestGrokComplete_NetworkError(t *testing.T) {
	p := NewGrokProvider(testKey, "")
	p.baseURL = "http://127.0.0.1:1" // nothing listens here
	_, err := p.Complete(context.Background(), "s", "u")
	assertKindStatus(t, err, apperr.KindNetwork, http.StatusServiceUnavailable)
}

func assertKindStatus(t *testing.T, err error, kind apperr.Kind, status int) {
	t.Helper()
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("expected *apperr.Error, got %v", err)
	}
	if ae.Kind != kind {
		t.Errorf("kind = %s, want %s", ae.Kind, kind)
	}
	if ae.HTTPStatus != status {
		t.Errorf("status = %d, want %d", ae.HTTPStatus, status)
	}
}
