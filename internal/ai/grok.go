// README: Grok chat-completion client; maps transport and HTTP outcomes to the typed error taxonomy.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"tripper/internal/apperr"
	"tripper/internal/logger"
)

const grokAPIURL = "https://api.x.ai/v1/chat/completions"

// DefaultGrokModel is used when GROK_MODEL is not set.
// Known identifiers: "grok-2", "grok-2-latest", "grok-2-1212", "grok-beta".
const DefaultGrokModel = "grok-2"

const (
	grokTemperature = 0.7
	grokMaxTokens   = 4000
)

// GrokProvider talks to the x.ai chat-completions endpoint. The wire shape is
// OpenAI-compatible.
type GrokProvider struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewGrokProvider builds a provider. model may be empty to use the default.
// The key is validated lazily on each call so a misconfigured deployment
// fails with a typed error instead of at startup.
func NewGrokProvider(apiKey, model string) *GrokProvider {
	if model == "" {
		model = DefaultGrokModel
	}
	return &GrokProvider{
		apiKey:  apiKey,
		model:   model,
		baseURL: grokAPIURL,
		// Client-level timeout guards against stalled connections; context
		// cancellation is still honoured via NewRequestWithContext.
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

type grokMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type grokChatRequest struct {
	Model       string        `json:"model"`
	Messages    []grokMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type grokChatResponse struct {
	Choices []struct {
		Message grokMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends one request and returns the raw model text. No retries: a
// failed attempt is surfaced immediately.
func (p *GrokProvider) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if p.apiKey == "" {
		return "", apperr.New(apperr.KindConfig, apperr.MsgAPIKeyMissing,
			"GROK_API_KEY environment variable is not set", http.StatusInternalServerError)
	}
	if len(p.apiKey) < 10 || p.apiKey == "your_grok_api_key_here" {
		return "", apperr.New(apperr.KindConfig, apperr.MsgAPIKeyInvalid,
			"GROK_API_KEY appears to be invalid or placeholder", http.StatusInternalServerError)
	}

	reqBody, err := json.Marshal(grokChatRequest{
		Model: p.model,
		Messages: []grokMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: grokTemperature,
		MaxTokens:   grokMaxTokens,
	})
	if err != nil {
		return "", apperr.Wrap(err, apperr.KindInternal, apperr.MsgGeneric,
			fmt.Sprintf("marshal chat request: %v", err), http.StatusInternalServerError)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewReader(reqBody))
	if err != nil {
		return "", apperr.Wrap(err, apperr.KindInternal, apperr.MsgGeneric,
			fmt.Sprintf("build chat request: %v", err), http.StatusInternalServerError)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", p.classifyHTTPError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperr.Wrap(err, apperr.KindNetwork, apperr.MsgNetwork,
			fmt.Sprintf("read response body: %v", err), http.StatusServiceUnavailable)
	}

	var cr grokChatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", apperr.Wrap(err, apperr.KindBadModelOutput, apperr.MsgBadModelOutput,
			fmt.Sprintf("unmarshal chat response: %v", err), http.StatusInternalServerError)
	}
	if len(cr.Choices) == 0 {
		return "", apperr.New(apperr.KindBadModelOutput, apperr.MsgBadModelOutput,
			"chat API returned no choices", http.StatusInternalServerError)
	}
	content := cr.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", apperr.New(apperr.KindBadModelOutput, apperr.MsgBadModelOutput,
			"chat API returned empty content", http.StatusInternalServerError)
	}
	return content, nil
}

// classifyTransportError distinguishes timeouts from other network failures.
func classifyTransportError(err error) *apperr.Error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return apperr.Wrap(err, apperr.KindTimeout, apperr.MsgTimeout,
			fmt.Sprintf("request timed out: %v", err), http.StatusRequestTimeout)
	}
	return apperr.Wrap(err, apperr.KindNetwork, apperr.MsgNetwork,
		fmt.Sprintf("network error: %v", err), http.StatusServiceUnavailable)
}

// classifyHTTPError maps a non-200 provider response to a typed error,
// extracting the upstream detail when the body is JSON.
func (p *GrokProvider) classifyHTTPError(resp *http.Response) *apperr.Error {
	body, _ := io.ReadAll(resp.Body)
	detail := extractErrorDetail(body)

	logger.Get().Errorw("grok API error",
		"status", resp.StatusCode,
		"model", p.model,
		"detail", detail,
	)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return apperr.New(apperr.KindAuth, apperr.MsgAPIKeyInvalid,
			fmt.Sprintf("authentication failed: %s", detail), http.StatusUnauthorized)
	case http.StatusTooManyRequests:
		return apperr.New(apperr.KindRateLimit, apperr.MsgRateLimited,
			fmt.Sprintf("rate limited: %s", detail), http.StatusTooManyRequests)
	}

	lower := strings.ToLower(detail)
	if strings.Contains(lower, "model") &&
		(strings.Contains(lower, "not found") || strings.Contains(lower, "unavailable")) {
		return apperr.New(apperr.KindUpstream, apperr.MsgModelUnavailable,
			fmt.Sprintf("model error: %s", detail), resp.StatusCode)
	}

	return apperr.New(apperr.KindUpstream, apperr.UpstreamMessage(resp.StatusCode),
		fmt.Sprintf("grok API returned %d: %s", resp.StatusCode, detail), resp.StatusCode)
}

// extractErrorDetail pulls a message out of {"error":{"message":...}} or
// {"message":...} bodies; otherwise returns the raw text.
func extractErrorDetail(body []byte) string {
	var wrapped struct {
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil {
		if wrapped.Error != nil && wrapped.Error.Message != "" {
			return wrapped.Error.Message
		}
		if wrapped.Message != "" {
			return wrapped.Message
		}
	}
	return string(body)
}
