// README: Gemini provider via Google's official SDK; same error taxonomy as the Grok client.
package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"tripper/internal/apperr"
)

const defaultGeminiModel = "gemini-2.0-flash"

// GeminiProvider is the alternate model backend, selected with
// TRIPPER_AI_PROVIDER=gemini.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, apperr.New(apperr.KindConfig, apperr.MsgAPIKeyMissing,
			"GEMINI_API_KEY environment variable is not set", http.StatusInternalServerError)
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(defaultGeminiModel)
	// Force JSON response for structured parsing.
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(grokTemperature)
	model.SetMaxOutputTokens(grokMaxTokens)

	return &GeminiProvider{client: client, model: model}, nil
}

// Close cleans up the underlying client.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

func (p *GeminiProvider) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	fullPrompt := fmt.Sprintf("%s\n\n%s", systemPrompt, userPrompt)

	resp, err := p.model.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		return "", classifyGeminiError(err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", apperr.New(apperr.KindBadModelOutput, apperr.MsgBadModelOutput,
			"gemini returned no candidates", http.StatusInternalServerError)
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", apperr.New(apperr.KindBadModelOutput, apperr.MsgBadModelOutput,
			"gemini returned empty text parts", http.StatusInternalServerError)
	}
	return b.String(), nil
}

func classifyGeminiError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return apperr.Wrap(err, apperr.KindAuth, apperr.MsgAPIKeyInvalid,
				fmt.Sprintf("gemini authentication failed: %v", gerr.Message), http.StatusUnauthorized)
		case http.StatusTooManyRequests:
			return apperr.Wrap(err, apperr.KindRateLimit, apperr.MsgRateLimited,
				fmt.Sprintf("gemini rate limited: %v", gerr.Message), http.StatusTooManyRequests)
		default:
			return apperr.Wrap(err, apperr.KindUpstream, apperr.UpstreamMessage(gerr.Code),
				fmt.Sprintf("gemini returned %d: %v", gerr.Code, gerr.Message), gerr.Code)
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return apperr.Wrap(err, apperr.KindTimeout, apperr.MsgTimeout,
			fmt.Sprintf("gemini request timed out: %v", err), http.StatusRequestTimeout)
	}
	return apperr.Wrap(err, apperr.KindNetwork, apperr.MsgNetwork,
		fmt.Sprintf("gemini generation error: %v", err), http.StatusServiceUnavailable)
}
