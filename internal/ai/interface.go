// README: LLM provider contract; implementations exist for Grok (HTTP) and Gemini (SDK).
package ai

import "context"

// Provider issues a single chat completion. Implementations make exactly one
// outbound call per invocation and never retry; failures come back as
// *apperr.Error carrying a user-safe message and an internal detail.
type Provider interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
