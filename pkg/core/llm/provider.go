package llm

import (
	"context"
)

// Result is a completion returned by a provider. Token counts are whatever
// the provider's API reported; zero when the provider gives no usage data.
type Result struct {
	Text             string `json:"text"`
	Model            string `json:"model"`
	PromptTokens     int    `json:"prompt_tokens"`
	CompletionTokens int    `json:"completion_tokens"`
	TotalTokens      int    `json:"total_tokens"`
}

// Provider is the interface for all LLM providers.
type Provider interface {
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (*Result, error)
	// AdaptInstructions transforms raw instructions into model-specific formats
	AdaptInstructions(rawInstructions string) string
}

// Options recognized by every provider: "model" (string), "max_tokens" (int),
// "temperature" (float64), "api_key" (string). Unknown keys are ignored.

func optString(options map[string]interface{}, key, fallback string) string {
	if val, ok := options[key].(string); ok && val != "" {
		return val
	}
	return fallback
}

func optInt(options map[string]interface{}, key string, fallback int) int {
	switch val := options[key].(type) {
	case int:
		if val > 0 {
			return val
		}
	case float64:
		if val > 0 {
			return int(val)
		}
	}
	return fallback
}

func optFloat(options map[string]interface{}, key string, fallback float64) float64 {
	switch val := options[key].(type) {
	case float64:
		return val
	case int:
		return float64(val)
	}
	return fallback
}
