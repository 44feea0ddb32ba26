package llm

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"
)

// GeminiProvider implements the Provider interface for Google's Gemini models.
type GeminiProvider struct {
	Model string // e.g. "gemini-2.0-flash-exp"
}

var _ Provider = (*GeminiProvider)(nil)

// GenerateResponse sends a generateContent request to the Gemini API using the official GenAI SDK.
func (p *GeminiProvider) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (*Result, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if val, ok := options["api_key"].(string); ok && val != "" {
		apiKey = val
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY is not set", ErrMissingAPIKey)
	}

	model := p.Model
	if model == "" {
		model = "gemini-2.0-flash-exp"
	}
	model = optString(options, "model", model)

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create GenAI client: %v", ErrProvider, err)
	}

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(optFloat(options, "temperature", 0.7))),
		MaxOutputTokens: int32(optInt(options, "max_tokens", 1024)),
	}

	if systemPrompt != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{
				{Text: systemPrompt},
			},
		}
	}

	result, err := client.Models.GenerateContent(
		ctx,
		model,
		genai.Text(prompt),
		config,
	)
	if err != nil {
		return nil, classifyErr("gemini", err)
	}

	res := &Result{
		Text:  result.Text(),
		Model: model,
	}
	if result.UsageMetadata != nil {
		res.PromptTokens = int(result.UsageMetadata.PromptTokenCount)
		res.CompletionTokens = int(result.UsageMetadata.CandidatesTokenCount)
		res.TotalTokens = int(result.UsageMetadata.TotalTokenCount)
	}
	return res, nil
}

func (p *GeminiProvider) AdaptInstructions(raw string) string {
	return raw
}
