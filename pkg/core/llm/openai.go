package llm

import (
	"context"
	"errors"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements the Provider interface for OpenAI chat models.
type OpenAIProvider struct {
	Model string // e.g. "gpt-4o-mini"
}

var _ Provider = (*OpenAIProvider)(nil)

func (p *OpenAIProvider) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (*Result, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if val, ok := options["api_key"].(string); ok && val != "" {
		apiKey = val
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: OPENAI_API_KEY is not set", ErrMissingAPIKey)
	}

	model := p.Model
	if model == "" {
		model = openai.GPT4oMini
	}
	model = optString(options, "model", model)

	client := openai.NewClient(apiKey)

	req := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   optInt(options, "max_tokens", 1024),
		Temperature: float32(optFloat(options, "temperature", 0.7)),
	}

	resp, err := client.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return nil, classifyStatus("openai", apiErr.HTTPStatusCode, apiErr.Message)
		}
		return nil, classifyErr("openai", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: openai returned no choices", ErrProvider)
	}

	return &Result{
		Text:             resp.Choices[0].Message.Content,
		Model:            resp.Model,
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		TotalTokens:      resp.Usage.TotalTokens,
	}, nil
}

func (p *OpenAIProvider) AdaptInstructions(raw string) string {
	return raw
}
