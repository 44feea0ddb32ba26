package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicProvider implements the Provider interface for Claude models.
type AnthropicProvider struct {
	Model string // e.g. "claude-3-5-haiku-latest"
}

var _ Provider = (*AnthropicProvider)(nil)

func (p *AnthropicProvider) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (*Result, error) {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if val, ok := options["api_key"].(string); ok && val != "" {
		apiKey = val
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: ANTHROPIC_API_KEY is not set", ErrMissingAPIKey)
	}

	model := p.Model
	if model == "" {
		model = string(anthropic.ModelClaude3_5HaikuLatest)
	}
	model = optString(options, "model", model)

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	msg := anthropic.MessageNewParams{
		Model:       anthropic.F(anthropic.Model(model)),
		MaxTokens:   anthropic.Int(int64(optInt(options, "max_tokens", 1024))),
		Temperature: anthropic.F(optFloat(options, "temperature", 0.7)),
		System: anthropic.F([]anthropic.TextBlockParam{
			anthropic.NewTextBlock(systemPrompt),
		}),
		Messages: anthropic.F([]anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		}),
	}

	resp, err := client.Messages.New(ctx, msg)
	if err != nil {
		return nil, classifyErr("anthropic", err)
	}

	if len(resp.Content) == 0 {
		return nil, fmt.Errorf("%w: anthropic returned empty content", ErrProvider)
	}

	in := int(resp.Usage.InputTokens)
	out := int(resp.Usage.OutputTokens)
	return &Result{
		Text:             resp.Content[0].Text,
		Model:            model,
		PromptTokens:     in,
		CompletionTokens: out,
		TotalTokens:      in + out,
	}, nil
}

func (p *AnthropicProvider) AdaptInstructions(raw string) string {
	return raw
}
