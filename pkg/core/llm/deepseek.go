package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

// DeepSeekProvider calls the DeepSeek chat-completions API directly.
type DeepSeekProvider struct {
	Model string // e.g. "deepseek-chat"
}

var _ Provider = (*DeepSeekProvider)(nil)

type deepSeekRequest struct {
	Messages    []deepSeekMessage `json:"messages"`
	Model       string            `json:"model"`
	MaxTokens   int               `json:"max_tokens"`
	Stream      bool              `json:"stream"`
	Temperature float64           `json:"temperature"`
}

type deepSeekMessage struct {
	Content string `json:"content"`
	Role    string `json:"role"`
}

type deepSeekResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

func (p *DeepSeekProvider) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (*Result, error) {
	apiKey := os.Getenv("DEEPSEEK_API_KEY")
	if val, ok := options["api_key"].(string); ok && val != "" {
		apiKey = val
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: DEEPSEEK_API_KEY is not set", ErrMissingAPIKey)
	}

	model := p.Model
	if model == "" {
		model = "deepseek-chat"
	}
	model = optString(options, "model", model)

	reqBody := deepSeekRequest{
		Messages: []deepSeekMessage{
			{Content: systemPrompt, Role: "system"},
			{Content: prompt, Role: "user"},
		},
		Model:       model,
		MaxTokens:   optInt(options, "max_tokens", 1024),
		Stream:      false,
		Temperature: optFloat(options, "temperature", 0.7),
	}

	jsonBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("DEEPSEEK_MARSHAL_ERROR: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", "https://api.deepseek.com/chat/completions", bytes.NewBuffer(jsonBytes))
	if err != nil {
		return nil, fmt.Errorf("DEEPSEEK_REQ_CREATE_ERROR: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	client := &http.Client{}
	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: deepseek api call failed: %v", ErrProvider, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("DEEPSEEK_READ_BODY_ERROR: %v", err)
	}

	if res.StatusCode != http.StatusOK {
		return nil, classifyStatus("deepseek", res.StatusCode, string(body))
	}

	var response deepSeekResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("DEEPSEEK_UNMARSHAL_ERROR: %v", err)
	}

	if len(response.Choices) == 0 {
		return nil, fmt.Errorf("%w: DEEPSEEK_NO_CHOICES: %s", ErrProvider, string(body))
	}

	respModel := response.Model
	if respModel == "" {
		respModel = model
	}
	return &Result{
		Text:             response.Choices[0].Message.Content,
		Model:            respModel,
		PromptTokens:     response.Usage.PromptTokens,
		CompletionTokens: response.Usage.CompletionTokens,
		TotalTokens:      response.Usage.TotalTokens,
	}, nil
}

func (p *DeepSeekProvider) AdaptInstructions(raw string) string {
	return raw
}
