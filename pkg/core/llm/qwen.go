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

// QwenProvider calls Alibaba's native DashScope text-generation API.
type QwenProvider struct {
	Model string // e.g. "qwen-max"
}

var _ Provider = (*QwenProvider)(nil)

func (p *QwenProvider) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (*Result, error) {
	apiKey := os.Getenv("DASHSCOPE_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("QWEN_API_KEY")
	}
	if val, ok := options["api_key"].(string); ok && val != "" {
		apiKey = val
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: set DASHSCOPE_API_KEY or QWEN_API_KEY", ErrMissingAPIKey)
	}

	model := p.Model
	if model == "" {
		model = "qwen-max"
	}
	model = optString(options, "model", model)

	// Native DashScope API format.
	// See: https://help.aliyun.com/document_detail/2712532.html
	reqBody := map[string]interface{}{
		"model": model,
		"input": map[string]interface{}{
			"messages": []map[string]string{
				{"role": "system", "content": systemPrompt},
				{"role": "user", "content": prompt},
			},
		},
		"parameters": map[string]interface{}{
			"result_format": "message",
			"max_tokens":    optInt(options, "max_tokens", 1024),
			"temperature":   optFloat(options, "temperature", 0.7),
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal qwen request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", "https://dashscope.aliyuncs.com/api/v1/services/aigc/text-generation/generation", bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: qwen api call failed: %v", ErrProvider, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read qwen response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, classifyStatus("qwen", resp.StatusCode, string(body))
	}

	var response struct {
		Output struct {
			Choices []struct {
				Message struct {
					Content string `json:"content"`
				} `json:"message"`
			} `json:"choices"`
		} `json:"output"`
		Usage struct {
			InputTokens  int `json:"input_tokens"`
			OutputTokens int `json:"output_tokens"`
			TotalTokens  int `json:"total_tokens"`
		} `json:"usage"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse qwen response: %w", err)
	}

	if len(response.Output.Choices) == 0 {
		return nil, fmt.Errorf("%w: qwen returned no choices: %s", ErrProvider, string(body))
	}

	total := response.Usage.TotalTokens
	if total == 0 {
		total = response.Usage.InputTokens + response.Usage.OutputTokens
	}
	return &Result{
		Text:             response.Output.Choices[0].Message.Content,
		Model:            model,
		PromptTokens:     response.Usage.InputTokens,
		CompletionTokens: response.Usage.OutputTokens,
		TotalTokens:      total,
	}, nil
}

func (p *QwenProvider) AdaptInstructions(raw string) string {
	return raw
}
