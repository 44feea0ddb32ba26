// Package store persists playground run history. Every run is written as a
// JSON file under the outputs directory; when DATABASE_URL is configured the
// run is additionally inserted into Postgres for queryable history.
package store

import "time"

// RunRecord is one technique demonstration: the formatted prompt that was
// sent and the completion that came back, with usage and cost.
type RunRecord struct {
	ID               string    `json:"id"`
	Technique        string    `json:"technique"`
	Provider         string    `json:"provider"`
	Model            string    `json:"model"`
	Input            string    `json:"input"`
	SystemPrompt     string    `json:"system_prompt"`
	UserPrompt       string    `json:"user_prompt"`
	Response         string    `json:"response"`
	PromptTokens     int       `json:"prompt_tokens"`
	CompletionTokens int       `json:"completion_tokens"`
	TotalTokens      int       `json:"total_tokens"`
	CostUSD          float64   `json:"cost_usd"`
	CreatedAt        time.Time `json:"created_at"`
}
