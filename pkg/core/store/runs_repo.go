package store

import (
	"context"
	"fmt"
)

// RunsRepo handles Postgres storage of run records.
type RunsRepo struct{}

// NewRunsRepo creates a new repository instance.
func NewRunsRepo() *RunsRepo {
	return &RunsRepo{}
}

// EnsureSchema creates the runs table when it does not exist yet.
func (r *RunsRepo) EnsureSchema(ctx context.Context) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	query := `
		CREATE TABLE IF NOT EXISTS playground_runs (
			id TEXT PRIMARY KEY,
			technique TEXT NOT NULL,
			provider TEXT NOT NULL,
			model TEXT,
			input TEXT,
			system_prompt TEXT,
			user_prompt TEXT,
			response TEXT,
			prompt_tokens INT,
			completion_tokens INT,
			total_tokens INT,
			cost_usd DOUBLE PRECISION,
			created_at TIMESTAMPTZ
		);
	`
	if _, err := pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to ensure runs schema: %w", err)
	}
	return nil
}

// Save inserts one run record.
func (r *RunsRepo) Save(ctx context.Context, rec *RunRecord) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	query := `
		INSERT INTO playground_runs
			(id, technique, provider, model, input, system_prompt, user_prompt,
			 response, prompt_tokens, completion_tokens, total_tokens, cost_usd, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO NOTHING;
	`
	_, err := pool.Exec(ctx, query,
		rec.ID, rec.Technique, rec.Provider, rec.Model, rec.Input,
		rec.SystemPrompt, rec.UserPrompt, rec.Response,
		rec.PromptTokens, rec.CompletionTokens, rec.TotalTokens,
		rec.CostUSD, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	return nil
}

// ListRecent returns up to limit runs, newest first.
func (r *RunsRepo) ListRecent(ctx context.Context, limit int) ([]*RunRecord, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, technique, provider, model, input, system_prompt, user_prompt,
		       response, prompt_tokens, completion_tokens, total_tokens, cost_usd, created_at
		FROM playground_runs
		ORDER BY created_at DESC
		LIMIT $1;
	`
	rows, err := pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var records []*RunRecord
	for rows.Next() {
		var rec RunRecord
		if err := rows.Scan(
			&rec.ID, &rec.Technique, &rec.Provider, &rec.Model, &rec.Input,
			&rec.SystemPrompt, &rec.UserPrompt, &rec.Response,
			&rec.PromptTokens, &rec.CompletionTokens, &rec.TotalTokens,
			&rec.CostUSD, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}
