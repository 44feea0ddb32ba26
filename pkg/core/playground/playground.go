package playground

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"promptlab/pkg/core/llm"
	"promptlab/pkg/core/pricing"
	"promptlab/pkg/core/store"
	"promptlab/pkg/core/technique"
)

// Playground runs technique demonstrations.
type Playground struct {
	mgr     *Manager
	files   *store.FileStore
	runs    *store.RunsRepo // nil when no database is configured
	sampler Sampler         // nil selects a default per run
}

// New creates a playground over a manager and a file store.
func New(mgr *Manager, files *store.FileStore) *Playground {
	return &Playground{mgr: mgr, files: files}
}

// Manager exposes the provider manager for the config endpoints.
func (p *Playground) Manager() *Manager {
	return p.mgr
}

// EnableDB turns on Postgres persistence in addition to the file store.
func (p *Playground) EnableDB(repo *store.RunsRepo) {
	p.runs = repo
}

// SetSampler overrides the self-consistency sampling backend.
func (p *Playground) SetSampler(s Sampler) {
	p.sampler = s
}

// Run formats input for a technique, sends it to the resolved provider and
// returns the recorded result. The technique is validated before the
// provider is touched, so a bad tag never costs a network call.
func (p *Playground) Run(ctx context.Context, tag technique.Technique, input string, options map[string]interface{}) (*store.RunRecord, error) {
	fp, err := technique.Format(tag, input)
	if err != nil {
		return nil, err
	}

	if tag == technique.SelfConsistency {
		return p.runSelfConsistency(ctx, tag, input, fp, options)
	}

	providerName, result, err := p.invoke(ctx, tag, fp, options)
	if err != nil {
		return nil, err
	}

	rec := p.record(tag, providerName, input, fp, result)
	p.persist(ctx, rec)
	return rec, nil
}

// invoke resolves the provider for a technique and executes the prompt.
func (p *Playground) invoke(ctx context.Context, tag technique.Technique, fp technique.FormattedPrompt, options map[string]interface{}) (string, *llm.Result, error) {
	options = withConfiguredModel(options, p.mgr.ModelFor(string(tag)))

	providerName := optStr(options, "provider")
	var provider llm.Provider
	if providerName != "" {
		provider = p.mgr.GetProviderByName(providerName)
	} else {
		providerName, provider = p.mgr.GetProvider(string(tag))
	}
	if provider == nil {
		return "", nil, fmt.Errorf("provider %q not found", providerName)
	}

	system := provider.AdaptInstructions(fp.System)
	result, err := provider.GenerateResponse(ctx, fp.User, system, options)
	if err != nil {
		return providerName, nil, err
	}
	return providerName, result, nil
}

func (p *Playground) record(tag technique.Technique, providerName, input string, fp technique.FormattedPrompt, result *llm.Result) *store.RunRecord {
	return &store.RunRecord{
		ID:               uuid.NewString(),
		Technique:        string(tag),
		Provider:         providerName,
		Model:            result.Model,
		Input:            input,
		SystemPrompt:     fp.System,
		UserPrompt:       fp.User,
		Response:         result.Text,
		PromptTokens:     result.PromptTokens,
		CompletionTokens: result.CompletionTokens,
		TotalTokens:      result.TotalTokens,
		CostUSD:          pricing.Estimate(result.Model, result.TotalTokens),
		CreatedAt:        time.Now().UTC(),
	}
}

// persist writes the record everywhere configured. Persistence failures are
// reported but never fail the run itself.
func (p *Playground) persist(ctx context.Context, rec *store.RunRecord) {
	if p.files != nil {
		if _, err := p.files.Save(rec); err != nil {
			fmt.Printf("[WARNING] Failed to save run to file: %v\n", err)
		}
	}
	if p.runs != nil {
		if err := p.runs.Save(ctx, rec); err != nil {
			fmt.Printf("[WARNING] Failed to save run to database: %v\n", err)
		}
	}
}

// History returns recent runs, preferring the database when configured.
func (p *Playground) History(ctx context.Context, limit int) ([]*store.RunRecord, error) {
	if p.runs != nil {
		return p.runs.ListRecent(ctx, limit)
	}
	if p.files != nil {
		return p.files.ListRecent(limit)
	}
	return nil, nil
}

func optStr(options map[string]interface{}, key string) string {
	if val, ok := options[key].(string); ok {
		return val
	}
	return ""
}

func optNum(options map[string]interface{}, key string, fallback int) int {
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

// withConfiguredModel merges the per-technique model override from config
// into the options, without clobbering an explicit request value.
func withConfiguredModel(options map[string]interface{}, model string) map[string]interface{} {
	if options == nil {
		options = map[string]interface{}{}
	}
	if model != "" && optStr(options, "model") == "" {
		options["model"] = model
	}
	return options
}
