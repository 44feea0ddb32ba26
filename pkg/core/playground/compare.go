package playground

import (
	"context"
	"math"

	"promptlab/pkg/core/technique"
)

// CompareEntry is one technique's outcome in a comparison.
type CompareEntry struct {
	Technique   string  `json:"technique"`
	Response    string  `json:"response,omitempty"`
	TotalTokens int     `json:"total_tokens"`
	CostUSD     float64 `json:"cost_usd"`
	Error       string  `json:"error,omitempty"`
}

// CompareResult aggregates the same input run across several techniques.
type CompareResult struct {
	Input              string         `json:"input"`
	TechniquesCompared int            `json:"techniques_compared"`
	Results            []CompareEntry `json:"results"`
	TotalTokens        int            `json:"total_tokens"`
	TotalCostUSD       float64        `json:"total_cost_usd"`
}

// Compare runs the same input through each technique in order. A failing
// technique is recorded in its entry and does not abort the rest.
func (p *Playground) Compare(ctx context.Context, input string, tags []technique.Technique, options map[string]interface{}) *CompareResult {
	out := &CompareResult{
		Input:              input,
		TechniquesCompared: len(tags),
	}

	for _, tag := range tags {
		entry := CompareEntry{Technique: string(tag)}

		if !technique.IsValid(tag) {
			entry.Error = "technique not found"
			out.Results = append(out.Results, entry)
			continue
		}

		rec, err := p.Run(ctx, tag, input, cloneOptions(options))
		if err != nil {
			entry.Error = err.Error()
			out.Results = append(out.Results, entry)
			continue
		}

		entry.Response = rec.Response
		entry.TotalTokens = rec.TotalTokens
		entry.CostUSD = rec.CostUSD
		out.TotalTokens += rec.TotalTokens
		out.TotalCostUSD += rec.CostUSD
		out.Results = append(out.Results, entry)
	}

	out.TotalCostUSD = math.Round(out.TotalCostUSD*1e6) / 1e6
	return out
}

// cloneOptions keeps per-technique option mutation (model overrides) from
// leaking between comparison entries.
func cloneOptions(options map[string]interface{}) map[string]interface{} {
	if options == nil {
		return nil
	}
	out := make(map[string]interface{}, len(options))
	for k, v := range options {
		out[k] = v
	}
	return out
}
