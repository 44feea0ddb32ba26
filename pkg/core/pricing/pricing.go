// Package pricing estimates the USD cost of a model call from its token
// usage. Prices are averaged input/output rates per 1M tokens, so estimates
// are indicative rather than invoice-accurate.
package pricing

import "math"

// perMillion holds averaged USD prices per 1M tokens, keyed by model.
var perMillion = map[string]float64{
	"gpt-4o":                   6.25,
	"gpt-4o-mini":              0.375,
	"gpt-4-turbo":              20.00,
	"gpt-4":                    45.00,
	"gpt-3.5-turbo":            1.00,
	"claude-3-5-haiku-latest":  2.40,
	"claude-3-5-sonnet-latest": 9.00,
	"gemini-2.0-flash-exp":     0.25,
	"gemini-1.5-pro":           6.25,
	"deepseek-chat":            0.55,
	"qwen-max":                 4.80,
}

// fallbackPerMillion is applied to models without a table entry.
const fallbackPerMillion = 1.00

// Estimate returns the approximate cost in USD for totalTokens consumed by
// model, rounded to 6 decimals.
func Estimate(model string, totalTokens int) float64 {
	rate, ok := perMillion[model]
	if !ok {
		rate = fallbackPerMillion
	}
	cost := float64(totalTokens) / 1_000_000 * rate
	return math.Round(cost*1e6) / 1e6
}

// Known reports whether model has an explicit table entry.
func Known(model string) bool {
	_, ok := perMillion[model]
	return ok
}
