package playground

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	genai "github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"promptlab/pkg/core/llm"
	"promptlab/pkg/core/pricing"
	"promptlab/pkg/core/store"
	"promptlab/pkg/core/technique"
)

// Sampler produces one reasoning path at a given temperature. The
// self-consistency technique draws several samples and aggregates them.
type Sampler interface {
	Sample(ctx context.Context, prompt string, systemPrompt string, temperature float64) (*llm.Result, error)
}

// sampleTemperature gives the diverse-path default.
const sampleTemperature = 0.7

// defaultSamplePaths is the number of reasoning paths drawn when the caller
// does not specify one.
const defaultSamplePaths = 3

// GeminiSampler draws samples straight from the Gemini API.
type GeminiSampler struct {
	ModelName string
}

func NewGeminiSampler() *GeminiSampler {
	return &GeminiSampler{ModelName: "gemini-2.0-flash-exp"}
}

func (s *GeminiSampler) Sample(ctx context.Context, prompt string, systemPrompt string, temperature float64) (*llm.Result, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY is not set", llm.ErrMissingAPIKey)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", llm.ErrProvider, err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.ModelName)
	model.SetTemperature(float32(temperature))

	fullPrompt := fmt.Sprintf("%s\n\nTask: %s", systemPrompt, prompt)

	resp, err := model.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		return nil, fmt.Errorf("%w: gemini sampling failed: %v", llm.ErrProvider, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return &llm.Result{Text: "I have nothing to add.", Model: s.ModelName}, nil
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	result := &llm.Result{Text: sb.String(), Model: s.ModelName}
	if resp.UsageMetadata != nil {
		result.PromptTokens = int(resp.UsageMetadata.PromptTokenCount)
		result.CompletionTokens = int(resp.UsageMetadata.CandidatesTokenCount)
		result.TotalTokens = int(resp.UsageMetadata.TotalTokenCount)
	}
	return result, nil
}

// ProviderSampler adapts any Provider into a Sampler.
type ProviderSampler struct {
	Name     string
	Provider llm.Provider
}

func (s *ProviderSampler) Sample(ctx context.Context, prompt string, systemPrompt string, temperature float64) (*llm.Result, error) {
	return s.Provider.GenerateResponse(ctx, prompt, systemPrompt, map[string]interface{}{
		"temperature": temperature,
	})
}

// resolveSampler picks the sampling backend: an explicit override, the
// Gemini sampler when credentials exist, otherwise the active provider.
func (p *Playground) resolveSampler(tag technique.Technique) (string, Sampler, error) {
	if p.sampler != nil {
		return "sampler", p.sampler, nil
	}
	if os.Getenv("GEMINI_API_KEY") != "" {
		return "gemini", NewGeminiSampler(), nil
	}
	name, provider := p.mgr.GetProvider(string(tag))
	if provider == nil {
		return "", nil, fmt.Errorf("no provider available for sampling")
	}
	return name, &ProviderSampler{Name: name, Provider: provider}, nil
}

// runSelfConsistency draws several diverse reasoning paths for the same
// formatted prompt and aggregates them into a single response.
func (p *Playground) runSelfConsistency(ctx context.Context, tag technique.Technique, input string, fp technique.FormattedPrompt, options map[string]interface{}) (*store.RunRecord, error) {
	numPaths := optNum(options, "num_paths", defaultSamplePaths)

	providerName, sampler, err := p.resolveSampler(tag)
	if err != nil {
		return nil, err
	}

	var (
		paths       []string
		totalTokens int
		model       string
	)
	for i := 0; i < numPaths; i++ {
		result, err := sampler.Sample(ctx, fp.User, fp.System, sampleTemperature)
		if err != nil {
			return nil, err
		}
		paths = append(paths, result.Text)
		totalTokens += result.TotalTokens
		model = result.Model
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Self-Consistency Analysis (%d reasoning paths):\n\n", numPaths)
	for i, path := range paths {
		fmt.Fprintf(&sb, "--- Path %d ---\n%s\n\n", i+1, path)
	}
	sb.WriteString("--- Consensus ---\nMultiple reasoning paths generated. Review the different approaches above.")

	rec := &store.RunRecord{
		ID:           uuid.NewString(),
		Technique:    string(tag),
		Provider:     providerName,
		Model:        model,
		Input:        input,
		SystemPrompt: fp.System,
		UserPrompt:   fp.User,
		Response:     sb.String(),
		TotalTokens:  totalTokens,
		CostUSD:      pricing.Estimate(model, totalTokens),
		CreatedAt:    time.Now().UTC(),
	}
	p.persist(ctx, rec)
	return rec, nil
}
