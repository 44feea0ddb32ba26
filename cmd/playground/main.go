package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"promptlab/pkg/core/library"
	"promptlab/pkg/core/playground"
	"promptlab/pkg/core/store"
	"promptlab/pkg/core/technique"

	"github.com/joho/godotenv"
)

func main() {
	var (
		techniqueFlag = flag.String("technique", "zero-shot", "prompting technique tag (see -list)")
		inputFlag     = flag.String("input", "", "task to run through the technique")
		listFlag      = flag.Bool("list", false, "list supported techniques and exit")
		compareFlag   = flag.String("compare", "", "comma-separated technique tags to compare on the same input")
		providerFlag  = flag.String("provider", "", "override the configured provider")
		modelFlag     = flag.String("model", "", "override the configured model")
		tempFlag      = flag.Float64("temperature", 0, "sampling temperature (0 keeps the provider default)")
		maxTokFlag    = flag.Int("max-tokens", 0, "completion token cap (0 keeps the provider default)")
		templateFlag  = flag.String("template", "", "run a library template instead of raw input, e.g. translation.simple")
		varsFlag      = flag.String("vars", "", "template variables as key=value pairs, comma separated")
	)
	flag.Parse()

	if *listFlag {
		fmt.Println("Supported techniques:")
		for _, spec := range technique.All() {
			fmt.Printf("  %-18s %s\n", spec.Tag, spec.Description)
		}
		return
	}

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, assuming environment variables are set.")
	}

	input := *inputFlag
	if *templateFlag != "" {
		if err := library.LoadFromDirectory("resources"); err != nil {
			log.Fatalf("Error: failed to load template library: %v", err)
		}
		rendered, err := library.Get().Render(*templateFlag, parseVars(*varsFlag))
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
		input = rendered
	}
	if input == "" {
		log.Fatal("Error: -input (or -template) is required. Use -list to see techniques.")
	}

	cfg := playground.LoadConfig("config/models.yaml")
	mgr := playground.NewManager(cfg)
	pg := playground.New(mgr, store.NewFileStore("outputs"))

	options := map[string]interface{}{}
	if *providerFlag != "" {
		options["provider"] = *providerFlag
	}
	if *modelFlag != "" {
		options["model"] = *modelFlag
	}
	if *tempFlag > 0 {
		options["temperature"] = *tempFlag
	}
	if *maxTokFlag > 0 {
		options["max_tokens"] = *maxTokFlag
	}

	ctx := context.Background()

	if *compareFlag != "" {
		runCompare(ctx, pg, input, *compareFlag, options)
		return
	}

	tag := technique.Technique(*techniqueFlag)
	rec, err := pg.Run(ctx, tag, input, options)
	if err != nil {
		fmt.Printf("[ERROR] %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("=== %s via %s (%s) ===\n\n", rec.Technique, rec.Provider, rec.Model)
	if rec.SystemPrompt != "" {
		fmt.Printf("System prompt:\n%s\n\n", rec.SystemPrompt)
	}
	fmt.Printf("Prompt:\n%s\n\n", rec.UserPrompt)
	fmt.Printf("Response:\n%s\n\n", rec.Response)
	fmt.Printf("Tokens: %d (prompt %d, completion %d)  Cost: $%.6f\n",
		rec.TotalTokens, rec.PromptTokens, rec.CompletionTokens, rec.CostUSD)
	fmt.Printf("Saved run %s to outputs/\n", rec.ID)
}

func runCompare(ctx context.Context, pg *playground.Playground, input, tagList string, options map[string]interface{}) {
	var tags []technique.Technique
	for _, raw := range strings.Split(tagList, ",") {
		tags = append(tags, technique.Technique(strings.TrimSpace(raw)))
	}

	result := pg.Compare(ctx, input, tags, options)
	for _, entry := range result.Results {
		fmt.Printf("=== %s ===\n", entry.Technique)
		if entry.Error != "" {
			fmt.Printf("[ERROR] %s\n\n", entry.Error)
			continue
		}
		fmt.Printf("%s\n", entry.Response)
		fmt.Printf("(%d tokens, $%.6f)\n\n", entry.TotalTokens, entry.CostUSD)
	}
	fmt.Printf("Compared %d techniques  Total: %d tokens, $%.6f\n",
		result.TechniquesCompared, result.TotalTokens, result.TotalCostUSD)
}

func parseVars(raw string) map[string]interface{} {
	vars := map[string]interface{}{}
	if raw == "" {
		return vars
	}
	for _, pair := range strings.Split(raw, ",") {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) == 2 {
			vars[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
		}
	}
	return vars
}
