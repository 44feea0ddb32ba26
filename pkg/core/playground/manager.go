// Package playground orchestrates a demonstration run: format the prompt
// for a technique, send it to the configured provider, price the usage, and
// record the result.
package playground

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v2"

	"promptlab/pkg/core/llm"
)

// Config selects providers, loaded from config/models.yaml.
type Config struct {
	ActiveProvider string                     `yaml:"active_provider"`
	Techniques     map[string]TechniqueConfig `yaml:"techniques"`
}

// TechniqueConfig optionally overrides the provider or model per technique.
type TechniqueConfig struct {
	Provider    string `yaml:"provider"`
	Model       string `yaml:"model"`
	Description string `yaml:"description"`
}

// LoadConfig reads a yaml config file. A missing file yields the zero
// Config, which NewManager fills with defaults.
func LoadConfig(path string) Config {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("[WARNING] Config %s not readable (%v), using defaults\n", path, err)
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		fmt.Printf("[WARNING] Config %s not parseable (%v), using defaults\n", path, err)
	}
	return cfg
}

// Manager resolves which provider serves which technique.
type Manager struct {
	config    Config
	providers map[string]llm.Provider
}

func NewManager(config Config) *Manager {
	if config.ActiveProvider == "" {
		config.ActiveProvider = "openai"
	}
	return &Manager{
		config: config,
		providers: map[string]llm.Provider{
			"openai":    &llm.OpenAIProvider{},
			"anthropic": &llm.AnthropicProvider{},
			"gemini":    &llm.GeminiProvider{},
			"deepseek":  &llm.DeepSeekProvider{},
			"qwen":      &llm.QwenProvider{},
		},
	}
}

// NewManagerWithProviders builds a manager over an explicit provider map.
// Used by tests to substitute stubs.
func NewManagerWithProviders(config Config, providers map[string]llm.Provider) *Manager {
	if config.ActiveProvider == "" {
		for name := range providers {
			config.ActiveProvider = name
			break
		}
	}
	return &Manager{config: config, providers: providers}
}

// GetProvider resolves the provider for a technique: per-technique override
// first, then the global active provider.
func (m *Manager) GetProvider(techniqueTag string) (string, llm.Provider) {
	if tc, ok := m.config.Techniques[techniqueTag]; ok && tc.Provider != "" {
		if p, ok := m.providers[tc.Provider]; ok {
			return tc.Provider, p
		}
	}
	if p, ok := m.providers[m.config.ActiveProvider]; ok {
		return m.config.ActiveProvider, p
	}
	return "", nil
}

// GetProviderByName retrieves a provider instance by name.
func (m *Manager) GetProviderByName(name string) llm.Provider {
	return m.providers[name]
}

// ModelFor returns the configured model override for a technique, if any.
func (m *Manager) ModelFor(techniqueTag string) string {
	if tc, ok := m.config.Techniques[techniqueTag]; ok {
		return tc.Model
	}
	return ""
}

// SetGlobalProvider switches the active provider.
func (m *Manager) SetGlobalProvider(newProvider string) error {
	if _, ok := m.providers[newProvider]; !ok {
		return fmt.Errorf("provider %s not found", newProvider)
	}
	m.config.ActiveProvider = newProvider
	fmt.Printf("[CONFIG] Global provider set to: %s\n", newProvider)
	return nil
}

// GetActiveProvider returns the current global provider name.
func (m *Manager) GetActiveProvider() string {
	return m.config.ActiveProvider
}

// AvailableProviders lists provider names, sorted.
func (m *Manager) AvailableProviders() []string {
	names := make([]string, 0, len(m.providers))
	for name := range m.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
