// Package catalog holds the provider/model selection table. The workflow
// treats it as an opaque lookup supplied at construction: selections are
// validated against it but it is never mutated.
package catalog

import (
	"fmt"
	"sort"
	"strings"
)

type Model struct {
	ID    string `mapstructure:"id"`
	Label string `mapstructure:"label"`
}

type Provider struct {
	Label  string  `mapstructure:"label"`
	Models []Model `mapstructure:"models"`
}

type Catalog struct {
	providers map[string]Provider
}

func New(providers map[string]Provider) *Catalog {
	if providers == nil {
		providers = map[string]Provider{}
	}

	return &Catalog{providers: providers}
}

// Default returns the built-in provider table shipped with the backend.
func Default() *Catalog {
	return New(map[string]Provider{
		"openai": {
			Label: "OpenAI",
			Models: []Model{
				{ID: "gpt-4o", Label: "GPT-4o"},
				{ID: "gpt-4.1-mini", Label: "GPT-4.1 Mini"},
				{ID: "gpt-5-mini", Label: "GPT-5 Mini"},
				{ID: "gpt-5-nano", Label: "GPT-5 Nano"},
			},
		},
		"gpt4all": {
			Label: "GPT4All",
			Models: []Model{
				{ID: "Meta-Llama-3-8B-Instruct.Q4_0.gguf", Label: "LLaMA-3 8B Q4_0"},
				{ID: "Mistral-7B-Instruct.Q4_K_M.gguf", Label: "Mistral-7B Q4_K_M"},
			},
		},
		"gemini": {
			Label: "Gemini",
			Models: []Model{
				{ID: "gemini-1.5-flash", Label: "Gemini 1.5 Flash"},
				{ID: "gemini-2.0-pro", Label: "Gemini 2.0 Pro"},
			},
		},
	})
}

// Validate checks that the provider exists and the model belongs to it.
func (c *Catalog) Validate(provider, model string) error {
	provider = strings.TrimSpace(provider)
	model = strings.TrimSpace(model)

	if provider == "" {
		return fmt.Errorf("provider is required")
	}

	if model == "" {
		return fmt.Errorf("model is required")
	}

	entry, ok := c.providers[provider]
	if !ok {
		return fmt.Errorf("unknown provider %q (known: %s)", provider, strings.Join(c.Providers(), ", "))
	}

	for _, m := range entry.Models {
		if m.ID == model {
			return nil
		}
	}

	return fmt.Errorf("model %q does not belong to provider %q", model, provider)
}

// CompositeID joins provider and model into the selection unit the backend
// expects, "provider:model_id".
func CompositeID(provider, model string) string {
	return fmt.Sprintf("%s:%s", strings.TrimSpace(provider), strings.TrimSpace(model))
}

// Providers lists the known provider keys in stable order.
func (c *Catalog) Providers() []string {
	keys := make([]string, 0, len(c.providers))
	for key := range c.providers {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}

// Models lists model ids for the given provider, nil when unknown.
func (c *Catalog) Models(provider string) []string {
	entry, ok := c.providers[provider]
	if !ok {
		return nil
	}

	ids := make([]string, 0, len(entry.Models))
	for _, m := range entry.Models {
		ids = append(ids, m.ID)
	}

	return ids
}
