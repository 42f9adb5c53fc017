package llm

import "strings"

// Model describes a chat model known to work with quest generation.
type Model struct {
	ID         string   // Canonical model ID (e.g., "gemini-3-flash-preview")
	ProviderID string   // Internal provider ID (e.g., "gemini")
	Aliases    []string // Alternative IDs including dated versions
	IsDefault  bool     // Whether this is the default model for its provider
}

// ModelRegistry lists the models Questifier has been tried with.
// Unknown models are still accepted; the registry only drives defaults and inference.
var ModelRegistry = []Model{
	{ID: "gemini-3-flash-preview", ProviderID: ProviderGemini, IsDefault: true},
	{ID: "gemini-2.5-flash", ProviderID: ProviderGemini},
	{ID: "gemini-2.5-pro", ProviderID: ProviderGemini},

	{ID: "gpt-5-mini", ProviderID: ProviderOpenAI, Aliases: []string{"gpt-5-mini-2025-08-07"}, IsDefault: true},
	{ID: "gpt-4o-mini", ProviderID: ProviderOpenAI, Aliases: []string{"gpt-4o-mini-2024-07-18"}},

	{ID: "claude-haiku-4-5", ProviderID: ProviderAnthropic, IsDefault: true},
	{ID: "claude-sonnet-4-5", ProviderID: ProviderAnthropic},

	{ID: "llama3.2", ProviderID: ProviderOllama, IsDefault: true},
}

// modelIndex is built at init time for fast lookups
var modelIndex map[string]*Model

func init() {
	buildModelIndex()
}

func buildModelIndex() {
	modelIndex = make(map[string]*Model)
	for i := range ModelRegistry {
		m := &ModelRegistry[i]
		modelIndex[m.ID] = m
		for _, alias := range m.Aliases {
			modelIndex[alias] = m
		}
	}
}

// GetModel returns the model definition for a given model ID or alias.
// Returns nil if the model is not found.
func GetModel(modelID string) *Model {
	return modelIndex[modelID]
}

// GetDefaultModelID returns the default model ID for a provider.
func GetDefaultModelID(providerID string) string {
	for i := range ModelRegistry {
		m := &ModelRegistry[i]
		if m.ProviderID != providerID || !m.IsDefault {
			continue
		}
		// Return the dated version for OpenAI (API compatibility)
		if providerID == ProviderOpenAI && len(m.Aliases) > 0 {
			return m.Aliases[0]
		}
		return m.ID
	}
	return ""
}

// InferProvider attempts to determine the provider from a model name.
// Returns the provider ID and true if inference succeeded.
func InferProvider(modelID string) (string, bool) {
	if m := GetModel(modelID); m != nil {
		return m.ProviderID, true
	}

	switch {
	case strings.HasPrefix(modelID, "gemini-"):
		return ProviderGemini, true
	case strings.HasPrefix(modelID, "gpt-"), strings.HasPrefix(modelID, "o3-"), strings.HasPrefix(modelID, "o4-"):
		return ProviderOpenAI, true
	case strings.HasPrefix(modelID, "claude-"):
		return ProviderAnthropic, true
	case strings.HasPrefix(modelID, "llama"), strings.HasPrefix(modelID, "mistral"), strings.HasPrefix(modelID, "qwen"), strings.HasPrefix(modelID, "phi"):
		return ProviderOllama, true
	}

	return "", false
}
