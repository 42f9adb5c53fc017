package llm

// Provider constants
const (
	// DefaultProvider is the default LLM provider
	DefaultProvider = ProviderGemini

	// ProviderGemini represents the Google Gemini API (google.golang.org/genai)
	ProviderGemini = "gemini"

	// ProviderOpenAI represents the OpenAI provider
	ProviderOpenAI = "openai"

	// ProviderAnthropic represents the Anthropic provider
	ProviderAnthropic = "anthropic"

	// ProviderOllama represents a local Ollama server
	ProviderOllama = "ollama"
)

// DefaultOllamaURL is the default URL for Ollama server
const DefaultOllamaURL = "http://localhost:11434"

// DefaultRequestTimeoutSeconds bounds a single quest generation call.
const DefaultRequestTimeoutSeconds = 60

// DefaultAnthropicMaxTokens is required by the Anthropic API; a quest fits easily.
const DefaultAnthropicMaxTokens = 2048

// DefaultModelForProvider returns the default model ID for a given provider.
// This is a convenience wrapper around GetDefaultModelID in models.go.
func DefaultModelForProvider(provider string) string {
	return GetDefaultModelID(provider)
}

// InferProviderFromModel attempts to determine the provider from a model name.
// This is a convenience wrapper around InferProvider in models.go.
func InferProviderFromModel(model string) (string, bool) {
	return InferProvider(model)
}

// RequiresAPIKey reports whether the provider authenticates with an API key.
func RequiresAPIKey(provider Provider) bool {
	return provider != ProviderOllama
}
