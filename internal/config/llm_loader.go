package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/josephgoksu/Questifier/internal/llm"
	"github.com/josephgoksu/Questifier/prompts"
	"github.com/spf13/viper"
)

// LoadLLMConfig loads LLM configuration from Viper and Environment variables.
// It handles precedence: Explicit Viper Config > Environment Variables > Defaults.
// It does NOT handle interactive prompts (that belongs in the CLI layer).
func LoadLLMConfig() (llm.Config, error) {
	// 1. Provider
	provider := viper.GetString(KeyProvider)
	if provider == "" {
		provider = llm.DefaultProvider
	}

	llmProvider, err := llm.ValidateProvider(provider)
	if err != nil {
		return llm.Config{}, fmt.Errorf("invalid provider: %w", err)
	}

	// 2. Model
	model := viper.GetString(KeyModel)
	if model == "" {
		model = llm.DefaultModelForProvider(string(llmProvider))
	}

	// 3. API Key. A missing key is not an error here; the TUI may ask for one.
	apiKey, _ := ResolveAPIKey(llmProvider)

	// 4. Base URL (Ollama or OpenAI-compatible)
	baseURL := viper.GetString(KeyBaseURL)
	if baseURL == "" && llmProvider == llm.ProviderOllama {
		baseURL = llm.DefaultOllamaURL
	}

	// 5. Timeout
	timeout := viper.GetInt(KeyRequestTimeout)
	if timeout <= 0 {
		timeout = llm.DefaultRequestTimeoutSeconds
	}

	// 6. Prompt overrides
	loader := prompts.NewOsLoader(GetPromptsDir(viper.GetString(KeyTemplatesDir)))
	promptSet, err := llm.NewPromptSet(loader)
	if err != nil {
		return llm.Config{}, fmt.Errorf("load prompts: %w", err)
	}

	return llm.Config{
		Provider: llmProvider,
		Model:    model,
		APIKey:   apiKey,
		BaseURL:  baseURL,
		Timeout:  time.Duration(timeout) * time.Second,
		Prompts:  promptSet,
	}, nil
}

// ResolveAPIKey returns the API key for provider and where it came from:
// the per-provider config key first, then provider-specific env vars.
func ResolveAPIKey(provider llm.Provider) (key, source string) {
	path := fmt.Sprintf("%s.%s", KeyAPIKeys, provider)
	if viper.IsSet(path) {
		if k := strings.TrimSpace(viper.GetString(path)); k != "" {
			return k, "config (" + path + ")"
		}
	}

	for _, name := range providerEnvVars(provider) {
		if k := strings.TrimSpace(os.Getenv(name)); k != "" {
			return k, "env (" + name + ")"
		}
	}
	return "", ""
}

func providerEnvVars(provider llm.Provider) []string {
	switch provider {
	case llm.ProviderGemini:
		return []string{"GEMINI_API_KEY", "GOOGLE_API_KEY", "API_KEY"}
	case llm.ProviderOpenAI:
		return []string{"OPENAI_API_KEY"}
	case llm.ProviderAnthropic:
		return []string{"ANTHROPIC_API_KEY"}
	default:
		return nil
	}
}

// MaskKey hides all but the last four characters of an API key.
func MaskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
