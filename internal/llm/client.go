// Package llm generates quests from tasks through a hosted language model.
// Gemini is called through google.golang.org/genai with a native response
// schema; other providers go through CloudWeGo Eino chat models.
package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudwego/eino-ext/components/model/claude"
	"github.com/cloudwego/eino-ext/components/model/ollama"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/josephgoksu/Questifier/models"
)

// Provider identifies the LLM provider to use.
type Provider string

// Config holds configuration for creating a quest generator.
type Config struct {
	Provider Provider
	Model    string        // Chat model; provider default when empty
	APIKey   string        // Required for every provider except Ollama
	BaseURL  string        // Ollama server or OpenAI-compatible endpoint (optional)
	Timeout  time.Duration // Per-request timeout; DefaultRequestTimeoutSeconds when zero
	Prompts  *PromptSet    // Built-in prompts when nil
}

// Generator turns a task into a quest with exactly one model request.
// Every error it returns is a *GenerationError.
type Generator interface {
	GenerateQuest(ctx context.Context, input models.TaskInput) (models.Quest, error)
}

// ValidateProvider checks if the given provider string is supported.
func ValidateProvider(p string) (Provider, error) {
	switch Provider(p) {
	case ProviderGemini:
		return ProviderGemini, nil
	case ProviderOpenAI:
		return ProviderOpenAI, nil
	case ProviderAnthropic:
		return ProviderAnthropic, nil
	case ProviderOllama:
		return ProviderOllama, nil
	default:
		return "", fmt.Errorf("unsupported provider: %s (supported: gemini, openai, anthropic, ollama)", p)
	}
}

// NewGenerator builds the generator for cfg.Provider.
// Credential problems do not fail construction; they surface as a
// transport GenerationError on the first request.
func NewGenerator(ctx context.Context, cfg Config) (Generator, error) {
	if _, err := ValidateProvider(string(cfg.Provider)); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	if cfg.Provider == ProviderGemini {
		return NewGeminiGenerator(ctx, cfg), nil
	}
	return NewChatGenerator(ctx, cfg), nil
}

func (c Config) withDefaults() Config {
	if c.Model == "" {
		c.Model = DefaultModelForProvider(string(c.Provider))
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultRequestTimeoutSeconds * time.Second
	}
	if c.Prompts == nil {
		c.Prompts = DefaultPromptSet()
	}
	if c.Provider == ProviderOllama && c.BaseURL == "" {
		c.BaseURL = DefaultOllamaURL
	}
	return c
}

// NewChatModel creates an Eino chat model for the non-Gemini providers.
func NewChatModel(ctx context.Context, cfg Config) (model.BaseChatModel, error) {
	switch cfg.Provider {
	case ProviderOpenAI:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return openai.NewChatModel(ctx, &openai.ChatModelConfig{
			Model:   cfg.Model,
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
		})

	case ProviderOllama:
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = DefaultOllamaURL
		}
		return ollama.NewChatModel(ctx, &ollama.ChatModelConfig{
			BaseURL: baseURL,
			Model:   cfg.Model,
		})

	case ProviderAnthropic:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("anthropic API key is required")
		}
		return claude.NewChatModel(ctx, &claude.Config{
			APIKey:    cfg.APIKey,
			Model:     cfg.Model,
			MaxTokens: DefaultAnthropicMaxTokens,
		})

	default:
		return nil, fmt.Errorf("unsupported chat model provider: %s (supported: openai, ollama, anthropic)", cfg.Provider)
	}
}
