/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose   bool            `mapstructure:"verbose"`
	Config    string          `mapstructure:"config"`
	LLM       LLMConfig       `mapstructure:"llm" validate:"required"`
	Log       LogConfig       `mapstructure:"log"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Prompts   PromptsConfig   `mapstructure:"prompts"`
}

// LLMConfig holds configuration for quest generation
type LLMConfig struct {
	Provider string            `mapstructure:"provider" validate:"required,oneof=gemini openai anthropic ollama"`
	Model    string            `mapstructure:"model" validate:"omitempty,min=1"`
	APIKeys  map[string]string `mapstructure:"apiKeys"`
	BaseURL  string            `mapstructure:"baseURL" validate:"omitempty,url"`
	// RequestTimeoutSeconds bounds a single generation call
	RequestTimeoutSeconds int `mapstructure:"requestTimeoutSeconds" validate:"omitempty,min=5,max=600"`
}

// LogConfig holds structured logging settings
type LogConfig struct {
	Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
	File  string `mapstructure:"file"`
}

// TelemetryConfig holds opt-in usage telemetry settings
type TelemetryConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	APIKey   string `mapstructure:"apiKey"`
	Endpoint string `mapstructure:"endpoint" validate:"omitempty,url"`
}

// PromptsConfig points at user prompt template overrides
type PromptsConfig struct {
	TemplatesDir string `mapstructure:"templatesDir"`
}
