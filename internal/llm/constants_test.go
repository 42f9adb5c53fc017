package llm

import "testing"

func TestDefaultModelForProvider(t *testing.T) {
	tests := []struct {
		provider string
		want     string
	}{
		{provider: ProviderGemini, want: "gemini-3-flash-preview"},
		{provider: ProviderOpenAI, want: "gpt-5-mini-2025-08-07"},
		{provider: ProviderAnthropic, want: "claude-haiku-4-5"},
		{provider: ProviderOllama, want: "llama3.2"},
		{provider: "unknown", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			if got := DefaultModelForProvider(tt.provider); got != tt.want {
				t.Errorf("DefaultModelForProvider(%q) = %q, want %q", tt.provider, got, tt.want)
			}
		})
	}
}

func TestInferProviderFromModel(t *testing.T) {
	tests := []struct {
		model  string
		want   string
		wantOK bool
	}{
		{model: "gemini-2.5-flash", want: ProviderGemini, wantOK: true},
		{model: "gemini-9-ultra", want: ProviderGemini, wantOK: true},
		{model: "gpt-5-mini-2025-08-07", want: ProviderOpenAI, wantOK: true},
		{model: "claude-opus-9", want: ProviderAnthropic, wantOK: true},
		{model: "qwen2.5", want: ProviderOllama, wantOK: true},
		{model: "mystery-model", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			got, ok := InferProviderFromModel(tt.model)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("InferProviderFromModel(%q) = (%q, %v), want (%q, %v)", tt.model, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestRequiresAPIKey(t *testing.T) {
	if !RequiresAPIKey(ProviderGemini) {
		t.Error("gemini requires an API key")
	}
	if RequiresAPIKey(ProviderOllama) {
		t.Error("ollama runs without an API key")
	}
}
