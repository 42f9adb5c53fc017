package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/josephgoksu/Questifier/internal/logger"
	"github.com/josephgoksu/Questifier/models"
	"google.golang.org/genai"
)

// contentGenerator is the slice of *genai.Models used here, so tests can fake it.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator generates quests with the Gemini API using a declared response schema.
type GeminiGenerator struct {
	models  contentGenerator
	model   string
	timeout time.Duration
	prompts *PromptSet
	initErr error
}

// NewGeminiGenerator creates a Gemini-backed generator carrying its own credential.
func NewGeminiGenerator(ctx context.Context, cfg Config) *GeminiGenerator {
	cfg = cfg.withDefaults()
	g := &GeminiGenerator{model: cfg.Model, timeout: cfg.Timeout, prompts: cfg.Prompts}

	if cfg.APIKey == "" {
		g.initErr = errors.New("gemini API key is required")
		return g
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		g.initErr = fmt.Errorf("create genai client: %w", err)
		return g
	}
	g.models = client.Models
	return g
}

func newGeminiGeneratorWithModels(m contentGenerator, cfg Config) *GeminiGenerator {
	cfg = cfg.withDefaults()
	return &GeminiGenerator{models: m, model: cfg.Model, timeout: cfg.Timeout, prompts: cfg.Prompts}
}

// GenerateQuest issues one GenerateContent call constrained to QuestSchema.
func (g *GeminiGenerator) GenerateQuest(ctx context.Context, input models.TaskInput) (models.Quest, error) {
	if g.initErr != nil {
		return models.Quest{}, newGenerationError(KindTransport, ProviderGemini, "", g.initErr)
	}

	prompt, err := g.prompts.QuestPrompt(input)
	if err != nil {
		return models.Quest{}, newGenerationError(KindTransport, ProviderGemini, "build prompt", err)
	}

	logger.SetLastPrompt(prompt)

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   QuestSchema(),
	})
	if err != nil {
		return models.Quest{}, newGenerationError(KindTransport, ProviderGemini, "", err)
	}
	if resp == nil {
		return models.Quest{}, newGenerationError(KindEmpty, ProviderGemini, "", nil)
	}

	quest, err := DecodeQuest(resp.Text())
	if err != nil {
		ge := AsGenerationError(err)
		ge.Provider = ProviderGemini
		return models.Quest{}, ge
	}
	return quest, nil
}
