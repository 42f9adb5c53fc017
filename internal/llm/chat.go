package llm

import (
	"context"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/josephgoksu/Questifier/internal/logger"
	"github.com/josephgoksu/Questifier/models"
)

// ChatGenerator generates quests through an Eino chat model. Providers without a
// native response schema get the schema in the system message instead.
type ChatGenerator struct {
	chat     model.BaseChatModel
	provider string
	timeout  time.Duration
	prompts  *PromptSet
	initErr  error
}

// NewChatGenerator creates a generator for openai, anthropic or ollama.
func NewChatGenerator(ctx context.Context, cfg Config) *ChatGenerator {
	cfg = cfg.withDefaults()
	chat, err := NewChatModel(ctx, cfg)
	return &ChatGenerator{
		chat:     chat,
		provider: string(cfg.Provider),
		timeout:  cfg.Timeout,
		prompts:  cfg.Prompts,
		initErr:  err,
	}
}

func newChatGeneratorWithModel(chat model.BaseChatModel, cfg Config) *ChatGenerator {
	cfg = cfg.withDefaults()
	return &ChatGenerator{chat: chat, provider: string(cfg.Provider), timeout: cfg.Timeout, prompts: cfg.Prompts}
}

// GenerateQuest sends a system+user message pair and decodes the reply.
func (g *ChatGenerator) GenerateQuest(ctx context.Context, input models.TaskInput) (models.Quest, error) {
	if g.initErr != nil {
		return models.Quest{}, newGenerationError(KindTransport, g.provider, "", g.initErr)
	}

	system, err := g.prompts.SystemPrompt()
	if err != nil {
		return models.Quest{}, newGenerationError(KindTransport, g.provider, "build prompt", err)
	}
	prompt, err := g.prompts.QuestPrompt(input)
	if err != nil {
		return models.Quest{}, newGenerationError(KindTransport, g.provider, "build prompt", err)
	}

	logger.SetLastPrompt(prompt)

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.chat.Generate(ctx, []*schema.Message{
		schema.SystemMessage(system),
		schema.UserMessage(prompt),
	})
	if err != nil {
		return models.Quest{}, newGenerationError(KindTransport, g.provider, "", err)
	}
	if resp == nil {
		return models.Quest{}, newGenerationError(KindEmpty, g.provider, "", nil)
	}

	quest, err := DecodeQuest(resp.Content)
	if err != nil {
		ge := AsGenerationError(err)
		ge.Provider = g.provider
		return models.Quest{}, ge
	}
	return quest, nil
}
