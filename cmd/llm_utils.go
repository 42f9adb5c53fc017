package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/josephgoksu/Questifier/internal/app"
	"github.com/josephgoksu/Questifier/internal/config"
	"github.com/josephgoksu/Questifier/internal/llm"
	"github.com/josephgoksu/Questifier/internal/telemetry"
	"github.com/josephgoksu/Questifier/internal/ui"
	"github.com/josephgoksu/Questifier/models"
)

// Factories replaced in tests.
var (
	newGenerator   = llm.NewGenerator
	promptAPIKey   = ui.PromptAPIKey
	isInteractive  = ui.IsInteractive
	newGlobalWrite = config.NewGlobalWriter
)

// questRuntime owns what every quest controller shares within one command:
// the generator (with its credential) and the telemetry client.
type questRuntime struct {
	generator llm.Generator
	provider  string
	telemetry telemetry.Client
}

func newQuestRuntime(ctx context.Context, llmCfg llm.Config) (*questRuntime, error) {
	gen, err := newGenerator(ctx, llmCfg)
	if err != nil {
		return nil, fmt.Errorf("create quest generator: %w", err)
	}
	return &questRuntime{
		generator: gen,
		provider:  string(llmCfg.Provider),
		telemetry: newTelemetryClient(),
	}, nil
}

// NewApp returns a fresh controller in StateIdle.
func (r *questRuntime) NewApp() *app.QuestApp {
	return app.NewQuestApp(app.Options{
		Generator: r.generator,
		Provider:  r.provider,
		Telemetry: r.telemetry,
		Logger:    slog.Default(),
	})
}

// Close flushes pending telemetry.
func (r *questRuntime) Close() error {
	return r.telemetry.Close()
}

// newTelemetryClient returns a PostHog client when telemetry is opted in,
// and a NoopClient otherwise. Telemetry problems never fail a command.
func newTelemetryClient() telemetry.Client {
	cfg := GetConfig().Telemetry
	if !cfg.Enabled || cfg.APIKey == "" {
		return telemetry.NewNoopClient()
	}

	state, err := telemetry.Load()
	if err != nil {
		slog.Warn("telemetry disabled", "error", err)
		return telemetry.NewNoopClient()
	}
	state.Enabled = true

	client, err := telemetry.New(telemetry.ClientConfig{
		APIKey:   cfg.APIKey,
		Endpoint: cfg.Endpoint,
		Version:  version,
		Config:   state,
	})
	if err != nil {
		slog.Warn("telemetry disabled", "error", err)
		return telemetry.NewNoopClient()
	}
	return client
}

// ensureAPIKey asks for a missing key on a terminal and saves it to the
// global config. Without a terminal the key stays empty and the first
// request fails with a transport error.
func ensureAPIKey(llmCfg *llm.Config) error {
	if llmCfg.APIKey != "" || !llm.RequiresAPIKey(llmCfg.Provider) || !isInteractive() {
		return nil
	}

	key, err := promptAPIKey(string(llmCfg.Provider))
	if err != nil {
		return err
	}
	llmCfg.APIKey = key

	w, err := newGlobalWrite()
	if err != nil {
		return err
	}
	if err := w.SaveAPIKey(string(llmCfg.Provider), key); err != nil {
		slog.Warn("could not save API key", "error", err, "path", w.Path())
	}
	return nil
}

// buildTaskInput assembles and validates a task from raw front-end fields.
// Blank todo lines are skipped; an empty difficulty means the default.
func buildTaskInput(title, notes string, todos []string, difficulty string) (models.TaskInput, error) {
	if strings.TrimSpace(title) == "" {
		return models.TaskInput{}, errors.New("title is required")
	}

	level := models.DefaultDifficulty
	if strings.TrimSpace(difficulty) != "" {
		d, err := models.ParseDifficulty(difficulty)
		if err != nil {
			return models.TaskInput{}, err
		}
		level = d
	}

	input := models.TaskInput{Title: title, Notes: notes, Difficulty: level}
	for _, text := range todos {
		if item, ok := models.NewTodoItem(text); ok {
			input.Todos = append(input.Todos, item)
		}
	}
	if err := input.Validate(); err != nil {
		return models.TaskInput{}, err
	}
	return input, nil
}
