package cmd

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/josephgoksu/Questifier/internal/config"
	"github.com/josephgoksu/Questifier/internal/llm"
	"github.com/josephgoksu/Questifier/models"
	"github.com/josephgoksu/Questifier/types"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// fakeGenerator returns a canned quest or error and records what it was asked.
type fakeGenerator struct {
	mu    sync.Mutex
	quest models.Quest
	err   error
	calls int
	last  models.TaskInput
}

func (f *fakeGenerator) GenerateQuest(ctx context.Context, input models.TaskInput) (models.Quest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.last = input
	return f.quest, f.err
}

func garageQuest() models.Quest {
	return models.Quest{
		QuestTitle: "The Garage of Despair",
		Lore:       "Deep beneath the boxes...",
		Monster: models.Monster{
			Name:        "Clutter Beast",
			Description: "A heap of forgotten things.",
			HP:          50,
			Strength:    12,
			Weakness:    "Organization",
		},
		Rewards:      []string{"10 Gold"},
		CallToAction: "Go get it!",
	}
}

type cmdTestEnv struct {
	gen       *fakeGenerator
	configDir string
	fs        afero.Fs
	writePath string
	llmCfg    llm.Config
}

// setupCmdTest isolates viper, the global config dir, the working directory
// and every factory the commands use.
func setupCmdTest(t *testing.T) *cmdTestEnv {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Chdir(t.TempDir())
	for _, name := range []string{"GEMINI_API_KEY", "GOOGLE_API_KEY", "API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY"} {
		t.Setenv(name, "")
	}

	env := &cmdTestEnv{
		gen:       &fakeGenerator{quest: garageQuest()},
		configDir: t.TempDir(),
		fs:        afero.NewMemMapFs(),
		writePath: "/home/u/.questifier/config.yaml",
	}

	origDir := config.GetGlobalConfigDir
	origGen, origPrompt, origInteractive, origWriter, origPicker := newGenerator, promptAPIKey, isInteractive, newGlobalWrite, promptLLMProvider
	origCfg := GlobalAppConfig
	origLog := slog.Default()
	t.Cleanup(func() {
		config.GetGlobalConfigDir = origDir
		newGenerator, promptAPIKey, isInteractive, newGlobalWrite, promptLLMProvider = origGen, origPrompt, origInteractive, origWriter, origPicker
		GlobalAppConfig = origCfg
		_ = closeLog()
		closeLog = func() error { return nil }
		slog.SetDefault(origLog)
	})

	config.GetGlobalConfigDir = func() (string, error) { return env.configDir, nil }
	newGenerator = func(ctx context.Context, cfg llm.Config) (llm.Generator, error) {
		env.llmCfg = cfg
		return env.gen, nil
	}
	promptAPIKey = func(provider string) (string, error) { return "prompted-key", nil }
	isInteractive = func() bool { return false }
	newGlobalWrite = func() (*config.Writer, error) { return config.NewWriter(env.fs, env.writePath), nil }
	GlobalAppConfig = types.AppConfig{LLM: types.LLMConfig{Provider: llm.ProviderGemini}}

	return env
}
