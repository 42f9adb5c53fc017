package prompts

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// PromptKey is a type for identifying specific prompts.
type PromptKey string

const (
	// KeyQuest is the key for the quest generation prompt.
	KeyQuest PromptKey = "Quest"
	// KeyJSONSystem is the key for the JSON-only system prompt.
	KeyJSONSystem PromptKey = "JSONSystem"
)

// promptConfig defines the default content and filename for a prompt.
type promptConfig struct {
	defaultContent string
	filename       string
}

// promptRegistry maps a PromptKey to its configuration.
var promptRegistry = map[PromptKey]promptConfig{
	KeyQuest: {
		defaultContent: QuestPrompt,
		filename:       "quest_prompt.tmpl",
	},
	KeyJSONSystem: {
		defaultContent: JSONSystemPrompt,
		filename:       "json_system_prompt.tmpl",
	},
}

// Loader resolves prompts, preferring user overrides in a templates directory.
// It uses an afero.Fs so tests can run against an in-memory filesystem.
type Loader struct {
	fs           afero.Fs
	templatesDir string
}

// NewLoader creates a prompt loader over the given filesystem.
func NewLoader(fs afero.Fs, templatesDir string) *Loader {
	return &Loader{fs: fs, templatesDir: templatesDir}
}

// NewOsLoader creates a Loader using the real operating system filesystem.
func NewOsLoader(templatesDir string) *Loader {
	return NewLoader(afero.NewOsFs(), templatesDir)
}

// Get searches for a user-provided prompt file in the templates directory.
// If found, it returns the content of that file. Otherwise, it returns
// the built-in default prompt content.
func (l *Loader) Get(key PromptKey) (string, error) {
	config, ok := promptRegistry[key]
	if !ok {
		return "", fmt.Errorf("unrecognized prompt key: %s", key)
	}

	if strings.TrimSpace(l.templatesDir) == "" {
		return config.defaultContent, nil
	}

	customPromptPath := filepath.Join(l.templatesDir, config.filename)
	exists, err := afero.Exists(l.fs, customPromptPath)
	if err != nil {
		return "", fmt.Errorf("error checking for custom prompt file at %s: %w", customPromptPath, err)
	}
	if !exists {
		return config.defaultContent, nil
	}

	content, err := afero.ReadFile(l.fs, customPromptPath)
	if err != nil {
		return "", fmt.Errorf("failed to read custom prompt file at %s: %w", customPromptPath, err)
	}
	if strings.TrimSpace(string(content)) == "" {
		return config.defaultContent, nil
	}
	return string(content), nil
}

// GetPrompt is a convenience wrapper that reads overrides from the OS filesystem.
func GetPrompt(key PromptKey, templatesDir string) (string, error) {
	return NewOsLoader(templatesDir).Get(key)
}
