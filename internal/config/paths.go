package config

import (
	"os"
	"path/filepath"
)

// GlobalConfigFileName is the config file inside the global config directory.
const GlobalConfigFileName = "config.yaml"

// GetGlobalConfigDir returns the path to the global configuration directory (~/.questifier).
// It's a variable to allow overriding in tests.
var GetGlobalConfigDir = func() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".questifier"), nil
}

// GetGlobalConfigFile returns ~/.questifier/config.yaml.
func GetGlobalConfigFile() (string, error) {
	dir, err := GetGlobalConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, GlobalConfigFileName), nil
}

// GetLogDir returns the directory holding the structured log file.
func GetLogDir() (string, error) {
	dir, err := GetGlobalConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "logs"), nil
}

// GetPromptsDir returns the directory searched for prompt template overrides.
// An explicit prompts.templatesDir wins over ~/.questifier/prompts.
func GetPromptsDir(templatesDir string) string {
	if templatesDir != "" {
		return templatesDir
	}
	dir, err := GetGlobalConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "prompts")
}
