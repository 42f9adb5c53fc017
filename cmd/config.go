package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/josephgoksu/Questifier/internal/config"
	"github.com/josephgoksu/Questifier/types"
	"github.com/spf13/viper"
)

const (
	configName = ".questifier.yaml"
	envPrefix  = "QUESTIFIER"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// validate is a single instance of Validate, it caches struct info
var validate = validator.New()

// InitConfig reads in config file and ENV variables if set.
func InitConfig() {
	if err := loadConfig(); err != nil {
		HandleFatalError(fmt.Sprintf("Configuration error: %v", err), err)
	}
}

// loadConfig populates GlobalAppConfig from .env, the environment, the config
// file and defaults, in that order of precedence after explicit flags.
func loadConfig() error {
	// It's okay if .env file doesn't exist.
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix)                          // e.g., QUESTIFIER_LLM_PROVIDER
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // llm.provider -> LLM_PROVIDER
	viper.AutomaticEnv()
	config.SetDefaults(viper.GetViper())

	path, err := findConfigFile(viper.GetString("config"))
	if err != nil {
		return err
	}
	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("read config file %s: %w", path, err)
		}
		LogDebug("using config file", path)
	}

	var cfg types.AppConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	GlobalAppConfig = cfg
	return nil
}

// findConfigFile returns the explicit config file, ./.questifier.yaml, or
// ~/.questifier/config.yaml; the first that applies wins. No file is fine.
func findConfigFile(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file %s: %w", explicit, err)
		}
		return explicit, nil
	}

	candidates := []string{configName}
	if global, err := config.GetGlobalConfigFile(); err == nil {
		candidates = append(candidates, global)
	}
	for _, c := range candidates {
		_, err := os.Stat(c)
		if err == nil {
			return c, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("config file %s: %w", c, err)
		}
	}
	return "", nil
}

// GetConfig returns a pointer to the global types.AppConfig instance.
func GetConfig() *types.AppConfig {
	return &GlobalAppConfig
}
