/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"io"

	"github.com/josephgoksu/Questifier/internal/config"
	"github.com/josephgoksu/Questifier/internal/llm"
	"github.com/josephgoksu/Questifier/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var promptLLMProvider = ui.PromptLLMProvider

var setKeyMakeDefault bool

// configCmd groups the configuration subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change Questifier settings",
}

// configShowCmd shows current configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigShow(cmd.OutOrStdout())
	},
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key [provider]",
	Short: "Save an API key to ~/.questifier/config.yaml",
	Long: `Prompt for an API key and save it under llm.apiKeys.<provider> in the
global config file. Without a provider argument, pick one from a list.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		provider := ""
		if len(args) == 1 {
			provider = args[0]
		}
		return runConfigSetKey(cmd.OutOrStdout(), provider, setKeyMakeDefault)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetKeyCmd)

	configSetKeyCmd.Flags().BoolVar(&setKeyMakeDefault, "default", false, "also make this the default provider")
}

func runConfigShow(out io.Writer) error {
	llmCfg, err := config.LoadLLMConfig()
	if err != nil {
		return err
	}
	_, source := config.ResolveAPIKey(llmCfg.Provider)
	cfg := GetConfig()

	file := viper.ConfigFileUsed()
	if file == "" {
		file = "(none, using defaults and environment)"
	}
	keyLine := config.MaskKey(llmCfg.APIKey)
	if source != "" {
		keyLine += " from " + source
	}
	if !llm.RequiresAPIKey(llmCfg.Provider) {
		keyLine = "(not required)"
	}

	fmt.Fprintln(out, ui.RenderPageHeader("Questifier Config", file))
	rows := [][2]string{
		{"Provider", string(llmCfg.Provider)},
		{"Model", llmCfg.Model},
		{"API key", keyLine},
		{"Base URL", valueOrDash(llmCfg.BaseURL)},
		{"Timeout", llmCfg.Timeout.String()},
		{"Log level", valueOrDash(cfg.Log.Level)},
		{"Telemetry", fmt.Sprintf("%t", cfg.Telemetry.Enabled && cfg.Telemetry.APIKey != "")},
	}
	for _, row := range rows {
		fmt.Fprintf(out, "  %s %s\n", ui.StyleLabel.Render(fmt.Sprintf("%-10s", row[0])), row[1])
	}
	return nil
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func runConfigSetKey(out io.Writer, provider string, makeDefault bool) error {
	if provider == "" {
		if !isInteractive() {
			return fmt.Errorf("provider is required when not running in a terminal (gemini, openai, anthropic)")
		}
		picked, err := promptLLMProvider(providerOptions())
		if err != nil {
			return err
		}
		provider = picked
	}

	p, err := llm.ValidateProvider(provider)
	if err != nil {
		return err
	}
	if !llm.RequiresAPIKey(p) {
		return fmt.Errorf("%s does not use an API key; set llm.baseURL instead", p)
	}

	key, err := promptAPIKey(string(p))
	if err != nil {
		return err
	}

	w, err := newGlobalWrite()
	if err != nil {
		return err
	}
	if err := w.SaveAPIKey(string(p), key); err != nil {
		return fmt.Errorf("save API key: %w", err)
	}
	if makeDefault {
		if err := w.SetProvider(string(p), ""); err != nil {
			return fmt.Errorf("save provider: %w", err)
		}
	}

	fmt.Fprintf(out, "%s Saved %s API key to %s\n", ui.Icon("✓", ui.StyleSuccess), p, w.Path())
	return nil
}

// providerOptions lists the keyed providers for the picker.
func providerOptions() []ui.ProviderOption {
	defs := []struct {
		id, name, desc string
	}{
		{llm.ProviderGemini, "Google Gemini", "Native JSON schema output (default)"},
		{llm.ProviderOpenAI, "OpenAI", "GPT models"},
		{llm.ProviderAnthropic, "Anthropic", "Claude models"},
	}
	options := make([]ui.ProviderOption, 0, len(defs))
	for _, d := range defs {
		key, _ := config.ResolveAPIKey(llm.Provider(d.id))
		options = append(options, ui.ProviderOption{
			ID:          d.id,
			Name:        d.name,
			Description: d.desc,
			HasAPIKey:   key != "",
		})
	}
	return options
}
