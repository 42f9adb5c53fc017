/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/josephgoksu/Questifier/internal/config"
	"github.com/josephgoksu/Questifier/internal/logger"
	"github.com/josephgoksu/Questifier/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose enables verbose output.
	verbose bool
	// version is the application version.
	version = "0.1.0"

	// closeLog flushes the log file opened in setupLogging.
	closeLog = func() error { return nil }
)

// ErrNotInteractive is returned when the TUI is started without a terminal.
var ErrNotInteractive = errors.New("questifier needs an interactive terminal; use `questifier generate` instead")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "questifier",
	Short: "Questifier - turn everyday tasks into RPG boss battles",
	Long: `Questifier turns a task (title, notes, checklist, difficulty) into a
Habitica-style quest: a boss monster with stats, lore, loot and a call to arms.

Run without arguments to open the interactive quest builder.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd.Context())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer logger.HandlePanic()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	_ = closeLog()

	if err != nil {
		PrintError(userMessage(err), err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./.questifier.yaml or $HOME/.questifier/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr at debug level")

	// Bind persistent flags to Viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// GetVersion returns the CLI version.
func GetVersion() string {
	return version
}

// setupLogging installs the structured logger and crash context for cmd.
func setupLogging(cmd *cobra.Command) error {
	cfg := GetConfig()

	logger.SetVersion(version)
	logger.SetCommand(cmd.CommandPath())
	if dir, err := config.GetGlobalConfigDir(); err == nil {
		logger.SetBasePath(dir)
	}

	logDir, err := config.GetLogDir()
	if err != nil {
		return err
	}
	_, closeFn, err := logger.Setup(logger.Options{
		Level:   cfg.Log.Level,
		File:    cfg.Log.File,
		Dir:     logDir,
		Verbose: cfg.Verbose,
	})
	if err != nil {
		return err
	}
	closeLog = closeFn
	return nil
}

// runInteractive starts the full-screen quest builder.
func runInteractive(ctx context.Context) error {
	if !ui.IsInteractive() {
		return ErrNotInteractive
	}

	llmCfg, err := config.LoadLLMConfig()
	if err != nil {
		return err
	}
	if err := ensureAPIKey(&llmCfg); err != nil {
		return err
	}

	rt, err := newQuestRuntime(ctx, llmCfg)
	if err != nil {
		return err
	}
	defer func() { _ = rt.Close() }()

	return ui.RunQuestTUI(ctx, rt.NewApp())
}
