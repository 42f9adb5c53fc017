/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/josephgoksu/Questifier/internal/config"
	"github.com/josephgoksu/Questifier/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type generateOptions struct {
	title      string
	notes      string
	todos      []string
	difficulty string
	json       bool
}

var genOpts generateOptions

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one quest without the interactive UI",
	Long: `Generate a single quest from flags and print it.

Examples:
  questifier generate --title "Clean the garage" --todo "Sort boxes" --difficulty medium
  questifier generate --title "Write report" --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, genOpts)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&genOpts.title, "title", "t", "", "task title (required)")
	generateCmd.Flags().StringVarP(&genOpts.notes, "notes", "n", "", "notes or description")
	generateCmd.Flags().StringArrayVar(&genOpts.todos, "todo", nil, "checklist item (repeatable)")
	generateCmd.Flags().StringVarP(&genOpts.difficulty, "difficulty", "d", "Easy", "Trivial, Easy, Medium or Hard")
	generateCmd.Flags().BoolVar(&genOpts.json, "json", false, "print the quest as JSON")
}

func runGenerate(cmd *cobra.Command, opts generateOptions) error {
	input, err := buildTaskInput(opts.title, opts.notes, opts.todos, opts.difficulty)
	if err != nil {
		return err
	}

	llmCfg, err := config.LoadLLMConfig()
	if err != nil {
		return err
	}
	rt, err := newQuestRuntime(cmd.Context(), llmCfg)
	if err != nil {
		return err
	}
	defer func() { _ = rt.Close() }()

	var spinner *ui.Spinner
	if !opts.json && isInteractive() {
		spinner = ui.NewSpinner(cmd.ErrOrStderr(), "Summoning your boss...")
		spinner.Start()
	}
	quest, err := rt.NewApp().Run(cmd.Context(), input)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(quest)
	}
	_, err = fmt.Fprintln(out, ui.RenderQuestCard(quest, terminalWidth()))
	return err
}

// terminalWidth returns the stdout width, or zero for the card default.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}
