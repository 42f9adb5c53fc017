package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/josephgoksu/Questifier/internal/llm"
	"github.com/spf13/viper"
)

// HandleFatalError handles unrecoverable errors that should terminate the application.
func HandleFatalError(userMsg string, technicalErr error) {
	PrintError(userMsg, technicalErr)
	os.Exit(1)
}

// PrintError prints an error message without exiting, allowing for recovery.
func PrintError(userMsg string, technicalErr error) {
	if viper.GetBool("verbose") && technicalErr != nil {
		// In verbose mode, print the detailed, underlying technical error.
		fmt.Fprintf(os.Stderr, "Error: %v\n", technicalErr)
	} else {
		// By default, print the clean, user-friendly message.
		fmt.Fprintln(os.Stderr, userMsg)
	}
}

// LogDebug prints a diagnostic line to stderr in verbose mode.
func LogDebug(msg string, detail any) {
	if viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, "[DEBUG] %s: %v\n", msg, detail)
	}
}

// userMessage maps err to what the user sees. Generation failures always
// show the generic message; their detail is in the log.
func userMessage(err error) string {
	var ge *llm.GenerationError
	if errors.As(err, &ge) {
		return ge.UserMessage()
	}
	return "Error: " + err.Error()
}
