package logger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/spf13/afero"
)

const (
	// CrashLogDir is the crash log directory inside the base path.
	CrashLogDir = "crash_logs"

	// MaxCrashLogs is the maximum number of crash logs to keep
	MaxCrashLogs = 10

	crashPrefix = "crash_"
	crashSuffix = ".json"
)

// crashContext is what a crash record reports besides the panic itself.
type crashContext struct {
	mu         sync.RWMutex
	fs         afero.Fs
	basePath   string
	version    string
	command    string
	lastInput  string
	lastPrompt string
}

var crashCtx = &crashContext{fs: afero.NewOsFs()}

// SetBasePath sets the directory that holds crash_logs (typically ~/.questifier).
func SetBasePath(path string) {
	crashCtx.mu.Lock()
	defer crashCtx.mu.Unlock()
	crashCtx.basePath = path
}

// SetVersion sets the application version for crash logs.
func SetVersion(version string) {
	crashCtx.mu.Lock()
	defer crashCtx.mu.Unlock()
	crashCtx.version = version
}

// SetCommand sets the current command being executed.
func SetCommand(cmd string) {
	crashCtx.mu.Lock()
	defer crashCtx.mu.Unlock()
	crashCtx.command = cmd
}

// SetLastInput records the task title being turned into a quest.
func SetLastInput(input string) {
	crashCtx.mu.Lock()
	defer crashCtx.mu.Unlock()
	crashCtx.lastInput = truncateForLog(strings.TrimSpace(input), 500)
}

// SetLastPrompt records the last prompt sent to the model.
func SetLastPrompt(prompt string) {
	crashCtx.mu.Lock()
	defer crashCtx.mu.Unlock()
	crashCtx.lastPrompt = truncateForLog(prompt, 2000)
}

func truncateForLog(value string, maxLen int) string {
	if len(value) <= maxLen {
		return value
	}
	return value[:maxLen] + "... [truncated]"
}

// CrashLog is one crash record, stored as JSON.
type CrashLog struct {
	Timestamp  time.Time `json:"timestamp"`
	Version    string    `json:"version"`
	Command    string    `json:"command"`
	PanicValue string    `json:"panic_value"`
	StackTrace string    `json:"stack_trace"`
	LastInput  string    `json:"last_input,omitempty"`
	LastPrompt string    `json:"last_prompt,omitempty"`
	GoVersion  string    `json:"go_version"`
	OS         string    `json:"os"`
	Arch       string    `json:"arch"`
}

// HandlePanic recovers a panic, saves a crash log and exits with status 1.
// Usage: defer logger.HandlePanic()
func HandlePanic() {
	r := recover()
	if r == nil {
		return
	}

	log := createCrashLog(r)
	path, err := writeCrashLog(log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "\n[CRASH] Failed to write crash log: %v\n", err)
		fmt.Fprintf(os.Stderr, "[CRASH] Panic: %v\n%s\n", r, log.StackTrace)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "\nQuestifier hit an unexpected error and had to stop.\n")
	fmt.Fprintf(os.Stderr, "A crash log has been saved to:\n  %s\n\n", path)
	os.Exit(1)
}

func createCrashLog(panicValue any) CrashLog {
	crashCtx.mu.RLock()
	defer crashCtx.mu.RUnlock()

	return CrashLog{
		Timestamp:  time.Now(),
		Version:    crashCtx.version,
		Command:    crashCtx.command,
		PanicValue: fmt.Sprintf("%v", panicValue),
		StackTrace: string(debug.Stack()),
		LastInput:  crashCtx.lastInput,
		LastPrompt: crashCtx.lastPrompt,
		GoVersion:  runtime.Version(),
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
	}
}

// writeCrashLog stores log and prunes the directory to MaxCrashLogs files.
func writeCrashLog(log CrashLog) (string, error) {
	crashCtx.mu.RLock()
	fs := crashCtx.fs
	crashCtx.mu.RUnlock()

	dir := crashLogDir()
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create crash log dir: %w", err)
	}

	data, err := json.MarshalIndent(log, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode crash log: %w", err)
	}

	path := filepath.Join(dir, crashPrefix+log.Timestamp.Format("20060102_150405.000")+crashSuffix)
	if err := afero.WriteFile(fs, path, data, 0600); err != nil {
		return "", fmt.Errorf("write crash log: %w", err)
	}

	if err := pruneCrashLogs(fs, dir); err != nil {
		fmt.Fprintf(os.Stderr, "[WARN] Failed to clean old crash logs: %v\n", err)
	}
	return path, nil
}

func crashLogDir() string {
	crashCtx.mu.RLock()
	basePath := crashCtx.basePath
	crashCtx.mu.RUnlock()

	if basePath == "" {
		basePath = ".questifier"
	}
	return filepath.Join(basePath, CrashLogDir)
}

// pruneCrashLogs removes the oldest crash logs beyond MaxCrashLogs.
// File names embed the timestamp, so name order is age order.
func pruneCrashLogs(fs afero.Fs, dir string) error {
	logs, err := crashLogFiles(fs, dir)
	if err != nil || len(logs) <= MaxCrashLogs {
		return err
	}
	for _, path := range logs[:len(logs)-MaxCrashLogs] {
		if err := fs.Remove(path); err != nil {
			return fmt.Errorf("remove old crash log %s: %w", filepath.Base(path), err)
		}
	}
	return nil
}

func crashLogFiles(fs afero.Fs, dir string) ([]string, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var logs []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), crashPrefix) && strings.HasSuffix(e.Name(), crashSuffix) {
			logs = append(logs, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(logs)
	return logs, nil
}

// ListCrashLogs returns the saved crash logs, oldest first.
func ListCrashLogs() ([]string, error) {
	crashCtx.mu.RLock()
	fs := crashCtx.fs
	crashCtx.mu.RUnlock()
	return crashLogFiles(fs, crashLogDir())
}
