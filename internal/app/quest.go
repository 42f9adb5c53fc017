// Package app holds the quest lifecycle shared by the TUI, the generate
// command and the MCP server. Front ends stay thin and call into QuestApp.
package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/josephgoksu/Questifier/internal/llm"
	"github.com/josephgoksu/Questifier/internal/logger"
	"github.com/josephgoksu/Questifier/internal/telemetry"
	"github.com/josephgoksu/Questifier/models"
)

// State is the controller's current phase.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateResult
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateResult:
		return "result"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Attempt identifies one submission. Only the latest attempt may resolve.
type Attempt uint64

// Outcome is the result of one Generate call, delivered back to the owner of
// the QuestApp (the Bubble Tea loop sends it as a message).
type Outcome struct {
	Attempt Attempt
	Quest   models.Quest
	Err     error
}

// Options configures a QuestApp.
type Options struct {
	Generator llm.Generator
	Provider  string           // Reported in telemetry and logs
	Telemetry telemetry.Client // NoopClient when nil
	Logger    *slog.Logger     // slog.Default() when nil
}

// QuestApp is the quest state machine. It is not safe for concurrent use:
// every method except Generate must run on the owner's goroutine.
type QuestApp struct {
	generator llm.Generator
	provider  string
	telemetry telemetry.Client
	log       *slog.Logger

	state   State
	attempt Attempt
	quest   models.Quest
	errMsg  string
}

// NewQuestApp creates a controller in StateIdle.
func NewQuestApp(opts Options) *QuestApp {
	a := &QuestApp{
		generator: opts.Generator,
		provider:  opts.Provider,
		telemetry: opts.Telemetry,
		log:       opts.Logger,
	}
	if a.telemetry == nil {
		a.telemetry = telemetry.NewNoopClient()
	}
	if a.log == nil {
		a.log = slog.Default()
	}
	return a
}

func (a *QuestApp) State() State { return a.state }

// Busy reports whether a request is pending.
func (a *QuestApp) Busy() bool { return a.state == StateLoading }

// Quest returns the current quest, if any.
func (a *QuestApp) Quest() (models.Quest, bool) {
	if a.state != StateResult {
		return models.Quest{}, false
	}
	return a.quest, true
}

// ErrorMessage returns the user-facing error text, or "" outside StateError.
func (a *QuestApp) ErrorMessage() string {
	if a.state != StateError {
		return ""
	}
	return a.errMsg
}

// Submit starts a new attempt. It is refused while loading or while a quest
// is displayed (Reset first).
func (a *QuestApp) Submit(input models.TaskInput) (Attempt, bool) {
	if a.state != StateIdle && a.state != StateError {
		return 0, false
	}
	a.attempt++
	a.state = StateLoading
	a.errMsg = ""
	a.quest = models.Quest{}

	a.log.Debug("quest submitted",
		"attempt", uint64(a.attempt),
		"difficulty", string(input.Difficulty),
		"todos", len(input.Todos))
	return a.attempt, true
}

// Resolve applies the outcome of attempt. Outcomes of superseded attempts, or
// arriving outside StateLoading, are dropped and Resolve returns false.
func (a *QuestApp) Resolve(attempt Attempt, quest models.Quest, err error) bool {
	if attempt != a.attempt || a.state != StateLoading {
		a.log.Debug("stale quest outcome dropped",
			"attempt", uint64(attempt),
			"current", uint64(a.attempt),
			"state", a.state.String())
		return false
	}

	if err != nil {
		ge := llm.AsGenerationError(err)
		a.state = StateError
		a.errMsg = ge.UserMessage()
		a.log.Error("quest generation failed",
			"error", err,
			"kind", string(ge.Kind),
			"provider", ge.Provider,
			"attempt", uint64(attempt))
		return true
	}

	a.state = StateResult
	a.quest = quest
	a.log.Info("quest generated",
		"monster", quest.Monster.Name,
		"attempt", uint64(attempt))
	return true
}

// ResolveOutcome is Resolve for a value returned by Generate.
func (a *QuestApp) ResolveOutcome(o Outcome) bool {
	return a.Resolve(o.Attempt, o.Quest, o.Err)
}

// Reset discards the quest or error and returns to StateIdle. Any request
// still in flight is invalidated.
func (a *QuestApp) Reset() {
	if a.state == StateIdle {
		return
	}
	a.attempt++
	a.state = StateIdle
	a.quest = models.Quest{}
	a.errMsg = ""
}

// DismissError clears the error banner.
func (a *QuestApp) DismissError() {
	if a.state != StateError {
		return
	}
	a.state = StateIdle
	a.errMsg = ""
}

// Generate performs the model request for attempt. It touches no controller
// state, so it may run on any goroutine.
func (a *QuestApp) Generate(ctx context.Context, attempt Attempt, input models.TaskInput) Outcome {
	logger.SetLastInput(input.Title)

	if a.generator == nil {
		err := llm.AsGenerationError(errors.New("no quest generator configured"))
		a.track(input, err)
		return Outcome{Attempt: attempt, Err: err}
	}

	quest, err := a.generator.GenerateQuest(ctx, input)
	a.track(input, err)
	return Outcome{Attempt: attempt, Quest: quest, Err: err}
}

// Run submits input and resolves it synchronously. It is used by the
// non-interactive front ends.
func (a *QuestApp) Run(ctx context.Context, input models.TaskInput) (models.Quest, error) {
	attempt, ok := a.Submit(input)
	if !ok {
		return models.Quest{}, errors.New("a quest is already in progress")
	}
	out := a.Generate(ctx, attempt, input)
	a.ResolveOutcome(out)
	if out.Err != nil {
		return models.Quest{}, llm.AsGenerationError(out.Err)
	}
	return out.Quest, nil
}

func (a *QuestApp) track(input models.TaskInput, err error) {
	event, outcome := telemetry.EventQuestGenerated, "success"
	if err != nil {
		event, outcome = telemetry.EventQuestFailed, string(llm.AsGenerationError(err).Kind)
	}
	a.telemetry.Track(event, telemetry.QuestProperties(a.provider, string(input.Difficulty), len(input.Todos), outcome))
}
