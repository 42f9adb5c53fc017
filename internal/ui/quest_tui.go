package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/josephgoksu/Questifier/internal/app"
	"github.com/josephgoksu/Questifier/models"
)

// MsgQuestGenerated carries the outcome of a generation attempt back to the loop.
type MsgQuestGenerated struct {
	Outcome app.Outcome
}

// MsgReset asks the controller to discard the current quest.
type MsgReset struct{}

// QuestModel is the interactive Questifier program.
type QuestModel struct {
	ctx     context.Context
	app     *app.QuestApp
	form    TaskForm
	spinner spinner.Model
	width   int
}

// NewQuestModel wires a controller into a Bubble Tea model.
func NewQuestModel(ctx context.Context, questApp *app.QuestApp) QuestModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = StylePrimary

	return QuestModel{
		ctx:     ctx,
		app:     questApp,
		form:    NewTaskForm(),
		spinner: s,
	}
}

// RunQuestTUI runs the program until the user quits.
func RunQuestTUI(ctx context.Context, questApp *app.QuestApp) error {
	p := tea.NewProgram(NewQuestModel(ctx, questApp), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run quest TUI: %w", err)
	}
	return nil
}

func (m QuestModel) Init() tea.Cmd {
	return m.form.Init()
}

// generateQuest runs the request off the update loop.
func generateQuest(ctx context.Context, questApp *app.QuestApp, attempt app.Attempt, input models.TaskInput) tea.Cmd {
	return func() tea.Msg {
		return MsgQuestGenerated{Outcome: questApp.Generate(ctx, attempt, input)}
	}
}

func (m QuestModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.form.SetWidth(msg.Width - 2)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		switch m.app.State() {
		case app.StateResult:
			switch msg.String() {
			case "n", "N", "enter":
				return m, func() tea.Msg { return MsgReset{} }
			case "q":
				return m, tea.Quit
			}
			return m, nil
		case app.StateError:
			if msg.Type == tea.KeyEsc {
				m.app.DismissError()
				return m, nil
			}
		}

	case MsgSubmitTask:
		attempt, ok := m.app.Submit(msg.Input)
		if !ok {
			return m, nil
		}
		m.form.SetLoading(true)
		return m, tea.Batch(m.spinner.Tick, generateQuest(m.ctx, m.app, attempt, msg.Input))

	case MsgQuestGenerated:
		m.app.ResolveOutcome(msg.Outcome)
		m.form.SetLoading(m.app.Busy())
		return m, nil

	case MsgReset:
		m.app.Reset()
		m.form = NewTaskForm()
		m.form.SetWidth(m.width - 2)
		return m, m.form.Init()

	case spinner.TickMsg:
		if !m.app.Busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.app.State() == app.StateResult {
		return m, nil
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m QuestModel) View() string {
	var s strings.Builder

	s.WriteString(StyleHeader.Render("⚡ Questifier") + " " + StyleSubtle.Render("Habitica Task RPG Generator") + "\n\n")

	if quest, ok := m.app.Quest(); ok {
		s.WriteString(RenderQuestCard(quest, m.width))
		s.WriteString("\n" + StyleSubtle.Render("n new quest • q/ctrl+c quit"))
		return s.String()
	}

	if msg := m.app.ErrorMessage(); msg != "" {
		width := m.width - 4
		if width <= 0 {
			width = defaultFormWidth
		}
		s.WriteString(RenderErrorPanel("", msg+"\n"+StyleSubtle.Render("esc to dismiss"), width) + "\n\n")
	}

	s.WriteString(m.form.View())

	if m.app.Busy() {
		s.WriteString("\n\n" + m.spinner.View() + " " + StylePrimary.Render("Summoning your boss..."))
	}
	s.WriteString("\n" + StyleSubtle.Render("ctrl+c quit"))
	return s.String()
}
