package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/josephgoksu/Questifier/models"
)

// Button labels
const (
	SubmitLabel  = "Gamify This Task!"
	LoadingLabel = "Summoning Boss..."

	blankTitleHint = "Give your task a title before summoning a boss."
)

// TaskDraft is the editable task behind the form.
type TaskDraft struct {
	Title       string
	Notes       string
	PendingTodo string
	Todos       []models.TodoItem
	Difficulty  models.Difficulty
}

// NewTaskDraft returns an empty draft at the default difficulty.
func NewTaskDraft() TaskDraft {
	return TaskDraft{Difficulty: models.DefaultDifficulty}
}

// AddTodo appends a checklist item. Blank text is ignored.
func (d *TaskDraft) AddTodo(text string) bool {
	item, ok := models.NewTodoItem(text)
	if !ok {
		return false
	}
	d.Todos = append(d.Todos, item)
	d.PendingTodo = ""
	return true
}

// RemoveTodo deletes the item with id, keeping the order of the rest.
func (d *TaskDraft) RemoveTodo(id string) bool {
	for i, todo := range d.Todos {
		if todo.ID == id {
			d.Todos = append(d.Todos[:i:i], d.Todos[i+1:]...)
			return true
		}
	}
	return false
}

// Submit snapshots the draft. A blank title yields false and no input.
// The draft itself is left unchanged.
func (d *TaskDraft) Submit() (models.TaskInput, bool) {
	if strings.TrimSpace(d.Title) == "" {
		return models.TaskInput{}, false
	}
	input := models.TaskInput{
		Title:      d.Title,
		Notes:      d.Notes,
		Todos:      d.Todos,
		Difficulty: d.Difficulty,
	}
	return input.Clone(), true
}

// CycleDifficulty steps through the difficulty levels, wrapping at both ends.
func (d *TaskDraft) CycleDifficulty(delta int) {
	levels := models.Difficulties()
	idx := 0
	for i, level := range levels {
		if level == d.Difficulty {
			idx = i
			break
		}
	}
	n := len(levels)
	d.Difficulty = levels[((idx+delta)%n+n)%n]
}

// MsgSubmitTask is emitted by TaskForm when the user submits a valid draft.
type MsgSubmitTask struct {
	Input models.TaskInput
}

type formField int

const (
	fieldTitle formField = iota
	fieldNotes
	fieldTodo
	fieldDifficulty
	fieldSubmit
	fieldCount
)

const defaultFormWidth = 60

// TaskForm is the Bubble Tea widget for entering a task.
type TaskForm struct {
	draft    TaskDraft
	title    textinput.Model
	notes    textarea.Model
	todo     textinput.Model
	focus    formField
	selected int // highlighted todo, for removal
	loading  bool
	hint     string
	width    int
}

// NewTaskForm returns an empty form with the title focused.
func NewTaskForm() TaskForm {
	title := textinput.New()
	title.Placeholder = "e.g., Complete Project Report"
	title.CharLimit = 200
	title.Focus()

	notes := textarea.New()
	notes.Placeholder = "Add context for the quest giver..."
	notes.ShowLineNumbers = false
	notes.CharLimit = 0
	notes.SetHeight(3)

	todo := textinput.New()
	todo.Placeholder = "Add a checklist item and press Enter"
	todo.CharLimit = 200

	f := TaskForm{
		draft: NewTaskDraft(),
		title: title,
		notes: notes,
		todo:  todo,
	}
	f.SetWidth(defaultFormWidth)
	return f
}

func (f TaskForm) Init() tea.Cmd {
	return textinput.Blink
}

// Draft returns a copy of the current draft.
func (f TaskForm) Draft() TaskDraft {
	d := f.draft
	d.Todos = append([]models.TodoItem(nil), f.draft.Todos...)
	return d
}

// Loading reports whether submission is disabled.
func (f TaskForm) Loading() bool { return f.loading }

// Hint returns the inline validation message, if any.
func (f TaskForm) Hint() string { return f.hint }

// SetLoading disables or re-enables submission. Editing stays enabled.
func (f *TaskForm) SetLoading(loading bool) {
	f.loading = loading
}

// SetWidth resizes the inputs.
func (f *TaskForm) SetWidth(width int) {
	if width <= 0 {
		width = defaultFormWidth
	}
	f.width = width
	inner := width - 4
	if inner < 10 {
		inner = 10
	}
	f.title.Width = inner
	f.todo.Width = inner
	f.notes.SetWidth(inner)
}

// ButtonLabel is the submit button text for the current loading state.
func (f TaskForm) ButtonLabel() string {
	if f.loading {
		return LoadingLabel
	}
	return SubmitLabel
}

func (f TaskForm) Update(msg tea.Msg) (TaskForm, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return f.updateFocused(msg)
	}

	switch key.String() {
	case "tab":
		return f, f.setFocus(f.focus + 1)
	case "shift+tab":
		return f, f.setFocus(f.focus - 1)
	case "ctrl+s":
		return f.submit()
	case "ctrl+d":
		f.removeSelected()
		return f, nil
	}

	switch f.focus {
	case fieldTitle:
		if key.Type == tea.KeyEnter {
			return f, f.setFocus(fieldNotes)
		}
	case fieldTodo:
		switch key.String() {
		case "enter":
			f.draft.AddTodo(f.todo.Value())
			f.todo.SetValue(f.draft.PendingTodo)
			f.selected = len(f.draft.Todos) - 1
			return f, nil
		case "up":
			if f.selected > 0 {
				f.selected--
			}
			return f, nil
		case "down":
			if f.selected < len(f.draft.Todos)-1 {
				f.selected++
			}
			return f, nil
		}
	case fieldDifficulty:
		switch key.String() {
		case "left", "h":
			f.draft.CycleDifficulty(-1)
		case "right", "l", " ":
			f.draft.CycleDifficulty(1)
		case "enter":
			return f, f.setFocus(fieldSubmit)
		}
		return f, nil
	case fieldSubmit:
		if key.Type == tea.KeyEnter {
			return f.submit()
		}
		return f, nil
	}

	return f.updateFocused(msg)
}

// updateFocused forwards msg to the focused text component and syncs the draft.
func (f TaskForm) updateFocused(msg tea.Msg) (TaskForm, tea.Cmd) {
	var cmd tea.Cmd
	switch f.focus {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
		f.draft.Title = f.title.Value()
		if strings.TrimSpace(f.draft.Title) != "" {
			f.hint = ""
		}
	case fieldNotes:
		f.notes, cmd = f.notes.Update(msg)
		f.draft.Notes = f.notes.Value()
	case fieldTodo:
		f.todo, cmd = f.todo.Update(msg)
		f.draft.PendingTodo = f.todo.Value()
	}
	return f, cmd
}

func (f TaskForm) submit() (TaskForm, tea.Cmd) {
	if f.loading {
		return f, nil
	}
	input, ok := f.draft.Submit()
	if !ok {
		f.hint = blankTitleHint
		return f, f.setFocus(fieldTitle)
	}
	f.hint = ""
	return f, func() tea.Msg { return MsgSubmitTask{Input: input} }
}

func (f *TaskForm) removeSelected() {
	if f.selected < 0 || f.selected >= len(f.draft.Todos) {
		return
	}
	f.draft.RemoveTodo(f.draft.Todos[f.selected].ID)
	if f.selected >= len(f.draft.Todos) {
		f.selected = len(f.draft.Todos) - 1
	}
	if f.selected < 0 {
		f.selected = 0
	}
}

func (f *TaskForm) setFocus(field formField) tea.Cmd {
	f.focus = (field%fieldCount + fieldCount) % fieldCount
	f.title.Blur()
	f.notes.Blur()
	f.todo.Blur()

	switch f.focus {
	case fieldTitle:
		return f.title.Focus()
	case fieldNotes:
		return f.notes.Focus()
	case fieldTodo:
		return f.todo.Focus()
	}
	return nil
}

func (f TaskForm) label(field formField, text string) string {
	if f.focus == field {
		return StyleLabelFocused.Render("▸ " + text)
	}
	return StyleLabel.Render("  " + text)
}

func (f TaskForm) View() string {
	var s strings.Builder

	s.WriteString(StyleHeader.Render("New Task") + "\n\n")

	s.WriteString(f.label(fieldTitle, "Task Title") + "\n")
	s.WriteString("  " + f.title.View() + "\n")
	if f.hint != "" {
		s.WriteString("  " + StyleWarning.Render(f.hint) + "\n")
	}
	s.WriteString("\n")

	s.WriteString(f.label(fieldNotes, "Notes / Description") + "\n")
	s.WriteString(f.notes.View() + "\n\n")

	s.WriteString(f.label(fieldTodo, "Checklist (Sub-tasks)") + "\n")
	s.WriteString("  " + f.todo.View() + "\n")
	for i, todo := range f.draft.Todos {
		marker := "  • "
		style := StyleText
		if f.focus == fieldTodo && i == f.selected {
			marker = "  ▶ "
			style = StyleSelectActive
		}
		s.WriteString(marker + style.Render(Truncate(todo.Text, f.width-6)) + "\n")
	}
	s.WriteString("\n")

	s.WriteString(f.label(fieldDifficulty, "Difficulty") + "\n  ")
	for _, level := range models.Difficulties() {
		if level == f.draft.Difficulty {
			s.WriteString(StyleSelectActive.Render(fmt.Sprintf("[%s]", level)) + " ")
		} else {
			s.WriteString(StyleSubtle.Render(fmt.Sprintf(" %s ", level)) + " ")
		}
	}
	s.WriteString("\n\n")

	button := StyleButton
	switch {
	case f.loading:
		button = StyleButtonDisabled
	case f.focus == fieldSubmit:
		button = StyleButtonFocused
	}
	s.WriteString("  " + button.Render(f.ButtonLabel()) + "\n\n")

	s.WriteString(StyleSubtle.Render("tab/shift+tab move • enter add item • ↑/↓ pick item • ctrl+d remove item • ←/→ difficulty • ctrl+s submit"))
	return s.String()
}
