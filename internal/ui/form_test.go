package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/josephgoksu/Questifier/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(f TaskForm, text string) TaskForm {
	for _, r := range text {
		f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return f
}

func press(f TaskForm, key tea.KeyType) (TaskForm, tea.Cmd) {
	return f.Update(tea.KeyMsg{Type: key})
}

func tabTo(f TaskForm, n int) TaskForm {
	for i := 0; i < n; i++ {
		f, _ = press(f, tea.KeyTab)
	}
	return f
}

func TestTaskDraft_AddTodo(t *testing.T) {
	d := NewTaskDraft()
	d.PendingTodo = "   "
	assert.False(t, d.AddTodo(d.PendingTodo))
	assert.Empty(t, d.Todos)
	assert.Equal(t, "   ", d.PendingTodo, "blank add leaves the pending text alone")

	d.PendingTodo = "  Sort boxes "
	require.True(t, d.AddTodo(d.PendingTodo))
	require.Len(t, d.Todos, 1)
	assert.Equal(t, "Sort boxes", d.Todos[0].Text)
	assert.NotEmpty(t, d.Todos[0].ID)
	assert.Empty(t, d.PendingTodo)
}

func TestTaskDraft_RemoveTodoPreservesOrder(t *testing.T) {
	d := NewTaskDraft()
	for _, text := range []string{"a", "b", "c"} {
		require.True(t, d.AddTodo(text))
	}
	ids := []string{d.Todos[0].ID, d.Todos[1].ID, d.Todos[2].ID}
	assert.NotEqual(t, ids[0], ids[1])

	assert.False(t, d.RemoveTodo("missing"))
	assert.Len(t, d.Todos, 3)

	require.True(t, d.RemoveTodo(ids[1]))
	assert.Equal(t, []string{"a", "c"}, []string{d.Todos[0].Text, d.Todos[1].Text})

	require.True(t, d.AddTodo("d"))
	assert.Equal(t, "d", d.Todos[2].Text)
}

func TestTaskDraft_AddThenRemoveRestores(t *testing.T) {
	d := NewTaskDraft()
	require.True(t, d.AddTodo("keep"))
	before := append([]models.TodoItem(nil), d.Todos...)

	require.True(t, d.AddTodo("temp"))
	require.True(t, d.RemoveTodo(d.Todos[1].ID))
	assert.Equal(t, before, d.Todos)
}

func TestTaskDraft_Submit(t *testing.T) {
	tests := []struct {
		name  string
		title string
		ok    bool
	}{
		{"empty title", "", false},
		{"whitespace title", " \t ", false},
		{"valid title", "Clean the garage", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewTaskDraft()
			d.Title = tt.title
			input, ok := d.Submit()
			assert.Equal(t, tt.ok, ok)
			if !ok {
				assert.Equal(t, models.TaskInput{}, input)
				return
			}
			assert.Equal(t, "Clean the garage", input.Title)
			assert.Equal(t, models.DifficultyEasy, input.Difficulty)
			assert.NoError(t, input.Validate())
		})
	}
}

func TestTaskDraft_SubmitSnapshotIsIndependent(t *testing.T) {
	d := NewTaskDraft()
	d.Title = "Clean the garage"
	require.True(t, d.AddTodo("Sort boxes"))

	input, ok := d.Submit()
	require.True(t, ok)

	d.Todos[0].Text = "changed"
	require.True(t, d.AddTodo("Sweep"))
	d.Title = "Other"

	assert.Equal(t, "Clean the garage", input.Title)
	require.Len(t, input.Todos, 1)
	assert.Equal(t, "Sort boxes", input.Todos[0].Text)
	assert.Len(t, d.Todos, 2, "submit leaves the draft intact")
}

func TestTaskDraft_CycleDifficulty(t *testing.T) {
	d := NewTaskDraft()
	assert.Equal(t, models.DifficultyEasy, d.Difficulty)

	d.CycleDifficulty(1)
	assert.Equal(t, models.DifficultyMedium, d.Difficulty)
	d.CycleDifficulty(2)
	assert.Equal(t, models.DifficultyTrivial, d.Difficulty, "wraps forward")
	d.CycleDifficulty(-1)
	assert.Equal(t, models.DifficultyHard, d.Difficulty, "wraps backward")
}

func TestTaskForm_BlankSubmitShowsHint(t *testing.T) {
	f := NewTaskForm()
	f = typeText(f, "   ")

	f, _ = press(f, tea.KeyCtrlS)
	assert.Equal(t, blankTitleHint, f.Hint())
	assert.Equal(t, fieldTitle, f.focus)
	assert.Contains(t, f.View(), blankTitleHint)

	f = typeText(f, "x")
	assert.Empty(t, f.Hint(), "typing a title clears the hint")
}

func TestTaskForm_SubmitEmitsSnapshot(t *testing.T) {
	f := NewTaskForm()
	f = typeText(f, "Clean the garage")

	f = tabTo(f, 2) // todo field
	f = typeText(f, "Sort boxes")
	f, _ = press(f, tea.KeyEnter)
	f = typeText(f, "   ")
	f, _ = press(f, tea.KeyEnter)

	f = tabTo(f, 1) // difficulty
	f, _ = press(f, tea.KeyRight)

	f, cmd := press(f, tea.KeyCtrlS)
	require.NotNil(t, cmd)
	msg, ok := cmd().(MsgSubmitTask)
	require.True(t, ok)

	assert.Equal(t, "Clean the garage", msg.Input.Title)
	assert.Equal(t, models.DifficultyMedium, msg.Input.Difficulty)
	require.Len(t, msg.Input.Todos, 1)
	assert.Equal(t, "Sort boxes", msg.Input.Todos[0].Text)
	assert.Empty(t, f.Hint())
}

func TestTaskForm_EnterOnSubmitButton(t *testing.T) {
	f := NewTaskForm()
	f = typeText(f, "Nap")
	f = tabTo(f, 4)

	_, cmd := press(f, tea.KeyEnter)
	require.NotNil(t, cmd)
	_, ok := cmd().(MsgSubmitTask)
	assert.True(t, ok)
}

func TestTaskForm_RemoveSelectedTodo(t *testing.T) {
	f := NewTaskForm()
	f = tabTo(f, 2)
	for _, text := range []string{"one", "two", "three"} {
		f = typeText(f, text)
		f, _ = press(f, tea.KeyEnter)
	}
	require.Len(t, f.Draft().Todos, 3)

	f, _ = press(f, tea.KeyUp) // select "two"
	f, _ = press(f, tea.KeyCtrlD)

	todos := f.Draft().Todos
	require.Len(t, todos, 2)
	assert.Equal(t, "one", todos[0].Text)
	assert.Equal(t, "three", todos[1].Text)
}

func TestTaskForm_Loading(t *testing.T) {
	f := NewTaskForm()
	f = typeText(f, "Clean the garage")
	assert.Equal(t, SubmitLabel, f.ButtonLabel())

	f.SetLoading(true)
	assert.True(t, f.Loading())
	assert.Equal(t, LoadingLabel, f.ButtonLabel())
	assert.Contains(t, f.View(), LoadingLabel)

	f, cmd := press(f, tea.KeyCtrlS)
	assert.Nil(t, cmd, "submission is disabled while loading")
	f = typeText(f, "!!")
	assert.Equal(t, "Clean the garage!!", f.Draft().Title, "fields stay editable while loading")

	f = tabTo(f, 2)
	f = typeText(f, "sweep")
	f, _ = press(f, tea.KeyEnter)
	require.Len(t, f.Draft().Todos, 1)

	f = tabTo(f, 2)
	require.Equal(t, fieldSubmit, f.focus)
	f, cmd = press(f, tea.KeyEnter)
	assert.Nil(t, cmd, "the submit button is disabled while loading")

	f.SetLoading(false)
	assert.Contains(t, f.View(), SubmitLabel)
}

func TestTaskForm_ShiftTabWraps(t *testing.T) {
	f := NewTaskForm()
	f, _ = press(f, tea.KeyShiftTab)
	assert.Equal(t, fieldSubmit, f.focus)
	f, _ = press(f, tea.KeyTab)
	assert.Equal(t, fieldTitle, f.focus)
}
