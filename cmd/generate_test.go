package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/josephgoksu/Questifier/internal/llm"
	"github.com/josephgoksu/Questifier/models"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer
	c := &cobra.Command{}
	c.SetContext(context.Background())
	c.SetOut(&out)
	c.SetErr(&out)
	return c, &out
}

func TestRunGenerate_JSON(t *testing.T) {
	env := setupCmdTest(t)
	c, out := newTestCommand()

	err := runGenerate(c, generateOptions{
		title:      "Clean the garage",
		notes:      "Before the weekend",
		todos:      []string{"Sort boxes", "  ", "Sweep floor"},
		difficulty: "medium",
		json:       true,
	})
	require.NoError(t, err)

	var got models.Quest
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, garageQuest(), got)

	assert.Equal(t, 1, env.gen.calls)
	assert.Equal(t, "Clean the garage", env.gen.last.Title)
	assert.Equal(t, "Before the weekend", env.gen.last.Notes)
	assert.Equal(t, []string{"Sort boxes", "Sweep floor"}, env.gen.last.TodoTexts())
	assert.Equal(t, models.DifficultyMedium, env.gen.last.Difficulty)
	assert.Equal(t, llm.Provider(llm.ProviderGemini), env.llmCfg.Provider)
}

func TestRunGenerate_Card(t *testing.T) {
	setupCmdTest(t)
	c, out := newTestCommand()

	require.NoError(t, runGenerate(c, generateOptions{title: "Clean the garage"}))

	assert.Contains(t, out.String(), "Clutter Beast")
	assert.Contains(t, out.String(), "50 / 50")
	assert.Contains(t, out.String(), "10 Gold")
}

func TestRunGenerate_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		opts    generateOptions
		wantErr string
	}{
		{name: "blank title", opts: generateOptions{title: "   "}, wantErr: "title is required"},
		{name: "bad difficulty", opts: generateOptions{title: "Laundry", difficulty: "epic"}, wantErr: "invalid difficulty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupCmdTest(t)
			c, out := newTestCommand()

			err := runGenerate(c, tt.opts)
			assert.ErrorContains(t, err, tt.wantErr)
			assert.Zero(t, env.gen.calls)
			assert.Empty(t, out.String())
		})
	}
}

func TestRunGenerate_GenerationFailure(t *testing.T) {
	env := setupCmdTest(t)
	env.gen.err = &llm.GenerationError{Kind: llm.KindMalformed, Provider: "gemini", Err: fmt.Errorf("unexpected token")}
	c, out := newTestCommand()

	err := runGenerate(c, generateOptions{title: "Clean the garage", json: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrMalformedResponse)
	assert.Equal(t, llm.UserFacingGenerationMessage, userMessage(err))
	assert.Empty(t, out.String())
}

func TestBuildTaskInput(t *testing.T) {
	tests := []struct {
		name       string
		title      string
		todos      []string
		difficulty string
		want       models.Difficulty
		wantTodos  int
		wantErr    bool
	}{
		{name: "defaults to easy", title: "Laundry", want: models.DifficultyEasy},
		{name: "case-insensitive difficulty", title: "Laundry", difficulty: "HARD", want: models.DifficultyHard},
		{name: "blank todos skipped", title: "Laundry", todos: []string{"", "Fold", " "}, want: models.DifficultyEasy, wantTodos: 1},
		{name: "title kept untrimmed", title: "  Laundry ", want: models.DifficultyEasy},
		{name: "blank title", title: "\t", wantErr: true},
		{name: "unknown difficulty", title: "Laundry", difficulty: "Legendary", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, err := buildTaskInput(tt.title, "", tt.todos, tt.difficulty)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.title, input.Title)
			assert.Equal(t, tt.want, input.Difficulty)
			assert.Len(t, input.Todos, tt.wantTodos)
		})
	}
}
