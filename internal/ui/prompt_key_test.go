package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestAPIKeyModel(t *testing.T) {
	m := newAPIKeyModel("gemini")
	for _, r := range "  sk-test " {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(apiKeyModel)
	}
	assert.NotContains(t, m.View(), "sk-test", "input is masked")
	assert.Contains(t, m.View(), "gemini API key required")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(apiKeyModel)
	assert.Equal(t, "sk-test", m.value)
	assert.NotNil(t, cmd)
}

func TestAPIKeyModel_BlankEnterIgnored(t *testing.T) {
	m := newAPIKeyModel("openai")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Empty(t, next.(apiKeyModel).value)
}

func TestAPIKeyModel_Cancel(t *testing.T) {
	next, _ := newAPIKeyModel("openai").Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, next.(apiKeyModel).quit)
}

func TestProviderSelectModel(t *testing.T) {
	m := providerSelectModel{options: []ProviderOption{
		{ID: "gemini", Name: "Gemini", HasAPIKey: true},
		{ID: "openai", Name: "OpenAI"},
	}}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(providerSelectModel)
	assert.Contains(t, m.View(), "key not set")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "openai", next.(providerSelectModel).selectedID)
}
