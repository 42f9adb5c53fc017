package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ProviderOption is one row of the provider picker.
type ProviderOption struct {
	ID          string
	Name        string
	Description string
	HasAPIKey   bool
}

// PromptLLMProvider lets the user pick a provider from options.
func PromptLLMProvider(options []ProviderOption) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("no providers to choose from")
	}

	p := tea.NewProgram(providerSelectModel{options: options})
	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("error running provider selection: %w", err)
	}

	result := finalModel.(providerSelectModel)
	if result.quit {
		return "", ErrPromptCancelled
	}
	return result.selectedID, nil
}

type providerSelectModel struct {
	options    []ProviderOption
	cursor     int
	selectedID string
	quit       bool
}

func (m providerSelectModel) Init() tea.Cmd {
	return nil
}

func (m providerSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quit = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}
		case "enter":
			m.selectedID = m.options[m.cursor].ID
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m providerSelectModel) View() string {
	s := "\n" + StyleSelectTitle.Render("🤖 Select AI Provider") + "\n\n"

	for i, opt := range m.options {
		cursor := "  "
		style := StyleSelectNormal
		if m.cursor == i {
			cursor = "▶ "
			style = StyleSelectActive
		}

		desc := opt.Description
		if !opt.HasAPIKey {
			desc += " • key not set"
		}
		s += cursor + style.Render(fmt.Sprintf("%-10s", opt.Name)) + StyleSelectDim.Render(" "+desc) + "\n"
	}

	s += "\n" + StyleSelectDim.Render("↑/↓ navigate • enter select • esc cancel") + "\n"
	return s
}
