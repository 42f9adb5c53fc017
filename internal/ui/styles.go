package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	ColorPrimary   = lipgloss.Color("99")  // Purple
	ColorSecondary = lipgloss.Color("241") // Gray
	ColorSuccess   = lipgloss.Color("42")  // Green
	ColorError     = lipgloss.Color("160") // Red
	ColorWarning   = lipgloss.Color("214") // Orange/Yellow
	ColorText      = lipgloss.Color("252") // White/Gray
	ColorGold      = lipgloss.Color("220") // Loot and header accent
	ColorIndigo    = lipgloss.Color("61")  // Card border
	ColorSelected  = lipgloss.Color("42")

	// Base Styles
	StyleTitle   = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	StyleSubtle  = lipgloss.NewStyle().Foreground(ColorSecondary)
	StylePrimary = lipgloss.NewStyle().Foreground(ColorPrimary)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleText    = lipgloss.NewStyle().Foreground(ColorText)

	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			Padding(0, 1)

	StyleSectionTitle = lipgloss.NewStyle().
				Foreground(ColorIndigo).
				Bold(true).
				Underline(true)

	// Form
	StyleLabel        = lipgloss.NewStyle().Foreground(ColorSecondary)
	StyleLabelFocused = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleButton       = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255")).
				Background(ColorPrimary).
				Bold(true).
				Padding(0, 2)
	StyleButtonFocused = StyleButton.
				Underline(true).
				Background(lipgloss.Color("135"))
	StyleButtonDisabled = lipgloss.NewStyle().
				Foreground(lipgloss.Color("250")).
				Background(ColorSecondary).
				Padding(0, 2)

	// Quest card
	StyleCard = lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(ColorIndigo).
			Padding(0, 1)
	StyleBossHeader  = lipgloss.NewStyle().Foreground(ColorGold).Bold(true)
	StyleQuestTitle  = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	StyleMonsterName = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StyleHPBar       = lipgloss.NewStyle().Foreground(ColorError)
	StyleStrength    = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	StyleLore        = lipgloss.NewStyle().Foreground(ColorText).Italic(true)
	StyleLoot        = lipgloss.NewStyle().Foreground(ColorGold)
	StyleCallToArms  = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)

	// Selection lists
	StyleSelectTitle  = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleSelectNormal = lipgloss.NewStyle().Foreground(ColorText)
	StyleSelectActive = lipgloss.NewStyle().Foreground(ColorSelected).Bold(true)
	StyleSelectDim    = lipgloss.NewStyle().Foreground(ColorSecondary)
)

// Icon returns a styled icon string
func Icon(icon string, style lipgloss.Style) string {
	return style.Render(icon)
}
