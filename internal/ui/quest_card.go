package ui

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/josephgoksu/Questifier/models"
)

const (
	portraitSize   = 5
	hpBarWidth     = 20
	defaultCardWid = 72
	minCardWidth   = 40
)

// portraitPalette colors the glyph; the hash picks one entry per monster.
var portraitPalette = []lipgloss.Color{"160", "99", "42", "214", "75", "205", "220", "61"}

// PortraitURL is the placeholder image for a monster, keyed by its name with
// all whitespace removed.
func PortraitURL(name string) string {
	seed := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, name)
	return "https://picsum.photos/seed/" + seed + "/128/128"
}

// MonsterGlyph returns the 5x5 portrait grid for name. The left three columns
// come from an FNV-1a hash of the name and are mirrored onto the right two.
func MonsterGlyph(name string) [portraitSize][portraitSize]bool {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	bits := h.Sum64()

	var grid [portraitSize][portraitSize]bool
	half := (portraitSize + 1) / 2
	for row := 0; row < portraitSize; row++ {
		for col := 0; col < half; col++ {
			on := bits>>(uint(row*half+col))&1 == 1
			grid[row][col] = on
			grid[row][portraitSize-1-col] = on
		}
	}
	return grid
}

func renderPortrait(name string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	style := lipgloss.NewStyle().Foreground(portraitPalette[h.Sum32()%uint32(len(portraitPalette))])

	grid := MonsterGlyph(name)
	lines := make([]string, 0, portraitSize)
	for _, row := range grid {
		var b strings.Builder
		for _, on := range row {
			if on {
				b.WriteString("██")
			} else {
				b.WriteString("░░")
			}
		}
		lines = append(lines, style.Render(b.String()))
	}
	return strings.Join(lines, "\n")
}

// clampStat maps negative stats to zero for display.
func clampStat(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func formatStat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// hpBar draws a full bar; a fresh boss is always at full health.
func hpBar(hp float64) string {
	filled := 0
	if clampStat(hp) > 0 {
		filled = hpBarWidth
	}
	return StyleHPBar.Render(strings.Repeat("█", filled)) +
		StyleSubtle.Render(strings.Repeat("░", hpBarWidth-filled))
}

// RenderQuestCard renders a quest as a boss battle card. width is the total
// card width including the border; zero selects a default.
func RenderQuestCard(quest models.Quest, width int) string {
	if width <= 0 {
		width = defaultCardWid
	}
	if width < minCardWidth {
		width = minCardWidth
	}
	inner := width - 4 // border + padding

	var s strings.Builder

	// Header
	level := fmt.Sprintf("LVL %d", quest.Level())
	header := StyleBossHeader.Render("BOSS BATTLE")
	gap := inner - lipgloss.Width(header) - len(level)
	if gap < 1 {
		gap = 1
	}
	s.WriteString(header + strings.Repeat(" ", gap) + StyleSubtle.Render(level) + "\n")
	s.WriteString(StyleQuestTitle.Render(WrapText(quest.QuestTitle, inner)) + "\n\n")

	// Monster
	m := quest.Monster
	portrait := renderPortrait(m.Name)
	infoWidth := inner - lipgloss.Width(portrait) - 2

	var info strings.Builder
	info.WriteString(StyleMonsterName.Render(WrapText(m.Name, infoWidth)) + "\n")
	if m.Description != "" {
		info.WriteString(StyleSubtle.Italic(true).Render(WrapText(m.Description, infoWidth)) + "\n")
	}
	info.WriteString(StyleSubtle.Render(PortraitURL(m.Name)))

	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, portrait, "  ", info.String()) + "\n\n")

	// Stats
	s.WriteString(fmt.Sprintf("HP  %s %s / %s\n", hpBar(m.HP), formatStat(m.HP), formatStat(m.HP)))
	s.WriteString("STR " + StyleStrength.Render(formatStat(m.Strength)) + "\n")
	s.WriteString(StyleWarning.Bold(true).Render("Weakness: ") + WrapText(m.Weakness, inner-10) + "\n\n")

	// Lore
	s.WriteString(StyleSectionTitle.Render("Quest Log") + "\n")
	s.WriteString(StyleLore.Render(WrapText(`"`+quest.Lore+`"`, inner)) + "\n\n")

	// Rewards
	s.WriteString(StyleSectionTitle.Render("Potential Loot") + "\n")
	for _, reward := range quest.Rewards {
		s.WriteString(StyleLoot.Render("•") + " " + WrapText(reward, inner-2) + "\n")
	}
	s.WriteString("\n")

	// Call to action
	s.WriteString(StyleCallToArms.Render(WrapText(quest.CallToAction, inner)) + "\n\n")
	s.WriteString(StyleSubtle.Render("[n] Create Another Quest"))

	return StyleCard.Width(width - 2).Render(s.String())
}
