// Package mcp formats quests as Markdown for MCP tool responses.
// The terminal card lives in internal/ui; this is the token-efficient
// rendition an assistant reads.
package mcp

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/josephgoksu/Questifier/models"
	"github.com/josephgoksu/Questifier/types"
)

// FormatQuest converts a quest into Markdown.
// Structure: Title -> Boss -> Lore -> Loot -> Call to action
func FormatQuest(q models.Quest) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", oneLine(q.QuestTitle)))

	m := q.Monster
	sb.WriteString(fmt.Sprintf("## Boss: %s (LVL %d)\n", oneLine(m.Name), q.Level()))
	if m.Description != "" {
		sb.WriteString(fmt.Sprintf("_%s_\n", oneLine(m.Description)))
	}
	sb.WriteString(fmt.Sprintf("- **HP:** %s\n", formatNumber(m.HP)))
	sb.WriteString(fmt.Sprintf("- **Strength:** %s\n", formatNumber(m.Strength)))
	sb.WriteString(fmt.Sprintf("- **Weakness:** %s\n\n", oneLine(m.Weakness)))

	sb.WriteString("## Quest Log\n")
	sb.WriteString(fmt.Sprintf("> %s\n\n", strings.ReplaceAll(strings.TrimSpace(q.Lore), "\n", "\n> ")))

	sb.WriteString("## Potential Loot\n")
	for _, r := range q.Rewards {
		sb.WriteString(fmt.Sprintf("- %s\n", oneLine(r)))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("**%s**\n", oneLine(q.CallToAction)))
	return sb.String()
}

// FormatError returns a Markdown error for a failed tool call.
// Details are listed in key order.
func FormatError(e *types.MCPError) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Error (`%s`)\n\n**Details**: %s\n", e.Code, oneLine(e.Message)))

	keys := make([]string, 0, len(e.Details))
	for k := range e.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("- **%s**: %v\n", k, e.Details[k]))
	}
	return sb.String()
}

// formatNumber prints whole numbers without a decimal point.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// oneLine collapses runs of whitespace, newlines included.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
