package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var glyphs = map[string]string{
	"bars":          "☰",
	"calendar":      "▦",
	"trash":         "⌫",
	"pen-to-square": "✎",
	"clock":         "◔",
	"check":         "✓",
	"xmark":         "✗",
}

var (
	cardStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241"))
	selectedCardStyle = cardStyle.BorderForeground(lipgloss.Color("170"))
	titleStyle        = lipgloss.NewStyle().Bold(true)
	dateStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	dueStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	overdueStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	actionStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	panelStyle        = lipgloss.NewStyle().
				MarginTop(1).
				Padding(0, 1).
				BorderLeft(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("241"))
	fadeStyle = lipgloss.NewStyle().Faint(true)
)

// Glyph returns the terminal symbol for an icon name.
func Glyph(icon string) string {
	if g, ok := glyphs[icon]; ok {
		return g
	}
	return "?"
}

// DateStyle highlights overdue tasks, then tasks due today.
func (c Card) DateStyle() lipgloss.Style {
	switch {
	case c.Overdue:
		return overdueStyle
	case c.Due:
		return dueStyle
	}
	return dateStyle
}

// View draws the card in a box of the given outer width.
func (c Card) View(width int, selected, fading bool) string {
	style := cardStyle
	if selected {
		style = selectedCardStyle
	}
	content := width - style.GetHorizontalFrameSize()
	if content < 8 {
		content = 8
	}

	header := Glyph(c.ToggleIcon) + " " + titleStyle.Render(c.Title)
	date := c.DateStyle().Render(Glyph(c.DateIcon) + " " + c.DateLabel)

	actions := make([]string, len(c.Actions))
	for i, a := range c.Actions {
		actions[i] = actionStyle.Render(Glyph(a.Icon))
	}

	lines := []string{header, date, strings.Join(actions, "  ")}
	if c.Expanded {
		body := titleStyle.Render(c.Title)
		if c.Description != "" {
			body += "\n" + c.Description
		}
		lines = append(lines, panelStyle.Width(content-panelStyle.GetHorizontalBorderSize()).Render(body))
	}

	out := style.Width(content + style.GetHorizontalPadding()).Render(strings.Join(lines, "\n"))
	if fading {
		return fadeStyle.Render(out)
	}
	return out
}
