package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/flashtimer/internal/config"
	"github.com/akyairhashvil/flashtimer/internal/countdown"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m Model) View() string {
	if m.timer.Active() {
		return m.renderCountdown()
	}
	return CurrentTheme.Base.Render(m.renderList())
}

func (m Model) renderCountdown() string {
	var body string
	switch m.timer.State() {
	case countdown.Flashing:
		body = lipgloss.JoinVertical(lipgloss.Center,
			CurrentTheme.Flash.Render(m.timer.Display()),
			"",
			CurrentTheme.Header.Render("Time's up"),
		)
	default:
		body = lipgloss.JoinVertical(lipgloss.Center,
			CurrentTheme.Clock.Render(m.timer.Display()),
			"",
			m.progress.ViewAs(m.timer.Progress()),
			"",
			CurrentTheme.Dim.Render(m.keys.HelpForView(config.ViewModeCountdown)),
		)
	}
	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m Model) renderList() string {
	var b strings.Builder
	b.WriteString(CurrentTheme.Header.Render("flashtimer"))
	b.WriteString(CurrentTheme.Dim.Render(" " + versionLabel()))
	b.WriteString("\n\n")

	list := m.store.List()
	if len(list) == 0 {
		b.WriteString(CurrentTheme.Dim.Render("No presets yet. Press a to add one."))
		b.WriteString("\n")
	}
	end := m.offset + config.MaxVisiblePresets
	if end > len(list) {
		end = len(list)
	}
	if m.offset > 0 {
		b.WriteString(CurrentTheme.Dim.Render(fmt.Sprintf("  ↑ %d more", m.offset)))
		b.WriteString("\n")
	}
	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderPreset(i, list[i]))
		b.WriteString("\n")
	}
	if end < len(list) {
		b.WriteString(CurrentTheme.Dim.Render(fmt.Sprintf("  ↓ %d more", len(list)-end)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.formOpen {
		b.WriteString(CurrentTheme.Input.Render(m.form.View()))
		b.WriteString("\n")
		b.WriteString(CurrentTheme.Dim.Render("[enter]Add|[esc]Done"))
	} else {
		b.WriteString(CurrentTheme.Dim.Render(m.keys.HelpForView(config.ViewModeList)))
	}
	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(CurrentTheme.Message.Render(m.Message))
	}
	return b.String()
}

func (m Model) renderPreset(idx, seconds int) string {
	label := truncateLabel(countdown.FormatNatural(seconds), config.MaxLabelWidth)
	if idx == m.cursor && !m.formOpen {
		return CurrentTheme.Selected.Render("› " + label)
	}
	return CurrentTheme.Preset.Render("  " + label)
}

func truncateLabel(text string, max int) string {
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}
