package tui

import (
	"time"

	"github.com/akyairhashvil/flashtimer/internal/config"
	"github.com/akyairhashvil/flashtimer/internal/countdown"
	"github.com/akyairhashvil/flashtimer/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func defaultBindings() *HandlerRegistry {
	r := NewHandlerRegistry()
	list := []int{config.ViewModeList}
	countdownView := []int{config.ViewModeCountdown}

	r.Register(KeyBinding{Keys: []string{"enter", " "}, Handler: handleStart, Description: "Start", ViewModes: list, Priority: 1})
	r.Register(KeyBinding{Keys: []string{"k", "up"}, Handler: handleCursorUp, Description: "Up", ViewModes: list})
	r.Register(KeyBinding{Keys: []string{"j", "down"}, Handler: handleCursorDown, Description: "Down", ViewModes: list})
	r.Register(KeyBinding{Keys: []string{"x", "delete"}, Handler: handleRemove, Description: "Remove", ViewModes: list})
	r.Register(KeyBinding{Keys: []string{"a", "tab"}, Handler: handleOpenForm, Description: "Add", ViewModes: list})
	r.Register(KeyBinding{Keys: []string{"ctrl+p"}, Handler: handlePresetSheet, Description: "Print", ViewModes: list})
	r.Register(KeyBinding{Keys: []string{"q"}, Handler: handleQuit, Description: "Quit", ViewModes: list})

	r.Register(KeyBinding{Keys: []string{"c", "esc"}, Handler: handleCancel, Description: "Cancel", ViewModes: countdownView})
	return r
}

func handleCursorUp(m Model, _ string) (Model, tea.Cmd, bool) {
	if m.cursor > 0 {
		m.cursor--
		m.ensureCursorVisible()
	}
	return m, nil, true
}

func handleCursorDown(m Model, _ string) (Model, tea.Cmd, bool) {
	if m.cursor < len(m.store.List())-1 {
		m.cursor++
		m.ensureCursorVisible()
	}
	return m, nil, true
}

func handleStart(m Model, _ string) (Model, tea.Cmd, bool) {
	list := m.store.List()
	if m.cursor < 0 || m.cursor >= len(list) {
		return m, nil, true
	}
	m.Message = ""
	next, cmd := m.step(countdown.Start{Seconds: list[m.cursor]})
	return next, cmd, true
}

func handleRemove(m Model, _ string) (Model, tea.Cmd, bool) {
	if err := m.store.Remove(m.ctx, m.cursor); err != nil {
		util.LogError(m.logger, "remove preset", err)
		m.Message = "Save failed: " + err.Error()
		return m, nil, true
	}
	m.clampCursor()
	return m, nil, true
}

func handleOpenForm(m Model, _ string) (Model, tea.Cmd, bool) {
	m.formOpen = true
	m.Message = ""
	return m, m.form.Focus(), true
}

func handlePresetSheet(m Model, _ string) (Model, tea.Cmd, bool) {
	path, err := GeneratePresetSheet(m.reportDir, m.store.Presets(), time.Now())
	if err != nil {
		util.LogError(m.logger, "preset sheet", err)
		m.Message = "Export failed: " + err.Error()
	} else {
		m.logger.Info("preset sheet written", "path", path)
		m.Message = "Preset sheet saved: " + path
	}
	return m, nil, true
}

func handleQuit(m Model, _ string) (Model, tea.Cmd, bool) {
	return m, tea.Quit, true
}

// handleCancel only stops a running countdown; while flashing the key is
// swallowed and the flash runs out on its own.
func handleCancel(m Model, _ string) (Model, tea.Cmd, bool) {
	next, cmd := m.step(countdown.Cancel{})
	return next, cmd, true
}
