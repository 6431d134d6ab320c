package tui

import (
	"context"

	"github.com/akyairhashvil/flashtimer/internal/config"
	"github.com/akyairhashvil/flashtimer/internal/countdown"
	"github.com/akyairhashvil/flashtimer/internal/presets"
	"github.com/akyairhashvil/flashtimer/internal/util"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// Model is the root bubbletea model. It owns the preset list and the single
// active countdown; every countdown change goes through countdown.Step.
type Model struct {
	ctx       context.Context
	store     PresetStore
	logger    *log.Logger
	keys      *HandlerRegistry
	timer     countdown.Countdown
	form      textinput.Model
	formOpen  bool
	progress  progress.Model
	cursor    int
	offset    int
	reportDir string
	Message   string
	width     int // Store window dimensions
	height    int
}

func NewModel(ctx context.Context, store PresetStore, logger *log.Logger, reportDir string) Model {
	if logger == nil {
		logger = log.Default()
	}
	ti := textinput.New()
	ti.Placeholder = "seconds"
	ti.Prompt = "+ "
	ti.CharLimit = config.MaxSecondsDigits
	ti.Width = config.MaxSecondsDigits + 2

	prog := progress.New(
		progress.WithSolidFill(CurrentTheme.Progress),
		progress.WithoutPercentage(),
	)
	prog.Width = config.ProgressWidth

	store.Load(ctx)
	return Model{
		ctx:       ctx,
		store:     store,
		logger:    logger,
		keys:      defaultBindings(),
		form:      ti,
		progress:  prog,
		reportDir: reportDir,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// State reports the lifecycle state of the active countdown.
func (m Model) State() countdown.State {
	return m.timer.State()
}

func (m Model) viewMode() int {
	switch {
	case m.timer.Active():
		return config.ViewModeCountdown
	case m.formOpen:
		return config.ViewModeForm
	default:
		return config.ViewModeList
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil
	case TickMsg:
		return m.step(countdown.Tick{Gen: msg.Gen})
	case FlashDoneMsg:
		return m.step(countdown.FlashDone{Gen: msg.Gen})
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.viewMode() == config.ViewModeForm {
			return m.handleFormKey(msg)
		}
		next, cmd, _ := m.keys.Handle(m, msg.String())
		return next, cmd
	}
	return m, nil
}

// step feeds one input to the countdown and arms the timer it asks for.
func (m Model) step(in countdown.Input) (Model, tea.Cmd) {
	next, eff := countdown.Step(m.timer, in)
	m.timer = next
	if !next.Active() {
		m.clampCursor()
	}
	return m, effectCmd(eff, next.Gen())
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	m.width, m.height = msg.Width, msg.Height
	if m.width > 0 {
		target := config.ProgressWidth
		if m.width < config.CompactModeThreshold {
			target = m.width / 2
		}
		if target < config.MinProgressWidth {
			target = config.MinProgressWidth
		}
		m.progress.Width = target
	}
	return m
}

func (m Model) handleFormKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.formOpen = false
		m.form.Blur()
		return m, nil
	case tea.KeyEnter:
		seconds, ok := presets.ParseSeconds(m.form.Value())
		if !ok {
			return m, nil
		}
		if err := m.store.Add(m.ctx, seconds); err != nil {
			util.LogError(m.logger, "add preset", err)
			m.Message = "Save failed: " + err.Error()
			return m, nil
		}
		m.Message = ""
		m.form.Reset()
		m.cursor = len(m.store.List()) - 1
		m.ensureCursorVisible()
		return m, nil
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m *Model) clampCursor() {
	n := len(m.store.List())
	if n == 0 {
		m.cursor, m.offset = 0, 0
		return
	}
	m.cursor = util.Clamp(m.cursor, 0, n-1)
	m.ensureCursorVisible()
}

func (m *Model) ensureCursorVisible() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+config.MaxVisiblePresets {
		m.offset = m.cursor - config.MaxVisiblePresets + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}
