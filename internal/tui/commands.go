package tui

import (
	"time"

	"github.com/akyairhashvil/flashtimer/internal/config"
	"github.com/akyairhashvil/flashtimer/internal/countdown"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---

// TickMsg is one countdown tick, tagged with the generation that armed it.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// FlashDoneMsg ends the flash window armed by generation Gen.
type FlashDoneMsg struct {
	Gen int
}

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(config.TickInterval, func(t time.Time) tea.Msg { return TickMsg{Gen: gen, Time: t} })
}

func flashResetCmd(gen int) tea.Cmd {
	return tea.Tick(config.FlashDuration, func(time.Time) tea.Msg { return FlashDoneMsg{Gen: gen} })
}

// effectCmd arms the timer a countdown transition asked for.
func effectCmd(eff countdown.Effect, gen int) tea.Cmd {
	switch eff {
	case countdown.EffectScheduleTick:
		return tickCmd(gen)
	case countdown.EffectScheduleReset:
		return flashResetCmd(gen)
	default:
		return nil
	}
}
