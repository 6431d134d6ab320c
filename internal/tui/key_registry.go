package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler reports whether it consumed the key; unconsumed keys fall
// through to the next binding for the same key.
type KeyHandler func(m Model, key string) (Model, tea.Cmd, bool)

// KeyBinding maps one or more keys to an action. The first key is the one
// shown in the footer.
type KeyBinding struct {
	Keys        []string
	Handler     KeyHandler
	Description string
	ViewModes   []int
	Priority    int
}

func (b KeyBinding) appliesTo(mode int) bool {
	if len(b.ViewModes) == 0 {
		return true
	}
	for _, v := range b.ViewModes {
		if v == mode {
			return true
		}
	}
	return false
}

// HandlerRegistry dispatches key presses by view and renders the matching
// footer help, so both come from one table.
type HandlerRegistry struct {
	bindings []KeyBinding
	byKey    map[string][]int
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{byKey: make(map[string][]int)}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
	r.byKey = make(map[string][]int)
	for i, bound := range r.bindings {
		for _, k := range bound.Keys {
			r.byKey[k] = append(r.byKey[k], i)
		}
	}
}

func (r *HandlerRegistry) Handle(m Model, key string) (Model, tea.Cmd, bool) {
	mode := m.viewMode()
	for _, i := range r.byKey[key] {
		b := r.bindings[i]
		if !b.appliesTo(mode) {
			continue
		}
		if next, cmd, handled := b.Handler(m, key); handled {
			return next, cmd, true
		}
	}
	return m, nil, false
}

// HelpForView renders "[key]Description" pairs for the bindings active in
// mode, highest priority first.
func (r *HandlerRegistry) HelpForView(mode int) string {
	var parts []string
	for _, b := range r.bindings {
		if b.Description == "" || len(b.Keys) == 0 || !b.appliesTo(mode) {
			continue
		}
		parts = append(parts, "["+b.Keys[0]+"]"+b.Description)
	}
	return strings.Join(parts, "|")
}
