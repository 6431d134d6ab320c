package tui

import (
	"context"

	"github.com/akyairhashvil/flashtimer/internal/models"
)

// PresetStore is the preset list the model drives.
type PresetStore interface {
	Load(ctx context.Context) []int
	List() []int
	Presets() []models.Preset
	Add(ctx context.Context, seconds int) error
	Remove(ctx context.Context, index int) error
}
