// Package presets keeps the ordered list of preset durations and persists
// the whole list to a key-value store on every change.
package presets

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/akyairhashvil/flashtimer/internal/config"
	"github.com/akyairhashvil/flashtimer/internal/countdown"
	"github.com/akyairhashvil/flashtimer/internal/models"
	"github.com/charmbracelet/log"
)

// KV is the storage the list is persisted to.
//
//go:generate mockgen -source=store.go -destination=mock_kv_test.go -package=presets
type KV interface {
	LookupSetting(ctx context.Context, key string) (string, bool, error)
	SetSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error
}

// Store is the in-memory preset list backed by KV. The list shown to the
// user is always the list last written to KV.
type Store struct {
	mu     sync.Mutex
	kv     KV
	logger *log.Logger
	list   []int
}

func NewStore(kv KV, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{kv: kv, logger: logger}
}

// Load replaces the in-memory list with the persisted one. An absent or
// malformed value loads as an empty list; a failed read keeps the current
// list.
func (s *Store) Load(ctx context.Context) []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.read(ctx)
	if err != nil {
		s.logger.Warn("presets read failed, keeping current list", "key", config.PresetsKey, "err", err)
		return s.snapshot()
	}
	s.list = list
	return s.snapshot()
}

// Stored reads the persisted list with labels without touching the
// in-memory list.
func (s *Store) Stored(ctx context.Context) ([]models.Preset, error) {
	list, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	return labelled(list), nil
}

// read returns the persisted list. Only a failed read is an error; absent
// and malformed values come back empty.
func (s *Store) read(ctx context.Context) ([]int, error) {
	raw, ok, err := s.kv.LookupSetting(ctx, config.PresetsKey)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	list, err := decode(raw)
	if err != nil {
		s.logger.Warn("ignoring malformed presets", "key", config.PresetsKey, "err", err)
		return nil, nil
	}
	return list, nil
}

// List returns a copy of the presets in display order.
func (s *Store) List() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Presets returns the list with display labels.
func (s *Store) Presets() []models.Preset {
	return labelled(s.List())
}

func labelled(list []int) []models.Preset {
	out := make([]models.Preset, 0, len(list))
	for i, seconds := range list {
		out = append(out, models.Preset{Index: i, Seconds: seconds, Label: countdown.FormatNatural(seconds)})
	}
	return out
}

// Add appends seconds and persists. Non-positive values are ignored.
func (s *Store) Add(ctx context.Context, seconds int) error {
	if seconds <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	next := append(s.snapshot(), seconds)
	return s.commit(ctx, next)
}

// Remove deletes the preset at index and persists. An index outside the
// current list is a no-op.
func (s *Store) Remove(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.list) {
		return nil
	}
	next := make([]int, 0, len(s.list)-1)
	next = append(next, s.list[:index]...)
	next = append(next, s.list[index+1:]...)
	return s.commit(ctx, next)
}

// Clear deletes the persisted list. The in-memory list is emptied only once
// the delete succeeds.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.DeleteSetting(ctx, config.PresetsKey); err != nil {
		return fmt.Errorf("clear presets: %w", err)
	}
	s.list = nil
	return nil
}

// commit writes next and only then adopts it, so a failed write leaves the
// previous list in place.
func (s *Store) commit(ctx context.Context, next []int) error {
	raw, err := encode(next)
	if err != nil {
		return err
	}
	if err := s.kv.SetSetting(ctx, config.PresetsKey, raw); err != nil {
		return fmt.Errorf("save presets: %w", err)
	}
	s.list = next
	return nil
}

func (s *Store) snapshot() []int {
	out := make([]int, len(s.list))
	copy(out, s.list)
	return out
}

// ParseSeconds reads the add form field. Only base-10 integers above zero
// are accepted.
func ParseSeconds(text string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func decode(raw string) ([]int, error) {
	var list []int
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, err
	}
	for i, v := range list {
		if v <= 0 {
			return nil, fmt.Errorf("entry %d is not positive: %d", i, v)
		}
	}
	return list, nil
}

func encode(list []int) (string, error) {
	if list == nil {
		list = []int{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("encode presets: %w", err)
	}
	return string(b), nil
}
