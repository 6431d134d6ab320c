package testutil

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/akyairhashvil/flashtimer/internal/models"
	"github.com/akyairhashvil/flashtimer/internal/util"
)

// EntryBuilder provides fluent API for creating test cache entries.
type EntryBuilder struct {
	entry models.CacheEntry
}

func NewEntry(path string) *EntryBuilder {
	return &EntryBuilder{
		entry: models.CacheEntry{
			Path:        path,
			Status:      http.StatusOK,
			ContentType: "text/plain; charset=utf-8",
			Body:        []byte("body of " + path),
		},
	}
}

func (b *EntryBuilder) WithBody(body string) *EntryBuilder {
	b.entry.Body = []byte(body)
	return b
}

func (b *EntryBuilder) WithContentType(ct string) *EntryBuilder {
	b.entry.ContentType = ct
	return b
}

func (b *EntryBuilder) WithHeader(key, value string) *EntryBuilder {
	if b.entry.Header == nil {
		b.entry.Header = http.Header{}
	}
	b.entry.Header.Add(key, value)
	return b
}

func (b *EntryBuilder) WithStoredAt(t time.Time) *EntryBuilder {
	b.entry.StoredAt = t
	return b
}

// Build fills Digest from the body.
func (b *EntryBuilder) Build() models.CacheEntry {
	e := b.entry
	e.Digest = util.Digest(e.Body)
	return e
}

// Entries builds one default entry per path.
func Entries(paths ...string) []models.CacheEntry {
	out := make([]models.CacheEntry, 0, len(paths))
	for _, p := range paths {
		out = append(out, NewEntry(p).Build())
	}
	return out
}

// PresetsJSON renders seconds the way the preset store persists them.
func PresetsJSON(seconds ...int) string {
	parts := make([]string, len(seconds))
	for i, s := range seconds {
		parts[i] = strconv.Itoa(s)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
