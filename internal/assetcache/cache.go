// Package assetcache answers asset requests from a named cache bucket first
// and falls back to the network on a miss.
package assetcache

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/akyairhashvil/flashtimer/internal/database"
	"github.com/akyairhashvil/flashtimer/internal/models"
	"github.com/akyairhashvil/flashtimer/internal/util"
	"github.com/charmbracelet/log"
)

// Store persists bucket entries.
type Store interface {
	PutCacheEntries(ctx context.Context, bucket string, entries []models.CacheEntry) error
	GetCacheEntry(ctx context.Context, bucket, path string) (models.CacheEntry, error)
}

// Cache is one named bucket. The name acts as the generation tag: renaming
// it starts from an empty bucket and leaves the old one behind.
type Cache struct {
	name    string
	store   Store
	network Fetcher
	logger  *log.Logger
}

func New(name string, store Store, network Fetcher, logger *log.Logger) *Cache {
	if logger == nil {
		logger = log.Default()
	}
	return &Cache{name: name, store: store, network: network, logger: logger}
}

func (c *Cache) Name() string { return c.name }

// Install fetches every manifest path and stores them together. If any fetch
// fails nothing is stored and the error is returned to the caller.
func (c *Cache) Install(ctx context.Context, manifest []string) error {
	entries := make([]models.CacheEntry, 0, len(manifest))
	for _, p := range manifest {
		resp, err := c.network.Fetch(ctx, p)
		if err != nil {
			return fmt.Errorf("install %s: %w", c.name, err)
		}
		entries = append(entries, models.CacheEntry{
			Bucket:      c.name,
			Path:        p,
			Status:      resp.Status,
			ContentType: resp.ContentType,
			Header:      resp.Header,
			Body:        resp.Body,
			Digest:      resp.Digest,
		})
	}
	if err := c.store.PutCacheEntries(ctx, c.name, entries); err != nil {
		return fmt.Errorf("install %s: %w", c.name, err)
	}
	c.logger.Info("cache installed", "bucket", c.name, "entries", len(entries))
	return nil
}

// Match returns the cached response for path, if any.
func (c *Cache) Match(ctx context.Context, path string) (*Response, bool) {
	e, err := c.store.GetCacheEntry(ctx, c.name, path)
	if err != nil {
		if !errors.Is(err, database.ErrNotFound) {
			c.logger.Warn("cache lookup failed", "bucket", c.name, "path", path, "err", err)
		}
		return nil, false
	}
	digest := e.Digest
	if digest == "" {
		digest = util.Digest(e.Body)
	}
	return &Response{
		Status:      e.Status,
		ContentType: e.ContentType,
		Header:      e.Header,
		Body:        e.Body,
		Digest:      digest,
	}, true
}

func (c *Cache) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	if resp, ok := c.Match(r.Context(), r.URL.Path); ok {
		writeResponse(w, r, resp, "HIT")
		return
	}
	resp, err := c.network.Fetch(r.Context(), r.URL.Path)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) {
			http.Error(w, http.StatusText(se.Status), se.Status)
			return
		}
		c.logger.Warn("network fetch failed", "path", r.URL.Path, "err", err)
		http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
		return
	}
	writeResponse(w, r, resp, "MISS")
}

func writeResponse(w http.ResponseWriter, r *http.Request, resp *Response, source string) {
	h := w.Header()
	for k, v := range resp.Header {
		h[k] = append([]string(nil), v...)
	}
	if resp.ContentType != "" {
		h.Set("Content-Type", resp.ContentType)
	}
	h.Set("X-Cache", source)
	etag := util.ETag(resp.Digest)
	h.Set("ETag", etag)
	if match := r.Header.Get("If-None-Match"); match != "" && match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(resp.Body)
}
