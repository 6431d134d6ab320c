// Package web serves the preset page through the asset cache.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"io/fs"
	"net"
	"net/http"
	"time"

	"github.com/akyairhashvil/flashtimer/internal/assetcache"
	"github.com/akyairhashvil/flashtimer/internal/config"
	"github.com/akyairhashvil/flashtimer/internal/models"
	"github.com/charmbracelet/log"
)

//go:embed static
var staticFiles embed.FS

// Assets returns the embedded page rooted at its top directory.
func Assets() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// PresetSource is the part of the preset store the page reads.
type PresetSource interface {
	Stored(ctx context.Context) ([]models.Preset, error)
	Presets() []models.Preset
}

type Server struct {
	addr    string
	presets PresetSource
	cache   *assetcache.Cache
	logger  *log.Logger
}

func NewServer(addr string, presets PresetSource, cache *assetcache.Cache, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{addr: addr, presets: presets, cache: cache, logger: logger}
}

// Handler routes the preset API and sends everything else through the cache.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/presets", s.handlePresets)
	mux.Handle("/", s.cache)
	return mux
}

// Register installs the cache manifest. A failure is logged and the page
// keeps working by passing every request through to the network.
func (s *Server) Register(ctx context.Context) bool {
	if err := s.cache.Install(ctx, config.CacheManifest); err != nil {
		s.logger.Error("cache registration failed", "bucket", s.cache.Name(), "err", err)
		return false
	}
	s.logger.Info("cache registered", "bucket", s.cache.Name())
	return true
}

// ListenAndServe registers the cache, then serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.Register(ctx)
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	s.logger.Info("serving presets page", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	}
}

// handlePresets reports what storage holds, so writes from another process
// show up. It never reloads the shared store: a failed read answers with the
// in-memory list instead.
func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	list, err := s.presets.Stored(r.Context())
	if err != nil {
		if r.Context().Err() != nil {
			return
		}
		s.logger.Warn("presets read failed, serving current list", "err", err)
		list = s.presets.Presets()
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(list); err != nil {
		s.logger.Warn("encode presets", "err", err)
	}
}
