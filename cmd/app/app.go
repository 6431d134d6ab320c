package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/akyairhashvil/flashtimer/internal/assetcache"
	"github.com/akyairhashvil/flashtimer/internal/config"
	"github.com/akyairhashvil/flashtimer/internal/database"
	"github.com/akyairhashvil/flashtimer/internal/presets"
	"github.com/akyairhashvil/flashtimer/internal/util"
	"github.com/akyairhashvil/flashtimer/internal/web"
	"github.com/charmbracelet/log"
)

// app is the set of long-lived dependencies every command shares.
type app struct {
	db     *database.Database
	repo   database.Repository
	store  *presets.Store
	logger *log.Logger
}

func resolveDataDir(env config.Env) string {
	if dir := strings.TrimSpace(env.DataDir); dir != "" {
		return dir
	}
	return util.DataDir(config.AppName)
}

func openApp(ctx context.Context, env config.Env, logOut io.Writer) (*app, error) {
	logger := util.NewLogger(stderrOr(logOut), env.LogLevel)
	dbPath := filepath.Join(resolveDataDir(env), config.DBFileName)
	db, err := database.Open(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", dbPath, err)
	}
	logger.Debug("database opened", "path", dbPath)

	var repo database.Repository = db
	store := presets.NewStore(repo, logger)
	store.Load(ctx)
	return &app{db: db, repo: repo, store: store, logger: logger}, nil
}

// webServer builds the presets page. Assets come from upstream when one is
// configured and from the embedded page otherwise.
func (a *app) webServer(addr, upstream string) *web.Server {
	var network assetcache.Fetcher = assetcache.FSFetcher{FS: web.Assets()}
	if upstream != "" {
		network = assetcache.NewHTTPFetcher(upstream)
	}
	cache := assetcache.New(config.CacheName, a.repo, network, a.logger)
	return web.NewServer(addr, a.store, cache, a.logger)
}

// startPage runs the presets page in the background. The returned stop
// shuts it down and waits for it, so the database can be closed after.
func (a *app) startPage(ctx context.Context, addr, upstream string) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	srv := a.webServer(addr, upstream)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := srv.ListenAndServe(ctx); err != nil {
			a.logger.Error("presets page stopped", "addr", addr, "err", err)
		}
	}()
	return func() {
		cancel()
		wg.Wait()
	}
}

func (a *app) Close() {
	util.LogError(a.logger, "close database", a.db.Close())
}
