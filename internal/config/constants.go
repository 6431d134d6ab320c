package config

import "time"

// Timer durations.
const (
	TickInterval  = time.Second
	FlashDuration = 5 * time.Second
)

// Storage keys and names.
const (
	AppName       = "flashtimer"
	DBFileName    = "flashtimer.db"
	LogFileName   = "flashtimer.log"
	PresetsKey    = "customTimers"
	CacheName     = "timer-app-cache-v1"
	ReportsPrefix = "presets"
)

// CacheManifest lists the page assets stored when the cache is installed.
var CacheManifest = []string{
	"/",
	"/index.html",
	"/css/main.css",
	"/js/main.js",
	"/media/favicon.png",
}

// View modes.
const (
	ViewModeList = iota
	ViewModeForm
	ViewModeCountdown
)
