package config

import (
	"os"
	"testing"
)

func TestLoadEnvDefaults(t *testing.T) {
	for _, key := range []string{"FLASHTIMER_LOG_LEVEL", "FLASHTIMER_THEME"} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
	cfg, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv failed: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %q", cfg.LogLevel)
	}
	if cfg.Theme != "default" {
		t.Fatalf("expected default theme, got %q", cfg.Theme)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("FLASHTIMER_DATA_DIR", "/tmp/ft")
	t.Setenv("FLASHTIMER_SERVE_ADDR", "127.0.0.1:8088")
	t.Setenv("FLASHTIMER_THEME", "dracula")
	cfg, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv failed: %v", err)
	}
	if cfg.DataDir != "/tmp/ft" || cfg.ServeAddr != "127.0.0.1:8088" || cfg.Theme != "dracula" {
		t.Fatalf("unexpected env config: %+v", cfg)
	}
}
