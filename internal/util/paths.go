package util

import (
	"os"
	"path/filepath"
	"strings"
)

// DataDir is where the database and log file live: $XDG_DATA_HOME/app, or
// ~/.local/share/app.
func DataDir(app string) string {
	if base := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); base != "" {
		return filepath.Join(base, app)
	}
	home := homeDir()
	if home == "" {
		return filepath.Join(".", app)
	}
	return filepath.Join(home, ".local", "share", app)
}

// ReportsDir is where printable preset sheets are written.
func ReportsDir(app string) string {
	return filepath.Join(userDir("XDG_DOCUMENTS_DIR", "Documents"), app)
}

// userDir resolves an XDG user directory from the environment, then from
// ~/.config/user-dirs.dirs, then falls back to ~/fallback.
func userDir(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return expandHome(v)
	}
	home := homeDir()
	if home == "" {
		return "."
	}
	if data, err := os.ReadFile(filepath.Join(home, ".config", "user-dirs.dirs")); err == nil {
		if v, ok := readUserDirs(string(data))[key]; ok && v != "" {
			return expandHome(v)
		}
	}
	return filepath.Join(home, fallback)
}

// readUserDirs parses the KEY="value" lines of a user-dirs.dirs file.
func readUserDirs(data string) map[string]string {
	dirs := make(map[string]string)
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		dirs[k] = strings.Trim(v, `"`)
	}
	return dirs
}

func expandHome(p string) string {
	if !strings.Contains(p, "$HOME") {
		return p
	}
	return strings.ReplaceAll(p, "$HOME", homeDir())
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}
