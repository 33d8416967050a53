// Package outdir resolves the directory the brief files are written into.
package outdir

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Resolve returns an existing output directory. An explicit override is
// home-expanded, made absolute, and created along with missing parents; any
// failure there is the caller's problem. Without an override the platform
// Downloads directory under the user's home is attempted, falling back to the
// current working directory when the home lookup or creation fails.
func Resolve(override string) (string, error) {
	if strings.TrimSpace(override) != "" {
		dir, err := filepath.Abs(expandHome(override))
		if err != nil {
			return "", fmt.Errorf("outdir: resolve %s: %w", override, err)
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("outdir: create %s: %w", dir, err)
		}
		return dir, nil
	}
	return defaultDownloadsDir(), nil
}

func defaultDownloadsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return workingDir()
	}
	dir := filepath.Join(home, "Downloads")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return workingDir()
	}
	return dir
}

func workingDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}

// expandHome rewrites a leading ~ to the user's home directory. When the home
// directory cannot be determined the path is left as typed.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~"+string(os.PathSeparator)) && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
