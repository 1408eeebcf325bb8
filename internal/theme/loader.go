package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// EnvName names the environment variable that selects a theme.
const EnvName = "ULTRAPAINT_THEME"

// Loader handles loading themes from various sources.
type Loader struct {
	ConfigDir string
	SystemDir string
}

// NewLoader creates a new Loader with standard paths.
func NewLoader() *Loader {
	l := &Loader{SystemDir: "/usr/share/ultrapaint/themes"}
	if home, err := homedir.Dir(); err == nil {
		l.ConfigDir = filepath.Join(home, ".config", "ultrapaint", "themes")
	}
	return l
}

// Load attempts to load a theme by name or path.
// Order:
// 1. If it's a file path that exists, load it.
// 2. Check embedded themes.
// 3. Check ConfigDir.
// 4. Check SystemDir.
func (l *Loader) Load(name string) (*Theme, error) {
	if name == "" {
		return Default(), nil
	}

	if _, err := os.Stat(name); err == nil {
		return parseFile(name)
	}

	filename := strings.ToLower(name)
	if !strings.HasSuffix(filename, ".theme") {
		filename += ".theme"
	}

	if f, err := EmbeddedThemes.Open("defaults/" + filename); err == nil {
		defer f.Close()
		return Parse(f)
	}

	for _, dir := range []string{l.ConfigDir, l.SystemDir} {
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return parseFile(path)
		}
	}

	return nil, fmt.Errorf("theme '%s' not found", name)
}

func parseFile(path string) (*Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse theme %s: %w", path, err)
	}
	return t, nil
}

// Resolve picks the theme to use. Precedence: flag > environment > settings
// file > default. A theme that fails to load falls back to Default and the
// error is returned alongside it.
func (l *Loader) Resolve(flagValue, configValue string) (*Theme, error) {
	name := flagValue
	if name == "" {
		name = os.Getenv(EnvName)
	}
	if name == "" {
		name = configValue
	}
	t, err := l.Load(name)
	if err != nil {
		return Default(), err
	}
	return t, nil
}
