package config

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// EnvPath names the environment variable that overrides the settings path.
const EnvPath = "ULTRAPAINT_SETTINGS"

// FileName is the settings file name used in the working and config
// directories.
const FileName = "settings.ini"

// Loader handles loading the configuration.
type Loader struct {
	Version      string // Build version, used to determine dev mode
	OverridePath string // From the -settings flag
}

// NewLoader creates a new Loader.
func NewLoader(version string, overridePath string) *Loader {
	return &Loader{
		Version:      version,
		OverridePath: overridePath,
	}
}

// Load reads the settings file. A missing or unreadable file yields the
// defaults; the failure is logged.
func (l *Loader) Load() *Config {
	path := l.GetConfigPath()
	if path == "" {
		return New()
	}
	cfg, err := LoadFile(path)
	if err != nil {
		log.Printf("load settings: %v", err)
		return New()
	}
	return cfg
}

// LoadFile parses the settings file at path.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to the path Load would read, creating parent directories.
func (l *Loader) Save(cfg *Config) (string, error) {
	path := l.SavePath()
	if path == "" {
		return "", fmt.Errorf("no settings path: home directory unknown")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create settings dir: %w", err)
	}
	var buf bytes.Buffer
	buf.WriteString(cfg.String())
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write settings: %w", err)
	}
	return path, nil
}

// GetConfigPath returns the path to the settings file, or empty string if
// none exists.
func (l *Loader) GetConfigPath() string {
	for _, p := range l.candidates() {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// SavePath is the -settings path when given, else the existing settings
// file, else where a new one belongs.
func (l *Loader) SavePath() string {
	if l.OverridePath != "" {
		return l.OverridePath
	}
	if p := l.GetConfigPath(); p != "" {
		return p
	}
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return userPath()
}

func (l *Loader) candidates() []string {
	var paths []string
	// 1. Flag override path
	if l.OverridePath != "" {
		paths = append(paths, l.OverridePath)
	}
	// 2. Environment
	if p := os.Getenv(EnvPath); p != "" {
		paths = append(paths, p)
	}
	// 3. Local run directory (dev mode)
	if l.Version == "dev" {
		if wd, err := os.Getwd(); err == nil {
			paths = append(paths, filepath.Join(wd, FileName))
		}
	}
	// 4. XDG config path
	if p := userPath(); p != "" {
		paths = append(paths, p)
	}
	return paths
}

func userPath() string {
	home, err := homedir.Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "ultrapaint", FileName)
}
