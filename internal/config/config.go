// Package config handles loading and saving application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hy4ri/termfolio/internal/rain"
	"gopkg.in/yaml.v3"
)

const appName = "termfolio"

// Config represents the application configuration.
type Config struct {
	Content     ContentConfig     `yaml:"content"`
	UI          UIConfig          `yaml:"ui"`
	Theme       ThemeConfig       `yaml:"theme"`
	Preferences PreferencesConfig `yaml:"preferences"`
	Rain        RainConfig        `yaml:"rain"`
	Resume      ResumeConfig      `yaml:"resume"`
	Log         LogConfig         `yaml:"log"`
}

// ContentConfig points at the portfolio content.
type ContentConfig struct {
	// Dir holds the collection files. Empty uses the built-in content.
	Dir   string `yaml:"dir,omitempty"`
	Watch bool   `yaml:"watch"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	User       string        `yaml:"user"`
	Host       string        `yaml:"host"`
	DelayMin   time.Duration `yaml:"delay_min"`
	DelayMax   time.Duration `yaml:"delay_max"` // 0 disables the simulated latency
	Mouse      bool          `yaml:"mouse"`
	Timestamps bool          `yaml:"timestamps"`
}

// ThemeConfig holds the theme used when no preference is stored.
type ThemeConfig struct {
	Default string `yaml:"default"`
}

// PreferencesConfig selects where the theme preference is kept.
type PreferencesConfig struct {
	Backend string `yaml:"backend"` // "file", "sqlite", "keyring" or "memory"
	Path    string `yaml:"path,omitempty"`
}

// RainConfig tunes the /rain animation.
type RainConfig struct {
	Charset string  `yaml:"charset,omitempty"`
	FPS     int     `yaml:"fps"`
	Fade    float64 `yaml:"fade"`
	Bright  float64 `yaml:"bright"`
	Reset   float64 `yaml:"reset"`
}

// ResumeConfig controls the /cv download.
type ResumeConfig struct {
	// File is the résumé to copy. Empty uses the built-in one.
	File        string `yaml:"file,omitempty"`
	Name        string `yaml:"name"`
	DownloadDir string `yaml:"download_dir,omitempty"`
	URL         string `yaml:"url"`
	Notify      bool   `yaml:"notify"`
	CopyLink    bool   `yaml:"copy_link"`
}

// LogConfig controls the debug log.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	r := rain.DefaultConfig()
	return &Config{
		UI: UIConfig{
			User:       "guest",
			Host:       appName,
			DelayMin:   200 * time.Millisecond,
			DelayMax:   400 * time.Millisecond,
			Mouse:      true,
			Timestamps: true,
		},
		Theme:       ThemeConfig{Default: "one-dark"},
		Preferences: PreferencesConfig{Backend: "file"},
		Rain: RainConfig{
			FPS:    r.FPS,
			Fade:   r.Fade,
			Bright: r.Bright,
			Reset:  r.Reset,
		},
		Resume: ResumeConfig{
			Name:     "resume.pdf",
			URL:      "https://example.com/resume.pdf",
			Notify:   true,
			CopyLink: true,
		},
		Log: LogConfig{Level: "info"},
	}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", appName)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// DataDir returns the directory for preferences and logs.
// Uses XDG_DATA_HOME or defaults to ~/.local/share/termfolio/
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dataHome = filepath.Join(homeDir, ".local", "share")
	}

	dataDir := filepath.Join(dataHome, appName)
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	return dataDir, nil
}

// Load reads the configuration from the default config file.
// If the file doesn't exist, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration at path, falling back to defaults when
// the file is missing.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overrides settings from TERMFOLIO_* variables. lookup is
// usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := map[string]*string{
		"TERMFOLIO_CONTENT_DIR":   &c.Content.Dir,
		"TERMFOLIO_THEME":         &c.Theme.Default,
		"TERMFOLIO_PREFS_BACKEND": &c.Preferences.Backend,
		"TERMFOLIO_PREFS_PATH":    &c.Preferences.Path,
		"TERMFOLIO_RESUME_FILE":   &c.Resume.File,
		"TERMFOLIO_RESUME_URL":    &c.Resume.URL,
		"TERMFOLIO_DOWNLOAD_DIR":  &c.Resume.DownloadDir,
		"TERMFOLIO_LOG_LEVEL":     &c.Log.Level,
		"TERMFOLIO_LOG_FILE":      &c.Log.File,
		"TERMFOLIO_USER":          &c.UI.User,
	}
	for key, dst := range str {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := lookup("TERMFOLIO_WATCH"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid TERMFOLIO_WATCH: %w", err)
		}
		c.Content.Watch = b
	}

	durations := map[string]*time.Duration{
		"TERMFOLIO_DELAY_MIN": &c.UI.DelayMin,
		"TERMFOLIO_DELAY_MAX": &c.UI.DelayMax,
	}
	for key, dst := range durations {
		if v, ok := lookup(key); ok && v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", key, err)
			}
			*dst = d
		}
	}

	return nil
}

// Resolve fills in paths that depend on the user's directories.
func (c *Config) Resolve() error {
	if c.Preferences.Path == "" || c.Log.File == "" {
		dataDir, err := DataDir()
		if err != nil {
			return err
		}
		if c.Preferences.Path == "" {
			name := "prefs.yaml"
			if c.Preferences.Backend == "sqlite" {
				name = "prefs.db"
			}
			c.Preferences.Path = filepath.Join(dataDir, name)
		}
		if c.Log.File == "" {
			c.Log.File = filepath.Join(dataDir, appName+".log")
		}
	}

	if c.Resume.DownloadDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		c.Resume.DownloadDir = filepath.Join(homeDir, "Downloads")
	}

	if c.UI.DelayMin > c.UI.DelayMax {
		c.UI.DelayMin = c.UI.DelayMax
	}

	return nil
}

// RainSettings converts the rain section, keeping defaults for unset values.
func (c *Config) RainSettings() rain.Config {
	r := rain.DefaultConfig()
	if c.Rain.Charset != "" {
		r.Charset = c.Rain.Charset
	}
	if c.Rain.FPS > 0 {
		r.FPS = c.Rain.FPS
	}
	if c.Rain.Fade > 0 && c.Rain.Fade <= 1 {
		r.Fade = c.Rain.Fade
	}
	if c.Rain.Bright >= 0 && c.Rain.Bright <= 1 {
		r.Bright = c.Rain.Bright
	}
	if c.Rain.Reset >= 0 && c.Rain.Reset <= 1 {
		r.Reset = c.Rain.Reset
	}
	return r
}
