package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFrom_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "theme:\n  default: ayu\nui:\n  delay_max: 0s\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "ayu", cfg.Theme.Default)
	assert.Equal(t, time.Duration(0), cfg.UI.DelayMax)
	assert.Equal(t, 200*time.Millisecond, cfg.UI.DelayMin)
	assert.Equal(t, "file", cfg.Preferences.Backend)
}

func TestLoadFrom_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui: [broken"), 0600))

	_, err := LoadFrom(path)
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestLoadFrom_KeepsDefaultsForUnsetFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "content:\n  dir: /srv/portfolio\nui:\n  delay_max: 1s\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)

	want := DefaultConfig()
	want.Content.Dir = "/srv/portfolio"
	want.UI.DelayMax = time.Second
	assert.Equal(t, want, loaded)
}

func TestTemplateParses(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, yaml.Unmarshal([]byte(Template), cfg))

	def := DefaultConfig()
	assert.Equal(t, def.UI, cfg.UI)
	assert.Equal(t, def.Rain, cfg.Rain)
	assert.Equal(t, def.Resume, cfg.Resume)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"TERMFOLIO_THEME":       "light",
		"TERMFOLIO_CONTENT_DIR": "/content",
		"TERMFOLIO_WATCH":       "true",
		"TERMFOLIO_DELAY_MAX":   "1s",
		"TERMFOLIO_LOG_LEVEL":   "",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := DefaultConfig()
	require.NoError(t, cfg.ApplyEnv(lookup))

	assert.Equal(t, "light", cfg.Theme.Default)
	assert.Equal(t, "/content", cfg.Content.Dir)
	assert.True(t, cfg.Content.Watch)
	assert.Equal(t, time.Second, cfg.UI.DelayMax)
	assert.Equal(t, "info", cfg.Log.Level, "empty values are ignored")
}

func TestApplyEnv_Invalid(t *testing.T) {
	tests := map[string]string{
		"TERMFOLIO_WATCH":     "maybe",
		"TERMFOLIO_DELAY_MIN": "soon",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			lookup := func(k string) (string, bool) {
				if k == key {
					return value, true
				}
				return "", false
			}
			assert.Error(t, DefaultConfig().ApplyEnv(lookup))
		})
	}
}

func TestResolve(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, "data"))

	cfg := DefaultConfig()
	cfg.Preferences.Backend = "sqlite"
	cfg.UI.DelayMin = 2 * time.Second
	require.NoError(t, cfg.Resolve())

	assert.Equal(t, filepath.Join(home, "data", "termfolio", "prefs.db"), cfg.Preferences.Path)
	assert.Equal(t, filepath.Join(home, "data", "termfolio", "termfolio.log"), cfg.Log.File)
	assert.Equal(t, filepath.Join(home, "Downloads"), cfg.Resume.DownloadDir)
	assert.Equal(t, cfg.UI.DelayMax, cfg.UI.DelayMin)
}

func TestRainSettings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rain.Charset = "01"
	cfg.Rain.FPS = 0
	cfg.Rain.Fade = 3

	r := cfg.RainSettings()
	assert.Equal(t, "01", r.Charset)
	assert.Equal(t, 20, r.FPS)
	assert.Equal(t, 0.12, r.Fade)
}
