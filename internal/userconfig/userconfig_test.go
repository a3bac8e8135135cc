package userconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsukumogami/terminal-guard/internal/config"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "", cfg.Confusables)
	assert.False(t, cfg.DecodeIDN)
	assert.Equal(t, ColorAuto, cfg.Color)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := loadFromPath(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "confusables = \"/usr/share/terminal-guard/confusables.txt.zst\"\ndecode_idn = true\ncolor = \"never\"\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := loadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "/usr/share/terminal-guard/confusables.txt.zst", cfg.Confusables)
	assert.True(t, cfg.DecodeIDN)
	assert.Equal(t, ColorNever, cfg.Color)
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("decode_idn = [not toml"), 0644))

	_, err := loadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadInvalidColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("color = \"rainbow\"\n"), 0644))

	_, err := loadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid value for color")
}

func TestLoadReadError(t *testing.T) {
	// A directory where the file should be cannot be read.
	_, err := loadFromPath(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	require.NoError(t, cfg.Set("confusables", "/data/confusables.txt"))
	require.NoError(t, cfg.Set("decode_idn", "true"))
	require.NoError(t, cfg.saveToPath(path))

	loaded, err := loadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSaveWithHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)

	cfg := DefaultConfig()
	require.NoError(t, cfg.Set("color", "ALWAYS"))
	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ColorAlways, loaded.Color)

	_, err = os.Stat(filepath.Join(home, "config.toml"))
	assert.NoError(t, err)
}

func TestSaveCreatesHome(t *testing.T) {
	home := filepath.Join(t.TempDir(), "a", "b", ".terminal-guard")
	t.Setenv(config.EnvHome, home)

	require.NoError(t, DefaultConfig().Save())

	info, err := os.Stat(home)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	_, err = os.Stat(filepath.Join(home, "config.toml"))
	assert.NoError(t, err)
}

func TestSaveHomeNotCreatable(t *testing.T) {
	parent := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(parent, []byte("x"), 0644))
	t.Setenv(config.EnvHome, filepath.Join(parent, "home"))

	err := DefaultConfig().Save()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create directory")
}

func TestSaveToMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "config.toml")

	err := DefaultConfig().saveToPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create config file")
}

func TestGetSet(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		key   string
		value string
		want  string
	}{
		{"confusables", "/tmp/c.txt", "/tmp/c.txt"},
		{"decode_idn", "1", "true"},
		{"DECODE_IDN", "false", "false"},
		{"color", "Never", "never"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			require.NoError(t, cfg.Set(tt.key, tt.value))
			got, ok := cfg.Get(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetInvalid(t *testing.T) {
	cfg := DefaultConfig()

	err := cfg.Set("decode_idn", "sometimes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be true or false")

	err = cfg.Set("color", "blue")
	require.Error(t, err)

	err = cfg.Set("telemetry", "true")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config key")

	_, ok := cfg.Get("telemetry")
	assert.False(t, ok)
}

func TestAvailableKeys(t *testing.T) {
	keys := AvailableKeys()
	for _, k := range []string{"confusables", "decode_idn", "color"} {
		assert.Contains(t, keys, k)
	}
	assert.Equal(t, []string{"color", "confusables", "decode_idn"}, SortedKeys())
}
