package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wbrown/glyphmosaic"
	"github.com/wbrown/glyphmosaic/imageutil"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
width = 120
cell_size = 8
mode = "emoji"
keep_aspect = false
fonts = ["DejaVu Sans Mono", "/tmp/x.ttf"]
font_dirs = ["/opt/fonts"]
background = "#102030"

[tone]
contrast = 20
sharpen = 1.5
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.Width)
	assert.Equal(t, 0, cfg.Height)
	assert.Equal(t, 8, cfg.CellSize)
	assert.Equal(t, "emoji", cfg.Mode)
	assert.False(t, cfg.KeepAspect)
	assert.Equal(t, []string{"DejaVu Sans Mono", "/tmp/x.ttf"}, cfg.Fonts)
	assert.Equal(t, []string{"/opt/fonts"}, cfg.FontDirs)
	assert.Equal(t, imageutil.Tone{Contrast: 20, Sharpen: 1.5}, cfg.Tone)

	bg, err := cfg.BackgroundColor()
	require.NoError(t, err)
	assert.Equal(t, glyphmosaic.RGB{R: 0x10, G: 0x20, B: 0x30}, bg)

	p, err := cfg.Params()
	require.NoError(t, err)
	assert.Equal(t, glyphmosaic.ModeEmoji, p.Mode)
	assert.Equal(t, 120, p.Width)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	p, err := cfg.Params()
	require.NoError(t, err)
	assert.Equal(t, glyphmosaic.Params{Width: 80, CellSize: 12, Mode: glyphmosaic.ModeHybrid, KeepAspect: true}, p)
	assert.Equal(t, glyphmosaic.DefaultFontCandidates, cfg.FontCandidates())
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "width = = 3"))
	assert.Error(t, err)
}

func TestConfigInvalidValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = "sepia"
	_, err := cfg.Params()
	assert.ErrorIs(t, err, glyphmosaic.ErrInvalidParameters)

	cfg = DefaultConfig()
	cfg.CellSize = 0
	_, err = cfg.Params()
	assert.ErrorIs(t, err, glyphmosaic.ErrInvalidParameters)

	cfg = DefaultConfig()
	cfg.Background = "not a color"
	_, err = cfg.BackgroundColor()
	assert.ErrorIs(t, err, glyphmosaic.ErrInvalidParameters)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}
	assert.Equal(t, filepath.Join(home, "fonts"), expandPath("~/fonts"))
	assert.Equal(t, "/usr/share/fonts", expandPath("/usr/share/fonts"))
	assert.Equal(t, "", expandPath(""))
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()
	require.Len(t, paths, 2)
	assert.Equal(t, "config.toml", filepath.Base(paths[0]))
	assert.Equal(t, "glyphmosaic.toml", paths[1])
}
