package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/wbrown/glyphmosaic"
	"github.com/wbrown/glyphmosaic/imageutil"
)

const appName = "glyphmosaic"

// Config holds the defaults for the render and export commands. Command
// line flags override every field.
type Config struct {
	Width      int      `koanf:"width"`
	Height     int      `koanf:"height"`
	CellSize   int      `koanf:"cell_size"`
	Mode       string   `koanf:"mode"` // "ascii", "emoji" or "hybrid"
	KeepAspect bool     `koanf:"keep_aspect"`
	Fonts      []string `koanf:"fonts"`     // font names or paths, tried in order
	FontDirs   []string `koanf:"font_dirs"` // searched for fonts given by name
	Background string   `koanf:"background"`

	Tone imageutil.Tone `koanf:"tone"`
}

// DefaultConfig returns the configuration used when no file sets a value.
func DefaultConfig() *Config {
	return &Config{
		Width:      80,
		CellSize:   12,
		Mode:       glyphmosaic.ModeHybrid.String(),
		KeepAspect: true,
		Background: "#ffffff",
	}
}

// LoadConfig reads the config files on top of DefaultConfig. With an
// explicit path only that file is read and it must exist; otherwise every
// existing file of getConfigPaths is read, later files winning.
func LoadConfig(path string) (*Config, error) {
	k := koanf.New(".")

	paths := getConfigPaths()
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		paths = []string{path}
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			if err := k.Load(file.Provider(p), toml.Parser()); err != nil {
				return nil, fmt.Errorf("config %s: %w", p, err)
			}
		}
	}

	cfg := DefaultConfig()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	for i, dir := range cfg.FontDirs {
		cfg.FontDirs[i] = expandPath(dir)
	}
	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/glyphmosaic/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./glyphmosaic.toml (pwd, highest priority)
		appName + ".toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Params converts the config into render parameters.
func (c *Config) Params() (glyphmosaic.Params, error) {
	mode, err := glyphmosaic.ParseMode(c.Mode)
	if err != nil {
		return glyphmosaic.Params{}, err
	}
	p := glyphmosaic.Params{
		Width:      c.Width,
		Height:     c.Height,
		CellSize:   c.CellSize,
		Mode:       mode,
		KeepAspect: c.KeepAspect,
		Tone:       c.Tone,
	}
	return p, p.Validate()
}

// BackgroundColor parses the background hex color.
func (c *Config) BackgroundColor() (glyphmosaic.RGB, error) {
	if c.Background == "" {
		return glyphmosaic.DefaultBackground, nil
	}
	rgb, err := imageutil.ParseHex(c.Background)
	if err != nil {
		return glyphmosaic.RGB{}, fmt.Errorf("%w: background %q: %w",
			glyphmosaic.ErrInvalidParameters, c.Background, err)
	}
	return rgb, nil
}

// FontCandidates returns the configured fonts or the library defaults.
func (c *Config) FontCandidates() []string {
	if len(c.Fonts) == 0 {
		return glyphmosaic.DefaultFontCandidates
	}
	return c.Fonts
}

// SearchDirs returns the configured font directories followed by the
// default ones.
func (c *Config) SearchDirs() []string {
	return append(append([]string(nil), c.FontDirs...), glyphmosaic.DefaultFontDirs()...)
}
