// Package config handles loading and saving user configuration for unichar.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/f3rmion/unichar/internal/ucd"
)

// FileName is the config file inside the config directory.
const FileName = "config.yaml"

// DataFileName is where the fetch command stores the database.
const DataFileName = "UnicodeData.txt"

// Config holds all user configuration.
type Config struct {
	Data DataConfig `yaml:"data"`
	UI   UIConfig   `yaml:"ui"`
}

// DataConfig says where the character database comes from.
type DataConfig struct {
	Sources []string `yaml:"sources"` // Tried in order; paths, .db exports or URLs
	URL     string   `yaml:"url"`     // Download location for `unichar fetch`
}

// UIConfig holds display preferences.
type UIConfig struct {
	GridColumns  int  `yaml:"grid_columns"`  // Characters per grid row
	Readings     bool `yaml:"readings"`      // Show pinyin for Han characters
	GlyphPreview bool `yaml:"glyph_preview"` // Render the big glyph in the inspector
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Sources: []string{
				"data/" + DataFileName,
				"/usr/share/unicode/" + DataFileName,
				"/usr/share/unicode-data/" + DataFileName,
			},
			URL: ucd.DefaultURL,
		},
		UI: UIConfig{
			GridColumns:  16,
			Readings:     true,
			GlyphPreview: true,
		},
	}
}

// Load reads config.yaml from dir. A missing file yields Default(); fields
// left out of the file keep their defaults.
func Load(dir string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if cfg.UI.GridColumns <= 0 {
		cfg.UI.GridColumns = Default().UI.GridColumns
	}
	return cfg, nil
}

// Save writes cfg to config.yaml in dir, creating dir if needed.
func Save(dir string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, FileName), out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Sources returns the candidate data sources in the order they should be
// tried: the copy fetched into dir, then the configured list. An explicit
// override is the only candidate; it never falls back to the others.
func Sources(cfg *Config, dir, override string) []string {
	if override != "" {
		return []string{override}
	}
	var out []string
	if dir != "" {
		out = append(out, DataPath(dir))
	}
	if cfg != nil {
		out = append(out, cfg.Data.Sources...)
	}
	return out
}

// DataPath is where the fetched database lives inside the config directory.
func DataPath(dir string) string {
	return filepath.Join(dir, DataFileName)
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "unichar"), nil
}
