package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const configFileName = ".ndoconfig.yaml"

// Config holds the user's defaults. Command-line flags override it.
type Config struct {
	File          string `yaml:"file,omitempty"`
	Autosave      bool   `yaml:"autosave"`
	Strikethrough bool   `yaml:"strikethrough"`
	// Numbering is one of "none", "absolute" or "relative".
	Numbering     string `yaml:"numbering"`
	IndentWidth   int    `yaml:"indent_width"`
	Title         string `yaml:"title,omitempty"`
	HelpFile      string `yaml:"help_file,omitempty"`
	SimpleBoxes   bool   `yaml:"simple_boxes"`
	BulletDisplay bool   `yaml:"bullet_display"`
	NoteBullets   bool   `yaml:"note_bullets"`
	// ScrollMargin is the number of context rows around the cursor; 0 scrolls minimally and
	// -1 means a quarter of the screen.
	ScrollMargin int  `yaml:"scroll_margin"`
	HistoryLimit int  `yaml:"history_limit"`
	Watch        bool `yaml:"watch"`
}

func DefaultConfig() Config {
	return Config{
		Autosave:    true,
		Numbering:   "none",
		IndentWidth: 2,
		NoteBullets: true,
		Watch:       true,
	}
}

// ConfigPaths returns the config files to read, lowest precedence first. NDO_CONFIG
// replaces the search with a single explicit path.
func ConfigPaths() []string {
	if v := strings.TrimSpace(os.Getenv("NDO_CONFIG")); v != "" {
		return []string{v}
	}
	var out []string
	if home, err := os.UserHomeDir(); err == nil {
		out = append(out, filepath.Join(home, configFileName))
	}
	if wd, err := os.Getwd(); err == nil {
		p := filepath.Join(wd, configFileName)
		if len(out) == 0 || out[0] != p {
			out = append(out, p)
		}
	}
	return out
}

// LoadConfig layers every existing config file over the defaults. Keys present in a later
// file win; keys it leaves out keep their earlier value. It also returns the files read.
func LoadConfig() (Config, []string, error) {
	cfg := DefaultConfig()
	explicit := strings.TrimSpace(os.Getenv("NDO_CONFIG")) != ""
	var used []string
	for _, path := range ConfigPaths() {
		b, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) && !explicit {
				continue
			}
			return cfg, used, fmt.Errorf("config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, used, fmt.Errorf("config %s: %w", path, err)
		}
		used = append(used, path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, used, err
	}
	return cfg, used, nil
}

func (c Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Numbering)) {
	case "", "none", "absolute", "relative":
	default:
		return fmt.Errorf("config: numbering must be none, absolute or relative (got %q)", c.Numbering)
	}
	if c.IndentWidth < 1 {
		return fmt.Errorf("config: indent_width must be at least 1 (got %d)", c.IndentWidth)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("config: history_limit must not be negative (got %d)", c.HistoryLimit)
	}
	return nil
}

func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// SaveConfig writes cfg to path. The previous file, if any, is kept as path+".bak".
func SaveConfig(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := cfg.Marshal()
	if err != nil {
		return err
	}
	if prev, err := os.ReadFile(path); err == nil && len(prev) > 0 {
		_ = atomicWriteFile(dir, configFileName+".bak.*.tmp", path+".bak", prev, 0o644)
	}
	return atomicWriteFile(dir, configFileName+".*.tmp", path, b, 0o644)
}

// UserConfigPath is where `ndo config init` writes: NDO_CONFIG if set, else the home file.
func UserConfigPath() (string, error) {
	if v := strings.TrimSpace(os.Getenv("NDO_CONFIG")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configFileName), nil
}
