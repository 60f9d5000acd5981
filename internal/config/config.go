package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"github.com/treykane/photo-settings/internal/catalog"
	"github.com/treykane/photo-settings/internal/i18n"
	"github.com/treykane/photo-settings/internal/logging"
)

const (
	configDirName  = ".photo-settings"
	configFileName = "config.json"
	keymapFileName = "keymap.json"

	// Environment overrides, applied on top of the config file.
	EnvConfigPath = "PHOTO_SETTINGS_CONFIG"
	EnvLanguage   = "PHOTO_SETTINGS_LANG"
	EnvSection    = "PHOTO_SETTINGS_SECTION"

	// MaxCardWidth bounds card_width so a typo cannot produce unusable cards.
	MaxCardWidth = 200
)

var log = logging.New("config")

// Config stores user settings for photo-settings.
type Config struct {
	Language    string            `json:"language,omitempty"`
	Section     string            `json:"section,omitempty"`
	CardWidth   int               `json:"card_width,omitempty"`
	Keybindings map[string]string `json:"keybindings,omitempty"`
	KeymapFile  string            `json:"keymap_file,omitempty"`
}

// LanguageTag returns the configured language. Call after Load or
// Normalize.
func (c Config) LanguageTag() language.Tag {
	tag, ok := i18n.Parse(c.Language)
	if !ok {
		return i18n.Default
	}
	return tag
}

// StartSection returns the configured start section.
func (c Config) StartSection() catalog.Section {
	s, err := catalog.ParseSection(c.Section)
	if err != nil {
		return catalog.DefaultSection
	}
	return s
}

// ConfigPath returns the configuration file path. PHOTO_SETTINGS_CONFIG
// overrides the default ~/.photo-settings/config.json.
func ConfigPath() (string, error) {
	if custom := strings.TrimSpace(os.Getenv(EnvConfigPath)); custom != "" {
		return expandHome(custom)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// DefaultKeymapPath returns ~/.photo-settings/keymap.json.
func DefaultKeymapPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, keymapFileName), nil
}

// Load reads the config file, applies environment overrides and
// normalizes the result. A missing file is not an error: defaults are
// used. An optional .env in the working directory is read first.
func Load() (Config, error) {
	loadDotEnv(".env")

	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		log.Debug("no config file, using defaults", "path", path)
	default:
		return Config{}, err
	}

	applyEnv(&cfg)
	return Normalize(cfg)
}

// Normalize validates cfg and fills defaults. Unknown languages or
// sections are errors; an empty language is resolved from the locale
// environment.
func Normalize(cfg Config) (Config, error) {
	if strings.TrimSpace(cfg.Language) == "" {
		cfg.Language = i18n.Code(i18n.Match(os.Getenv("LC_ALL"), os.Getenv("LC_MESSAGES"), os.Getenv("LANG")))
	} else {
		tag, ok := i18n.Parse(cfg.Language)
		if !ok {
			return Config{}, fmt.Errorf("invalid language %q (want it or en)", cfg.Language)
		}
		cfg.Language = i18n.Code(tag)
	}

	if strings.TrimSpace(cfg.Section) == "" {
		cfg.Section = string(catalog.DefaultSection)
	} else {
		s, err := catalog.ParseSection(cfg.Section)
		if err != nil {
			return Config{}, fmt.Errorf("invalid section: %w", err)
		}
		cfg.Section = string(s)
	}

	if cfg.CardWidth < 0 || cfg.CardWidth > MaxCardWidth {
		return Config{}, fmt.Errorf("invalid card_width %d (want 0-%d)", cfg.CardWidth, MaxCardWidth)
	}

	if strings.TrimSpace(cfg.KeymapFile) == "" {
		path, err := DefaultKeymapPath()
		if err != nil {
			return Config{}, err
		}
		cfg.KeymapFile = path
	} else {
		path, err := expandHome(strings.TrimSpace(cfg.KeymapFile))
		if err != nil {
			return Config{}, err
		}
		cfg.KeymapFile = path
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvLanguage)); v != "" {
		cfg.Language = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvSection)); v != "" {
		cfg.Section = v
	}
}

// loadDotEnv loads KEY=value pairs from path without overriding variables
// already set in the environment.
func loadDotEnv(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		log.Warn("load env file", "path", path, "error", err)
	}
}

func expandHome(path string) (string, error) {
	if path == "~" {
		return os.UserHomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
	}
	return path, nil
}
