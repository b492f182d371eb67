// internal/config/config.go
//
// This package handles startup configuration. Settings live in a small YAML
// file under the user's config directory. The file is optional and is only
// ever read; nothing the user does in a session is written back.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kingrea/tenth-to-inch/internal/locale"
	"github.com/kingrea/tenth-to-inch/internal/measure"
)

const (
	// AppDir is the directory name used under the user config and cache dirs
	AppDir = "tenth-to-inch"

	// LanguageAuto picks the language from the process environment
	LanguageAuto = "auto"

	configFileName = "config.yaml"
	logFileName    = "conversions.log"
)

// FileConfig models config.yaml.
type FileConfig struct {
	Version  int    `yaml:"version"`
	Language string `yaml:"language"`
	Parser   string `yaml:"parser"`
	LogFile  string `yaml:"log_file,omitempty"`
}

// Config holds the resolved runtime configuration.
type Config struct {
	// Path is the config file that was (or would have been) read
	Path string

	// Locale is the starting language; the user can still toggle it
	Locale locale.Locale

	// ParseMode controls how architectural notation input is read
	ParseMode measure.ParseMode

	// LogPath is where the activity logbook is appended
	LogPath string

	File FileConfig
}

// Environment supplies values the config layer reads from the process.
// Tests replace it to avoid depending on the real environment.
type Environment struct {
	Getenv        func(string) string
	UserConfigDir func() (string, error)
	UserCacheDir  func() (string, error)
}

// OSEnvironment reads from the real process.
func OSEnvironment() Environment {
	return Environment{
		Getenv:        os.Getenv,
		UserConfigDir: os.UserConfigDir,
		UserCacheDir:  os.UserCacheDir,
	}
}

// DefaultPath returns <user config dir>/tenth-to-inch/config.yaml.
func DefaultPath(env Environment) (string, error) {
	dir, err := env.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: locate config dir: %w", err)
	}
	return filepath.Join(dir, AppDir, configFileName), nil
}

// Load reads the config file at path (DefaultPath when empty). A missing file
// is not an error; defaults are used instead.
func Load(path string, env Environment) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		p, err := DefaultPath(env)
		if err != nil {
			return nil, err
		}
		path = p
	}

	file := defaultFileConfig()
	if err := loadFileConfig(path, &file); err != nil {
		return nil, err
	}
	return resolve(path, file, env)
}

func loadFileConfig(path string, fc *FileConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed FileConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize(filepath.Dir(path))
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	*fc = parsed
	return nil
}

func resolve(path string, fc FileConfig, env Environment) (*Config, error) {
	cfg := &Config{Path: path, File: fc}

	if err := cfg.SetLanguage(fc.Language, env); err != nil {
		return nil, err
	}
	mode, err := measure.ParseParseMode(fc.Parser)
	if err != nil {
		return nil, fmt.Errorf("config: parser: %w", err)
	}
	cfg.ParseMode = mode

	cfg.LogPath = fc.LogFile
	if cfg.LogPath == "" {
		dir, err := env.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("config: locate cache dir: %w", err)
		}
		cfg.LogPath = filepath.Join(dir, AppDir, logFileName)
	}
	return cfg, nil
}

// SetLanguage resolves a language setting ("en", "es", "auto") onto Locale.
func (c *Config) SetLanguage(value string, env Environment) error {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" || value == LanguageAuto {
		c.Locale = locale.Detect(env.Getenv("LC_ALL"), env.Getenv("LC_MESSAGES"), env.Getenv("LANG"))
		return nil
	}
	loc, err := locale.Parse(value)
	if err != nil {
		return fmt.Errorf("config: language: %w", err)
	}
	c.Locale = loc
	return nil
}

func defaultFileConfig() FileConfig {
	return FileConfig{
		Version:  1,
		Language: locale.Default.Code(),
		Parser:   measure.ModeStrict.String(),
	}
}

func (fc *FileConfig) applyDefaults() {
	if fc.Version == 0 {
		fc.Version = 1
	}
	if strings.TrimSpace(fc.Language) == "" {
		fc.Language = locale.Default.Code()
	}
	if strings.TrimSpace(fc.Parser) == "" {
		fc.Parser = measure.ModeStrict.String()
	}
}

func (fc *FileConfig) normalize(base string) {
	fc.Language = strings.ToLower(strings.TrimSpace(fc.Language))
	fc.Parser = strings.ToLower(strings.TrimSpace(fc.Parser))
	fc.LogFile = resolvePath(base, fc.LogFile)
}

func (fc *FileConfig) validate() error {
	if fc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	if fc.Language != LanguageAuto {
		if _, err := locale.Parse(fc.Language); err != nil {
			return fmt.Errorf("language: %w", err)
		}
	}
	switch fc.Parser {
	case "strict", "lenient":
	default:
		return fmt.Errorf("parser must be 'strict' or 'lenient'")
	}
	return nil
}

func resolvePath(base, candidate string) string {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return ""
	}
	if filepath.IsAbs(trimmed) {
		return filepath.Clean(trimmed)
	}
	return filepath.Clean(filepath.Join(base, trimmed))
}
