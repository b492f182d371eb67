package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kingrea/tenth-to-inch/internal/locale"
	"github.com/kingrea/tenth-to-inch/internal/measure"
)

func testEnv(t *testing.T, vars map[string]string) Environment {
	t.Helper()
	cfgDir := t.TempDir()
	cacheDir := t.TempDir()
	return Environment{
		Getenv:        func(k string) string { return vars[k] },
		UserConfigDir: func() (string, error) { return cfgDir, nil },
		UserCacheDir:  func() (string, error) { return cacheDir, nil },
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(strings.TrimSpace(body)), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaultsWhenMissing(t *testing.T) {
	env := testEnv(t, nil)
	cfg, err := Load("", env)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.File.Version != 1 {
		t.Fatalf("expected default version == 1, got %d", cfg.File.Version)
	}
	if cfg.Locale != locale.English {
		t.Fatalf("expected english, got %s", cfg.Locale)
	}
	if cfg.ParseMode != measure.ModeStrict {
		t.Fatalf("expected strict parser, got %s", cfg.ParseMode)
	}
	if !strings.HasSuffix(cfg.Path, filepath.Join(AppDir, "config.yaml")) {
		t.Fatalf("unexpected default path %s", cfg.Path)
	}
	if !strings.HasSuffix(cfg.LogPath, filepath.Join(AppDir, "conversions.log")) {
		t.Fatalf("unexpected default log path %s", cfg.LogPath)
	}
	if _, err := os.Stat(cfg.Path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("config file must not be created, stat err = %v", err)
	}
}

func TestLoadParsesYaml(t *testing.T) {
	path := writeConfig(t, `
version: 1
language: ES
parser: Lenient
log_file: logs/tenth.log
`)
	cfg, err := Load(path, testEnv(t, nil))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Locale != locale.Spanish {
		t.Fatalf("expected spanish, got %s", cfg.Locale)
	}
	if cfg.ParseMode != measure.ModeLenient {
		t.Fatalf("expected lenient parser, got %s", cfg.ParseMode)
	}
	want := filepath.Join(filepath.Dir(path), "logs", "tenth.log")
	if cfg.LogPath != want {
		t.Fatalf("log path = %s, want %s", cfg.LogPath, want)
	}
}

func TestLoadAutoLanguageUsesEnvironment(t *testing.T) {
	path := writeConfig(t, `
language: auto
`)
	cfg, err := Load(path, testEnv(t, map[string]string{"LANG": "es_AR.UTF-8"}))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Locale != locale.Spanish {
		t.Fatalf("expected detected spanish, got %s", cfg.Locale)
	}
}

func TestLoadValidation(t *testing.T) {
	cases := map[string]string{
		"bad language": "language: fr",
		"bad parser":   "parser: fuzzy",
		"bad version":  "version: -1",
		"bad yaml":     "language: [en",
	}
	for name, body := range cases {
		path := writeConfig(t, body)
		if _, err := Load(path, testEnv(t, nil)); err == nil {
			t.Fatalf("%s: expected validation error but got none", name)
		} else if !strings.HasPrefix(err.Error(), "config:") {
			t.Fatalf("%s: error should be prefixed, got %v", name, err)
		}
	}
}

func TestSetLanguageOverride(t *testing.T) {
	cfg, err := Load("", testEnv(t, nil))
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.SetLanguage("es", testEnv(t, nil)); err != nil {
		t.Fatalf("SetLanguage: %v", err)
	}
	if cfg.Locale != locale.Spanish {
		t.Fatalf("expected spanish after override, got %s", cfg.Locale)
	}
	if err := cfg.SetLanguage("klingon", testEnv(t, nil)); err == nil {
		t.Fatalf("expected error for unsupported language")
	}
}
