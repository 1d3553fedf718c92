package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/text/language"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.SiteDir != "site" {
		t.Errorf("expected default site_dir %q, got %q", "site", cfg.SiteDir)
	}
	if cfg.OutputDir != "public" {
		t.Errorf("expected default output_dir %q, got %q", "public", cfg.OutputDir)
	}
	if cfg.Fetch.Timeout != 10*time.Second {
		t.Errorf("expected default fetch.timeout 10s, got %s", cfg.Fetch.Timeout)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default server.port 8080, got %d", cfg.Server.Port)
	}
	if len(cfg.Include) != 1 || cfg.Include[0] != "**/*.html" {
		t.Errorf("expected default include [**/*.html], got %v", cfg.Include)
	}
}

func TestDefaultIncludeNotShared(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Include[0] = "changed"
	if DefaultInclude[0] != "**/*.html" {
		t.Error("DefaultConfig must copy DefaultInclude")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.sitefill.yml")

	original := DefaultConfig()
	original.SiteDir = "www"
	original.DataURL = "https://cdn.example.org/data"
	original.Locale = "de"
	original.Timezone = "Europe/Berlin"
	original.Include = []string{"*.html", "pages/**/*.html"}
	original.Fetch.Timeout = 3 * time.Second
	original.Server.AllowAllOrigins = true

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.SiteDir != original.SiteDir {
		t.Errorf("site_dir: got %q, want %q", loaded.SiteDir, original.SiteDir)
	}
	if loaded.DataURL != original.DataURL {
		t.Errorf("data_url: got %q, want %q", loaded.DataURL, original.DataURL)
	}
	if loaded.Locale != original.Locale {
		t.Errorf("locale: got %q, want %q", loaded.Locale, original.Locale)
	}
	if loaded.Timezone != original.Timezone {
		t.Errorf("timezone: got %q, want %q", loaded.Timezone, original.Timezone)
	}
	if loaded.Fetch.Timeout != original.Fetch.Timeout {
		t.Errorf("fetch.timeout: got %s, want %s", loaded.Fetch.Timeout, original.Fetch.Timeout)
	}
	if !loaded.Server.AllowAllOrigins {
		t.Error("server.allow_all_origins: got false, want true")
	}
	if len(loaded.Include) != len(original.Include) {
		t.Fatalf("include length: got %d, want %d", len(loaded.Include), len(original.Include))
	}
	for i, v := range loaded.Include {
		if v != original.Include[i] {
			t.Errorf("include[%d]: got %q, want %q", i, v, original.Include[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.SiteDir != "site" {
		t.Errorf("expected default site_dir, got %q", cfg.SiteDir)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yml")
	if err := os.WriteFile(path, []byte("data_url: http://localhost:9000/\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataURL != "http://localhost:9000/" {
		t.Errorf("data_url: got %q", cfg.DataURL)
	}
	if cfg.Server.Port != 8080 || cfg.Fetch.Timeout != 10*time.Second {
		t.Errorf("defaults lost: port=%d timeout=%s", cfg.Server.Port, cfg.Fetch.Timeout)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("SITEFILL_DATA_URL", "https://env.example.org/")
	t.Setenv("SITEFILL_FETCH__TIMEOUT", "750ms")
	t.Setenv("SITEFILL_SERVER__PORT", "9090")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.DataURL != "https://env.example.org/" {
		t.Errorf("env override failed: got %q", loaded.DataURL)
	}
	if loaded.Fetch.Timeout != 750*time.Millisecond {
		t.Errorf("nested env override failed: got %s", loaded.Fetch.Timeout)
	}
	if loaded.Server.Port != 9090 {
		t.Errorf("nested env override failed: got %d", loaded.Server.Port)
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"SITEFILL_DATA_URL", "data_url"},
		{"SITEFILL_FETCH__TIMEOUT", "fetch.timeout"},
		{"SITEFILL_SERVER__ALLOW_ALL_ORIGINS", "server.allow_all_origins"},
	}
	for _, tt := range tests {
		if got := envKey(tt.input); got != tt.want {
			t.Errorf("envKey(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty site_dir", func(c *Config) { c.SiteDir = "" }},
		{"empty output_dir", func(c *Config) { c.OutputDir = "" }},
		{"relative data_url", func(c *Config) { c.DataURL = "data/" }},
		{"ftp data_url", func(c *Config) { c.DataURL = "ftp://example.org/" }},
		{"bad locale", func(c *Config) { c.Locale = "not a locale!" }},
		{"bad timezone", func(c *Config) { c.Timezone = "Mars/Olympus" }},
		{"negative timeout", func(c *Config) { c.Fetch.Timeout = -time.Second }},
		{"bad log level", func(c *Config) { c.LogLevel = "chatty" }},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("expected validation error for %s", tt.name)
			}
		})
	}
}

func TestDataBaseURLAddsSlash(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataURL = "https://example.org/data"
	u, err := cfg.DataBaseURL()
	if err != nil {
		t.Fatalf("DataBaseURL: %v", err)
	}
	if u.String() != "https://example.org/data/" {
		t.Errorf("DataBaseURL = %q", u)
	}
}

func TestLocaleTag(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Locale = ""
	tag, err := cfg.LocaleTag()
	if err != nil || tag != language.AmericanEnglish {
		t.Errorf("empty locale = %s, %v", tag, err)
	}

	cfg.Locale = "fr-CA"
	tag, err = cfg.LocaleTag()
	if err != nil {
		t.Fatalf("LocaleTag: %v", err)
	}
	if tag.String() != "fr-CA" {
		t.Errorf("LocaleTag = %s, want fr-CA", tag)
	}
}

func TestLocation(t *testing.T) {
	cfg := DefaultConfig()
	loc, err := cfg.Location()
	if err != nil || loc != time.Local {
		t.Errorf("empty timezone = %v, %v", loc, err)
	}

	cfg.Timezone = "UTC"
	loc, err = cfg.Location()
	if err != nil || loc.String() != "UTC" {
		t.Errorf("UTC timezone = %v, %v", loc, err)
	}
}

func TestValidators(t *testing.T) {
	if err := validateDataURL(""); err != nil {
		t.Errorf("blank data url should be accepted: %v", err)
	}
	if err := validateDataURL("file:///tmp"); err == nil {
		t.Error("file url should be rejected")
	}
	if err := validateTimezone("Asia/Tokyo"); err != nil {
		t.Errorf("Asia/Tokyo rejected: %v", err)
	}
	if err := validateTimezone("Nowhere/Else"); err == nil {
		t.Error("unknown zone should be rejected")
	}
}
