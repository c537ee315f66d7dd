package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFrom(t *testing.T) {
	path := writeConfig(t, `
default_site = "blog"
content_dir = "posts"

[sites]
blog = "/home/me/blog"
work = "/home/me/work-blog"

[ui]
accent = "#A78BFA"
markdown_style = "dark"
`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if got, err := cfg.GetSitePath(""); err != nil || got != "/home/me/blog" {
		t.Errorf("default site = %q, %v", got, err)
	}
	if got, err := cfg.GetSitePath("work"); err != nil || got != "/home/me/work-blog" {
		t.Errorf("named site = %q, %v", got, err)
	}
	if _, err := cfg.GetSitePath("missing"); err == nil {
		t.Error("expected error for unknown site")
	}
	if got := cfg.GetContentDir(); got != "posts" {
		t.Errorf("ContentDir = %q", got)
	}
	if cfg.UI.Accent != "#A78BFA" {
		t.Errorf("Accent = %q", cfg.UI.Accent)
	}
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}

	if got := cfg.GetContentDir(); got != DefaultContentDir {
		t.Errorf("GetContentDir = %q, want %q", got, DefaultContentDir)
	}
	if _, err := cfg.GetSitePath(""); err == nil {
		t.Error("expected error with no default site")
	}
}

func TestLoadFromInvalidTOML(t *testing.T) {
	path := writeConfig(t, "default_site = [broken")
	if _, err := LoadFrom(path); err == nil {
		t.Error("expected parse error")
	}
}
