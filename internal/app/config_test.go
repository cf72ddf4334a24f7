package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyEnvToConfig_Precedence(t *testing.T) {
	t.Setenv("SITE_URL", "https://env.example.com")
	t.Setenv("SITE_NAME", "Env Site")

	cfg := Config{SiteURL: "https://flag.example.com"}
	ApplyEnvToConfig(&cfg)

	if cfg.SiteURL != "https://flag.example.com" {
		t.Fatalf("explicit value must win over env, got %q", cfg.SiteURL)
	}
	if cfg.SiteName != "Env Site" {
		t.Fatalf("unset field must come from env, got %q", cfg.SiteName)
	}
}

func TestApplyEnvToConfig_NilSafe(t *testing.T) {
	ApplyEnvToConfig(nil)
}

func TestLoadConfigFile_AndMerge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seoschema.yaml")
	body := `content: content/blog
output: dist/schema
site:
  url: https://file.example.com
  name: File Site
  lang: fi
publisher:
  name: File Inc
  logo: https://file.example.com/logo.png
verbose: true
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}

	cfg := Config{SiteURL: "https://flag.example.com"}
	ApplyFileToConfig(&cfg, fc)

	if cfg.SiteURL != "https://flag.example.com" {
		t.Fatalf("explicit value must win over file, got %q", cfg.SiteURL)
	}
	if cfg.SiteName != "File Site" || cfg.DefaultLang != "fi" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.PublisherName != "File Inc" || cfg.PublisherLogo == "" {
		t.Fatalf("publisher not applied: %+v", cfg)
	}
	if !cfg.Verbose {
		t.Fatalf("verbose not applied")
	}
}

func TestLoadConfigFile_Missing(t *testing.T) {
	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
