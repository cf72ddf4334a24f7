package app

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the optional seoschema.yaml configuration schema.
// Nested sections mirror the flag namespaces.
type FileConfig struct {
	Content string `yaml:"content"`
	Output  string `yaml:"output"`
	HTML    string `yaml:"html"`

	Site struct {
		URL  string `yaml:"url"`
		Name string `yaml:"name"`
		Lang string `yaml:"lang"`
	} `yaml:"site"`

	Publisher struct {
		Name string `yaml:"name"`
		Logo string `yaml:"logo"`
	} `yaml:"publisher"`

	Verbose bool `yaml:"verbose"`
}

// LoadConfigFile reads and decodes a YAML config file.
func LoadConfigFile(path string) (*FileConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}
	return &fc, nil
}

// ApplyFileToConfig fills unset cfg fields from fc. Explicit cfg values take
// precedence over the file.
func ApplyFileToConfig(cfg *Config, fc *FileConfig) {
	if cfg == nil || fc == nil {
		return
	}
	if cfg.ContentDir == "" {
		cfg.ContentDir = fc.Content
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = fc.Output
	}
	if cfg.HTMLDir == "" {
		cfg.HTMLDir = fc.HTML
	}
	if cfg.SiteURL == "" {
		cfg.SiteURL = fc.Site.URL
	}
	if cfg.SiteName == "" {
		cfg.SiteName = fc.Site.Name
	}
	if cfg.DefaultLang == "" {
		cfg.DefaultLang = fc.Site.Lang
	}
	if cfg.PublisherName == "" {
		cfg.PublisherName = fc.Publisher.Name
	}
	if cfg.PublisherLogo == "" {
		cfg.PublisherLogo = fc.Publisher.Logo
	}
	if fc.Verbose {
		cfg.Verbose = true
	}
}
