package app

import "os"

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.ContentDir == "" {
		cfg.ContentDir = os.Getenv("CONTENT_DIR")
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = os.Getenv("OUTPUT_DIR")
	}
	if cfg.HTMLDir == "" {
		cfg.HTMLDir = os.Getenv("HTML_DIR")
	}
	if cfg.SiteURL == "" {
		cfg.SiteURL = os.Getenv("SITE_URL")
	}
	if cfg.SiteName == "" {
		cfg.SiteName = os.Getenv("SITE_NAME")
	}
	if cfg.DefaultLang == "" {
		cfg.DefaultLang = os.Getenv("DEFAULT_LANG")
	}
	if cfg.PublisherName == "" {
		cfg.PublisherName = os.Getenv("PUBLISHER_NAME")
	}
	if cfg.PublisherLogo == "" {
		cfg.PublisherLogo = os.Getenv("PUBLISHER_LOGO")
	}
}
