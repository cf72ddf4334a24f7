package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/seoschema/internal/app"
)

func main() {
	// Best-effort .env load before flags read their env defaults.
	_ = godotenv.Load()

	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		contentDir    string
		outputDir     string
		htmlDir       string
		siteURL       string
		siteName      string
		defaultLang   string
		publisherName string
		publisherLogo string
		configPath    string
		verbose       bool
	)

	flag.StringVar(&contentDir, "content", "", "Directory holding markdown articles")
	flag.StringVar(&outputDir, "output", "", "Directory for generated .jsonld files (default dist/schema)")
	flag.StringVar(&htmlDir, "html", "", "Optional directory of rendered pages (<slug>/index.html) to inject into")
	flag.StringVar(&siteURL, "site.url", "", "Site base URL, e.g. https://example.com")
	flag.StringVar(&siteName, "site.name", "", "Site name for breadcrumbs")
	flag.StringVar(&defaultLang, "site.lang", "", "Default BCP-47 language tag (default en)")
	flag.StringVar(&publisherName, "publisher.name", "", "Publisher organization name")
	flag.StringVar(&publisherLogo, "publisher.logo", "", "Publisher logo URL")
	flag.StringVar(&configPath, "config", "", "Path to optional YAML config file (default seoschema.yaml when present)")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.Config{
		ContentDir:    contentDir,
		OutputDir:     outputDir,
		HTMLDir:       htmlDir,
		SiteURL:       siteURL,
		SiteName:      siteName,
		DefaultLang:   defaultLang,
		PublisherName: publisherName,
		PublisherLogo: publisherLogo,
		Verbose:       verbose,
	}

	// Flags > config file > env.
	if configPath == "" {
		if _, err := os.Stat("seoschema.yaml"); err == nil {
			configPath = "seoschema.yaml"
		}
	}
	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("config file unreadable")
			os.Exit(1)
		}
		app.ApplyFileToConfig(&cfg, fc)
	}
	app.ApplyEnvToConfig(&cfg)

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	ctx := context.Background()
	if err := app.Run(ctx, cfg); err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	return nil
}
