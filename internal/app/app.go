// Package app orchestrates one generation run: load articles, extract and
// validate FAQ sections, compose the structured-data payload, and write (or
// inject) the result. Per-article failures degrade to warnings so one broken
// article never blocks the rest of the site.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/seoschema/internal/content"
	"github.com/hyperifyio/seoschema/internal/faq"
	"github.com/hyperifyio/seoschema/internal/htmlinject"
	"github.com/hyperifyio/seoschema/internal/seoschema"
)

// Run executes one generation pass over the content directory.
func Run(ctx context.Context, cfg Config) error {
	if strings.TrimSpace(cfg.ContentDir) == "" {
		return errors.New("content dir is required")
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "dist/schema"
	}
	if cfg.DefaultLang == "" {
		cfg.DefaultLang = "en"
	}

	paths, err := content.List(cfg.ContentDir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		log.Warn().Str("dir", cfg.ContentDir).Msg("no articles found")
		return nil
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	site := seoschema.Site{
		BaseURL:       cfg.SiteURL,
		Name:          cfg.SiteName,
		DefaultLang:   cfg.DefaultLang,
		PublisherName: cfg.PublisherName,
		PublisherLogo: cfg.PublisherLogo,
	}

	written := 0
	for _, p := range paths {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		art, err := content.LoadFile(p)
		if err != nil {
			log.Warn().Err(err).Str("path", p).Msg("skipping article")
			continue
		}
		if art == nil {
			log.Debug().Str("path", p).Msg("skipping draft")
			continue
		}

		fd := faq.Parse(art.Body)
		if fd != nil && !faq.Validate(fd) {
			log.Warn().Str("path", p).Msg("extracted FAQ failed validation; omitting")
			fd = nil
		}
		if fd != nil {
			log.Debug().Str("slug", art.Slug).Int("items", len(fd.Items)).Str("title", fd.Title).Msg("FAQ extracted")
		}

		payload, err := seoschema.MarshalJSONLD(seoschema.Compose(site, art, fd))
		if err != nil {
			log.Warn().Err(err).Str("path", p).Msg("schema serialization failed; skipping article")
			continue
		}

		out := filepath.Join(cfg.OutputDir, art.Slug+".jsonld")
		if err := os.WriteFile(out, payload, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		written++
		log.Info().Str("out", out).Msg("wrote schema")

		if cfg.HTMLDir != "" {
			injectIntoPage(cfg.HTMLDir, art.Slug, payload)
		}
	}

	if written == 0 {
		log.Warn().Msg("no articles produced schema output")
	} else {
		log.Info().Int("articles", written).Msg("run complete")
	}
	return nil
}

// injectIntoPage rewrites the rendered page for slug with the payload
// embedded in its head. A missing or unparsable page is a warning, not a
// failure: the .jsonld artifact was already written.
func injectIntoPage(htmlDir, slug string, payload []byte) {
	page := filepath.Join(htmlDir, slug, "index.html")
	raw, err := os.ReadFile(page)
	if err != nil {
		log.Warn().Err(err).Str("page", page).Msg("html inject skipped")
		return
	}
	out, err := htmlinject.Inject(raw, payload)
	if err != nil {
		log.Warn().Err(err).Str("page", page).Msg("html inject failed")
		return
	}
	if err := os.WriteFile(page, out, 0o644); err != nil {
		log.Warn().Err(err).Str("page", page).Msg("html write failed")
		return
	}
	log.Info().Str("page", page).Msg("injected schema")
}
