// Package content loads markdown articles from a content collection
// directory, splitting YAML frontmatter from the body and validating the
// metadata the schema composer depends on.
package content

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	yaml "gopkg.in/yaml.v3"
)

// Frontmatter is the YAML metadata block at the top of an article file.
type Frontmatter struct {
	Title       string    `yaml:"title" validate:"required"`
	Description string    `yaml:"description" validate:"required"`
	Author      string    `yaml:"author"`
	PubDate     time.Time `yaml:"pubDate"`
	UpdatedDate time.Time `yaml:"updatedDate"`
	Lang        string    `yaml:"lang"`
	Tags        []string  `yaml:"tags"`
	Draft       bool      `yaml:"draft"`
	Slug        string    `yaml:"slug"`
}

// Article is one loaded content-collection entry.
type Article struct {
	Meta Frontmatter
	Slug string
	Body string
	Path string
}

var fmValidate = validator.New(validator.WithRequiredStructEnabled())

// List returns the markdown article files under dir in lexical order.
func List(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(p)) {
		case ".md", ".mdx":
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk content dir: %w", err)
	}
	sort.Strings(paths)
	return paths, nil
}

// LoadFile reads one article, splitting and decoding its frontmatter. Draft
// articles return (nil, nil) so callers can skip them without treating the
// file as malformed.
func LoadFile(path string) (*Article, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read article: %w", err)
	}
	fmRaw, body := splitFrontmatter(string(raw))
	var meta Frontmatter
	if fmRaw != "" {
		if err := yaml.Unmarshal([]byte(fmRaw), &meta); err != nil {
			return nil, fmt.Errorf("frontmatter %s: %w", path, err)
		}
	}
	if err := fmValidate.Struct(meta); err != nil {
		return nil, fmt.Errorf("frontmatter %s: %w", path, err)
	}
	if meta.Draft {
		return nil, nil
	}
	slug := strings.TrimSpace(meta.Slug)
	if slug == "" {
		slug = slugFromPath(path)
	}
	return &Article{Meta: meta, Slug: slug, Body: body, Path: path}, nil
}

// splitFrontmatter separates a leading "---" delimited YAML block from the
// body. Without a complete delimiter pair the whole input is body.
func splitFrontmatter(s string) (meta, body string) {
	if !strings.HasPrefix(s, "---") {
		return "", s
	}
	lines := strings.Split(s, "\n")
	if strings.TrimRight(lines[0], "\r ") != "---" {
		return "", s
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\r ") == "---" {
			return strings.Join(lines[1:i], "\n"), strings.Join(lines[i+1:], "\n")
		}
	}
	return "", s
}

func slugFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
