// Package seoschema composes the full Schema.org structured-data payload for
// an article page: a BlogPosting node, a BreadcrumbList, and, when the
// article carries an FAQ section, a sibling FAQPage node. Sibling documents
// are emitted as a JSON array rather than nesting the FAQ inside the posting,
// which rich-result validators reject.
package seoschema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/hyperifyio/seoschema/internal/content"
	"github.com/hyperifyio/seoschema/internal/faq"
)

// Site describes the publishing site.
type Site struct {
	BaseURL       string
	Name          string
	DefaultLang   string
	PublisherName string
	PublisherLogo string
}

type Person struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type ImageObject struct {
	Type string `json:"@type"`
	URL  string `json:"url"`
}

type Organization struct {
	Type string       `json:"@type"`
	Name string       `json:"name"`
	Logo *ImageObject `json:"logo,omitempty"`
}

type BlogPosting struct {
	Context       string        `json:"@context"`
	Type          string        `json:"@type"`
	Headline      string        `json:"headline"`
	Description   string        `json:"description,omitempty"`
	URL           string        `json:"url,omitempty"`
	InLanguage    string        `json:"inLanguage,omitempty"`
	Keywords      string        `json:"keywords,omitempty"`
	DatePublished string        `json:"datePublished,omitempty"`
	DateModified  string        `json:"dateModified,omitempty"`
	Author        *Person       `json:"author,omitempty"`
	Publisher     *Organization `json:"publisher,omitempty"`
}

type ListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item,omitempty"`
}

type BreadcrumbList struct {
	Context         string     `json:"@context"`
	Type            string     `json:"@type"`
	ItemListElement []ListItem `json:"itemListElement"`
}

const schemaContext = "https://schema.org"

// Posting builds a BlogPosting node from article frontmatter.
func Posting(site Site, a *content.Article) *BlogPosting {
	p := &BlogPosting{
		Context:     schemaContext,
		Type:        "BlogPosting",
		Headline:    a.Meta.Title,
		Description: a.Meta.Description,
		URL:         articleURL(site, a),
		InLanguage:  NormalizeLang(a.Meta.Lang, site.DefaultLang),
		Keywords:    strings.Join(a.Meta.Tags, ", "),
	}
	if !a.Meta.PubDate.IsZero() {
		p.DatePublished = a.Meta.PubDate.Format(time.RFC3339)
	}
	if !a.Meta.UpdatedDate.IsZero() {
		p.DateModified = a.Meta.UpdatedDate.Format(time.RFC3339)
	}
	if name := strings.TrimSpace(a.Meta.Author); name != "" {
		p.Author = &Person{Type: "Person", Name: name}
	}
	if name := strings.TrimSpace(site.PublisherName); name != "" {
		org := &Organization{Type: "Organization", Name: name}
		if logo := strings.TrimSpace(site.PublisherLogo); logo != "" {
			org.Logo = &ImageObject{Type: "ImageObject", URL: logo}
		}
		p.Publisher = org
	}
	return p
}

// Breadcrumbs builds the Home → article trail for the page.
func Breadcrumbs(site Site, a *content.Article) *BreadcrumbList {
	home := strings.TrimRight(site.BaseURL, "/")
	homeName := strings.TrimSpace(site.Name)
	if homeName == "" {
		homeName = "Home"
	}
	return &BreadcrumbList{
		Context: schemaContext,
		Type:    "BreadcrumbList",
		ItemListElement: []ListItem{
			{Type: "ListItem", Position: 1, Name: homeName, Item: home + "/"},
			{Type: "ListItem", Position: 2, Name: a.Meta.Title, Item: articleURL(site, a)},
		},
	}
}

// Compose returns the page's full structured-data payload as sibling schema
// documents. The FAQ node is appended only when the pipeline produced one;
// an absent or filtered-out FAQ leaves the rest of the payload intact.
func Compose(site Site, a *content.Article, fd *faq.Data) []any {
	docs := []any{Posting(site, a), Breadcrumbs(site, a)}
	if page := faq.PageSchema(fd); page != nil {
		docs = append(docs, page)
	}
	return docs
}

// MarshalJSONLD serializes schema documents for embedding. HTML escaping is
// disabled so raw markup inside answers survives byte for byte. A single
// document serializes bare; multiple documents serialize as a sibling array.
func MarshalJSONLD(docs []any) ([]byte, error) {
	var v any = docs
	if len(docs) == 1 {
		v = docs[0]
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("marshal json-ld: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// NormalizeLang canonicalizes a frontmatter language hint to a BCP-47 tag,
// falling back to def when the hint is absent or does not parse.
func NormalizeLang(hint, def string) string {
	hint = strings.TrimSpace(hint)
	if hint == "" {
		return def
	}
	tag, err := language.Parse(hint)
	if err != nil {
		return def
	}
	return tag.String()
}

func articleURL(site Site, a *content.Article) string {
	base := strings.TrimRight(site.BaseURL, "/")
	if base == "" {
		return ""
	}
	return base + "/blog/" + a.Slug + "/"
}
