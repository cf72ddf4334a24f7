package seoschema

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/hyperifyio/seoschema/internal/content"
	"github.com/hyperifyio/seoschema/internal/faq"
)

func testSite() Site {
	return Site{
		BaseURL:       "https://example.com",
		Name:          "Example Blog",
		DefaultLang:   "en",
		PublisherName: "Example Inc",
		PublisherLogo: "https://example.com/logo.png",
	}
}

func testArticle() *content.Article {
	return &content.Article{
		Meta: content.Frontmatter{
			Title:       "How to Test",
			Description: "Testing things",
			Author:      "Jane Doe",
			PubDate:     time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			Tags:        []string{"go", "testing"},
		},
		Slug: "how-to-test",
	}
}

func TestPosting_Fields(t *testing.T) {
	p := Posting(testSite(), testArticle())
	if p.Headline != "How to Test" {
		t.Fatalf("headline: got %q", p.Headline)
	}
	if p.URL != "https://example.com/blog/how-to-test/" {
		t.Fatalf("url: got %q", p.URL)
	}
	if p.DatePublished != "2025-03-01T00:00:00Z" {
		t.Fatalf("datePublished: got %q", p.DatePublished)
	}
	if p.DateModified != "" {
		t.Fatalf("dateModified should be empty for never-updated article, got %q", p.DateModified)
	}
	if p.Author == nil || p.Author.Name != "Jane Doe" {
		t.Fatalf("author: got %+v", p.Author)
	}
	if p.Publisher == nil || p.Publisher.Logo == nil {
		t.Fatalf("publisher: got %+v", p.Publisher)
	}
	if p.Keywords != "go, testing" {
		t.Fatalf("keywords: got %q", p.Keywords)
	}
	if p.InLanguage != "en" {
		t.Fatalf("inLanguage: got %q", p.InLanguage)
	}
}

func TestNormalizeLang(t *testing.T) {
	cases := []struct{ hint, def, want string }{
		{"", "en", "en"},
		{"en-us", "en", "en-US"},
		{"FI", "en", "fi"},
		{"not a tag!!", "en", "en"},
	}
	for _, tc := range cases {
		if got := NormalizeLang(tc.hint, tc.def); got != tc.want {
			t.Fatalf("NormalizeLang(%q, %q): got %q, want %q", tc.hint, tc.def, got, tc.want)
		}
	}
}

func TestCompose_SiblingsNotNested(t *testing.T) {
	fd := &faq.Data{Title: "FAQ", Items: []faq.Item{{Question: "Q?", Answer: "A."}}}
	docs := Compose(testSite(), testArticle(), fd)
	if len(docs) != 3 {
		t.Fatalf("docs: got %d, want 3", len(docs))
	}
	b, err := MarshalJSONLD(docs)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var arr []map[string]any
	if err := json.Unmarshal(b, &arr); err != nil {
		t.Fatalf("payload is not a sibling array: %v\n%s", err, b)
	}
	if arr[0]["@type"] != "BlogPosting" || arr[1]["@type"] != "BreadcrumbList" || arr[2]["@type"] != "FAQPage" {
		t.Fatalf("sibling order: %s", b)
	}
	if _, nested := arr[0]["mainEntity"]; nested {
		t.Fatalf("FAQ must not be nested inside the posting: %s", b)
	}
}

func TestCompose_NoFAQ(t *testing.T) {
	docs := Compose(testSite(), testArticle(), nil)
	if len(docs) != 2 {
		t.Fatalf("docs: got %d, want 2", len(docs))
	}
}

func TestMarshalJSONLD_NoHTMLEscaping(t *testing.T) {
	fd := &faq.Data{Items: []faq.Item{{Question: "Q?", Answer: "<strong>bold</strong> & more"}}}
	b, err := MarshalJSONLD([]any{faq.PageSchema(fd)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), "<strong>bold</strong> & more") {
		t.Fatalf("HTML was escaped: %s", b)
	}
	// Single document serializes bare, not as a one-element array.
	if strings.HasPrefix(string(b), "[") {
		t.Fatalf("single document must not be wrapped in an array: %s", b)
	}
}

func TestBreadcrumbs_Trail(t *testing.T) {
	bc := Breadcrumbs(testSite(), testArticle())
	if len(bc.ItemListElement) != 2 {
		t.Fatalf("trail: got %d items", len(bc.ItemListElement))
	}
	if bc.ItemListElement[0].Position != 1 || bc.ItemListElement[0].Item != "https://example.com/" {
		t.Fatalf("home crumb: %+v", bc.ItemListElement[0])
	}
	if bc.ItemListElement[1].Name != "How to Test" {
		t.Fatalf("article crumb: %+v", bc.ItemListElement[1])
	}
}
