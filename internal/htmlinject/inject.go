// Package htmlinject embeds a JSON-LD payload into a rendered HTML page as
// an inline <script type="application/ld+json"> element.
package htmlinject

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Inject appends a script element containing jsonld to the document's
// <head>, falling back to <body> and then the document root when the page
// has no head, and re-renders the document. Existing ld+json scripts are
// left untouched.
func Inject(doc []byte, jsonld []byte) ([]byte, error) {
	node, err := html.Parse(bytes.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	target := findFirst(node, "head")
	if target == nil {
		target = findFirst(node, "body")
	}
	if target == nil {
		target = node
	}
	script := &html.Node{
		Type: html.ElementNode,
		Data: "script",
		Attr: []html.Attribute{{Key: "type", Val: "application/ld+json"}},
	}
	script.AppendChild(&html.Node{Type: html.TextNode, Data: escapeForScript(string(jsonld))})
	target.AppendChild(script)

	var out bytes.Buffer
	if err := html.Render(&out, node); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	return out.Bytes(), nil
}

// escapeForScript guards against a premature "</script>" terminator inside
// the payload. "\/" is a legal JSON escape, so the embedded document parses
// identically.
func escapeForScript(s string) string {
	return strings.ReplaceAll(s, "</", `<\/`)
}

func findFirst(n *html.Node, tag string) *html.Node {
	var res *html.Node
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if res != nil {
			return
		}
		if cur.Type == html.ElementNode && strings.EqualFold(cur.Data, tag) {
			res = cur
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
			if res != nil {
				return
			}
		}
	}
	dfs(n)
	return res
}
