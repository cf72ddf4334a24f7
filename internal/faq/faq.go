// Package faq extracts question/answer pairs from markdown article bodies
// and turns them into Schema.org FAQPage structured data. The whole package
// is pure: no I/O, no logging, no ambient configuration reads.
package faq

// Item is one question/answer pair in document order.
type Item struct {
	Question string
	Answer   string
}

// Data is the parsed FAQ section of a single article. Title is the heading
// text with markers and a trailing "(FAQ)" parenthetical removed. Items keeps
// source order.
type Data struct {
	Title string
	Items []Item
}
