package faq

import (
	"regexp"
	"strings"
)

// parseOutcome distinguishes the terminal states of a scan so tests can tell
// "no FAQ heading" from "heading but no usable pairs". The exported API
// collapses both to nil.
type parseOutcome int

const (
	outcomeFound parseOutcome = iota
	outcomeNoHeading
	outcomeNoValidPairs
)

// scanState names the phases of the forward line scan.
type scanState int

const (
	seekingQuestion scanState = iota
	seekingAnswer
	accumulatingAnswer
)

var mdLinkRe = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)

// Parse scans markdown (possibly containing raw HTML) for an FAQ section and
// returns its question/answer pairs in document order. Only the first
// FAQ-labeled section is parsed. Parse returns nil when the input is empty,
// when no FAQ heading exists, or when the section yields no fully paired,
// non-blank question/answer blocks. It never panics on any input.
func Parse(content string) *Data {
	d, _ := parse(content)
	return d
}

func parse(content string) (*Data, parseOutcome) {
	if content == "" {
		return nil, outcomeNoHeading
	}
	lines := strings.Split(content, "\n")

	// Locate the first heading mentioning FAQ, at any level 1-6.
	start := -1
	title := ""
	for i, raw := range lines {
		s := strings.TrimSpace(raw)
		if !isHeading(s) {
			continue
		}
		t := stripHeading(s)
		if !isFAQTitle(t) {
			continue
		}
		start = i
		title = stripFAQSuffix(t)
		break
	}
	if start == -1 {
		return nil, outcomeNoHeading
	}

	items := scanPairs(lines[start+1:])
	if len(items) == 0 {
		return nil, outcomeNoValidPairs
	}
	return &Data{Title: title, Items: items}, outcomeFound
}

// scanPairs walks the lines following the FAQ heading and collects fully
// paired question/answer blocks. Scanning stops at the first line that is
// neither a new question marker nor a continuation of the current answer, so
// a later, unrelated FAQ-labeled section is never reached.
func scanPairs(lines []string) []Item {
	var items []Item

	state := seekingQuestion
	first := true           // only the line right after the heading may be a bare question
	headingQuestions := false // section introduces questions with sub-headings
	modeSet := false

	var question string
	var answer []string
	gap := false

	emit := func() {
		q := cleanField(question)
		a := cleanField(strings.Join(answer, "\n"))
		if q != "" && a != "" {
			items = append(items, Item{Question: q, Answer: a})
		}
		question = ""
		answer = nil
		gap = false
	}

	for _, raw := range lines {
		s := strings.TrimSpace(raw)

		switch state {
		case seekingQuestion:
			if s == "" {
				continue
			}
			wasFirst := first
			first = false
			if isHeading(s) {
				t := stripHeading(s)
				if isFAQTitle(t) {
					// A second FAQ-labeled heading starts a new section,
					// which the first-match policy excludes.
					return items
				}
				if !modeSet {
					headingQuestions, modeSet = true, true
				}
				question = stripQuestionMarker(t)
				state = seekingAnswer
				continue
			}
			if q, ok := questionMarker(s); ok {
				modeSet = true
				question = q
				state = seekingAnswer
				continue
			}
			if _, ok := answerMarker(s); ok {
				// An answer with no preceding question is discarded.
				continue
			}
			if wasFirst {
				// Directly under the heading a bare line may introduce the
				// first question.
				modeSet = true
				question = s
				state = seekingAnswer
				continue
			}
			return items

		case seekingAnswer:
			if s == "" {
				continue
			}
			if a, ok := answerMarker(s); ok {
				answer = append(answer, a)
				state = accumulatingAnswer
				continue
			}
			if isHeading(s) {
				t := stripHeading(s)
				if isFAQTitle(t) {
					return items
				}
				if headingQuestions {
					// The pending question had no answer; drop it and let
					// this heading introduce the next one.
					question = stripQuestionMarker(t)
					continue
				}
				return items
			}
			if q, ok := questionMarker(s); ok {
				question = q
				continue
			}
			if headingQuestions {
				// Heading-introduced questions accept an unmarked answer.
				answer = append(answer, s)
				state = accumulatingAnswer
				continue
			}
			return items

		case accumulatingAnswer:
			if s == "" {
				gap = true
				continue
			}
			if q, ok := questionMarker(s); ok {
				emit()
				question = q
				state = seekingAnswer
				continue
			}
			if isHeading(s) {
				t := stripHeading(s)
				if isFAQTitle(t) {
					emit()
					return items
				}
				if q, ok := questionMarker(t); ok {
					emit()
					question = q
					state = seekingAnswer
					continue
				}
				if headingQuestions {
					emit()
					question = t
					state = seekingAnswer
					continue
				}
				// Marker-style sections may nest sub-headings inside answers.
				answer = append(answer, t)
				gap = false
				continue
			}
			if gap && !isListItem(s) {
				// A plain paragraph after a blank line is unrelated prose,
				// not an answer continuation.
				emit()
				return items
			}
			answer = append(answer, s)
			gap = false
		}
	}

	if state == accumulatingAnswer {
		emit()
	}
	return items
}

// questionMarker reports whether the line opens with a question marker such
// as "Q:", "Q1 :", or "Q3", and returns the text that follows it.
func questionMarker(s string) (string, bool) { return marker(s, 'q') }

// answerMarker is the symmetric test for "A:"-style answer markers.
func answerMarker(s string) (string, bool) { return marker(s, 'a') }

func marker(s string, letter byte) (string, bool) {
	if s == "" {
		return "", false
	}
	c := s[0]
	if c != letter && c != letter-('a'-'A') {
		return "", false
	}
	i := 1
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	j := i
	for j < len(s) && (s[j] == ' ' || s[j] == '\t') {
		j++
	}
	colon := false
	if j < len(s) && s[j] == ':' {
		colon = true
		j++
	}
	// Require a colon, whitespace, or end of line after the marker so words
	// like "Question" or "Answers" do not count.
	if !colon && j == i && j < len(s) {
		return "", false
	}
	return strings.TrimSpace(s[j:]), true
}

// stripQuestionMarker removes a leading question marker when present,
// so "Q1: What is X?" and "What is X?" both yield "What is X?".
func stripQuestionMarker(s string) string {
	if q, ok := questionMarker(s); ok {
		return q
	}
	return s
}

func isHeading(s string) bool {
	if s == "" || s[0] != '#' {
		return false
	}
	i := 0
	for i < len(s) && s[i] == '#' {
		i++
	}
	return i >= 1 && i <= 6 && i < len(s) && (s[i] == ' ' || s[i] == '\t')
}

func stripHeading(s string) string {
	i := 0
	for i < len(s) && s[i] == '#' {
		i++
	}
	return strings.TrimSpace(s[i:])
}

// isFAQTitle reports whether a heading's text labels an FAQ section.
func isFAQTitle(t string) bool {
	l := strings.ToLower(t)
	return strings.Contains(l, "faq") || strings.Contains(l, "frequently asked questions")
}

// stripFAQSuffix removes a trailing "(FAQ)" parenthetical so a heading like
// "Frequently Asked Questions (FAQ)" yields a clean title. Other
// parentheticals are preserved verbatim.
func stripFAQSuffix(t string) string {
	const suffix = "(faq)"
	if n := len(t); n >= len(suffix) && strings.EqualFold(t[n-len(suffix):], suffix) {
		return strings.TrimSpace(t[:n-len(suffix)])
	}
	return t
}

func isListItem(s string) bool {
	if s == "" {
		return false
	}
	switch s[0] {
	case '-', '*', '+':
		return len(s) > 1 && (s[1] == ' ' || s[1] == '\t')
	}
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i > 0 && i < len(s) && (s[i] == '.' || s[i] == ')')
}

// cleanField rewrites markdown links to their link text and collapses all
// whitespace runs, including newlines, into single spaces. Raw HTML tags and
// all other characters pass through untouched.
func cleanField(s string) string {
	s = mdLinkRe.ReplaceAllString(s, "$1")
	return strings.Join(strings.Fields(s), " ")
}
