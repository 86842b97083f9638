// Package parsing provides text normalization and tokenization for the
// scoring pipeline. All downstream components consume normalized text.
package parsing

import (
	"regexp"
	"strings"
)

var (
	// nonAlphanumeric matches every character outside [a-zA-Z0-9 ]
	nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9 ]`)
	// multiSpace matches runs of whitespace
	multiSpace = regexp.MustCompile(`\s+`)
)

// Normalize lowercases text, replaces every character outside [a-zA-Z0-9 ]
// with a space, collapses whitespace runs to a single space, and trims.
// Empty input yields an empty string; Normalize never fails.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ToLower(text)
	text = nonAlphanumeric.ReplaceAllString(text, " ")
	text = multiSpace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Tokenize splits text into normalized word tokens. The input is normalized
// first, so callers may pass raw text.
func Tokenize(text string) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}
	return strings.Split(normalized, " ")
}

// WordCount counts whitespace-separated words in the raw (un-normalized)
// text. Used by the recommendation engine's length heuristics.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// Document pairs raw text with its derived normalized form and statistics.
// Documents are created per analysis call and never persisted by the core.
type Document struct {
	Raw        string
	Normalized string
	Tokens     []string
	WordCount  int
}

// NewDocument derives a Document from raw text
func NewDocument(raw string) *Document {
	normalized := Normalize(raw)

	var tokens []string
	if normalized != "" {
		tokens = strings.Split(normalized, " ")
	}

	return &Document{
		Raw:        raw,
		Normalized: normalized,
		Tokens:     tokens,
		WordCount:  WordCount(raw),
	}
}

// Empty reports whether the document has no content after normalization
func (d *Document) Empty() bool {
	return d.Normalized == ""
}
