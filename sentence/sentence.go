// Package sentence turns raw document text into ordered candidate
// sentences for the selection core.
//
// It normalizes extraction artifacts (page markers, outline numbering,
// whitespace runs), segments text into sentences with an
// abbreviation-aware boundary detector, and filters out fragments that
// are too short or carry no alphabetic content.
package sentence

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Sentence is an immutable candidate sentence. It is created once
// during normalization and never mutated afterwards.
type Sentence struct {
	// Raw is the sentence text as produced by the boundary detector.
	Raw string
	// Text is the cleaned sentence text used for scoring and output.
	Text string
	// Position is the 0-based ordinal of the sentence in the source
	// document. It survives filtering and selection so the final
	// summary can be restored to document order.
	Position int
}

var (
	// Page-number artifacts left behind by PDF/OCR extraction,
	// e.g. "Page 12" or "Page 3 of 40".
	pageMarkerRE = regexp.MustCompile(`(?i)Page \d+( of \d+)?`)
	// Dotted-decimal outline prefixes at line start, e.g. "2.4.1 ".
	outlineRE = regexp.MustCompile(`(?m)^\d+(\.\d+)*\s*`)
	// Whitespace runs including NBSP and other unicode spaces.
	whitespaceRE = regexp.MustCompile(`[\s\p{Z}]+`)
)

// Normalize strips common document artifacts from text and collapses
// all whitespace runs to single spaces.
func Normalize(text string) string {
	text = pageMarkerRE.ReplaceAllString(text, "")
	text = outlineRE.ReplaceAllString(text, "")
	text = whitespaceRE.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// DefaultMinLength is the minimum cleaned sentence length for a
// sentence to become a selection candidate. Shorter fragments are
// usually headers, footers or stray table cells.
const DefaultMinLength = 40

// Filter keeps sentences whose cleaned text is longer than minLen
// characters and contains at least one letter. Length is counted in
// runes, so non-ASCII text is not penalized for its encoding width.
// Relative order and original positions are preserved. An empty result
// is a normal outcome for degenerate documents, not an error.
func Filter(sents []Sentence, minLen int) []Sentence {
	if minLen <= 0 {
		minLen = DefaultMinLength
	}

	valid := make([]Sentence, 0, len(sents))
	for _, s := range sents {
		if utf8.RuneCountInString(s.Text) <= minLen {
			continue
		}
		if !containsLetter(s.Text) {
			continue
		}
		valid = append(valid, s)
	}
	return valid
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
