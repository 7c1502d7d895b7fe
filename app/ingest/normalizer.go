// Package ingest implements the input-side collaborators of the analysis
// pipeline: web scraping, text normalization and validation, and OCR.
package ingest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/abadojack/whatlanggo"
	"golang.org/x/text/unicode/norm"
)

// minimumWordCount is the smallest body considered reliable for analysis.
const minimumWordCount = 50

// Document is a cleaned, validated article ready for the analysis pipeline.
type Document struct {
	Title string
	Body  string
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	disallowed    = regexp.MustCompile(`[^A-Za-z0-9.,;!?'"()$%\s]+`)
)

// Normalizer cleans raw text and enforces the input contract: English
// language, whitespace-collapsed, restricted character set, minimum length.
// All validation failures are client errors.
type Normalizer struct {
	minWords int
}

func NewNormalizer() *Normalizer {
	return &Normalizer{minWords: minimumWordCount}
}

// Clean collapses whitespace and strips characters outside the allow-list.
// It performs no validation.
func (n *Normalizer) Clean(text string) string {
	if text == "" {
		return ""
	}
	text = norm.NFKC.String(text)
	text = disallowed.ReplaceAllString(text, "")
	text = whitespaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// ValidateText cleans a raw string and checks the full input contract,
// returning the cleaned text.
func (n *Normalizer) ValidateText(text string) (string, error) {
	if text == "" {
		return "", fmt.Errorf("input text cannot be empty")
	}

	cleaned := n.Clean(text)
	if cleaned == "" {
		return "", fmt.Errorf("text is empty after cleaning")
	}

	info := whatlanggo.Detect(cleaned)
	if !info.IsReliable() {
		return "", fmt.Errorf("language could not be reliably detected")
	}
	if info.Lang != whatlanggo.Eng {
		return "", fmt.Errorf("text is not in English")
	}

	if words := len(strings.Fields(cleaned)); words < n.minWords {
		return "", fmt.Errorf("text content is too short: minimum %d words required, got %d", n.minWords, words)
	}

	return cleaned, nil
}

// Document cleans a scraped title and body pair and validates the body.
func (n *Normalizer) Document(title, body string) (Document, error) {
	cleanedBody, err := n.ValidateText(body)
	if err != nil {
		return Document{}, err
	}

	return Document{
		Title: n.Clean(title),
		Body:  cleanedBody,
	}, nil
}

// DeriveTitle splits a cleaned text into a title and body when the text
// has no explicit headline. The first sentence becomes the title when it
// is reasonably short; otherwise the fallback is used and the body is left
// whole.
func DeriveTitle(cleaned, fallback string) (string, string) {
	parts := strings.Split(cleaned, ".")
	if len(parts) > 1 && len(parts[0]) < 100 {
		return strings.TrimSpace(parts[0]), strings.TrimSpace(strings.Join(parts[1:], "."))
	}
	return fallback, cleaned
}
