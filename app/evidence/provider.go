package evidence

import (
	"context"
)

// Similarity tags carried by evidence sources. An empty string means the
// provider did not score the source.
const (
	SimilarityHigh   = "High"
	SimilarityMedium = "Medium"
	SimilarityLow    = "Low"
)

// Source is a single external evidence record. The analysis core only
// aggregates over these, it never constructs or mutates them.
type Source struct {
	URL        string `json:"url"`
	Title      string `json:"title"`
	Snippet    string `json:"snippet"`
	Similarity string `json:"similarity,omitempty"`
}

// Provider searches for external evidence about a claim. Implementations
// return between 0 and maxSources records with no ordering guarantee.
type Provider interface {
	Search(ctx context.Context, title, body string, maxSources int) ([]Source, error)
}
