package evidence

import (
	"context"
)

var _ Provider = (*StaticProvider)(nil)

// StaticProvider returns a fixed pool of fact-checking sources regardless of
// the query. It stands in for a real search integration (e.g. a custom
// search API) and exists so the rest of the pipeline can treat evidence
// gathering as a pluggable collaborator.
type StaticProvider struct{}

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

func (p *StaticProvider) Search(_ context.Context, title, _ string, maxSources int) ([]Source, error) {
	query := truncate(title, 50)

	pool := []Source{
		{
			URL:        "https://www.snopes.com",
			Title:      "Fact Check: " + query,
			Snippet:    "According to fact-checkers, this claim has been verified through multiple sources...",
			Similarity: SimilarityHigh,
		},
		{
			URL:        "https://www.factcheck.org",
			Title:      "Analysis: " + query,
			Snippet:    "Our investigation found evidence supporting/refuting these claims...",
			Similarity: SimilarityMedium,
		},
		{
			URL:        "https://apnews.com",
			Title:      "AP News Coverage",
			Snippet:    "Associated Press reporting indicates...",
			Similarity: SimilarityMedium,
		},
		{
			URL:        "https://www.reuters.com",
			Title:      "Reuters Fact Check",
			Snippet:    "Reuters fact-checking team examined this story...",
			Similarity: SimilarityHigh,
		},
		{
			URL:        "https://www.bbc.com/news",
			Title:      "BBC Verification",
			Snippet:    "BBC News verification unit reviewed the available evidence...",
			Similarity: SimilarityMedium,
		},
	}

	if maxSources < len(pool) {
		pool = pool[:max(maxSources, 0)]
	}

	return pool, nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
