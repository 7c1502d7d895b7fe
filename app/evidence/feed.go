package evidence

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"
)

var _ Provider = (*FeedProvider)(nil)

// FeedProvider sources evidence from a fact-check RSS/Atom feed. Similarity
// is estimated from word overlap between the query title and the item title.
type FeedProvider struct {
	feedURL string
	parser  *gofeed.Parser
}

func NewFeedProvider(feedURL, userAgent string) *FeedProvider {
	parser := gofeed.NewParser()
	parser.UserAgent = userAgent

	return &FeedProvider{
		feedURL: feedURL,
		parser:  parser,
	}
}

func (p *FeedProvider) Search(ctx context.Context, title, _ string, maxSources int) ([]Source, error) {
	feed, err := p.parser.ParseURLWithContext(p.feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch evidence feed: %w", err)
	}

	queryWords := wordSet(title)

	sources := make([]Source, 0, maxSources)
	for _, item := range feed.Items {
		if len(sources) >= maxSources {
			break
		}
		sources = append(sources, Source{
			URL:        item.Link,
			Title:      item.Title,
			Snippet:    truncate(strings.TrimSpace(item.Description), 200),
			Similarity: similarityTag(queryWords, wordSet(item.Title)),
		})
	}

	return sources, nil
}

// similarityTag buckets the overlap ratio of query words found in the
// candidate title.
func similarityTag(query, candidate map[string]bool) string {
	if len(query) == 0 {
		return SimilarityLow
	}

	matched := 0
	for word := range query {
		if candidate[word] {
			matched++
		}
	}

	ratio := float64(matched) / float64(len(query))
	switch {
	case ratio >= 0.5:
		return SimilarityHigh
	case ratio >= 0.25:
		return SimilarityMedium
	default:
		return SimilarityLow
	}
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, word := range strings.Fields(strings.ToLower(s)) {
		word = strings.Trim(word, ".,;:!?'\"()")
		if len(word) > 2 {
			set[word] = true
		}
	}
	return set
}
