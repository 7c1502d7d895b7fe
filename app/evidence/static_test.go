package evidence

import (
	"context"
	"strings"
	"testing"
)

func TestStaticProvider_Search(t *testing.T) {
	provider := NewStaticProvider()

	sources, err := provider.Search(context.Background(), "Test headline", "body text", 5)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if len(sources) != 5 {
		t.Errorf("Expected 5 sources, got %d", len(sources))
	}

	for i, source := range sources {
		if source.URL == "" {
			t.Errorf("Source %d has empty URL", i)
		}
		if source.Title == "" {
			t.Errorf("Source %d has empty title", i)
		}
		if source.Similarity != SimilarityHigh && source.Similarity != SimilarityMedium {
			t.Errorf("Source %d has unexpected similarity %q", i, source.Similarity)
		}
	}

	if !strings.HasPrefix(sources[0].Title, "Fact Check: ") {
		t.Errorf("First source title should carry the fact check prefix, got %q", sources[0].Title)
	}
}

func TestStaticProvider_Search_MaxSourcesCap(t *testing.T) {
	provider := NewStaticProvider()

	sources, err := provider.Search(context.Background(), "Test headline", "", 2)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(sources) != 2 {
		t.Errorf("Expected 2 sources, got %d", len(sources))
	}

	sources, err = provider.Search(context.Background(), "Test headline", "", 0)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(sources) != 0 {
		t.Errorf("Expected 0 sources, got %d", len(sources))
	}
}

func TestStaticProvider_Search_LongTitleTruncated(t *testing.T) {
	provider := NewStaticProvider()

	longTitle := strings.Repeat("a", 120)
	sources, err := provider.Search(context.Background(), longTitle, "", 1)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	want := "Fact Check: " + longTitle[:50]
	if sources[0].Title != want {
		t.Errorf("Expected title %q, got %q", want, sources[0].Title)
	}
}

func TestSimilarityTag(t *testing.T) {
	query := wordSet("vaccine trial results published today")

	if tag := similarityTag(query, wordSet("vaccine trial results published today")); tag != SimilarityHigh {
		t.Errorf("Identical titles should be High, got %q", tag)
	}
	if tag := similarityTag(query, wordSet("vaccine trial delayed")); tag != SimilarityMedium {
		t.Errorf("Partial overlap should be Medium, got %q", tag)
	}
	if tag := similarityTag(query, wordSet("football championship tonight")); tag != SimilarityLow {
		t.Errorf("No overlap should be Low, got %q", tag)
	}
}
