package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const articlePage = `<!DOCTYPE html>
<html>
<head>
<title>City Council Approves Transit Budget</title>
<meta name="author" content="Jane Reporter">
<meta property="article:published_time" content="2025-03-14T09:00:00Z">
</head>
<body>
<article>
<h1>City Council Approves Transit Budget</h1>
<p>The city council voted on Thursday to approve the new transit budget after months of public consultation and debate among residents.</p>
<p>Officials said the additional funding will support maintenance work across the network and improve service frequency on the busiest routes.</p>
<p>A detailed report on the spending plan will be published on the city website next week, according to a spokesperson for the council.</p>
</article>
</body>
</html>`

func TestScraper_Run(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(articlePage))
	}))
	defer server.Close()

	scraper := NewScraper("test-agent/1.0")
	article, err := scraper.Run(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if gotUserAgent != "test-agent/1.0" {
		t.Errorf("Expected user agent to be sent, got %q", gotUserAgent)
	}
	if !strings.Contains(article.Title, "Transit Budget") {
		t.Errorf("Unexpected title: %q", article.Title)
	}
	if !strings.Contains(article.Body, "public consultation") {
		t.Errorf("Body missing article text: %q", article.Body)
	}
	if article.URL != server.URL {
		t.Errorf("Expected URL %q, got %q", server.URL, article.URL)
	}
}

func TestScraper_Run_InvalidURL(t *testing.T) {
	scraper := NewScraper("test-agent/1.0")

	for _, rawURL := range []string{"", "not a url", "ftp://example.com/file", "/relative/path"} {
		if _, err := scraper.Run(context.Background(), rawURL); err == nil {
			t.Errorf("Expected error for %q", rawURL)
		}
	}
}

func TestScraper_Run_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	scraper := NewScraper("test-agent/1.0")
	if _, err := scraper.Run(context.Background(), server.URL); err == nil {
		t.Error("Expected error for 404 response")
	}
}

func TestScraper_Run_EmptyPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<html><head></head><body></body></html>"))
	}))
	defer server.Close()

	scraper := NewScraper("test-agent/1.0")
	if _, err := scraper.Run(context.Background(), server.URL); err == nil {
		t.Error("Expected error when no content is extractable")
	}
}

func TestExtractArticle_ParagraphFallbackMetadata(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(articlePage))
	}))
	defer server.Close()

	scraper := NewScraper("test-agent/1.0")
	article, err := scraper.Run(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if article.Author != "Jane Reporter" {
		t.Errorf("Expected author from meta tag, got %q", article.Author)
	}
	if article.PublishedAt != "2025-03-14T09:00:00Z" {
		t.Errorf("Expected published time from meta tag, got %q", article.PublishedAt)
	}
}
