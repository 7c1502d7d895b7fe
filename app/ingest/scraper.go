package ingest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	readability "codeberg.org/readeck/go-readability"
	"github.com/PuerkitoBio/goquery"
)

// maxFetchBytes caps how much of a page is read.
const maxFetchBytes = 10 << 20

// ScrapedArticle is the raw extraction result for a URL, before
// normalization.
type ScrapedArticle struct {
	URL         string
	Title       string
	Body        string
	Author      string
	PublishedAt string
}

// Scraper fetches a URL and extracts the article title, body, and basic
// metadata.
type Scraper struct {
	client    *http.Client
	userAgent string
}

func NewScraper(userAgent string) *Scraper {
	return &Scraper{
		client:    &http.Client{Timeout: 10 * time.Second},
		userAgent: userAgent,
	}
}

// Run scrapes article content from the given URL. All failures are client
// errors: the URL is unreachable, not HTML, or yields no extractable text.
func (s *Scraper) Run(ctx context.Context, rawURL string) (ScrapedArticle, error) {
	pageURL, err := url.Parse(rawURL)
	if err != nil || (pageURL.Scheme != "http" && pageURL.Scheme != "https") || pageURL.Host == "" {
		return ScrapedArticle{}, fmt.Errorf("invalid URL format provided")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL.String(), nil)
	if err != nil {
		return ScrapedArticle{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return ScrapedArticle{}, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ScrapedArticle{}, fmt.Errorf("failed to fetch URL: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes))
	if err != nil {
		return ScrapedArticle{}, fmt.Errorf("failed to read response: %w", err)
	}

	article := extractArticle(data, pageURL)
	if article.Body == "" {
		return ScrapedArticle{}, fmt.Errorf("no content could be extracted from the URL")
	}
	article.URL = pageURL.String()

	return article, nil
}

// extractArticle runs readability over the page and fills in metadata from
// meta tags. Readability failures degrade to collecting paragraph text.
func extractArticle(data []byte, pageURL *url.URL) ScrapedArticle {
	var article ScrapedArticle

	parsed, err := readability.FromReader(bytes.NewReader(data), pageURL)
	if err == nil {
		article.Title = strings.TrimSpace(parsed.Title)
		article.Body = strings.TrimSpace(parsed.TextContent)
	} else {
		slog.Debug("Readability extraction failed, falling back to paragraphs", "error", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return article
	}

	if article.Title == "" {
		article.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if article.Body == "" {
		var paragraphs []string
		doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
			if text := strings.TrimSpace(sel.Text()); text != "" {
				paragraphs = append(paragraphs, text)
			}
		})
		article.Body = strings.Join(paragraphs, " ")
	}

	if content, ok := doc.Find(`meta[name="author"]`).First().Attr("content"); ok {
		article.Author = strings.TrimSpace(content)
	}
	if content, ok := doc.Find(`meta[property="article:published_time"]`).First().Attr("content"); ok {
		article.PublishedAt = strings.TrimSpace(content)
	}

	return article
}
