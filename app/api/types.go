package api

import (
	"context"

	"github.com/veracify/veracify/app/analysis"
	"github.com/veracify/veracify/app/database"
	"github.com/veracify/veracify/app/evidence"
	"github.com/veracify/veracify/app/ingest"
)

type PipelineInterface interface {
	Run(ctx context.Context, input analysis.Input) analysis.Result
}

var _ PipelineInterface = (*analysis.Pipeline)(nil)

type ScraperInterface interface {
	Run(ctx context.Context, rawURL string) (ingest.ScrapedArticle, error)
}

var _ ScraperInterface = (*ingest.Scraper)(nil)

type Handler struct {
	pipeline     PipelineInterface
	normalizer   *ingest.Normalizer
	scraper      ScraperInterface
	ocr          ingest.Extractor
	provider     evidence.Provider
	historyRepo  database.HistoryRepository
	feedbackRepo database.FeedbackRepository
	maxSources   int
	modelLoaded  bool
}

// URLRequest is the body of POST /api/v1/process-url.
type URLRequest struct {
	URL string `json:"url" binding:"required"`
}

// TextRequest is the body of POST /api/v1/process-text.
type TextRequest struct {
	Text string `json:"text" binding:"required"`
}

// FeedbackRequest is the body of POST /api/v1/feedback.
type FeedbackRequest struct {
	Feedback string `json:"feedback" binding:"required"`
	Rating   *int   `json:"rating"`
}

// ProcessedInput echoes back the cleaned input the analysis ran on.
type ProcessedInput struct {
	Title     string  `json:"title"`
	Body      string  `json:"body"`
	ImageText *string `json:"image_text,omitempty"`
	SourceURL *string `json:"source_url,omitempty"`
	WordCount int     `json:"word_count"`
}

type EvidenceBlock struct {
	Sources []evidence.Source `json:"sources"`
}

// EvidenceAnalysis is the verdict section of an analysis response.
type EvidenceAnalysis struct {
	Verdict         string        `json:"verdict"`
	ConfidenceValue int           `json:"confidence_value"`
	Explanation     string        `json:"explanation"`
	Evidence        EvidenceBlock `json:"evidence"`
	WarningSignals  []string      `json:"warning_signals"`
	ExtractedTopics []string      `json:"extracted_topics"`
}

// AnalysisResponse is the response of all three process endpoints.
type AnalysisResponse struct {
	ProcessedInput   ProcessedInput   `json:"processed_input"`
	EvidenceAnalysis EvidenceAnalysis `json:"evidence_analysis"`
}
