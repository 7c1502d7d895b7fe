package api

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/veracify/veracify/app/analysis"
	"github.com/veracify/veracify/app/cfg"
	"github.com/veracify/veracify/app/database"
	"github.com/veracify/veracify/app/evidence"
	"github.com/veracify/veracify/app/ingest"
)

// minTextLength is the minimum raw length accepted by the direct text
// endpoint, matching the stricter contract of pasted input.
const minTextLength = 100

// maxImageBytes caps uploaded image size.
const maxImageBytes = 10 << 20

// imageTextPreviewLimit caps the echoed OCR text in responses.
const imageTextPreviewLimit = 500

func NewHandler(pipeline PipelineInterface, normalizer *ingest.Normalizer,
	scraper ScraperInterface, ocr ingest.Extractor, provider evidence.Provider,
	historyRepo database.HistoryRepository, feedbackRepo database.FeedbackRepository,
	maxSources int, modelLoaded bool) *Handler {
	return &Handler{
		pipeline:     pipeline,
		normalizer:   normalizer,
		scraper:      scraper,
		ocr:          ocr,
		provider:     provider,
		historyRepo:  historyRepo,
		feedbackRepo: feedbackRepo,
		maxSources:   maxSources,
		modelLoaded:  modelLoaded,
	}
}

func (h *Handler) ProcessURL(c *gin.Context) {
	var req URLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid 'url' field"})
		return
	}

	article, err := h.scraper.Run(c.Request.Context(), req.URL)
	if err != nil {
		slog.Error("Scrape failed", "url", req.URL, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to extract article: " + err.Error()})
		return
	}

	doc, err := h.normalizer.Document(article.Title, article.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if doc.Title == "" {
		doc.Title = "Untitled Article"
	}

	result := h.pipeline.Run(c.Request.Context(), analysis.Input{
		Title:     doc.Title,
		Body:      doc.Body,
		SourceURL: req.URL,
	})

	response := buildResponse(result)
	response.ProcessedInput.SourceURL = &req.URL

	h.recordHistory(result, req.URL)
	c.JSON(http.StatusOK, response)
}

func (h *Handler) ProcessText(c *gin.Context) {
	var req TextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid 'text' field"})
		return
	}
	if len(strings.TrimSpace(req.Text)) < minTextLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text must be at least 100 characters long"})
		return
	}

	cleaned, err := h.normalizer.ValidateText(req.Text)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	title, body := ingest.DeriveTitle(cleaned, "User Submitted Text")
	result := h.pipeline.Run(c.Request.Context(), analysis.Input{Title: title, Body: body})

	h.recordHistory(result, "")
	c.JSON(http.StatusOK, buildResponse(result))
}

func (h *Handler) ProcessImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'file' upload"})
		return
	}
	if !strings.HasPrefix(fileHeader.Header.Get("Content-Type"), "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File must be an image"})
		return
	}
	if fileHeader.Size > maxImageBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image is too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
		return
	}

	extracted, err := h.ocr.ExtractText(c.Request.Context(), image)
	if err != nil {
		slog.Error("OCR failed", "file", fileHeader.Filename, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to extract text from image: " + err.Error()})
		return
	}

	cleaned, err := h.normalizer.ValidateText(extracted)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	title, body := ingest.DeriveTitle(cleaned, "Text from Image")
	result := h.pipeline.Run(c.Request.Context(), analysis.Input{Title: title, Body: body})

	response := buildResponse(result)
	preview := truncateRunes(strings.TrimSpace(extracted), imageTextPreviewLimit)
	response.ProcessedInput.ImageText = &preview

	h.recordHistory(result, "")
	c.JSON(http.StatusOK, response)
}

func (h *Handler) GetSources(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'query' parameter"})
		return
	}

	sources, err := h.provider.Search(c.Request.Context(), query, "", h.maxSources)
	if err != nil {
		slog.Error("Evidence search failed", "query", query, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Evidence search failed"})
		return
	}
	if sources == nil {
		sources = []evidence.Source{}
	}

	c.JSON(http.StatusOK, gin.H{"query": query, "sources": sources, "total": len(sources)})
}

func (h *Handler) PostFeedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid 'feedback' field"})
		return
	}
	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 5) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
		return
	}

	record := database.FeedbackRecord{Feedback: req.Feedback, Rating: req.Rating}
	if err := h.feedbackRepo.Insert(record); err != nil {
		slog.Error("Database error", "operation", "insert_feedback", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store feedback"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "recorded"})
}

func (h *Handler) GetFeedback(c *gin.Context) {
	records, err := h.feedbackRepo.Recent(20)
	if err != nil {
		slog.Error("Database error", "operation", "get_feedback", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load feedback"})
		return
	}

	entries := make([]gin.H, 0, len(records))
	for _, record := range records {
		entry := gin.H{
			"feedback":   record.Feedback,
			"created_at": record.CreatedAt.Format(time.RFC3339),
		}
		if record.Rating != nil {
			entry["rating"] = *record.Rating
		}
		entries = append(entries, entry)
	}

	c.JSON(http.StatusOK, gin.H{"feedback": entries, "total": len(entries)})
}

func (h *Handler) GetHistory(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'limit' parameter"})
			return
		}
		limit = min(parsed, 100)
	}

	records, err := h.historyRepo.Recent(limit)
	if err != nil {
		slog.Error("Database error", "operation", "get_history", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load history"})
		return
	}

	entries := make([]gin.H, 0, len(records))
	for _, record := range records {
		entries = append(entries, gin.H{
			"created_at":       record.CreatedAt.Format(time.RFC3339),
			"title":            record.Title,
			"verdict":          record.Verdict,
			"confidence_value": record.Confidence,
			"word_count":       record.WordCount,
			"source_url":       record.SourceURL,
			"warning_signals":  record.WarningSignals,
			"topics":           record.Topics,
			"evidence_count":   record.EvidenceCount,
		})
	}

	c.JSON(http.StatusOK, gin.H{"history": entries, "total": len(entries)})
}

func (h *Handler) HealthCheck(c *gin.Context) {
	health := map[string]interface{}{
		"status":       "ok",
		"timestamp":    time.Now().In(time.Local).Format(time.RFC3339),
		"version":      cfg.GetVersion(),
		"model_loaded": h.modelLoaded,
	}

	if count, err := h.historyRepo.Count(); err == nil {
		health["analyses_recorded"] = count
	}

	c.JSON(http.StatusOK, health)
}

// buildResponse flattens a pipeline result into the wire shape.
func buildResponse(result analysis.Result) AnalysisResponse {
	sources := result.Report.Evidence
	if sources == nil {
		sources = []evidence.Source{}
	}

	return AnalysisResponse{
		ProcessedInput: ProcessedInput{
			Title:     result.Digest.Title,
			Body:      result.Digest.Body,
			WordCount: result.Digest.WordCount,
		},
		EvidenceAnalysis: EvidenceAnalysis{
			Verdict:         string(result.Report.Verdict.Label),
			ConfidenceValue: result.Report.Verdict.Confidence,
			Explanation:     result.Report.Explanation,
			Evidence:        EvidenceBlock{Sources: sources},
			WarningSignals:  result.Report.WarningSignals,
			ExtractedTopics: result.Report.Topics,
		},
	}
}

// recordHistory persists an analysis summary. Storage failures are logged
// and never surfaced to the client.
func (h *Handler) recordHistory(result analysis.Result, sourceURL string) {
	record := database.AnalysisRecord{
		Title:          result.Digest.Title,
		Verdict:        string(result.Report.Verdict.Label),
		Confidence:     result.Report.Verdict.Confidence,
		WordCount:      result.Digest.WordCount,
		SourceURL:      sourceURL,
		WarningSignals: result.Report.WarningSignals,
		Topics:         result.Report.Topics,
		EvidenceCount:  len(result.Report.Evidence),
	}
	if err := h.historyRepo.Insert(record); err != nil {
		slog.Error("Database error", "operation", "insert_history", "error", err)
	}
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
