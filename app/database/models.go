package database

import (
	"time"
)

// AnalysisRecord represents a stored analysis result
type AnalysisRecord struct {
	ID             int64
	CreatedAt      time.Time
	Title          string
	Verdict        string
	Confidence     int
	WordCount      int
	SourceURL      string
	WarningSignals []string
	Topics         []string
	EvidenceCount  int
}

// FeedbackRecord represents a stored user feedback entry
type FeedbackRecord struct {
	ID        int64
	CreatedAt time.Time
	Feedback  string
	Rating    *int
}
