package analysis

import (
	"github.com/veracify/veracify/app/evidence"
)

// Label is the credibility verdict class.
type Label string

const (
	LabelFake      Label = "FAKE"
	LabelReal      Label = "REAL"
	LabelUncertain Label = "UNCERTAIN"
)

// Digest is the summarized, word-budget-limited version of an article body
// used for downstream scoring. Immutable once built.
type Digest struct {
	Title     string
	Body      string
	WordCount int
}

// DigestMode records which path the digest builder took. Non-ranked modes
// are not errors, just degraded or shortcut paths the caller may log.
type DigestMode int

const (
	// DigestRanked is the primary path: TF-IDF ranked sentence selection.
	DigestRanked DigestMode = iota
	// DigestShort means the input was too short to summarize and was
	// returned unmodified.
	DigestShort
	// DigestTruncated means the sentence count was within budget and the
	// body was only word-truncated.
	DigestTruncated
	// DigestFallbackFirstN means vectorization failed and the first N
	// sentences were taken in order.
	DigestFallbackFirstN
)

func (m DigestMode) String() string {
	switch m {
	case DigestRanked:
		return "ranked"
	case DigestShort:
		return "short_input"
	case DigestTruncated:
		return "truncated"
	case DigestFallbackFirstN:
		return "fallback_first_n"
	default:
		return "unknown"
	}
}

// ClassificationResult is the raw classifier output before verdict
// thresholds are applied.
type ClassificationResult struct {
	Confidence float64 // 0.0-1.0
	Label      Label
}

// ClassifierSource records whether the frozen model or the keyword
// heuristic produced the result.
type ClassifierSource int

const (
	SourceModel ClassifierSource = iota
	SourceHeuristic
)

func (s ClassifierSource) String() string {
	if s == SourceModel {
		return "model"
	}
	return "heuristic"
}

// Verdict is the final label plus confidence percentage returned to the
// caller.
type Verdict struct {
	Label      Label
	Confidence int // percentage, clamped to [50, 100]
}

// ContentFeatures holds the boolean content flags derived from title and
// digest text. Stateless, recomputed each request.
type ContentFeatures struct {
	SensationalLanguage bool
	LacksSources        bool
	ClickbaitTitle      bool
	HasSources          bool
	ProfessionalTone    bool
}

// Report is the terminal artifact of one analysis run.
type Report struct {
	Verdict        Verdict
	Explanation    string
	WarningSignals []string
	Topics         []string
	Evidence       []evidence.Source
}
