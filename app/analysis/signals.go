package analysis

import (
	"fmt"
	"strings"

	"github.com/veracify/veracify/app/lexicon"
)

// maxTopics caps the number of topics returned per analysis.
const maxTopics = 5

// SignalAnalyzer derives content-feature flags, warning signals, and topic
// tags from title and digest text.
type SignalAnalyzer struct {
	lex *lexicon.Lexicon
}

func NewSignalAnalyzer(lex *lexicon.Lexicon) *SignalAnalyzer {
	return &SignalAnalyzer{lex: lex}
}

// ContentFeatures computes the boolean content flags from keyword-count
// thresholds over the lowercased text.
func (a *SignalAnalyzer) ContentFeatures(title, body string) ContentFeatures {
	text := strings.ToLower(title + " " + body)

	sensationalCount := 0
	for _, word := range a.lex.SensationalWords {
		if strings.Contains(text, word) {
			sensationalCount++
		}
	}

	hasSources := false
	for _, phrase := range a.lex.SourcePhrases {
		if strings.Contains(text, phrase) {
			hasSources = true
			break
		}
	}

	professionalCount := 0
	for _, word := range a.lex.ProfessionalWords {
		if strings.Contains(text, word) {
			professionalCount++
		}
	}

	return ContentFeatures{
		SensationalLanguage: sensationalCount >= 2,
		LacksSources:        !hasSources,
		ClickbaitTitle:      sensationalCount >= 1 && len(title) > 80,
		HasSources:          hasSources,
		ProfessionalTone:    professionalCount >= 2,
	}
}

// WarningSignals builds the label-specific signal list. Every branch
// guarantees at least one signal.
func (a *SignalAnalyzer) WarningSignals(verdict Verdict, features ContentFeatures, evidenceCount int) []string {
	var signals []string

	switch verdict.Label {
	case LabelFake:
		if features.SensationalLanguage {
			signals = append(signals, "Highly emotional language detected")
		}
		if features.LacksSources {
			signals = append(signals, "Multiple unverified claims")
		}
		if features.ClickbaitTitle {
			signals = append(signals, "Clickbait headline patterns")
		}
		if evidenceCount > 0 {
			signals = append(signals, fmt.Sprintf("%d sources contradict this content", evidenceCount))
		}
		if verdict.Confidence >= 80 {
			signals = append(signals, "Strong indicators of misinformation")
		}
		if len(signals) == 0 {
			signals = append(signals, "Questionable source credibility")
		}

	case LabelReal:
		if features.HasSources {
			signals = append(signals, "Credible source citations present")
		}
		if features.ProfessionalTone {
			signals = append(signals, "Professional journalistic standards")
		}
		if evidenceCount > 0 {
			signals = append(signals, fmt.Sprintf("%d sources corroborate information", evidenceCount))
		}
		if verdict.Confidence >= 80 {
			signals = append(signals, "Strong authenticity indicators")
		}
		if len(signals) == 0 {
			signals = append(signals, "Content follows factual reporting patterns")
		}

	default:
		signals = append(signals, "Limited evidence for verification")
		signals = append(signals, "Content may be opinion or satire")
		if features.SensationalLanguage {
			signals = append(signals, "Mixed signals in language analysis")
		} else {
			signals = append(signals, "Ambiguous credibility indicators")
		}
	}

	return signals
}

// Topics returns up to maxTopics matched categories in lexicon declaration
// order, requiring at least two keyword matches each. Falls back to
// "General News" when nothing matches.
func (a *SignalAnalyzer) Topics(title, body string) []string {
	text := strings.ToLower(title + " " + body)

	var topics []string
	for _, topic := range a.lex.Topics {
		matches := 0
		for _, keyword := range topic.Keywords {
			if strings.Contains(text, keyword) {
				matches++
			}
		}
		if matches >= 2 {
			topics = append(topics, topic.Name)
		}
	}

	if len(topics) == 0 {
		return []string{"General News"}
	}
	if len(topics) > maxTopics {
		topics = topics[:maxTopics]
	}
	return topics
}
