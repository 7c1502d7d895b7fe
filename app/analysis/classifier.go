package analysis

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode"

	"github.com/veracify/veracify/app/lexicon"
	"github.com/veracify/veracify/app/model"
)

// ModelHandle is the frozen-model boundary: an opaque artifact supporting
// class prediction over raw text. Implemented by *model.Handle.
type ModelHandle interface {
	Predict(text string) (int, error)
	PredictProba(text string) ([2]float64, error)
}

// Classifier scores title+digest text as fake/real/uncertain. It prefers
// the injected frozen model and falls back to a deterministic keyword
// heuristic on any model failure. Pure given the same text and the same
// model availability.
type Classifier struct {
	lex   *lexicon.Lexicon
	model ModelHandle
}

// NewClassifier builds a classifier. handle may be nil, in which case only
// the heuristic path is used.
func NewClassifier(lex *lexicon.Lexicon, handle ModelHandle) *Classifier {
	return &Classifier{
		lex:   lex,
		model: handle,
	}
}

// Run classifies the text and reports which path produced the result.
func (c *Classifier) Run(title, body string) (ClassificationResult, ClassifierSource) {
	if c.model != nil {
		result, err := c.runModel(title, body)
		if err == nil {
			return result, SourceModel
		}
		slog.Debug("Model inference failed, using heuristic", "error", err)
	}

	return c.heuristic(title, body), SourceHeuristic
}

func (c *Classifier) runModel(title, body string) (ClassificationResult, error) {
	combined := title + " " + body

	class, err := c.model.Predict(combined)
	if err != nil {
		return ClassificationResult{}, err
	}
	proba, err := c.model.PredictProba(combined)
	if err != nil {
		return ClassificationResult{}, err
	}

	label := LabelFake
	if class == model.ClassReal {
		label = LabelReal
	}

	return ClassificationResult{
		Confidence: max(proba[0], proba[1]),
		Label:      label,
	}, nil
}

var (
	exclamationRuns = regexp.MustCompile(`!{3,}`)
	questionRuns    = regexp.MustCompile(`\?{3,}`)
)

// heuristic is the deterministic fallback: counts fake-leaning and
// credible-leaning markers and applies fixed thresholds.
func (c *Classifier) heuristic(title, body string) ClassificationResult {
	text := strings.ToLower(title + " " + body)

	fakeScore := 0
	for _, marker := range c.lex.FakeMarkers {
		if strings.Contains(text, marker) {
			fakeScore++
		}
	}

	credibleScore := 0
	for _, marker := range c.lex.CredibleMarkers {
		if strings.Contains(text, marker) {
			credibleScore++
		}
	}

	// Excessive punctuation runs (!!!, ???) lean fake.
	fakeScore += len(exclamationRuns.FindAllString(text, -1))
	fakeScore += len(questionRuns.FindAllString(text, -1))

	// More than two fully-capitalized title words lean fake.
	capsWords := 0
	for _, word := range strings.Fields(title) {
		if len(word) > 2 && isAllCaps(word) {
			capsWords++
		}
	}
	if capsWords > 2 {
		fakeScore++
	}

	for _, domain := range c.lex.TrustedDomains {
		if strings.Contains(text, domain) {
			credibleScore += 2
			break
		}
	}

	switch {
	case fakeScore+credibleScore == 0:
		// Neutral content leans slightly credible.
		return ClassificationResult{Confidence: 0.65, Label: LabelReal}
	case fakeScore > credibleScore+1:
		return ClassificationResult{
			Confidence: min(0.60+float64(fakeScore)*0.05, 0.88),
			Label:      LabelFake,
		}
	case credibleScore > fakeScore+1:
		return ClassificationResult{
			Confidence: min(0.65+float64(credibleScore)*0.05, 0.90),
			Label:      LabelReal,
		}
	default:
		diff := credibleScore - fakeScore
		if diff < 0 {
			diff = -diff
		}
		return ClassificationResult{
			Confidence: 0.55 + float64(diff)*0.02,
			Label:      LabelUncertain,
		}
	}
}

// isAllCaps reports whether a word is fully capitalized, requiring at least
// one letter so numbers and punctuation don't count.
func isAllCaps(word string) bool {
	hasLetter := false
	for _, r := range word {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}
