// Package model loads the frozen fake-news classifier artifact and exposes
// read-only inference over it. The artifact is a JSON-encoded multinomial
// naive bayes: class log-priors plus per-token log-likelihoods for the two
// classes (0 = fake, 1 = real). It is loaded once at startup and safe for
// concurrent use.
package model

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
)

const (
	ClassFake = 0
	ClassReal = 1
)

// Artifact is the serialized form of the frozen model.
type Artifact struct {
	ClassLogPrior  [2]float64            `json:"class_log_prior"`
	TokenLogProb   map[string][2]float64 `json:"token_log_prob"`
	DefaultLogProb [2]float64            `json:"default_log_prob"`
}

// Handle is a loaded, read-only model.
type Handle struct {
	artifact Artifact
}

// Load reads and validates a model artifact. A missing or malformed file is
// an error the caller is expected to tolerate by running without a model.
func Load(path string) (*Handle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}

	var artifact Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("failed to parse model artifact: %w", err)
	}

	if len(artifact.TokenLogProb) == 0 {
		return nil, fmt.Errorf("model artifact has an empty vocabulary")
	}
	for class := range 2 {
		if math.IsNaN(artifact.ClassLogPrior[class]) || math.IsInf(artifact.ClassLogPrior[class], 0) {
			return nil, fmt.Errorf("model artifact has invalid class log prior for class %d", class)
		}
	}

	return &Handle{artifact: artifact}, nil
}

// Predict returns the predicted class for the text.
func (h *Handle) Predict(text string) (int, error) {
	scores, err := h.scores(text)
	if err != nil {
		return 0, err
	}
	if scores[ClassReal] >= scores[ClassFake] {
		return ClassReal, nil
	}
	return ClassFake, nil
}

// PredictProba returns normalized class probabilities [p_fake, p_real].
func (h *Handle) PredictProba(text string) ([2]float64, error) {
	scores, err := h.scores(text)
	if err != nil {
		return [2]float64{}, err
	}

	// Log-sum-exp normalization
	maxScore := math.Max(scores[0], scores[1])
	exp0 := math.Exp(scores[0] - maxScore)
	exp1 := math.Exp(scores[1] - maxScore)
	total := exp0 + exp1

	return [2]float64{exp0 / total, exp1 / total}, nil
}

func (h *Handle) scores(text string) ([2]float64, error) {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return [2]float64{}, fmt.Errorf("no usable tokens in input text")
	}

	scores := h.artifact.ClassLogPrior
	for _, token := range tokens {
		logProb, ok := h.artifact.TokenLogProb[token]
		if !ok {
			logProb = h.artifact.DefaultLogProb
		}
		scores[0] += logProb[0]
		scores[1] += logProb[1]
	}

	return scores, nil
}

func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})

	tokens := fields[:0]
	for _, field := range fields {
		if len(field) > 1 {
			tokens = append(tokens, field)
		}
	}
	return tokens
}
