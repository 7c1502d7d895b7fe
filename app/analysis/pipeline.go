// Package analysis implements the credibility analysis pipeline: extractive
// digest building, fake/real classification, verdict synthesis with
// evidence blending, and human-facing signal and explanation generation.
package analysis

import (
	"context"
	"log/slog"

	"github.com/veracify/veracify/app/evidence"
)

// Input is a cleaned document handed to the pipeline. Body is expected to
// be validated (non-empty, whitespace-collapsed) by the normalizer.
type Input struct {
	Title     string
	Body      string
	SourceURL string
}

// Result bundles the digest with the final report for one request.
type Result struct {
	Digest Digest
	Report Report
}

// Pipeline wires the analysis stages together. All stages are pure; the
// only suspending operation is the evidence search, which runs concurrently
// with classification.
type Pipeline struct {
	digester   *DigestBuilder
	classifier *Classifier
	signals    *SignalAnalyzer
	provider   evidence.Provider
	maxSources int
}

func NewPipeline(digester *DigestBuilder, classifier *Classifier,
	signals *SignalAnalyzer, provider evidence.Provider, maxSources int) *Pipeline {
	return &Pipeline{
		digester:   digester,
		classifier: classifier,
		signals:    signals,
		provider:   provider,
		maxSources: maxSources,
	}
}

// Run executes the full pipeline. Evidence gathering failures are absorbed
// into an empty evidence list with neutral agreement; they never abort the
// analysis.
func (p *Pipeline) Run(ctx context.Context, input Input) Result {
	digest, mode := p.digester.Run(input.Title, input.Body)
	if mode != DigestRanked {
		slog.Debug("Digest built on secondary path", "mode", mode.String(), "word_count", digest.WordCount)
	}

	// No data dependency between evidence search and classification.
	evidenceCh := make(chan []evidence.Source, 1)
	go func() {
		sources, err := p.provider.Search(ctx, digest.Title, digest.Body, p.maxSources)
		if err != nil {
			slog.Warn("Evidence search failed, proceeding without evidence", "error", err)
			sources = nil
		}
		evidenceCh <- sources
	}()

	classification, source := p.classifier.Run(digest.Title, digest.Body)
	slog.Debug("Classification complete",
		"source", source.String(),
		"label", string(classification.Label),
		"confidence", classification.Confidence)

	sources := <-evidenceCh

	verdict := SynthesizeVerdict(classification.Confidence, classification.Label)
	agreement := EvidenceAgreement(sources, verdict.Label)
	verdict.Confidence = AdjustConfidence(verdict.Confidence, len(sources), agreement)

	features := p.signals.ContentFeatures(digest.Title, digest.Body)

	return Result{
		Digest: digest,
		Report: Report{
			Verdict:        verdict,
			Explanation:    ComposeExplanation(verdict, len(sources), features),
			WarningSignals: p.signals.WarningSignals(verdict, features, len(sources)),
			Topics:         p.signals.Topics(digest.Title, digest.Body),
			Evidence:       sources,
		},
	}
}
