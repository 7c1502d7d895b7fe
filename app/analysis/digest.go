package analysis

import (
	"math"
	"sort"
	"strings"
)

// minSummarizableChars is the body length below which no summarization is
// attempted and the input is returned unmodified.
const minSummarizableChars = 50

// DigestBuilder compresses an article body into a bounded digest by ranking
// sentences with TF-IDF over the sentence set and keeping the highest
// scoring ones in their original order.
type DigestBuilder struct {
	maxSentences int
	maxWords     int
}

func NewDigestBuilder(maxSentences, maxWords int) *DigestBuilder {
	return &DigestBuilder{
		maxSentences: maxSentences,
		maxWords:     maxWords,
	}
}

// Run builds the digest for a title and body. It never fails: degraded
// paths are reported through the returned mode.
func (b *DigestBuilder) Run(title, body string) (Digest, DigestMode) {
	cleanedTitle := strings.TrimSpace(title)
	if cleanedTitle == "" {
		cleanedTitle = "Untitled"
	}

	trimmed := strings.TrimSpace(body)
	if len(trimmed) < minSummarizableChars {
		return Digest{
			Title:     cleanedTitle,
			Body:      trimmed,
			WordCount: len(strings.Fields(trimmed)),
		}, DigestShort
	}

	sentences := splitSentences(body)

	if len(sentences) <= b.maxSentences {
		truncated := truncateToWordLimit(body, b.maxWords)
		return Digest{
			Title:     cleanedTitle,
			Body:      truncated,
			WordCount: len(strings.Fields(truncated)),
		}, DigestTruncated
	}

	ranked, ok := rankSentences(sentences, b.maxSentences)
	mode := DigestRanked
	if !ok {
		// Vector space collapsed (e.g. all stop-words): keep the opening
		// sentences instead.
		ranked = sentences[:b.maxSentences]
		mode = DigestFallbackFirstN
	}

	truncated := truncateToWordLimit(strings.Join(ranked, " "), b.maxWords)
	return Digest{
		Title:     cleanedTitle,
		Body:      truncated,
		WordCount: len(strings.Fields(truncated)),
	}, mode
}

// rankSentences scores each sentence as the sum of its TF-IDF feature
// weights (unigrams and adjacent-word pairs, stop-words removed) and
// returns the top keep sentences re-ordered by original position. ok is
// false when no sentence yields any feature.
func rankSentences(sentences []string, keep int) ([]string, bool) {
	features := make([][]string, len(sentences))
	df := make(map[string]int)

	any := false
	for i, sentence := range sentences {
		features[i] = sentenceFeatures(sentence)
		if len(features[i]) > 0 {
			any = true
		}
		seen := make(map[string]bool, len(features[i]))
		for _, f := range features[i] {
			if !seen[f] {
				seen[f] = true
				df[f]++
			}
		}
	}
	if !any {
		return nil, false
	}

	n := float64(len(sentences))
	idf := make(map[string]float64, len(df))
	for f, count := range df {
		idf[f] = logSmooth(n, float64(count))
	}

	scores := make([]float64, len(sentences))
	for i, fs := range features {
		for _, f := range fs {
			scores[i] += idf[f]
		}
	}

	// Stable sort keeps the earlier sentence ahead on score ties.
	indices := make([]int, len(sentences))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(i, j int) bool {
		return scores[indices[i]] > scores[indices[j]]
	})

	top := append([]int(nil), indices[:keep]...)
	sort.Ints(top)

	selected := make([]string, len(top))
	for i, idx := range top {
		selected[i] = sentences[idx]
	}
	return selected, true
}

// sentenceFeatures extracts the TF-IDF features of a sentence: lowercased
// content words plus adjacent-word pairs, stop-words removed. Repeated
// features are kept so term frequency is carried by multiplicity.
func sentenceFeatures(sentence string) []string {
	raw := strings.FieldsFunc(strings.ToLower(sentence), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})

	words := make([]string, 0, len(raw))
	for _, w := range raw {
		if len(w) > 1 && !stopWords[w] {
			words = append(words, w)
		}
	}

	features := make([]string, 0, len(words)*2)
	features = append(features, words...)
	for i := 0; i+1 < len(words); i++ {
		features = append(features, words[i]+" "+words[i+1])
	}
	return features
}

// logSmooth is the smoothed inverse document frequency
// ln((1+n)/(1+df)) + 1, always positive.
func logSmooth(n, df float64) float64 {
	return math.Log((1+n)/(1+df)) + 1
}

// truncateToWordLimit cuts text to at most maxWords words. When the cut
// lands mid-sentence, it backs up to a period in the last 30% of the
// truncated text, or appends an ellipsis when no such boundary exists.
func truncateToWordLimit(text string, maxWords int) string {
	words := strings.Fields(text)
	if len(words) <= maxWords {
		return text
	}

	truncated := strings.Join(words[:maxWords], " ")

	if idx := strings.LastIndex(truncated, "."); idx > int(float64(len(truncated))*0.7) {
		return truncated[:idx+1]
	}
	return truncated + "..."
}
