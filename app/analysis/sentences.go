package analysis

import (
	"strings"
	"unicode"
)

// abbreviations that a trailing period does not end a sentence after.
var abbreviations = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true,
	"sr": true, "jr": true, "st": true, "vs": true, "etc": true,
	"inc": true, "ltd": true, "co": true, "corp": true, "gen": true,
	"sen": true, "gov": true, "rep": true, "col": true, "capt": true,
	"approx": true, "dept": true, "est": true, "fig": true, "no": true,
}

// splitSentences breaks text into sentences on terminal punctuation. When
// no terminator is found it falls back to splitting on periods alone, so it
// always returns at least one sentence for non-blank input.
func splitSentences(text string) []string {
	var sentences []string
	runes := []rune(text)

	start := 0
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}

		// Consume a run of terminators plus trailing quotes/brackets.
		end := i
		for end+1 < len(runes) && isTerminatorTail(runes[end+1]) {
			end++
		}

		// Sentence ends only before whitespace or end of text.
		if end+1 < len(runes) && !unicode.IsSpace(runes[end+1]) {
			i = end
			continue
		}

		if r == '.' && isAbbreviationAt(runes, i) {
			i = end
			continue
		}

		sentence := strings.TrimSpace(string(runes[start : end+1]))
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		start = end + 1
		i = end
	}

	if tail := strings.TrimSpace(string(runes[start:])); tail != "" {
		sentences = append(sentences, tail)
	}

	if len(sentences) == 0 {
		return fallbackSplit(text)
	}
	return sentences
}

func isTerminatorTail(r rune) bool {
	switch r {
	case '.', '!', '?', '"', '\'', ')', ']':
		return true
	}
	return false
}

// isAbbreviationAt reports whether the period at index i follows a known
// abbreviation or a single-letter initial.
func isAbbreviationAt(runes []rune, i int) bool {
	end := i
	start := end
	for start > 0 && unicode.IsLetter(runes[start-1]) {
		start--
	}

	word := strings.ToLower(string(runes[start:end]))
	if word == "" {
		return false
	}
	if len(word) == 1 {
		return true // initials such as "J. Smith" or "U.S."
	}
	return abbreviations[word]
}

// fallbackSplit is the degraded tokenizer: split on periods and re-append
// the delimiter to each fragment. It never fails.
func fallbackSplit(text string) []string {
	var sentences []string
	for _, fragment := range strings.Split(text, ".") {
		fragment = strings.TrimSpace(fragment)
		if fragment != "" {
			sentences = append(sentences, fragment+".")
		}
	}
	return sentences
}

// Hand-trimmed English stop-word list used by the sentence ranker.
var stopWords = buildStopWords()

func buildStopWords() map[string]bool {
	words := []string{
		"a", "about", "above", "after", "again", "against", "all", "am",
		"an", "and", "any", "are", "aren", "as", "at", "be", "because",
		"been", "before", "being", "below", "between", "both", "but", "by",
		"can", "couldn", "did", "didn", "do", "does", "doesn", "doing",
		"don", "down", "during", "each", "few", "for", "from", "further",
		"had", "hadn", "has", "hasn", "have", "haven", "having", "he",
		"her", "here", "hers", "herself", "him", "himself", "his", "how",
		"i", "if", "in", "into", "is", "isn", "it", "its", "itself",
		"just", "me", "more", "most", "my", "myself", "no", "nor", "not",
		"now", "of", "off", "on", "once", "only", "or", "other", "our",
		"ours", "ourselves", "out", "over", "own", "same", "she", "should",
		"shouldn", "so", "some", "such", "than", "that", "the", "their",
		"theirs", "them", "themselves", "then", "there", "these", "they",
		"this", "those", "through", "to", "too", "under", "until", "up",
		"very", "was", "wasn", "we", "were", "weren", "what", "when",
		"where", "which", "while", "who", "whom", "why", "will", "with",
		"won", "would", "wouldn", "you", "your", "yours", "yourself",
		"yourselves",
	}

	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
