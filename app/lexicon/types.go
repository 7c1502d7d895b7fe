package lexicon

// Topic is a named category with the keywords that identify it. Topics are
// matched in declaration order, which is preserved in analysis output.
type Topic struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Lexicon holds the fixed word and phrase lists consulted by the classifier
// heuristic and the signal analyzer. All matching is done on lowercased text.
type Lexicon struct {
	FakeMarkers       []string `yaml:"fake_markers"`
	CredibleMarkers   []string `yaml:"credible_markers"`
	TrustedDomains    []string `yaml:"trusted_domains"`
	SensationalWords  []string `yaml:"sensational_words"`
	SourcePhrases     []string `yaml:"source_phrases"`
	ProfessionalWords []string `yaml:"professional_words"`
	Topics            []Topic  `yaml:"topics"`
}
