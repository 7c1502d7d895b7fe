package lexicon

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default returns the built-in lexicon. Callers own the returned value and
// may not rely on it being shared.
func Default() *Lexicon {
	return &Lexicon{
		FakeMarkers: []string{
			"breaking", "shocking", "unbelievable", "you won't believe",
			"must see", "urgent", "warning", "exposed", "revealed",
			"doctors hate", "they don't want you to know", "miracle",
			"secret", "banned", "censored", "conspiracy", "coverup",
			"explosive", "bombshell", "leaked", "insider",
		},
		CredibleMarkers: []string{
			"study", "research", "university", "according to",
			"expert", "professor", "data shows", "published",
			"journal", "institute", "analysis", "report",
			"official", "government", "agency", "department",
		},
		TrustedDomains: []string{
			"bbc", "reuters", "apnews", "nytimes", "theguardian",
			"washingtonpost", "economist", "npr", "pbs",
		},
		SensationalWords: []string{
			"shocking", "unbelievable", "exposed", "revealed", "breaking", "urgent",
		},
		SourcePhrases: []string{
			"according to", "study", "research", "published", "reported",
		},
		ProfessionalWords: []string{
			"however", "therefore", "analysis", "data",
		},
		Topics: []Topic{
			{Name: "Politics", Keywords: []string{"election", "government", "president", "minister", "parliament", "senate", "congress", "vote", "policy", "democrat", "republican", "politician"}},
			{Name: "Health", Keywords: []string{"health", "medical", "doctor", "hospital", "disease", "virus", "vaccine", "treatment", "patient", "covid", "pandemic", "medicine"}},
			{Name: "Technology", Keywords: []string{"technology", "tech", "ai", "artificial intelligence", "software", "computer", "internet", "digital", "app", "smartphone", "cyber"}},
			{Name: "Science", Keywords: []string{"science", "research", "study", "scientist", "discovery", "experiment", "climate", "space", "nasa", "laboratory", "scientific"}},
			{Name: "Economy", Keywords: []string{"economy", "economic", "finance", "financial", "market", "stock", "business", "trade", "gdp", "inflation", "recession"}},
			{Name: "Sports", Keywords: []string{"sports", "game", "player", "team", "football", "cricket", "basketball", "match", "championship", "olympic", "tournament"}},
			{Name: "Entertainment", Keywords: []string{"celebrity", "movie", "film", "actor", "music", "singer", "hollywood", "entertainment", "award", "tv show"}},
			{Name: "Environment", Keywords: []string{"environment", "climate change", "pollution", "green", "sustainability", "renewable", "carbon", "emissions", "conservation"}},
			{Name: "Education", Keywords: []string{"education", "school", "university", "student", "teacher", "college", "academic", "learning", "exam"}},
			{Name: "Crime", Keywords: []string{"crime", "criminal", "police", "arrest", "investigation", "murder", "theft", "fraud", "court", "lawsuit"}},
		},
	}
}

// Load reads a YAML lexicon file. Lists omitted from the file keep their
// built-in defaults, so an override file only needs the lists it changes.
func Load(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon file: %w", err)
	}

	var override Lexicon
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon YAML: %w", err)
	}

	lex := Default()
	applyOverride(lex, &override)

	if err := validate(lex); err != nil {
		return nil, fmt.Errorf("invalid lexicon %s: %w", path, err)
	}

	return lex, nil
}

func applyOverride(lex *Lexicon, override *Lexicon) {
	if len(override.FakeMarkers) > 0 {
		lex.FakeMarkers = override.FakeMarkers
	}
	if len(override.CredibleMarkers) > 0 {
		lex.CredibleMarkers = override.CredibleMarkers
	}
	if len(override.TrustedDomains) > 0 {
		lex.TrustedDomains = override.TrustedDomains
	}
	if len(override.SensationalWords) > 0 {
		lex.SensationalWords = override.SensationalWords
	}
	if len(override.SourcePhrases) > 0 {
		lex.SourcePhrases = override.SourcePhrases
	}
	if len(override.ProfessionalWords) > 0 {
		lex.ProfessionalWords = override.ProfessionalWords
	}
	if len(override.Topics) > 0 {
		lex.Topics = override.Topics
	}
}

func validate(lex *Lexicon) error {
	if len(lex.FakeMarkers) == 0 {
		return fmt.Errorf("fake markers list is empty")
	}
	if len(lex.CredibleMarkers) == 0 {
		return fmt.Errorf("credible markers list is empty")
	}
	for _, topic := range lex.Topics {
		if topic.Name == "" {
			return fmt.Errorf("topic with empty name")
		}
		if len(topic.Keywords) == 0 {
			return fmt.Errorf("topic %q has no keywords", topic.Name)
		}
	}
	return nil
}
