package analysis

import (
	"reflect"
	"strings"
	"testing"

	"github.com/veracify/veracify/app/lexicon"
)

func TestSignalAnalyzer_ContentFeatures_Sensational(t *testing.T) {
	analyzer := NewSignalAnalyzer(lexicon.Default())

	features := analyzer.ContentFeatures("Shocking discovery",
		"The truth was exposed today in dramatic fashion.")

	if !features.SensationalLanguage {
		t.Error("Two sensational words should set the sensational flag")
	}
	if !features.LacksSources {
		t.Error("Text without citation phrases should lack sources")
	}
	if features.HasSources {
		t.Error("HasSources should be the negation of LacksSources")
	}
}

func TestSignalAnalyzer_ContentFeatures_Professional(t *testing.T) {
	analyzer := NewSignalAnalyzer(lexicon.Default())

	features := analyzer.ContentFeatures("Quarterly figures",
		"However, the data suggests otherwise according to the quarterly filings.")

	if !features.ProfessionalTone {
		t.Error("Two professional words should set the professional flag")
	}
	if !features.HasSources {
		t.Error("'according to' should count as a source citation")
	}
	if features.LacksSources {
		t.Error("LacksSources should be false when citations are present")
	}
	if features.SensationalLanguage {
		t.Error("No sensational words present")
	}
}

func TestSignalAnalyzer_ContentFeatures_ClickbaitTitle(t *testing.T) {
	analyzer := NewSignalAnalyzer(lexicon.Default())

	longTitle := "Shocking revelations about the thing everyone is talking about right now, full story inside"
	features := analyzer.ContentFeatures(longTitle, "Plain body text.")

	if !features.ClickbaitTitle {
		t.Errorf("Sensational word plus %d-char title should be clickbait", len(longTitle))
	}

	features = analyzer.ContentFeatures("Shocking news", "Plain body text.")
	if features.ClickbaitTitle {
		t.Error("Short title should not be clickbait")
	}
}

func TestSignalAnalyzer_Topics_MatchAndOrder(t *testing.T) {
	analyzer := NewSignalAnalyzer(lexicon.Default())

	topics := analyzer.Topics("Election coverage",
		"The government responded to the vaccine rollout as hospital capacity grew.")

	want := []string{"Politics", "Health"}
	if !reflect.DeepEqual(topics, want) {
		t.Errorf("Expected %v, got %v", want, topics)
	}
}

func TestSignalAnalyzer_Topics_Fallback(t *testing.T) {
	analyzer := NewSignalAnalyzer(lexicon.Default())

	topics := analyzer.Topics("Plain title", "Nothing topical in here at all.")

	if len(topics) != 1 || topics[0] != "General News" {
		t.Errorf("Expected General News fallback, got %v", topics)
	}
}

func TestSignalAnalyzer_Topics_CapAtFive(t *testing.T) {
	analyzer := NewSignalAnalyzer(lexicon.Default())

	body := strings.Join([]string{
		"The election saw the government act.",          // Politics
		"A vaccine reached the hospital.",               // Health
		"New software for every computer.",              // Technology
		"The experiment was run by nasa.",               // Science
		"The market and stock outlook.",                 // Economy
		"The football team won the match.",              // Sports
		"The movie starred a famous actor.",             // Entertainment
	}, " ")

	topics := analyzer.Topics("Omnibus news roundup", body)

	if len(topics) != 5 {
		t.Fatalf("Expected topics capped at 5, got %d: %v", len(topics), topics)
	}

	want := []string{"Politics", "Health", "Technology", "Science", "Economy"}
	if !reflect.DeepEqual(topics, want) {
		t.Errorf("Expected declaration order %v, got %v", want, topics)
	}
}

func TestSignalAnalyzer_WarningSignals_FakeSpecific(t *testing.T) {
	analyzer := NewSignalAnalyzer(lexicon.Default())

	features := ContentFeatures{
		SensationalLanguage: true,
		LacksSources:        true,
		ClickbaitTitle:      true,
	}
	signals := analyzer.WarningSignals(Verdict{Label: LabelFake, Confidence: 85}, features, 3)

	if len(signals) != 5 {
		t.Fatalf("Expected 5 fake signals, got %d: %v", len(signals), signals)
	}
	if signals[3] != "3 sources contradict this content" {
		t.Errorf("Unexpected evidence signal: %q", signals[3])
	}
	if signals[4] != "Strong indicators of misinformation" {
		t.Errorf("Unexpected high-confidence signal: %q", signals[4])
	}
}

func TestSignalAnalyzer_WarningSignals_FakeFallback(t *testing.T) {
	analyzer := NewSignalAnalyzer(lexicon.Default())

	signals := analyzer.WarningSignals(Verdict{Label: LabelFake, Confidence: 65}, ContentFeatures{HasSources: true}, 0)

	if len(signals) != 1 || signals[0] != "Questionable source credibility" {
		t.Errorf("Expected the generic fake fallback signal, got %v", signals)
	}
}

func TestSignalAnalyzer_WarningSignals_RealSpecific(t *testing.T) {
	analyzer := NewSignalAnalyzer(lexicon.Default())

	features := ContentFeatures{HasSources: true, ProfessionalTone: true}
	signals := analyzer.WarningSignals(Verdict{Label: LabelReal, Confidence: 82}, features, 2)

	want := []string{
		"Credible source citations present",
		"Professional journalistic standards",
		"2 sources corroborate information",
		"Strong authenticity indicators",
	}
	if !reflect.DeepEqual(signals, want) {
		t.Errorf("Expected %v, got %v", want, signals)
	}
}

func TestSignalAnalyzer_WarningSignals_UncertainAlwaysPresent(t *testing.T) {
	analyzer := NewSignalAnalyzer(lexicon.Default())

	signals := analyzer.WarningSignals(Verdict{Label: LabelUncertain, Confidence: 55}, ContentFeatures{}, 0)

	if len(signals) != 3 {
		t.Fatalf("Expected 3 uncertain signals, got %d: %v", len(signals), signals)
	}
	if signals[2] != "Ambiguous credibility indicators" {
		t.Errorf("Expected ambiguity signal without sensational language, got %q", signals[2])
	}

	signals = analyzer.WarningSignals(Verdict{Label: LabelUncertain, Confidence: 55},
		ContentFeatures{SensationalLanguage: true}, 0)
	if signals[2] != "Mixed signals in language analysis" {
		t.Errorf("Expected mixed-signal entry with sensational language, got %q", signals[2])
	}
}
