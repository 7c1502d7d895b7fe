package lexicon

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_ListsPopulated(t *testing.T) {
	lex := Default()

	if len(lex.FakeMarkers) == 0 {
		t.Error("Default lexicon should have fake markers")
	}
	if len(lex.CredibleMarkers) == 0 {
		t.Error("Default lexicon should have credible markers")
	}
	if len(lex.TrustedDomains) == 0 {
		t.Error("Default lexicon should have trusted domains")
	}
	if len(lex.Topics) != 10 {
		t.Errorf("Expected 10 topic categories, got %d", len(lex.Topics))
	}
}

func TestDefault_TopicOrder(t *testing.T) {
	lex := Default()

	expected := []string{"Politics", "Health", "Technology", "Science", "Economy",
		"Sports", "Entertainment", "Environment", "Education", "Crime"}

	for i, topic := range lex.Topics {
		if topic.Name != expected[i] {
			t.Errorf("Topic %d: expected %q, got %q", i, expected[i], topic.Name)
		}
	}
}

func TestLoad_PartialOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.yml")

	content := `fake_markers:
  - hoax
  - fabricated
trusted_domains:
  - example.org
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write lexicon file: %v", err)
	}

	lex, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(lex.FakeMarkers) != 2 || lex.FakeMarkers[0] != "hoax" {
		t.Errorf("Fake markers not overridden: %v", lex.FakeMarkers)
	}
	if len(lex.TrustedDomains) != 1 || lex.TrustedDomains[0] != "example.org" {
		t.Errorf("Trusted domains not overridden: %v", lex.TrustedDomains)
	}

	// Lists absent from the file keep their defaults
	if len(lex.CredibleMarkers) == 0 {
		t.Error("Credible markers should fall back to defaults")
	}
	if len(lex.Topics) != 10 {
		t.Errorf("Topics should fall back to defaults, got %d", len(lex.Topics))
	}
}

func TestLoad_InvalidTopic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.yml")

	content := `topics:
  - name: Weather
    keywords: []
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write lexicon file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected error for topic with no keywords")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/lexicon.yml"); err == nil {
		t.Error("Expected error for missing lexicon file")
	}
}
