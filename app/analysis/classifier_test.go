package analysis

import (
	"fmt"
	"testing"

	"github.com/veracify/veracify/app/lexicon"
)

type stubModel struct {
	class int
	proba [2]float64
	err   error
}

func (m *stubModel) Predict(string) (int, error) {
	return m.class, m.err
}

func (m *stubModel) PredictProba(string) ([2]float64, error) {
	return m.proba, m.err
}

func TestClassifier_Run_NeutralDefault(t *testing.T) {
	classifier := NewClassifier(lexicon.Default(), nil)

	result, source := classifier.Run("Local bridge construction",
		"The town council met on Tuesday to discuss the new bridge across the river.")

	if source != SourceHeuristic {
		t.Errorf("Expected heuristic source, got %s", source)
	}
	if result.Label != LabelReal {
		t.Errorf("Neutral content should lean REAL, got %s", result.Label)
	}
	if result.Confidence != 0.65 {
		t.Errorf("Expected confidence 0.65, got %f", result.Confidence)
	}
}

func TestClassifier_Run_SensationalContent(t *testing.T) {
	classifier := NewClassifier(lexicon.Default(), nil)

	result, _ := classifier.Run("BREAKING: SHOCKING SECRET EXPOSED!!!",
		"You won't believe this miracle cure they don't want you to know about.")

	if result.Label != LabelFake {
		t.Errorf("Expected FAKE, got %s", result.Label)
	}
	if result.Confidence < 0.60 || result.Confidence > 0.88 {
		t.Errorf("Confidence %f outside heuristic fake range [0.60, 0.88]", result.Confidence)
	}
}

func TestClassifier_Run_CredibleContent(t *testing.T) {
	classifier := NewClassifier(lexicon.Default(), nil)

	result, _ := classifier.Run("University research findings",
		"According to a study published in the journal, researchers at the university found new evidence. Reuters also covered the findings, an expert said.")

	if result.Label != LabelReal {
		t.Errorf("Expected REAL, got %s", result.Label)
	}
	if result.Confidence < 0.65 || result.Confidence > 0.90 {
		t.Errorf("Confidence %f outside heuristic real range [0.65, 0.90]", result.Confidence)
	}
}

func TestClassifier_Run_MixedSignals(t *testing.T) {
	classifier := NewClassifier(lexicon.Default(), nil)

	// Two fake markers, one credible marker: within one of each other.
	result, _ := classifier.Run("Breaking warning issued",
		"A study examined the matter further without firm conclusions.")

	if result.Label != LabelUncertain {
		t.Errorf("Expected UNCERTAIN for mixed signals, got %s", result.Label)
	}
	want := 0.55 + 0.02
	if result.Confidence < want-0.001 || result.Confidence > want+0.001 {
		t.Errorf("Expected confidence %.2f, got %f", want, result.Confidence)
	}
}

func TestClassifier_Run_ModelPreferred(t *testing.T) {
	handle := &stubModel{class: 1, proba: [2]float64{0.2, 0.8}}
	classifier := NewClassifier(lexicon.Default(), handle)

	result, source := classifier.Run("Some title", "Some body text.")

	if source != SourceModel {
		t.Errorf("Expected model source, got %s", source)
	}
	if result.Label != LabelReal {
		t.Errorf("Expected REAL from model class 1, got %s", result.Label)
	}
	if result.Confidence != 0.8 {
		t.Errorf("Expected confidence 0.8 from model, got %f", result.Confidence)
	}
}

func TestClassifier_Run_ModelFailureFallsBack(t *testing.T) {
	handle := &stubModel{err: fmt.Errorf("inference failed")}
	classifier := NewClassifier(lexicon.Default(), handle)

	result, source := classifier.Run("Local bridge construction",
		"The town council met on Tuesday to discuss the new bridge across the river.")

	if source != SourceHeuristic {
		t.Errorf("Model failure should fall back to heuristic, got %s", source)
	}
	if result.Label != LabelReal || result.Confidence != 0.65 {
		t.Errorf("Expected neutral heuristic result, got %s/%f", result.Label, result.Confidence)
	}
}

func TestClassifier_Run_TrustedDomainBoost(t *testing.T) {
	classifier := NewClassifier(lexicon.Default(), nil)

	// Trusted domain alone contributes +2 to the credible score.
	result, _ := classifier.Run("Coverage roundup",
		"The story was covered at reuters.com among other outlets yesterday.")

	if result.Label != LabelReal {
		t.Errorf("Expected REAL with trusted domain boost, got %s", result.Label)
	}
	if result.Confidence < 0.749 || result.Confidence > 0.751 {
		t.Errorf("Expected confidence 0.75 for credible score 2, got %f", result.Confidence)
	}
}

func TestIsAllCaps(t *testing.T) {
	cases := []struct {
		word string
		want bool
	}{
		{"BREAKING", true},
		{"EXPOSED!!!", true},
		{"Breaking", false},
		{"breaking", false},
		{"123", false},
		{"A1B", true},
	}

	for _, tc := range cases {
		if got := isAllCaps(tc.word); got != tc.want {
			t.Errorf("isAllCaps(%q) = %v, want %v", tc.word, got, tc.want)
		}
	}
}
