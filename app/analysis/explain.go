package analysis

import (
	"fmt"
	"strings"
)

// ComposeExplanation renders the verdict into a multi-line narrative. Pure
// templating: identical inputs always produce identical text.
func ComposeExplanation(verdict Verdict, evidenceCount int, features ContentFeatures) string {
	var lines []string

	switch verdict.Label {
	case LabelFake:
		lines = append(lines, fmt.Sprintf("This content has been classified as FAKE NEWS with %d%% confidence.", verdict.Confidence))
		lines = append(lines, "Several factors contributed to this verdict:")

		if evidenceCount > 0 {
			lines = append(lines, fmt.Sprintf("• %d external sources contradict or question this content", evidenceCount))
		}
		if features.SensationalLanguage {
			lines = append(lines, "• The text uses sensational language commonly found in misinformation")
		}
		if features.LacksSources {
			lines = append(lines, "• The article lacks credible source citations")
		}
		if features.ClickbaitTitle {
			lines = append(lines, "• The headline shows signs of clickbait tactics")
		}

		lines = append(lines, "\nRecommendation: Cross-check with reputable news sources before sharing.")

	case LabelReal:
		lines = append(lines, fmt.Sprintf("This content appears to be LEGITIMATE with %d%% confidence.", verdict.Confidence))
		lines = append(lines, "Supporting factors:")

		if evidenceCount > 0 {
			lines = append(lines, fmt.Sprintf("• %d credible sources corroborate this information", evidenceCount))
		}
		if features.HasSources {
			lines = append(lines, "• The article cites verifiable sources")
		}
		if features.ProfessionalTone {
			lines = append(lines, "• The writing follows journalistic standards")
		}

		lines = append(lines, "\nNote: While this appears legitimate, always verify important claims independently.")

	default:
		lines = append(lines, fmt.Sprintf("The authenticity of this content is UNCERTAIN (confidence: %d%%).", verdict.Confidence))
		lines = append(lines, "Reasons for uncertainty:")
		lines = append(lines, "• Limited evidence available for verification")
		lines = append(lines, "• Content may be opinion or satire rather than factual news")
		lines = append(lines, "• Mixed signals from content analysis")
		lines = append(lines, "\nRecommendation: Seek additional sources before drawing conclusions.")
	}

	return strings.Join(lines, "\n")
}
