package aiquiz

import (
	"fmt"
	"strings"
)

const defaultSummary = "This classic book explores timeless themes that resonate with readers across generations. " +
	"Through compelling characters and masterful storytelling, it offers insights into the human condition and society."

var knownSummaries = map[string]string{
	"The Great Gatsby": "A tale of wealth, love, and the American Dream in the 1920s. " +
		"Jay Gatsby's obsession with Daisy Buchanan leads to tragedy, revealing the emptiness behind materialism and social status.",
	"To Kill a Mockingbird": "Set in the American South during the 1930s, this story explores racial injustice " +
		"through the eyes of Scout Finch as her father defends a Black man falsely accused of a crime.",
	"1984": "A dystopian vision of a totalitarian future where Big Brother watches everything, and the government controls reality itself. " +
		"Winston Smith's rebellion becomes a powerful warning about surveillance and freedom.",
	"Brave New World": "A futuristic society where humans are genetically engineered and conditioned for social stability. " +
		"Questions the cost of happiness when it comes at the expense of freedom and individuality.",
}

func FallbackReadingInsights() []string {
	return []string{
		"You read most consistently on weekends. Try setting aside time on weekdays too.",
		"Your reading speed is improving. Keep challenging yourself with varied content.",
		"Consider setting a daily reading goal of 30 minutes to build a stronger habit.",
	}
}

func FallbackRecommendations() []Recommendation {
	return []Recommendation{
		{Title: "Dune", Author: "Frank Herbert", Reason: "Matches your interest in immersive world-building and complex characters."},
		{Title: "Project Hail Mary", Author: "Andy Weir", Reason: "Similar to other sci-fi books you've enjoyed with problem-solving themes."},
		{Title: "The Hobbit", Author: "J.R.R. Tolkien", Reason: "Perfect for fantasy lovers who enjoy adventure and rich storytelling."},
	}
}

func FallbackVocabularyAnalysis() []string {
	return []string{
		"Your vocabulary is expanding in scientific terminology. Keep reading non-fiction.",
		"You've mastered 35 new words this month, showing excellent progress.",
		"Try using newly learned words in writing to reinforce retention.",
	}
}

// FallbackSummary returns the canned summary for an exact title, or a
// generic one.
func FallbackSummary(title string) string {
	if s, ok := knownSummaries[title]; ok {
		return s
	}
	return defaultSummary
}

// FallbackText is the canned raw text for t, shaped so the parser yields the
// same records as the structured fallbacks above.
func FallbackText(t RequestType, title string) string {
	switch t {
	case ReadingInsights:
		return strings.Join(FallbackReadingInsights(), "\n")
	case BookRecommendations:
		recs := FallbackRecommendations()
		lines := make([]string, 0, len(recs))
		for _, r := range recs {
			lines = append(lines, fmt.Sprintf("%s by %s: %s", r.Title, r.Author, r.Reason))
		}
		return strings.Join(lines, "\n")
	case VocabularyAnalysis:
		return strings.Join(FallbackVocabularyAnalysis(), "\n")
	default:
		return FallbackSummary(title)
	}
}
