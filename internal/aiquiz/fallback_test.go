package aiquiz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackRecommendationsRoundTrip(t *testing.T) {
	recs := ParseRecommendations(FallbackText(BookRecommendations, ""))
	require.Equal(t, FallbackRecommendations(), recs)
	for _, r := range recs {
		assert.NotEmpty(t, r.Title)
		assert.NotEmpty(t, r.Author)
		assert.NotEmpty(t, r.Reason)
	}
}

func TestFallbackInsightsRoundTrip(t *testing.T) {
	insights := ParseInsights(FallbackText(ReadingInsights, ""), "Insight")
	require.Len(t, insights, 3)
	for i, in := range insights {
		assert.Equal(t, FallbackReadingInsights()[i], in.Description)
	}

	vocab := ParseInsights(FallbackText(VocabularyAnalysis, ""), "Vocabulary Insight")
	require.Len(t, vocab, 3)
	assert.Equal(t, "Vocabulary Insight 1", vocab[0].Title)
}

func TestFallbackSummary(t *testing.T) {
	assert.True(t, strings.HasPrefix(FallbackSummary("1984"), "A dystopian vision"))
	assert.Equal(t, defaultSummary, FallbackSummary("Unknown"))
	assert.Equal(t, defaultSummary, FallbackText(BookSummary, ""))
	assert.Equal(t, FallbackSummary("The Great Gatsby"), FallbackText(BookSummary, "The Great Gatsby"))
}

func TestFallbackIsDeterministic(t *testing.T) {
	for _, rt := range AllRequestTypes {
		assert.NotEmpty(t, FallbackText(rt, ""))
		assert.Equal(t, FallbackText(rt, "x"), FallbackText(rt, "x"))
	}
}
