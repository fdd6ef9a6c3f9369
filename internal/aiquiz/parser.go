package aiquiz

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	unknownAuthor          = "Unknown"
	defaultRecommendReason = "Recommended based on your reading history"
)

var (
	numberPrefix       = regexp.MustCompile(`^\d+\.\s*`)
	recommendationLine = regexp.MustCompile(`^(?:\d+\.\s*)?([^:]+) by ([^:]+):?\s*(.*)$`)
)

func nonBlankLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// ParseInsights turns each non-blank line into an insight. Text before the
// first colon is the title; a line without a colon becomes the description
// under "<placeholder> N".
func ParseInsights(text, placeholder string) []Insight {
	lines := nonBlankLines(text)
	out := make([]Insight, 0, len(lines))
	for i, line := range lines {
		title, description, found := strings.Cut(line, ":")
		if !found {
			out = append(out, Insight{
				Title:       fmt.Sprintf("%s %d", placeholder, i+1),
				Description: line,
			})
			continue
		}
		title = strings.TrimSpace(numberPrefix.ReplaceAllString(title, ""))
		if title == "" {
			title = fmt.Sprintf("%s %d", placeholder, i+1)
		}
		out = append(out, Insight{Title: title, Description: strings.TrimSpace(description)})
	}
	return out
}

// ParseRecommendations reads "N. Title by Author: reason" lines. A line that
// does not match keeps its full text as the title.
func ParseRecommendations(text string) []Recommendation {
	lines := nonBlankLines(text)
	out := make([]Recommendation, 0, len(lines))
	for _, line := range lines {
		if m := recommendationLine.FindStringSubmatch(line); m != nil {
			out = append(out, Recommendation{
				Title:  strings.TrimSpace(m[1]),
				Author: strings.TrimSpace(m[2]),
				Reason: strings.TrimSpace(m[3]),
			})
			continue
		}
		out = append(out, Recommendation{
			Title:  line,
			Author: unknownAuthor,
			Reason: defaultRecommendReason,
		})
	}
	return out
}

// ParseSummary joins the non-blank lines into one paragraph.
func ParseSummary(text, title string) Summary {
	return Summary{Title: title, Text: strings.Join(nonBlankLines(text), " ")}
}
