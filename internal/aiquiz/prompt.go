package aiquiz

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/saulo-duarte/chronos-reading/internal/library"
)

var systemPrompts = map[RequestType]string{
	ReadingInsights: `You are an AI reading assistant that analyzes reading data and provides personalized insights.
Based on the following reading data, provide 3 concise, helpful insights about reading patterns, habits, or suggestions for improvement.
Format each insight as "Insight: explanation" with each insight on a new line.
Keep each insight under 30 words and make them actionable and specific.`,

	BookRecommendations: `You are an AI reading assistant that recommends books.
Based on the following reading history and preferences, recommend 3 books the user might enjoy.
Format each recommendation as "Title by Author: reason" with each recommendation on a new line.
Keep the reason under 15 words.`,

	VocabularyAnalysis: `You are an AI reading assistant that analyzes vocabulary usage.
Based on the following vocabulary data, provide 3 insights about the user's vocabulary growth, patterns, or suggestions.
Format each insight as "Insight: explanation" with each insight on a new line.
Keep each insight under 30 words.`,

	BookSummary: `You are an AI reading assistant that provides concise book summaries.
Provide a 100-word summary of the book, highlighting key themes and takeaways.`,
}

// PromptContext is the reading data a prompt is built from.
type PromptContext struct {
	Stats      library.ReadingStats
	Weekly     []library.DailyReading
	Genres     []library.GenreShare
	Completed  []library.Book
	AllTitles  []string
	Vocabulary []library.VocabularyWord
	Learning   int
	Mastered   int

	BookTitle  string
	BookAuthor string
}

func NewPromptContext(snap *library.Snapshot) PromptContext {
	pc := PromptContext{
		Stats:      snap.Stats,
		Weekly:     snap.Weekly,
		Genres:     snap.Genres,
		Vocabulary: snap.Vocabulary,
		Learning:   library.CountMastery(snap.Vocabulary, library.LEARNING),
		Mastered:   library.CountMastery(snap.Vocabulary, library.MASTERED),
	}
	for _, b := range snap.Books {
		pc.AllTitles = append(pc.AllTitles, b.Title)
		if b.Status == library.COMPLETED {
			pc.Completed = append(pc.Completed, b)
		}
	}
	return pc
}

// BuildPrompt concatenates the instruction for t with a serialization of pc.
// The same inputs always produce the same prompt.
func BuildPrompt(t RequestType, pc PromptContext) string {
	return systemPrompts[t] + "\n\n" + serializeContext(t, pc)
}

func serializeContext(t RequestType, pc PromptContext) string {
	var b strings.Builder

	switch t {
	case ReadingInsights:
		b.WriteString("Reading Statistics:\n")
		fmt.Fprintf(&b, "- Total Books: %d\n", pc.Stats.TotalBooks)
		fmt.Fprintf(&b, "- Completed Books: %d\n", pc.Stats.CompletedBooks)
		fmt.Fprintf(&b, "- In Progress Books: %d\n", pc.Stats.InProgressBooks)
		fmt.Fprintf(&b, "- Total Pages Read: %d\n", pc.Stats.TotalPages)
		fmt.Fprintf(&b, "- Total Reading Time: %d minutes\n", pc.Stats.TotalReadingTime)
		fmt.Fprintf(&b, "- Average Reading Speed: %d pages per hour\n", pc.Stats.AverageReadingSpeed)
		b.WriteString("\nWeekly Reading Data:\n")
		b.WriteString(compactJSON(pc.Weekly))
		b.WriteString("\n\nGenre Distribution:\n")
		b.WriteString(compactJSON(pc.Genres))

	case BookRecommendations:
		b.WriteString("Completed Books:\n")
		for _, book := range pc.Completed {
			fmt.Fprintf(&b, "- %s by %s (%s)\n", book.Title, book.Author, book.Genre)
		}
		b.WriteString("\nGenre Preferences:\n")
		for _, g := range pc.Genres {
			fmt.Fprintf(&b, "- %s: %d books\n", g.Name, g.Value)
		}
		b.WriteString("\nPlease recommend books that are not in this list:\n")
		b.WriteString(strings.Join(pc.AllTitles, ", "))

	case VocabularyAnalysis:
		b.WriteString("Vocabulary Words:\n")
		for _, w := range pc.Vocabulary {
			fmt.Fprintf(&b, "- %s (%s): %s\n", w.Word, w.PartOfSpeech, w.Definition)
		}
		b.WriteString("\nMastery Status:\n")
		fmt.Fprintf(&b, "- Learning: %d words\n", pc.Learning)
		fmt.Fprintf(&b, "- Mastered: %d words", pc.Mastered)

	case BookSummary:
		fmt.Fprintf(&b, "Book: %s", pc.BookTitle)
		if pc.BookAuthor != "" {
			fmt.Fprintf(&b, "\nAuthor: %s", pc.BookAuthor)
		}
	}
	return b.String()
}

func compactJSON(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(raw)
}
