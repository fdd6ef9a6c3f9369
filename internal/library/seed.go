package library

// Reading time is tracked in minutes and speed in pages per hour.
const (
	seedReadingTime  = 1250
	seedReadingSpeed = 35
)

func seedBooks() []Book {
	return []Book{
		{ID: "1", Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Genre: "Fiction", Pages: 180, CurrentPage: 117, Status: READING, DateAdded: "2025-03-15"},
		{ID: "2", Title: "Brave New World", Author: "Aldous Huxley", Genre: "Science Fiction", Pages: 311, CurrentPage: 72, Status: READING, DateAdded: "2025-03-20"},
		{ID: "3", Title: "Thinking, Fast and Slow", Author: "Daniel Kahneman", Genre: "Psychology", Pages: 499, CurrentPage: 210, Status: READING, DateAdded: "2025-03-25"},
		{ID: "4", Title: "To Kill a Mockingbird", Author: "Harper Lee", Genre: "Fiction", Pages: 281, Status: COMPLETED, DateAdded: "2025-02-10", DateCompleted: "2025-03-28", Rating: 5},
		{ID: "5", Title: "1984", Author: "George Orwell", Genre: "Science Fiction", Pages: 328, Status: COMPLETED, DateAdded: "2025-02-15", DateCompleted: "2025-03-15", Rating: 4},
		{ID: "6", Title: "The Hobbit", Author: "J.R.R. Tolkien", Genre: "Fantasy", Pages: 310, Status: COMPLETED, DateAdded: "2025-01-22", DateCompleted: "2025-02-22", Rating: 5},
		{ID: "7", Title: "Dune", Author: "Frank Herbert", Genre: "Science Fiction", Pages: 412, Status: TO_READ, DateAdded: "2025-04-01"},
		{ID: "8", Title: "Project Hail Mary", Author: "Andy Weir", Genre: "Science Fiction", Pages: 476, Status: TO_READ, DateAdded: "2025-03-30"},
		{ID: "9", Title: "The Alchemist", Author: "Paulo Coelho", Genre: "Fiction", Pages: 197, Status: TO_READ, DateAdded: "2025-03-25"},
	}
}

func seedVocabulary() []VocabularyWord {
	return []VocabularyWord{
		{ID: "1", Word: "Ephemeral", Definition: "Lasting for a very short time", Example: "The ephemeral nature of cherry blossoms makes them all the more special.", PartOfSpeech: "adjective", Book: "The Great Gatsby", DateAdded: "2025-04-03", Mastery: LEARNING},
		{ID: "2", Word: "Sycophant", Definition: "A person who acts obsequiously toward someone important in order to gain advantage", Example: "He surrounded himself with sycophants who constantly praised his ideas.", PartOfSpeech: "noun", Book: "1984", DateAdded: "2025-04-02", Mastery: LEARNING},
		{ID: "3", Word: "Ubiquitous", Definition: "Present, appearing, or found everywhere", Example: "Mobile phones have become ubiquitous in modern society.", PartOfSpeech: "adjective", Book: "Brave New World", DateAdded: "2025-04-01", Mastery: MASTERED},
		{ID: "4", Word: "Pernicious", Definition: "Having a harmful effect, especially in a gradual or subtle way", Example: "The pernicious effects of corruption were felt throughout the government.", PartOfSpeech: "adjective", Book: "To Kill a Mockingbird", DateAdded: "2025-03-30", Mastery: LEARNING},
		{ID: "5", Word: "Eloquent", Definition: "Fluent or persuasive in speaking or writing", Example: "She gave an eloquent speech that moved the audience to tears.", PartOfSpeech: "adjective", Book: "Pride and Prejudice", DateAdded: "2025-03-29", Mastery: MASTERED},
	}
}

func seedWeekly() []DailyReading {
	return []DailyReading{
		{Day: "Mon", Pages: 32, Time: 25},
		{Day: "Tue", Pages: 45, Time: 38},
		{Day: "Wed", Pages: 19, Time: 15},
		{Day: "Thu", Pages: 28, Time: 22},
		{Day: "Fri", Pages: 50, Time: 40, Books: 1},
		{Day: "Sat", Pages: 65, Time: 52},
		{Day: "Sun", Pages: 70, Time: 58},
	}
}

func seedGenres() []GenreShare {
	return []GenreShare{
		{Name: "Fiction", Value: 35},
		{Name: "Science Fiction", Value: 25},
		{Name: "Fantasy", Value: 15},
		{Name: "Non-Fiction", Value: 10},
		{Name: "Biography", Value: 8},
		{Name: "Mystery", Value: 7},
	}
}
