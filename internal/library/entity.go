package library

type BookStatus string

const (
	READING   BookStatus = "reading"
	COMPLETED BookStatus = "completed"
	TO_READ   BookStatus = "to-read"
)

var AllBookStatuses = []BookStatus{
	READING,
	COMPLETED,
	TO_READ,
}

func (s BookStatus) IsValid() bool {
	for _, v := range AllBookStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Mastery string

const (
	LEARNING Mastery = "learning"
	MASTERED Mastery = "mastered"
)

type Book struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Author        string     `json:"author"`
	Genre         string     `json:"genre"`
	Pages         int        `json:"pages"`
	CurrentPage   int        `json:"currentPage,omitempty"`
	Status        BookStatus `json:"status"`
	DateAdded     string     `json:"dateAdded"`
	DateCompleted string     `json:"dateCompleted,omitempty"`
	Rating        int        `json:"rating,omitempty"`
}

type VocabularyWord struct {
	ID           string  `json:"id"`
	Word         string  `json:"word"`
	Definition   string  `json:"definition"`
	Example      string  `json:"example"`
	PartOfSpeech string  `json:"partOfSpeech"`
	Book         string  `json:"book"`
	DateAdded    string  `json:"dateAdded"`
	Mastery      Mastery `json:"mastery"`
}

type ReadingStats struct {
	TotalBooks          int `json:"totalBooks"`
	CompletedBooks      int `json:"completedBooks"`
	InProgressBooks     int `json:"inProgressBooks"`
	TotalPages          int `json:"totalPages"`
	TotalReadingTime    int `json:"totalReadingTime"`
	AverageReadingSpeed int `json:"averageReadingSpeed"`
}

type DailyReading struct {
	Day   string `json:"day"`
	Pages int    `json:"pages"`
	Time  int    `json:"time"`
	Books int    `json:"books"`
}

type GenreShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Snapshot is everything the AI features read in one request.
type Snapshot struct {
	Books      []Book           `json:"books"`
	Vocabulary []VocabularyWord `json:"vocabulary"`
	Stats      ReadingStats     `json:"stats"`
	Weekly     []DailyReading   `json:"weekly"`
	Genres     []GenreShare     `json:"genres"`
}
