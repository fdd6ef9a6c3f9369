package aiquiz

type RequestType string

const (
	ReadingInsights     RequestType = "reading-insights"
	BookRecommendations RequestType = "book-recommendations"
	VocabularyAnalysis  RequestType = "vocabulary-analysis"
	BookSummary         RequestType = "book-summary"
)

var AllRequestTypes = []RequestType{
	ReadingInsights,
	BookRecommendations,
	VocabularyAnalysis,
	BookSummary,
}

func (t RequestType) IsValid() bool {
	for _, v := range AllRequestTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Origin tells whether text came from the model or from canned content.
type Origin string

const (
	OriginLive     Origin = "live"
	OriginFallback Origin = "fallback"
)

type RequestState string

const (
	StateIdle      RequestState = "IDLE"
	StatePending   RequestState = "PENDING"
	StateSucceeded RequestState = "SUCCEEDED"
	StateFailed    RequestState = "FAILED"
)

type Insight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Recommendation struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Reason string `json:"reason"`
}

type Summary struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

type InsightsResponse struct {
	Type      RequestType `json:"type"`
	Insights  []Insight   `json:"insights"`
	Origin    Origin      `json:"origin"`
	DemoMode  bool        `json:"demoMode"`
	IsLoading bool        `json:"isLoading"`
}

type RecommendationsResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
	Origin          Origin           `json:"origin"`
	DemoMode        bool             `json:"demoMode"`
	IsLoading       bool             `json:"isLoading"`
}

type SummaryResponse struct {
	Summary   Summary `json:"summary"`
	Origin    Origin  `json:"origin"`
	DemoMode  bool    `json:"demoMode"`
	IsLoading bool    `json:"isLoading"`
}

type GenerateRequest struct {
	Type  RequestType `json:"type"`
	Title string      `json:"title,omitempty"`
}

type GenerateResponse struct {
	Type     RequestType `json:"type"`
	Text     string      `json:"text"`
	Origin   Origin      `json:"origin"`
	Fallback bool        `json:"fallback"`
}

type StateResponse struct {
	Type      RequestType  `json:"type"`
	State     RequestState `json:"state"`
	IsLoading bool         `json:"isLoading"`
}
