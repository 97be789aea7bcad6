package domain

// ContentType is the detected kind of an article
type ContentType string

// content types, ordered by detection priority
const (
	ContentTutorial  ContentType = "tutorial"
	ContentNews      ContentType = "news"
	ContentReview    ContentType = "review"
	ContentAnalysis  ContentType = "analysis"
	ContentInterview ContentType = "interview"
	ContentArticle   ContentType = "article"
)

// Valid reports whether the content type is one of the known labels
func (c ContentType) Valid() bool {
	switch c {
	case ContentTutorial, ContentNews, ContentReview, ContentAnalysis, ContentInterview, ContentArticle:
		return true
	}
	return false
}

// Sentiment is the coarse polarity of a text
type Sentiment string

// sentiment values
const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Language is the detected language of a text
type Language string

// supported languages
const (
	LanguageEnglish    Language = "en"
	LanguageIndonesian Language = "id"
)

// FeatureSet is the derived, non-persisted set of signals extracted from one content item
type FeatureSet struct {
	TitleKeywords   []string    `json:"titleKeywords"`
	ContentKeywords []string    `json:"contentKeywords"`
	ContentType     ContentType `json:"contentType"`
	ReadingTime     int         `json:"readingTime"` // minutes
	WordCount       int         `json:"wordCount"`
	Sentiment       Sentiment   `json:"sentiment"`
	Language        Language    `json:"language"`
	Topics          []string    `json:"topics"`
	Degraded        bool        `json:"degraded,omitempty"` // keyword extraction failed and was skipped
}
