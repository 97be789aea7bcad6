package features

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/autocat/pkg/domain"
)

type failingTagger struct {
	err   error
	panic bool
}

func (f failingTagger) Tag(string) ([]Token, error) {
	if f.panic {
		panic("tagger blew up")
	}
	return nil, f.err
}

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	ext, err := NewExtractor(Config{})
	require.NoError(t, err)
	return ext
}

func TestExtractor_BakeBreadScenario(t *testing.T) {
	ext := newTestExtractor(t)
	body := strings.TrimSpace(strings.Repeat("flour water ", 125))
	require.Len(t, strings.Fields(body), 250)

	fs := ext.Extract("How to Bake Bread", body)

	assert.Equal(t, domain.ContentTutorial, fs.ContentType)
	assert.Equal(t, 250, fs.WordCount)
	assert.Equal(t, 2, fs.ReadingTime)
	assert.Equal(t, domain.SentimentNeutral, fs.Sentiment)
	assert.Equal(t, domain.LanguageEnglish, fs.Language)
	assert.Equal(t, []string{"bread", "bake"}, fs.TitleKeywords)
	assert.Equal(t, []string{"flour", "water"}, fs.ContentKeywords)
	assert.Equal(t, []string{"flour", "water", "bake", "bread"}, fs.Topics)
	assert.False(t, fs.Degraded)
}

func TestExtractor_ContentType(t *testing.T) {
	ext := newTestExtractor(t)
	tests := []struct {
		name  string
		title string
		body  string
		want  domain.ContentType
	}{
		{name: "tutorial cue", title: "A complete guide to caching", want: domain.ContentTutorial},
		{name: "news cue", title: "Breaking: release shipped", want: domain.ContentNews},
		{name: "review cue", title: "Keyboard review", want: domain.ContentReview},
		{name: "analysis cue", title: "Market research", want: domain.ContentAnalysis},
		{name: "interview cue in html body", title: "Meet the team", body: "<p>Q&amp;A with founders</p>", want: domain.ContentInterview},
		{name: "default", title: "Thoughts on gardening", body: "plain words", want: domain.ContentArticle},
		{name: "tutorial wins over review", title: "Review of this tutorial", want: domain.ContentTutorial},
		{name: "review wins over analysis", title: "Study of a product rating", want: domain.ContentReview},
		{name: "case insensitive", title: "HOW TO FLY", want: domain.ContentTutorial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ext.Extract(tt.title, tt.body).ContentType)
		})
	}
}

func TestExtractor_Sentiment(t *testing.T) {
	ext := newTestExtractor(t)

	assert.Equal(t, domain.SentimentPositive, ext.Extract("Great news", "an excellent result").Sentiment)
	assert.Equal(t, domain.SentimentNegative, ext.Extract("Terrible outage", "a bad day, worst ever, but good coffee").Sentiment)
	assert.Equal(t, domain.SentimentNeutral, ext.Extract("Good and bad", "").Sentiment)
	assert.Equal(t, domain.SentimentNeutral, ext.Extract("goodness", "badly").Sentiment, "whole words only")
}

func TestExtractor_Language(t *testing.T) {
	ext := newTestExtractor(t)

	fs := ext.Extract("Cara membuat roti", "Ini adalah resep yang mudah dan cepat untuk pemula")
	assert.Equal(t, domain.LanguageIndonesian, fs.Language)

	fs = ext.Extract("Baking bread", "The recipe is easy and quick for beginners")
	assert.Equal(t, domain.LanguageEnglish, fs.Language)

	fs = ext.Extract("", "the yang")
	assert.Equal(t, domain.LanguageEnglish, fs.Language, "tie goes to english")
}

func TestExtractor_Keywords(t *testing.T) {
	ext := newTestExtractor(t)

	t.Run("nouns then verbs then adjectives", func(t *testing.T) {
		fs := ext.Extract("Beautiful gardens grow", "")
		assert.Equal(t, []string{"gardens", "grow", "beautiful"}, fs.TitleKeywords)
	})

	t.Run("short words and stopwords dropped, deduplicated", func(t *testing.T) {
		fs := ext.Extract("", "Go is an ox. Kubernetes kubernetes KUBERNETES clusters")
		assert.Equal(t, []string{"kubernetes", "clusters"}, fs.ContentKeywords)
	})

	t.Run("capped at twenty", func(t *testing.T) {
		words := make([]string, 30)
		for i := range words {
			words[i] = fmt.Sprintf("word%c%c", 'a'+i/26, 'a'+i%26)
		}
		fs := ext.Extract("", strings.Join(words, " "))
		assert.Len(t, fs.ContentKeywords, 20)
		assert.Equal(t, "wordaa", fs.ContentKeywords[0])
	})

	t.Run("empty input", func(t *testing.T) {
		fs := ext.Extract("", "")
		assert.Empty(t, fs.TitleKeywords)
		assert.NotNil(t, fs.TitleKeywords)
		assert.Equal(t, 0, fs.WordCount)
		assert.Equal(t, 0, fs.ReadingTime)
		assert.Empty(t, fs.Topics)
	})
}

func TestExtractor_Degraded(t *testing.T) {
	t.Run("invalid utf-8 title", func(t *testing.T) {
		ext := newTestExtractor(t)
		fs := ext.Extract("bad \xff\xfe title", "valid body words")
		assert.True(t, fs.Degraded)
		assert.Empty(t, fs.TitleKeywords)
		assert.Equal(t, []string{"valid", "body", "words"}, fs.ContentKeywords)
		assert.Equal(t, 3, fs.WordCount)
	})

	t.Run("tagger error", func(t *testing.T) {
		ext, err := NewExtractor(Config{Tagger: failingTagger{err: errors.New("boom")}})
		require.NoError(t, err)
		fs := ext.Extract("How to Bake Bread", "some text")
		assert.True(t, fs.Degraded)
		assert.Empty(t, fs.TitleKeywords)
		assert.Empty(t, fs.ContentKeywords)
		assert.Equal(t, domain.ContentTutorial, fs.ContentType, "other features still computed")
	})

	t.Run("tagger panic", func(t *testing.T) {
		ext, err := NewExtractor(Config{Tagger: failingTagger{panic: true}})
		require.NoError(t, err)
		fs := ext.Extract("title", "body")
		assert.True(t, fs.Degraded)
		assert.Empty(t, fs.ContentKeywords)
	})
}

func TestExtractor_Topics(t *testing.T) {
	ext := newTestExtractor(t)
	fs := ext.Extract("", "alpha beta beta gamma alpha delta omega sigma theta the with")
	assert.Equal(t, []string{"alpha", "beta", "gamma", "delta", "omega"}, fs.Topics)
}

func TestExtractor_PlainText(t *testing.T) {
	ext := newTestExtractor(t)
	text := ext.PlainText("<h1>Title</h1><p>First&nbsp;para &amp; more</p><script>alert(1)</script>")
	assert.NotContains(t, text, "<")
	assert.Contains(t, text, "Title")
	assert.Contains(t, text, "& more")
	assert.Equal(t, []string{"Title", "First", "para", "&", "more"}, strings.Fields(text)[:5])
}

func TestExtractor_Idempotent(t *testing.T) {
	ext := newTestExtractor(t)
	title, body := "Kubernetes review", "<p>Great clusters and amazing operators</p>"
	assert.Equal(t, ext.Extract(title, body), ext.Extract(title, body))
}

func TestExtractor_CustomLimits(t *testing.T) {
	ext, err := NewExtractor(Config{MaxKeywords: 2, WordsPerMinute: 100, TopicCount: 1})
	require.NoError(t, err)
	fs := ext.Extract("", strings.TrimSpace(strings.Repeat("servers racks cables ", 50)))
	assert.Len(t, fs.ContentKeywords, 2)
	assert.Equal(t, 150, fs.WordCount)
	assert.Equal(t, 2, fs.ReadingTime)
	assert.Len(t, fs.Topics, 1)
}
