// Package features turns raw article title and body into the lexical feature set
// the rule evaluator works on. Extraction is a pure function of its input: a failing
// tagger only empties the keyword lists and never aborts the pipeline.
package features

import (
	"fmt"
	"html"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/autocat/pkg/domain"
)

// defaults for extraction limits
const (
	DefaultMaxKeywords    = 20
	DefaultWordsPerMinute = 200
	DefaultTopicCount     = 5
)

// Config holds extractor configuration, zero values fall back to defaults
type Config struct {
	Lexicon        *Lexicon
	Tagger         Tagger
	MaxKeywords    int
	WordsPerMinute int
	TopicCount     int
}

// Extractor computes feature sets from article text
type Extractor struct {
	lexicon        *Lexicon
	tagger         Tagger
	sanitizer      *bluemonday.Policy
	maxKeywords    int
	wordsPerMinute int
	topicCount     int
}

// NewExtractor creates an extractor. The embedded lexicon is used when none is provided,
// and the lexicon tagger when no tagger is provided.
func NewExtractor(cfg Config) (*Extractor, error) {
	lex := cfg.Lexicon
	if lex == nil {
		var err error
		if lex, err = DefaultLexicon(); err != nil {
			return nil, fmt.Errorf("load default lexicon: %w", err)
		}
	}

	tagger := cfg.Tagger
	if tagger == nil {
		tagger = NewLexiconTagger(lex)
	}

	res := &Extractor{
		lexicon:        lex,
		tagger:         tagger,
		sanitizer:      bluemonday.StrictPolicy().AddSpaceWhenStrippingTag(true),
		maxKeywords:    cfg.MaxKeywords,
		wordsPerMinute: cfg.WordsPerMinute,
		topicCount:     cfg.TopicCount,
	}
	if res.maxKeywords <= 0 {
		res.maxKeywords = DefaultMaxKeywords
	}
	if res.wordsPerMinute <= 0 {
		res.wordsPerMinute = DefaultWordsPerMinute
	}
	if res.topicCount <= 0 {
		res.topicCount = DefaultTopicCount
	}
	return res, nil
}

// Extract builds the feature set for a title and an HTML or plain-text body
func (e *Extractor) Extract(title, body string) domain.FeatureSet {
	text := e.PlainText(body)
	full := title + " " + text
	fullWords := lowerWords(full)

	wordCount := len(strings.Fields(text))
	res := domain.FeatureSet{
		ContentType: e.detectContentType(strings.ToLower(full)),
		WordCount:   wordCount,
		ReadingTime: (wordCount + e.wordsPerMinute - 1) / e.wordsPerMinute,
		Sentiment:   e.sentiment(fullWords),
		Language:    e.language(fullWords),
		Topics:      e.topics(fullWords),
	}

	var titleErr, contentErr error
	res.TitleKeywords, titleErr = e.keywords(title)
	res.ContentKeywords, contentErr = e.keywords(text)
	if titleErr != nil || contentErr != nil {
		lgr.Printf("[WARN] keyword extraction degraded, title: %v, content: %v", titleErr, contentErr)
		res.Degraded = true
	}
	return res
}

// PlainText strips markup from the body and decodes entities
func (e *Extractor) PlainText(body string) string {
	if body == "" {
		return ""
	}
	return html.UnescapeString(e.sanitizer.Sanitize(body))
}

// keywords tags text and keeps nouns, then verbs, then adjectives. Any tagger failure,
// including a panic, results in an empty list and an error.
func (e *Extractor) keywords(text string) (res []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = []string{}, fmt.Errorf("tagger panic: %v", r)
		}
	}()

	tokens, err := e.tagger.Tag(text)
	if err != nil {
		return []string{}, fmt.Errorf("tag text: %w", err)
	}

	byPos := map[PartOfSpeech][]string{}
	for _, tok := range tokens {
		byPos[tok.Pos] = append(byPos[tok.Pos], tok.Text)
	}

	res = []string{}
	seen := map[string]struct{}{}
	for _, pos := range []PartOfSpeech{PosNoun, PosVerb, PosAdjective} {
		for _, w := range byPos[pos] {
			if len(res) >= e.maxKeywords {
				return res, nil
			}
			w = strings.ToLower(w)
			if utf8.RuneCountInString(w) <= 2 || e.lexicon.IsStopword(w) {
				continue
			}
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			res = append(res, w)
		}
	}
	return res, nil
}

// detectContentType returns the type of the first cue found, in lexicon order
func (e *Extractor) detectContentType(text string) domain.ContentType {
	for _, ct := range e.lexicon.ContentTypes {
		for _, cue := range ct.Cues {
			if strings.Contains(text, cue) {
				return ct.Type
			}
		}
	}
	return domain.ContentArticle
}

func (e *Extractor) sentiment(words []string) domain.Sentiment {
	pos, neg := countIn(words, e.lexicon.positive), countIn(words, e.lexicon.negative)
	switch {
	case pos > neg:
		return domain.SentimentPositive
	case neg > pos:
		return domain.SentimentNegative
	}
	return domain.SentimentNeutral
}

// language picks indonesian only when it strictly outnumbers english function words
func (e *Extractor) language(words []string) domain.Language {
	if countIn(words, e.lexicon.indonesian) > countIn(words, e.lexicon.english) {
		return domain.LanguageIndonesian
	}
	return domain.LanguageEnglish
}

// topics returns the most frequent content words, ties keep first-seen order
func (e *Extractor) topics(words []string) []string {
	counts := map[string]int{}
	var order []string
	for _, w := range words {
		if utf8.RuneCountInString(w) <= 3 || e.lexicon.IsStopword(w) {
			continue
		}
		if _, ok := counts[w]; !ok {
			order = append(order, w)
		}
		counts[w]++
	}

	sort.SliceStable(order, func(i, j int) bool { return counts[order[i]] > counts[order[j]] })
	if len(order) > e.topicCount {
		order = order[:e.topicCount]
	}
	if order == nil {
		return []string{}
	}
	return order
}

func countIn(words []string, set map[string]struct{}) int {
	n := 0
	for _, w := range words {
		if _, ok := set[w]; ok {
			n++
		}
	}
	return n
}

func lowerWords(text string) []string {
	return splitWords(strings.ToLower(strings.ToValidUTF8(text, " ")))
}
