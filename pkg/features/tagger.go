package features

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// PartOfSpeech is a coarse part-of-speech tag
type PartOfSpeech string

// coarse tags produced by taggers
const (
	PosNoun      PartOfSpeech = "noun"
	PosVerb      PartOfSpeech = "verb"
	PosAdjective PartOfSpeech = "adjective"
	PosAdverb    PartOfSpeech = "adverb"
	PosFunction  PartOfSpeech = "function"
	PosNumber    PartOfSpeech = "number"
)

// Token is a tagged word, Text keeps the original case
type Token struct {
	Text string
	Pos  PartOfSpeech
}

// Tagger assigns part-of-speech tags to the words of a text
type Tagger interface {
	Tag(text string) ([]Token, error)
}

// ErrInvalidText is returned by LexiconTagger for text that is not valid UTF-8
var ErrInvalidText = errors.New("text is not valid utf-8")

var (
	adjectiveSuffixes = []string{"ous", "ful", "ive", "able", "ible", "ical", "less", "ish"}
	verbSuffixes      = []string{"ing", "ed", "ize", "ise", "ify"}
)

// LexiconTagger tags words with word lists first and suffix heuristics second.
// Anything not recognized is a noun.
type LexiconTagger struct {
	function map[string]struct{}
	adverbs  map[string]struct{}
	verbs    map[string]struct{}
}

// NewLexiconTagger makes a tagger from the lexicon's tagger lists
func NewLexiconTagger(lex *Lexicon) *LexiconTagger {
	return &LexiconTagger{
		function: toSet(lex.Tagger.FunctionWords),
		adverbs:  toSet(lex.Tagger.Adverbs),
		verbs:    toSet(lex.Tagger.Verbs),
	}
}

// Tag splits text into words and tags each of them
func (t *LexiconTagger) Tag(text string) ([]Token, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidText
	}

	words := splitWords(text)
	tokens := make([]Token, 0, len(words))
	for _, w := range words {
		tokens = append(tokens, Token{Text: w, Pos: t.classify(strings.ToLower(w))})
	}
	return tokens, nil
}

func (t *LexiconTagger) classify(word string) PartOfSpeech {
	if isNumeric(word) {
		return PosNumber
	}
	if _, ok := t.function[word]; ok {
		return PosFunction
	}
	if _, ok := t.adverbs[word]; ok {
		return PosAdverb
	}
	if _, ok := t.verbs[word]; ok {
		return PosVerb
	}
	if hasSuffix(word, adjectiveSuffixes) {
		return PosAdjective
	}
	if hasSuffix(word, verbSuffixes) {
		return PosVerb
	}
	return PosNoun
}

// hasSuffix requires at least three runes before the suffix so short words stay nouns
func hasSuffix(word string, suffixes []string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(word, s) && utf8.RuneCountInString(word)-utf8.RuneCountInString(s) >= 3 {
			return true
		}
	}
	return false
}

// splitWords splits text on anything that is not a letter, digit or inner hyphen
func splitWords(text string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		if w := strings.Trim(current.String(), "-"); w != "" {
			words = append(words, w)
		}
		current.Reset()
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' {
			current.WriteRune(r)
			continue
		}
		flush()
	}
	flush()
	return words
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '-' {
			return false
		}
	}
	return true
}
