package features

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/umputun/autocat/pkg/domain"
)

//go:embed lexicon.yaml
var defaultLexicon []byte

// Lexicon holds the word lists driving feature extraction
type Lexicon struct {
	ContentTypes []ContentTypeCue `yaml:"content_types"`
	Sentiment    struct {
		Positive []string `yaml:"positive"`
		Negative []string `yaml:"negative"`
	} `yaml:"sentiment"`
	Language struct {
		English    []string `yaml:"english"`
		Indonesian []string `yaml:"indonesian"`
	} `yaml:"language"`
	Stopwords []string `yaml:"stopwords"`
	Tagger    struct {
		FunctionWords []string `yaml:"function_words"`
		Adverbs       []string `yaml:"adverbs"`
		Verbs         []string `yaml:"verbs"`
	} `yaml:"tagger"`

	stopwords  map[string]struct{}
	positive   map[string]struct{}
	negative   map[string]struct{}
	english    map[string]struct{}
	indonesian map[string]struct{}
}

// ContentTypeCue maps a content type to the substrings that reveal it
type ContentTypeCue struct {
	Type domain.ContentType `yaml:"type"`
	Cues []string           `yaml:"cues"`
}

// DefaultLexicon returns the embedded lexicon
func DefaultLexicon() (*Lexicon, error) {
	return ParseLexicon(defaultLexicon)
}

// LoadLexicon reads a lexicon from a YAML file
func LoadLexicon(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from config
	if err != nil {
		return nil, fmt.Errorf("read lexicon file: %w", err)
	}
	return ParseLexicon(data)
}

// ParseLexicon parses and indexes a YAML lexicon
func ParseLexicon(data []byte) (*Lexicon, error) {
	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}

	for i, ct := range lex.ContentTypes {
		if !ct.Type.Valid() {
			return nil, fmt.Errorf("content type #%d: unknown type %q", i, ct.Type)
		}
		for j, cue := range ct.Cues {
			lex.ContentTypes[i].Cues[j] = strings.ToLower(cue)
		}
	}

	lex.stopwords = toSet(lex.Stopwords)
	lex.positive = toSet(lex.Sentiment.Positive)
	lex.negative = toSet(lex.Sentiment.Negative)
	lex.english = toSet(lex.Language.English)
	lex.indonesian = toSet(lex.Language.Indonesian)
	return &lex, nil
}

// IsStopword checks a lowercase word against the stopword list
func (l *Lexicon) IsStopword(word string) bool {
	_, ok := l.stopwords[word]
	return ok
}

func toSet(words []string) map[string]struct{} {
	res := make(map[string]struct{}, len(words))
	for _, w := range words {
		res[strings.ToLower(w)] = struct{}{}
	}
	return res
}
