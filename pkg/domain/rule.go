package domain

import (
	"fmt"
	"time"
)

// DefaultBaseConfidence is used when neither the keyword clause nor the rule sets a confidence
const DefaultBaseConfidence = 0.5

// Rule represents a user-defined categorization rule
type Rule struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	CategoryID int64      `json:"category_id"`
	Conditions Conditions `json:"conditions"`
	Priority   int        `json:"priority"`
	Active     bool       `json:"active"`
	OwnerID    int64      `json:"owner_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// ClauseName identifies a condition clause
type ClauseName string

// supported clauses, in evaluation order
const (
	ClauseKeywords      ClauseName = "keywords"
	ClauseTitlePatterns ClauseName = "titlePatterns"
	ClauseContentType   ClauseName = "contentType"
	ClauseReadingTime   ClauseName = "readingTime"
	ClauseWordCount     ClauseName = "wordCount"
)

// Conditions is the condition set of a rule. Each clause is optional and present when non-nil.
type Conditions struct {
	Keywords      *KeywordClause      `json:"keywords,omitempty"`
	TitlePatterns *TitlePatternClause `json:"titlePatterns,omitempty"`
	ContentType   *ContentTypeClause  `json:"contentType,omitempty"`
	ReadingTime   *RangeClause        `json:"readingTime,omitempty"`
	WordCount     *RangeClause        `json:"wordCount,omitempty"`
	Confidence    float64             `json:"confidence,omitempty"` // rule-wide base confidence
}

// KeywordClause matches rule keywords against extracted title and content keywords
type KeywordClause struct {
	Keywords       []string `json:"keywords"`
	MinimumMatches int      `json:"minimumMatches,omitempty"`
	Confidence     float64  `json:"confidence,omitempty"`
}

// TitlePatternClause matches substrings against extracted title keywords
type TitlePatternClause struct {
	Patterns []string `json:"patterns"`
}

// ContentTypeClause matches the detected content type against an allowed set
type ContentTypeClause struct {
	Types []ContentType `json:"types"`
}

// RangeClause is an inclusive numeric range, either bound optional
type RangeClause struct {
	Min *int `json:"min,omitempty"`
	Max *int `json:"max,omitempty"`
}

// Contains reports whether v falls into the inclusive range
func (r RangeClause) Contains(v int) bool {
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}

// IsEmpty reports whether no clause is present
func (c Conditions) IsEmpty() bool {
	return c.Keywords == nil && c.TitlePatterns == nil && c.ContentType == nil &&
		c.ReadingTime == nil && c.WordCount == nil
}

// BaseConfidence returns the confidence every matching clause is weighted against
func (c Conditions) BaseConfidence() float64 {
	if c.Keywords != nil && c.Keywords.Confidence > 0 {
		return c.Keywords.Confidence
	}
	if c.Confidence > 0 {
		return c.Confidence
	}
	return DefaultBaseConfidence
}

// Normalize fills clause defaults in place
func (c *Conditions) Normalize() {
	if c.Keywords != nil && c.Keywords.MinimumMatches == 0 {
		c.Keywords.MinimumMatches = 1
	}
}

// Validate checks every present clause. An empty condition set is valid.
func (c Conditions) Validate() error {
	if c.Confidence < 0 || c.Confidence > 1 {
		return fmt.Errorf("%w: confidence must be between 0 and 1", ErrValidation)
	}

	if k := c.Keywords; k != nil {
		if len(nonBlank(k.Keywords)) == 0 {
			return fmt.Errorf("%w: keywords clause needs at least one keyword", ErrValidation)
		}
		if k.MinimumMatches < 0 {
			return fmt.Errorf("%w: keywords.minimumMatches must be positive", ErrValidation)
		}
		if k.Confidence < 0 || k.Confidence > 1 {
			return fmt.Errorf("%w: keywords.confidence must be between 0 and 1", ErrValidation)
		}
	}

	if p := c.TitlePatterns; p != nil && len(nonBlank(p.Patterns)) == 0 {
		return fmt.Errorf("%w: titlePatterns clause needs at least one pattern", ErrValidation)
	}

	if t := c.ContentType; t != nil {
		if len(t.Types) == 0 {
			return fmt.Errorf("%w: contentType clause needs at least one type", ErrValidation)
		}
		for _, ct := range t.Types {
			if !ct.Valid() {
				return fmt.Errorf("%w: unknown content type %q", ErrValidation, ct)
			}
		}
	}

	if err := validateRange(ClauseReadingTime, c.ReadingTime); err != nil {
		return err
	}
	return validateRange(ClauseWordCount, c.WordCount)
}

func validateRange(name ClauseName, r *RangeClause) error {
	if r == nil {
		return nil
	}
	if r.Min != nil && *r.Min < 0 || r.Max != nil && *r.Max < 0 {
		return fmt.Errorf("%w: %s bounds must be non-negative", ErrValidation, name)
	}
	if r.Min != nil && r.Max != nil && *r.Min > *r.Max {
		return fmt.Errorf("%w: %s.min is greater than %s.max", ErrValidation, name, name)
	}
	return nil
}

func nonBlank(vals []string) []string {
	res := make([]string, 0, len(vals))
	for _, v := range vals {
		if v != "" {
			res = append(res, v)
		}
	}
	return res
}

// Validate checks the authoring fields of a rule, including its conditions
func (r *Rule) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if r.CategoryID <= 0 {
		return fmt.Errorf("%w: category_id is required", ErrValidation)
	}
	return r.Conditions.Validate()
}
