package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestConditions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cond    Conditions
		wantErr string
	}{
		{name: "empty is valid", cond: Conditions{}},
		{name: "full set", cond: Conditions{
			Keywords:      &KeywordClause{Keywords: []string{"go"}, MinimumMatches: 1, Confidence: 0.9},
			TitlePatterns: &TitlePatternClause{Patterns: []string{"golang"}},
			ContentType:   &ContentTypeClause{Types: []ContentType{ContentTutorial, ContentArticle}},
			ReadingTime:   &RangeClause{Min: intPtr(1), Max: intPtr(10)},
			WordCount:     &RangeClause{Max: intPtr(5000)},
		}},
		{name: "blank keywords", cond: Conditions{Keywords: &KeywordClause{Keywords: []string{""}}},
			wantErr: "at least one keyword"},
		{name: "negative minimum", cond: Conditions{Keywords: &KeywordClause{Keywords: []string{"go"}, MinimumMatches: -1}},
			wantErr: "minimumMatches"},
		{name: "keyword confidence above one", cond: Conditions{Keywords: &KeywordClause{Keywords: []string{"go"}, Confidence: 1.1}},
			wantErr: "keywords.confidence"},
		{name: "rule confidence negative", cond: Conditions{Confidence: -0.1}, wantErr: "confidence must be"},
		{name: "no patterns", cond: Conditions{TitlePatterns: &TitlePatternClause{}}, wantErr: "at least one pattern"},
		{name: "no types", cond: Conditions{ContentType: &ContentTypeClause{}}, wantErr: "at least one type"},
		{name: "unknown type", cond: Conditions{ContentType: &ContentTypeClause{Types: []ContentType{"poem"}}},
			wantErr: `unknown content type "poem"`},
		{name: "negative bound", cond: Conditions{ReadingTime: &RangeClause{Min: intPtr(-1)}}, wantErr: "readingTime bounds"},
		{name: "inverted range", cond: Conditions{WordCount: &RangeClause{Min: intPtr(10), Max: intPtr(1)}},
			wantErr: "wordCount.min is greater than wordCount.max"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cond.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConditions_BaseConfidence(t *testing.T) {
	assert.InDelta(t, DefaultBaseConfidence, Conditions{}.BaseConfidence(), 1e-9)
	assert.InDelta(t, 0.7, Conditions{Confidence: 0.7}.BaseConfidence(), 1e-9)
	assert.InDelta(t, 0.9, Conditions{Confidence: 0.7,
		Keywords: &KeywordClause{Keywords: []string{"a"}, Confidence: 0.9}}.BaseConfidence(), 1e-9)
	assert.InDelta(t, 0.7, Conditions{Confidence: 0.7,
		Keywords: &KeywordClause{Keywords: []string{"a"}}}.BaseConfidence(), 1e-9)
}

func TestConditions_Normalize(t *testing.T) {
	c := Conditions{Keywords: &KeywordClause{Keywords: []string{"a"}}}
	c.Normalize()
	assert.Equal(t, 1, c.Keywords.MinimumMatches)

	c = Conditions{Keywords: &KeywordClause{Keywords: []string{"a"}, MinimumMatches: 3}}
	c.Normalize()
	assert.Equal(t, 3, c.Keywords.MinimumMatches)

	empty := Conditions{}
	empty.Normalize()
	assert.True(t, empty.IsEmpty())
}

func TestRangeClause_Contains(t *testing.T) {
	assert.True(t, RangeClause{}.Contains(-100))
	assert.True(t, RangeClause{Min: intPtr(5)}.Contains(5))
	assert.False(t, RangeClause{Min: intPtr(5)}.Contains(4))
	assert.True(t, RangeClause{Max: intPtr(5)}.Contains(5))
	assert.False(t, RangeClause{Max: intPtr(5)}.Contains(6))
	assert.True(t, RangeClause{Min: intPtr(1), Max: intPtr(1)}.Contains(1))
}

func TestRule_Validate(t *testing.T) {
	r := Rule{Name: "go", CategoryID: 1}
	require.NoError(t, r.Validate())

	r = Rule{CategoryID: 1}
	assert.ErrorIs(t, r.Validate(), ErrValidation)

	r = Rule{Name: "go"}
	err := r.Validate()
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "category_id")

	r = Rule{Name: "go", CategoryID: 1, Conditions: Conditions{TitlePatterns: &TitlePatternClause{}}}
	assert.ErrorIs(t, r.Validate(), ErrValidation)
}

func TestConditions_JSONShape(t *testing.T) {
	var c Conditions
	data := `{"keywords":{"keywords":["bread","oven"],"minimumMatches":1,"confidence":0.9},
		"readingTime":{"max":5},"contentType":{"types":["tutorial"]}}`
	require.NoError(t, json.Unmarshal([]byte(data), &c))

	require.NotNil(t, c.Keywords)
	assert.Equal(t, []string{"bread", "oven"}, c.Keywords.Keywords)
	require.NotNil(t, c.ReadingTime)
	assert.Nil(t, c.ReadingTime.Min)
	assert.Equal(t, 5, *c.ReadingTime.Max)
	assert.Nil(t, c.TitlePatterns)
	assert.Nil(t, c.WordCount)
	assert.NoError(t, c.Validate())
}
