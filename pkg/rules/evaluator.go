// Package rules scores a single rule against an extracted feature set.
//
// Every present clause that matches contributes base confidence multiplied by the clause
// weight, and the rule confidence is the average over contributing clauses. A rule with
// no contributing clause does not match and scores zero.
package rules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/umputun/autocat/pkg/domain"
)

// Weights maps clauses to their weight relative to the rule base confidence
var Weights = map[domain.ClauseName]float64{
	domain.ClauseKeywords:      1.0,
	domain.ClauseTitlePatterns: 0.8,
	domain.ClauseContentType:   0.6,
	domain.ClauseReadingTime:   0.4,
	domain.ClauseWordCount:     0.3,
}

// Evaluator matches rules against feature sets. It is stateless and safe for concurrent use.
type Evaluator struct{}

// NewEvaluator makes an evaluator
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate scores the rule against the feature set. The result has no content id or timing,
// the caller fills those in. An error is returned only for malformed conditions.
func (e *Evaluator) Evaluate(rule domain.Rule, fs domain.FeatureSet) (domain.ExecutionResult, error) {
	res := domain.ExecutionResult{
		RuleID:            rule.ID,
		RuleName:          rule.Name,
		CategoryID:        rule.CategoryID,
		MatchedConditions: []domain.ClauseName{},
		Details:           []domain.ClauseDetail{},
	}

	cond := rule.Conditions
	if err := cond.Validate(); err != nil {
		return res, fmt.Errorf("%w: rule %s: %w", domain.ErrRuleEvaluation, rule.ID, err)
	}
	if cond.IsEmpty() {
		return res, nil
	}

	base := cond.BaseConfidence()
	if cond.Keywords != nil {
		res.Details = append(res.Details, matchKeywords(*cond.Keywords, fs))
	}
	if cond.TitlePatterns != nil {
		res.Details = append(res.Details, matchTitlePatterns(*cond.TitlePatterns, fs))
	}
	if cond.ContentType != nil {
		res.Details = append(res.Details, matchContentType(*cond.ContentType, fs))
	}
	if cond.ReadingTime != nil {
		res.Details = append(res.Details, matchRange(domain.ClauseReadingTime, *cond.ReadingTime, fs.ReadingTime))
	}
	if cond.WordCount != nil {
		res.Details = append(res.Details, matchRange(domain.ClauseWordCount, *cond.WordCount, fs.WordCount))
	}

	var total float64
	for i, d := range res.Details {
		if !d.Matched {
			continue
		}
		res.Details[i].Contribution = base * Weights[d.Clause]
		total += res.Details[i].Contribution
		res.MatchedConditions = append(res.MatchedConditions, d.Clause)
	}

	if len(res.MatchedConditions) == 0 {
		return res, nil
	}
	res.Matched = true
	res.Confidence = min(max(total/float64(len(res.MatchedConditions)), 0), 1)
	return res, nil
}

// matchKeywords counts distinct rule keywords found inside any extracted keyword
func matchKeywords(clause domain.KeywordClause, fs domain.FeatureSet) domain.ClauseDetail {
	res := domain.ClauseDetail{Clause: domain.ClauseKeywords}
	extracted := make([]string, 0, len(fs.TitleKeywords)+len(fs.ContentKeywords))
	extracted = append(extracted, fs.TitleKeywords...)
	extracted = append(extracted, fs.ContentKeywords...)

	for _, kw := range clause.Keywords {
		if kw == "" {
			continue
		}
		if containedInAny(strings.ToLower(kw), extracted) {
			res.Hits = append(res.Hits, kw)
		}
	}

	minimum := clause.MinimumMatches
	if minimum <= 0 {
		minimum = 1
	}
	res.Matched = len(res.Hits) >= minimum
	res.Observed = fmt.Sprintf("%d of %d, minimum %d", len(res.Hits), len(clause.Keywords), minimum)
	return res
}

// matchTitlePatterns matches when any pattern is found inside any title keyword
func matchTitlePatterns(clause domain.TitlePatternClause, fs domain.FeatureSet) domain.ClauseDetail {
	res := domain.ClauseDetail{Clause: domain.ClauseTitlePatterns}
	for _, p := range clause.Patterns {
		if p == "" {
			continue
		}
		if containedInAny(strings.ToLower(p), fs.TitleKeywords) {
			res.Hits = append(res.Hits, p)
		}
	}
	res.Matched = len(res.Hits) > 0
	return res
}

func matchContentType(clause domain.ContentTypeClause, fs domain.FeatureSet) domain.ClauseDetail {
	res := domain.ClauseDetail{Clause: domain.ClauseContentType, Observed: string(fs.ContentType)}
	for _, ct := range clause.Types {
		if ct == fs.ContentType {
			res.Matched = true
			res.Hits = []string{string(ct)}
			break
		}
	}
	return res
}

func matchRange(name domain.ClauseName, clause domain.RangeClause, v int) domain.ClauseDetail {
	return domain.ClauseDetail{Clause: name, Matched: clause.Contains(v), Observed: strconv.Itoa(v)}
}

// containedInAny reports whether needle is a case-insensitive substring of any of the words
func containedInAny(needle string, words []string) bool {
	for _, w := range words {
		if strings.Contains(strings.ToLower(w), needle) {
			return true
		}
	}
	return false
}
