package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/umputun/autocat/pkg/domain"
	"github.com/umputun/autocat/pkg/ledger"
)

// ruleRequest is the body of rule create and update calls
type ruleRequest struct {
	Name       string            `json:"name"`
	CategoryID int64             `json:"category_id"`
	Conditions domain.Conditions `json:"conditions"`
	Priority   int               `json:"priority"`
	Active     *bool             `json:"active"` // defaults to true
	OwnerID    int64             `json:"owner_id"`
}

func (req ruleRequest) toRule() domain.Rule {
	res := domain.Rule{
		Name:       req.Name,
		CategoryID: req.CategoryID,
		Conditions: req.Conditions,
		Priority:   req.Priority,
		Active:     true,
		OwnerID:    req.OwnerID,
	}
	if req.Active != nil {
		res.Active = *req.Active
	}
	return res
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// createRuleHandler handles POST /rules
func (s *Server) createRuleHandler(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRule(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	rule, err := s.rules.CreateRule(r.Context(), req.toRule())
	if err != nil {
		renderError(w, r, err, statusFor(err))
		return
	}
	renderJSON(w, r, http.StatusCreated, rule)
}

// listRulesHandler handles GET /rules with optional category_id filter
func (s *Server) listRulesHandler(w http.ResponseWriter, r *http.Request) {
	var rules []domain.Rule
	var err error

	if catStr := r.URL.Query().Get("category_id"); catStr != "" {
		catID, parseErr := strconv.ParseInt(catStr, 10, 64)
		if parseErr != nil || catID <= 0 {
			renderError(w, r, fmt.Errorf("invalid category ID"), http.StatusBadRequest)
			return
		}
		rules, err = s.rules.ListRulesForCategory(r.Context(), catID)
	} else {
		rules, err = s.rules.ListRules(r.Context())
	}
	if err != nil {
		renderError(w, r, err, statusFor(err))
		return
	}

	if rules == nil {
		rules = []domain.Rule{}
	}
	renderJSON(w, r, http.StatusOK, rules)
}

// getRuleHandler handles GET /rules/{id}
func (s *Server) getRuleHandler(w http.ResponseWriter, r *http.Request) {
	rule, err := s.rules.GetRule(r.Context(), r.PathValue("id"))
	if err != nil {
		renderError(w, r, err, statusFor(err))
		return
	}
	renderJSON(w, r, http.StatusOK, rule)
}

// updateRuleHandler handles PUT /rules/{id}
func (s *Server) updateRuleHandler(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRule(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	rule, err := s.rules.UpdateRule(r.Context(), r.PathValue("id"), req.toRule())
	if err != nil {
		renderError(w, r, err, statusFor(err))
		return
	}
	renderJSON(w, r, http.StatusOK, rule)
}

// deleteRuleHandler handles DELETE /rules/{id}
func (s *Server) deleteRuleHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.rules.DeleteRule(r.Context(), r.PathValue("id")); err != nil {
		renderError(w, r, err, statusFor(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ruleStatsHandler handles GET /rules/{id}/stats
func (s *Server) ruleStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.rules.Statistics(r.Context(), r.PathValue("id"))
	if err != nil {
		renderError(w, r, err, statusFor(err))
		return
	}
	renderJSON(w, r, http.StatusOK, stats)
}

// runContentHandler handles POST /content/{id}/run
func (s *Server) runContentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := contentID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	report, err := s.content.RunForContent(r.Context(), id)
	if err != nil {
		renderError(w, r, err, statusFor(err))
		return
	}
	renderJSON(w, r, http.StatusOK, report)
}

// analyzeContentHandler handles GET /content/{id}/analysis
func (s *Server) analyzeContentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := contentID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	fs, err := s.content.AnalyzeContent(r.Context(), id)
	if err != nil {
		renderError(w, r, err, statusFor(err))
		return
	}
	renderJSON(w, r, http.StatusOK, fs)
}

// autoCategorizeHandler runs one auto-categorization batch and reports its summary
func (s *Server) autoCategorizeHandler(w http.ResponseWriter, r *http.Request) {
	summary, err := s.categorizer.AutoCategorize(r.Context())
	if err != nil {
		renderError(w, r, err, statusFor(err))
		return
	}
	renderJSON(w, r, http.StatusOK, summary)
}

// listLedgerHandler handles GET /ledger with filters and pagination
func (s *Server) listLedgerHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := parseLedgerFilter(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	entries, err := s.ledger.Entries(r.Context(), filter)
	if err != nil {
		renderError(w, r, err, statusFor(err))
		return
	}
	if entries == nil {
		entries = []domain.LedgerEntry{}
	}
	renderJSON(w, r, http.StatusOK, entries)
}

// pruneLedgerHandler handles DELETE /ledger?days=N
func (s *Server) pruneLedgerHandler(w http.ResponseWriter, r *http.Request) {
	days := ledger.DefaultRetentionDays
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		d, err := strconv.Atoi(daysStr)
		if err != nil || d < 1 {
			renderError(w, r, fmt.Errorf("invalid days value %q", daysStr), http.StatusBadRequest)
			return
		}
		days = d
	}

	deleted := s.ledger.Cleanup(r.Context(), days)
	renderJSON(w, r, http.StatusOK, map[string]any{"deleted": deleted, "days": days})
}

func decodeRule(r *http.Request) (ruleRequest, error) {
	var req ruleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return ruleRequest{}, fmt.Errorf("invalid rule body: %w", err)
	}
	return req, nil
}

func contentID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid content ID")
	}
	return id, nil
}

// parseLedgerFilter reads rule_id, content_id, min_confidence, since, until, limit and offset.
// Range checks are left to the ledger.
func parseLedgerFilter(r *http.Request) (domain.LedgerFilter, error) {
	q := r.URL.Query()
	filter := domain.LedgerFilter{RuleID: q.Get("rule_id")}

	var err error
	if v := q.Get("content_id"); v != "" {
		if filter.ContentID, err = strconv.ParseInt(v, 10, 64); err != nil {
			return filter, fmt.Errorf("invalid content_id %q", v)
		}
	}
	if v := q.Get("min_confidence"); v != "" {
		if filter.MinConfidence, err = strconv.ParseFloat(v, 64); err != nil {
			return filter, fmt.Errorf("invalid min_confidence %q", v)
		}
	}
	if v := q.Get("since"); v != "" {
		if filter.Since, err = time.Parse(time.RFC3339, v); err != nil {
			return filter, fmt.Errorf("invalid since %q, RFC3339 expected", v)
		}
	}
	if v := q.Get("until"); v != "" {
		if filter.Until, err = time.Parse(time.RFC3339, v); err != nil {
			return filter, fmt.Errorf("invalid until %q, RFC3339 expected", v)
		}
	}
	if v := q.Get("limit"); v != "" {
		if filter.Limit, err = strconv.Atoi(v); err != nil {
			return filter, fmt.Errorf("invalid limit %q", v)
		}
	}
	if v := q.Get("offset"); v != "" {
		if filter.Offset, err = strconv.Atoi(v); err != nil {
			return filter, fmt.Errorf("invalid offset %q", v)
		}
	}
	return filter, nil
}
