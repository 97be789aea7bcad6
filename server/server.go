package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/autocat/pkg/domain"
	"github.com/umputun/autocat/pkg/scheduler"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/rule_manager.go -pkg mocks -skip-ensure -fmt goimports . RuleManager
//go:generate moq -out mocks/content_runner.go -pkg mocks -skip-ensure -fmt goimports . ContentRunner
//go:generate moq -out mocks/ledger_manager.go -pkg mocks -skip-ensure -fmt goimports . LedgerManager
//go:generate moq -out mocks/categorizer.go -pkg mocks -skip-ensure -fmt goimports . Categorizer

// Server represents HTTP server instance
type Server struct {
	config      ConfigProvider
	rules       RuleManager
	content     ContentRunner
	ledger      LedgerManager
	categorizer Categorizer
	version     string
	debug       bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// RuleManager handles rule authoring and statistics
type RuleManager interface {
	CreateRule(ctx context.Context, rule domain.Rule) (*domain.Rule, error)
	GetRule(ctx context.Context, id string) (*domain.Rule, error)
	ListRules(ctx context.Context) ([]domain.Rule, error)
	ListRulesForCategory(ctx context.Context, categoryID int64) ([]domain.Rule, error)
	UpdateRule(ctx context.Context, id string, rule domain.Rule) (*domain.Rule, error)
	DeleteRule(ctx context.Context, id string) error
	Statistics(ctx context.Context, ruleID string) (domain.RuleStats, error)
}

// ContentRunner runs rules against content on demand
type ContentRunner interface {
	RunForContent(ctx context.Context, contentID int64) (*domain.RunReport, error)
	AnalyzeContent(ctx context.Context, contentID int64) (domain.FeatureSet, error)
}

// LedgerManager reads and prunes the execution ledger
type LedgerManager interface {
	Entries(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerEntry, error)
	Cleanup(ctx context.Context, daysToKeep int) int64
}

// Categorizer runs an auto-categorization batch on demand
type Categorizer interface {
	AutoCategorize(ctx context.Context) (domain.BatchSummary, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// Params holds the services exposed by the server
type Params struct {
	Rules       RuleManager
	Content     ContentRunner
	Ledger      LedgerManager
	Categorizer Categorizer
}

// New initializes a new server instance
func New(cfg ConfigProvider, params Params, version string, debug bool) *Server {
	s := &Server{
		config:      cfg,
		rules:       params.Rules,
		content:     params.Content,
		ledger:      params.Ledger,
		categorizer: params.Categorizer,
		version:     version,
		debug:       debug,
		router:      routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("autocat", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		// rule authoring
		r.HandleFunc("POST /rules", s.createRuleHandler)
		r.HandleFunc("GET /rules", s.listRulesHandler)
		r.HandleFunc("GET /rules/{id}", s.getRuleHandler)
		r.HandleFunc("PUT /rules/{id}", s.updateRuleHandler)
		r.HandleFunc("DELETE /rules/{id}", s.deleteRuleHandler)
		r.HandleFunc("GET /rules/{id}/stats", s.ruleStatsHandler)

		// rule execution
		r.HandleFunc("POST /content/{id}/run", s.runContentHandler)
		r.HandleFunc("GET /content/{id}/analysis", s.analyzeContentHandler)
		r.HandleFunc("POST /autocategorize", s.autoCategorizeHandler)

		// ledger
		r.HandleFunc("GET /ledger", s.listLedgerHandler)
		r.HandleFunc("DELETE /ledger", s.pruneLedgerHandler)
	})
}

// statusFor maps an error to the HTTP status code
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, scheduler.ErrRunInProgress):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	if code >= http.StatusInternalServerError {
		log.Printf("[ERROR] %s %s: %v", r.Method, r.URL.Path, err)
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
