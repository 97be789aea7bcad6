package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/autocat/pkg/config"
	"github.com/umputun/autocat/pkg/engine"
	"github.com/umputun/autocat/pkg/features"
	"github.com/umputun/autocat/pkg/ledger"
	"github.com/umputun/autocat/pkg/repository"
	"github.com/umputun/autocat/pkg/rules"
	"github.com/umputun/autocat/pkg/scheduler"
	"github.com/umputun/autocat/pkg/service"
	"github.com/umputun/autocat/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"autocat.yml" description:"configuration file"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

// contentManager joins content and category stores for the scheduler
type contentManager struct {
	*repository.ContentRepository
	*repository.CategoryRepository
}

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug, opts.NoColor)
	log.Printf("[INFO] starting autocat version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()
	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires storage, engine, scheduler and server, and blocks until ctx is canceled
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to init database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	extCfg := features.Config{
		MaxKeywords:    cfg.Extraction.MaxKeywords,
		WordsPerMinute: cfg.Extraction.WordsPerMinute,
		TopicCount:     cfg.Extraction.TopicCount,
	}
	if cfg.Extraction.LexiconFile != "" {
		if extCfg.Lexicon, err = features.LoadLexicon(cfg.Extraction.LexiconFile); err != nil {
			return fmt.Errorf("failed to load lexicon: %w", err)
		}
		log.Printf("[INFO] using lexicon %s", cfg.Extraction.LexiconFile)
	}
	extractor, err := features.NewExtractor(extCfg)
	if err != nil {
		return fmt.Errorf("failed to init feature extractor: %w", err)
	}

	led := ledger.New(repos.Ledger, ledger.Params{
		StatsWindow:      cfg.Engine.StatsWindow,
		RecentExecutions: cfg.Engine.RecentExecutions,
		SuccessThreshold: *cfg.Engine.SuccessThreshold,
	})

	eng := engine.New(engine.Params{
		Rules:      repos.Rule,
		Content:    repos.Content,
		Recorder:   led,
		Extractor:  extractor,
		Evaluator:  rules.NewEvaluator(),
		RunTimeout: cfg.Engine.RunTimeout,
	})

	sched := scheduler.New(scheduler.Params{
		ContentManager:  contentManager{ContentRepository: repos.Content, CategoryRepository: repos.Category},
		RuleRunner:      eng,
		LedgerCleaner:   led,
		Interval:        cfg.Schedule.AutocategorizeInterval,
		Lookback:        cfg.Schedule.Lookback,
		BatchLimit:      cfg.Schedule.BatchLimit,
		Threshold:       *cfg.Engine.AutoAssignThreshold,
		CleanupInterval: cfg.Schedule.CleanupInterval,
		RetentionDays:   cfg.Schedule.RetentionDays,
		RetryAttempts:   cfg.Schedule.RetryAttempts,
		RetryDelay:      cfg.Schedule.RetryInitialDelay,
		RetryMaxDelay:   cfg.Schedule.RetryMaxDelay,
	})
	if cfg.Schedule.Disabled {
		log.Printf("[INFO] background jobs disabled, auto-categorization runs on demand only")
	} else {
		sched.Start(ctx)
		defer sched.Stop()
	}

	srv := server.New(cfg, server.Params{
		Rules:       service.NewRuleService(repos.Rule, repos.Category, led),
		Content:     eng,
		Ledger:      led,
		Categorizer: sched,
	}, revision, opts.Debug)

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
