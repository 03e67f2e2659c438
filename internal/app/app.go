package app

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"querykeys/internal/config"
	"querykeys/internal/downstream"
	"querykeys/internal/services"
	"querykeys/pkg/categorizer"
)

type App struct {
	Config *config.Config

	Vocabulary categorizer.Vocabulary
	Extractor  *categorizer.Extractor
	Downstream *downstream.Client

	// --- Initialized Services ---
	ProcessService services.Processor
}

func NewApp(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	app := &App{Config: cfg}

	if err := app.initLogging(); err != nil {
		return nil, err
	}
	if err := app.initExtractor(); err != nil {
		return nil, err
	}
	app.initDownstream()
	app.initCoreServices()

	log.Debug("Application initialization complete.")
	return app, nil
}

// --- Private Helper Methods ---

func (a *App) initLogging() error {
	level, err := log.ParseLevel(a.Config.Log.Level)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)
	if a.Config.Log.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return nil
}

func (a *App) initExtractor() error {
	vocab, err := categorizer.NewVocabulary(a.Config.Vocabulary)
	if err != nil {
		return fmt.Errorf("init vocabulary: %w", err)
	}
	a.Vocabulary = vocab
	a.Extractor = categorizer.NewExtractor(categorizer.Preprocess(vocab))
	return nil
}

func (a *App) initDownstream() {
	cfg := a.Config
	a.Downstream = downstream.NewClient(
		cfg.Downstream.URL,
		downstream.WithTimeout(cfg.Downstream.Timeout),
		downstream.WithRateLimit(cfg.Downstream.RateLimit),
	)
	log.Debugf("Initialized search service client (URL: %s)", cfg.Downstream.URL)
}

func (a *App) initCoreServices() {
	a.ProcessService = services.NewProcessService(a.Extractor, a.Downstream)
}
