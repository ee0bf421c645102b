package main

import (
	"fmt"
	"os"

	"github.com/ersonp/dex/internal/application/handlers"
	"github.com/ersonp/dex/internal/domain/ports"
	"github.com/ersonp/dex/internal/domain/services"
	"github.com/ersonp/dex/internal/infrastructure/catalog/pokeapi"
	"github.com/ersonp/dex/internal/infrastructure/config"
	"github.com/ersonp/dex/internal/infrastructure/exporters"
	"github.com/ersonp/dex/internal/infrastructure/logging"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services and clients are internal.
type Deps struct {
	Config         *config.Config
	Logger         *logging.Logger
	CatalogHandler *handlers.CatalogHandler
	ExportHandler  *handlers.ExportHandler
}

// internalDeps holds all dependencies including low-level components.
type internalDeps struct {
	Deps
	client   *pokeapi.Client
	index    *services.NameIndex
	resolver *services.Resolver
}

// newController builds a controller rendering to renderer, which may be nil.
func (d *internalDeps) newController(renderer ports.Renderer) *services.Controller {
	return services.NewController(d.client, d.index, d.resolver, renderer, services.ControllerConfig{
		PageSize:   d.Config.Browse.PageSize,
		MaxResults: d.Config.Search.MaxResults,
		Logger:     d.Logger,
	})
}

// withDeps loads config and builds dependencies, then calls the provided function.
// It handles cleanup automatically.
func withDeps(fn func(*Deps) error) error {
	return withInternalDeps(func(d *internalDeps) error {
		return fn(&d.Deps)
	})
}

// withSession provides a navigation session whose controller renders to renderer.
func withSession(renderer ports.Renderer, fn func(*handlers.SessionHandler, *Deps) error) error {
	return withInternalDeps(func(d *internalDeps) error {
		session := handlers.NewSessionHandler(d.newController(renderer), d.Config.Search.Debounce, d.Logger)
		defer session.Close()
		return fn(session, &d.Deps)
	})
}

// withInternalDeps provides access to all dependencies including low-level components.
func withInternalDeps(fn func(*internalDeps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if globalBaseURL != "" {
		cfg.Catalog.BaseURL = globalBaseURL
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid --base-url: %w", err)
		}
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Close()

	client, err := pokeapi.NewClient(cfg.Catalog)
	if err != nil {
		return fmt.Errorf("creating catalog client: %w", err)
	}
	logger.Debug("catalog client for %s", client.BaseURL())

	d := &internalDeps{
		Deps:     Deps{Config: cfg, Logger: logger},
		client:   client,
		index:    services.NewNameIndex(client, cfg.Search.IndexLimit),
		resolver: services.NewResolver(client, cfg.Search.Concurrency),
	}

	d.CatalogHandler = handlers.NewCatalogHandler(client, d.newController(nil))
	d.ExportHandler = handlers.NewExportHandler(d.CatalogHandler, exporters.All()...)

	return fn(d)
}

// newLogger applies the global flags over the configured log settings.
func newLogger(cfg config.LogConfig) (*logging.Logger, error) {
	level, err := logging.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}
	if globalVerbose && level < logging.LevelVerbose {
		level = logging.LevelVerbose
	}
	if globalDebug {
		level = logging.LevelDebug
	}

	file := cfg.File
	if globalLogFile != "" {
		file = globalLogFile
	}

	logger, err := logging.New(level, file)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	return logger, nil
}
