// Package container wires the ingestion pipeline's components from the
// application configuration.
package container

import (
	"fmt"

	"github.com/IqbalNugrahaa/HappiestStore/internal/catalog"
	"github.com/IqbalNugrahaa/HappiestStore/internal/config"
	"github.com/IqbalNugrahaa/HappiestStore/internal/ingest"
	"github.com/IqbalNugrahaa/HappiestStore/internal/logging"
	"github.com/IqbalNugrahaa/HappiestStore/internal/matcher"
	"github.com/IqbalNugrahaa/HappiestStore/internal/reconcile"
)

// Container holds the application's components. It is immutable after
// creation; use the getters to reach its parts.
type Container struct {
	logger     logging.Logger
	config     *config.Config
	parser     *ingest.Parser
	matcher    *matcher.Matcher
	catalogs   *catalog.CachedLoader
	reconciler *reconcile.Reconciler
}

// NewContainer creates a logger from cfg and wires every component with it.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, cfg.NewLogger())
}

// NewContainerWithLogger wires every component with the given logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	logger = logging.OrDiscard(logger)

	vocab := matcher.DefaultVocabulary()
	if cfg.Matcher.VocabularyFile != "" {
		loaded, err := matcher.LoadVocabulary(cfg.Matcher.VocabularyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load matcher vocabulary: %w", err)
		}
		vocab = loaded
		logger.Debug("Matcher vocabulary loaded", logging.F(logging.FieldFile, cfg.Matcher.VocabularyFile))
	}

	parser := ingest.NewParser(ingest.Config{
		Delimiters: cfg.IngestDelimiters(),
		SampleSize: cfg.Ingest.SampleSize,
	}, logger)
	m := matcher.New(vocab, cfg.Matcher.Threshold, logger)
	catalogs := catalog.NewCachedLoader(catalog.NewLoader(logger), cfg.CatalogCacheTTL())
	reconciler := reconcile.New(m, cfg.Workers, logger)

	logger.Debug("Container initialized",
		logging.F(logging.FieldWorkers, cfg.Workers),
		logging.F(logging.FieldSimilarity, m.Threshold()))

	return &Container{
		logger:     logger,
		config:     cfg,
		parser:     parser,
		matcher:    m,
		catalogs:   catalogs,
		reconciler: reconciler,
	}, nil
}

// LoadCatalog loads the catalog at path, or the configured catalog file when
// path is empty. Relative names are also searched for in the usual catalog
// locations.
func (c *Container) LoadCatalog(path string) (catalog.LoadResult, error) {
	if path == "" {
		path = c.config.Catalog.File
	}
	if path == "" {
		return catalog.LoadResult{}, fmt.Errorf("no catalog file given (use --catalog or catalog.file)")
	}

	resolved, err := catalog.FindCatalogFile(path)
	if err != nil {
		return catalog.LoadResult{}, fmt.Errorf("catalog file not found: %s", path)
	}
	return c.catalogs.Load(resolved)
}

// GetLogger returns the container's logger.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the configuration the container was built from.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetParser returns the CSV ingestor.
func (c *Container) GetParser() *ingest.Parser {
	return c.parser
}

// GetMatcher returns the catalog matcher.
func (c *Container) GetMatcher() *matcher.Matcher {
	return c.matcher
}

// GetReconciler returns the payload builder.
func (c *Container) GetReconciler() *reconcile.Reconciler {
	return c.reconciler
}

// GetCatalogLoader returns the cached catalog loader.
func (c *Container) GetCatalogLoader() *catalog.CachedLoader {
	return c.catalogs
}
