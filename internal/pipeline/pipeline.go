package pipeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/afero"

	"github.com/ppiankov/msgsweep/internal/cache"
	"github.com/ppiankov/msgsweep/internal/catalog"
	"github.com/ppiankov/msgsweep/internal/corpus"
	"github.com/ppiankov/msgsweep/internal/match"
	"github.com/ppiankov/msgsweep/internal/model"
	"github.com/ppiankov/msgsweep/internal/worker"
)

// ErrUnusedMessages reports that at least one declared identifier has no
// usage evidence. It is the expected outcome of a failing check, not a
// malfunction, and maps to a non-zero exit status.
var ErrUnusedMessages = errors.New("unused messages found")

// Pipeline orchestrates the complete sweep: parse catalog, load corpus,
// classify every identifier, assemble the report.
type Pipeline struct {
	parser     *catalog.Parser
	loader     *corpus.Loader
	classifier *match.Classifier
	config     *model.Config
}

// NewPipeline creates a new pipeline with the given configuration. A nil fs
// defaults to the OS filesystem; tests inject an in-memory one.
func NewPipeline(cfg *model.Config, fs afero.Fs) *Pipeline {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	var contentCache cache.Cache
	if cfg.Corpus.CacheEnabled {
		contentCache = cache.NewMemoryCache(15*time.Minute, 5*time.Minute)
	}

	return &Pipeline{
		parser: catalog.NewParser(fs),
		loader: corpus.NewLoader(fs, cfg.Corpus.Extensions, contentCache),
		classifier: match.NewClassifier(
			match.NewStatic(),
			match.NewDynamic(cfg.Match.MinFragmentLength, cfg.Match.InterpolationMarker),
		),
		config: cfg,
	}
}

// Run performs one complete sweep. Catalog and corpus are loaded fully into
// memory before any matching begins; an unreadable catalog or search root
// aborts the run before any classification is produced. A sweep always runs
// to completion, so there is no cancellation and no caller context.
func (p *Pipeline) Run() (*model.Report, error) {
	ids, err := p.parser.ParseFile(p.config.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	corp, err := p.loader.Load(p.config.Corpus.Roots)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}

	results := worker.ClassifyAll(ids, corp, p.classifier, p.config.Concurrency.Workers)

	var summary model.Summary
	for _, c := range results {
		switch c.State {
		case model.StateUsed:
			summary.Used++
		case model.StateDynamic:
			summary.Dynamic++
		case model.StateUnused:
			summary.Unused++
		}
	}

	return &model.Report{
		CatalogPath:  p.config.Catalog.Path,
		ScannedAt:    time.Now().UTC(),
		MessageCount: len(ids),
		FileCount:    corp.Len(),
		Results:      results,
		Summary:      summary,
	}, nil
}
