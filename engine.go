// Package kbase embeds the knowledge retrieval engine in-process: no HTTP
// server, just a corpus, TF-IDF retrieval, and the Strategic Catalyst
// persona.
//
//	eng, _ := kbase.New()
//	resp, _ := eng.Query(ctx, "how do I validate my business model?",
//	    kbase.InDomains("business"),
//	)
package kbase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/execai/kbase/internal/domain"
	"github.com/execai/kbase/internal/repository/corpus"
	personauc "github.com/execai/kbase/internal/usecase/persona"
	retrievaluc "github.com/execai/kbase/internal/usecase/retrieval"
)

// Option configures the Engine.
type Option interface {
	apply(*engineConfig)
}

type optionFunc func(*engineConfig)

func (f optionFunc) apply(c *engineConfig) { f(c) }

type engineConfig struct {
	itemsPath   string
	domainsPath string
	items       []domain.KnowledgeItem
	domains     []domain.Domain
	logger      *zap.Logger
}

// WithCorpusFiles loads the corpus from YAML files instead of the built-in seed.
func WithCorpusFiles(itemsPath, domainsPath string) Option {
	return optionFunc(func(c *engineConfig) {
		c.itemsPath = itemsPath
		c.domainsPath = domainsPath
	})
}

// WithCorpus supplies the corpus directly.
func WithCorpus(items []domain.KnowledgeItem, domains []domain.Domain) Option {
	return optionFunc(func(c *engineConfig) {
		c.items = items
		c.domains = domains
	})
}

// WithLogger enables structured logging. Disabled by default.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *engineConfig) {
		c.logger = l
	})
}

// QueryOption narrows a query.
type QueryOption func(*queryParams)

type queryParams struct {
	domains      []string
	capabilities []string
}

// InDomains restricts results to the given domains.
func InDomains(domains ...string) QueryOption {
	return func(p *queryParams) {
		p.domains = domains
	}
}

// WithCapabilities restricts results to items carrying any of the capabilities.
func WithCapabilities(capabilities ...string) QueryOption {
	return func(p *queryParams) {
		p.capabilities = capabilities
	}
}

// Engine is the embedded kbase entry point.
type Engine struct {
	retrieval *retrievaluc.Service
	persona   *personauc.Service
}

// New builds an Engine. Without options it serves the built-in seed corpus.
func New(opts ...Option) (*Engine, error) {
	cfg := &engineConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	items, domains := cfg.items, cfg.domains
	if cfg.itemsPath != "" {
		var err error
		items, err = corpus.LoadItems(cfg.itemsPath)
		if err != nil {
			return nil, fmt.Errorf("kbase: load items: %w", err)
		}
		domains, err = corpus.LoadDomains(cfg.domainsPath)
		if err != nil {
			return nil, fmt.Errorf("kbase: load domains: %w", err)
		}
	}
	if items == nil {
		items = corpus.SeedItems()
		domains = corpus.SeedDomains()
	}

	if err := corpus.Validate(items, domains); err != nil {
		return nil, fmt.Errorf("kbase: invalid corpus: %w", err)
	}

	retrieval, err := retrievaluc.New(items, domains, cfg.logger)
	if err != nil {
		return nil, fmt.Errorf("kbase: build engine: %w", err)
	}

	return &Engine{
		retrieval: retrieval,
		persona:   personauc.New(retrieval),
	}, nil
}

// Query runs a knowledge query.
func (e *Engine) Query(ctx context.Context, query string, opts ...QueryOption) (domain.QueryResponse, error) {
	var p queryParams
	for _, o := range opts {
		o(&p)
	}

	req, err := domain.NewQueryRequest(query, p.domains, p.capabilities)
	if err != nil {
		return domain.QueryResponse{}, err
	}
	return e.retrieval.Query(ctx, req)
}

// Domains lists the knowledge domains.
func (e *Engine) Domains(ctx context.Context) []domain.Domain {
	return e.retrieval.Domains(ctx)
}

// Respond asks the Strategic Catalyst persona for a reply.
func (e *Engine) Respond(ctx context.Context, query string) (personauc.Response, error) {
	return e.persona.Respond(ctx, query, nil)
}

// Profile returns the static persona profile.
func (e *Engine) Profile() personauc.Profile {
	return e.persona.Profile()
}
