package pagepurl

import (
	"context"
	"errors"
	"log/slog"

	"github.com/git-pkgs/pagepurl/internal/core"
)

// Identifier identifies pages against a catalog and reports failures
// through a structured logger instead of returning them.
type Identifier struct {
	catalog *core.Catalog
	logger  *slog.Logger
}

// Option configures an Identifier.
type Option func(*Identifier)

// WithLogger sets a structured logger for identification diagnostics.
// If not set, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(id *Identifier) {
		id.logger = l
	}
}

// WithCatalog identifies against c instead of the default catalog.
func WithCatalog(c *Catalog) Option {
	return func(id *Identifier) {
		id.catalog = c
	}
}

func NewIdentifier(opts ...Option) *Identifier {
	id := &Identifier{}
	for _, opt := range opts {
		opt(id)
	}
	if id.catalog == nil {
		id.catalog = core.Default()
	}
	if id.logger == nil {
		id.logger = slog.New(slog.DiscardHandler)
	}
	return id
}

// Identify matches url against the catalog and extracts a coordinate.
func (id *Identifier) Identify(url string, dom DOM) (*Coordinate, bool) {
	rt, ok := id.catalog.Match(url)
	if !ok {
		id.logger.Debug("no registry for page", "url", url)
		return nil, false
	}
	return id.Extract(rt, url, dom)
}

// Extract applies rt to a page. Configuration and validation problems are
// logged at warn level; pages that simply do not match are logged at debug.
func (id *Identifier) Extract(rt *RegistryType, url string, dom DOM) (*Coordinate, bool) {
	c, err := core.ExtractErr(rt, url, dom)
	if err != nil {
		id.logFailure(rt, url, err)
		return nil, false
	}
	id.logger.Debug("identified page", "url", url, "registry", rt.ID, "purl", c.String())
	return c, true
}

func (id *Identifier) logFailure(rt *RegistryType, url string, err error) {
	var registry string
	if rt != nil {
		registry = rt.ID
	}

	var (
		cfgErr *core.ConfigurationError
		valErr *core.ValidationError
	)
	switch {
	case errors.As(err, &cfgErr):
		id.logger.Warn("registry configuration error", "url", url, "registry", registry, "error", err)
	case errors.As(err, &valErr):
		id.logger.Warn("invalid coordinate", "url", url, "registry", registry, "field", valErr.Field, "error", err)
	default:
		id.logger.Debug("page not identified", "url", url, "registry", registry)
	}
}

// BulkIdentify identifies many pages in parallel using the identifier's catalog.
func (id *Identifier) BulkIdentify(ctx context.Context, urls []string, loader PageLoader) map[string]*Coordinate {
	results := id.catalog.BulkIdentify(ctx, urls, loader)
	id.logger.Debug("bulk identification finished", "pages", len(urls), "identified", len(results))
	return results
}
