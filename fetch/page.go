package fetch

import (
	"context"
	"fmt"
	"io"

	"github.com/git-pkgs/pagepurl/internal/core"
)

// maxPageSize bounds how much of a page body is parsed.
const maxPageSize = 10 << 20

// LoadPage fetches url and parses it into a queryable document.
func LoadPage(ctx context.Context, f PageFetcher, url string) (*core.HTMLDocument, error) {
	resp, err := f.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	doc, err := core.NewHTMLDocument(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", url, err)
	}
	return doc, nil
}

// Loader adapts f to the page loader used for bulk identification.
func Loader(f PageFetcher) core.PageLoader {
	return func(ctx context.Context, url string) (core.DOM, error) {
		doc, err := LoadPage(ctx, f, url)
		if err != nil {
			return nil, err
		}
		return doc, nil
	}
}

// LoadPage fetches url and parses it into a queryable document.
func (f *Fetcher) LoadPage(ctx context.Context, url string) (*core.HTMLDocument, error) {
	return LoadPage(ctx, f, url)
}

// LoadPage fetches url through the host's breaker and parses the result.
func (cbf *CircuitBreakerFetcher) LoadPage(ctx context.Context, url string) (*core.HTMLDocument, error) {
	return LoadPage(ctx, cbf, url)
}
