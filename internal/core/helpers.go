package core

import (
	"context"
	"sync"
)

const defaultConcurrency = 15

// PageLoader returns the rendered document for a page URL.
type PageLoader func(ctx context.Context, url string) (DOM, error)

// BulkIdentify identifies many page URLs in parallel.
// Pages that do not yield a coordinate, or whose loader fails, are omitted.
// If loader is nil, identification uses the URL alone.
// Returns a map of page URL to Coordinate.
func (c *Catalog) BulkIdentify(ctx context.Context, urls []string, loader PageLoader) map[string]*Coordinate {
	return c.BulkIdentifyWithConcurrency(ctx, urls, loader, defaultConcurrency)
}

// BulkIdentifyWithConcurrency identifies pages with a custom concurrency limit.
func (c *Catalog) BulkIdentifyWithConcurrency(ctx context.Context, urls []string, loader PageLoader, concurrency int) map[string]*Coordinate {
	if concurrency < 1 {
		concurrency = 1
	}
	results := make(map[string]*Coordinate)
	var mu sync.Mutex
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for _, url := range urls {
		wg.Add(1)
		go func(u string) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				return
			}

			// Skip loading pages the catalog cannot identify anyway.
			rt, ok := c.Match(u)
			if !ok {
				return
			}

			var dom DOM
			if loader != nil {
				d, err := loader(ctx, u)
				if err != nil {
					return
				}
				dom = d
			}

			coord, err := ExtractErr(rt, u, dom)
			if err == nil {
				mu.Lock()
				results[u] = coord
				mu.Unlock()
			}
		}(url)
	}

	wg.Wait()
	return results
}
