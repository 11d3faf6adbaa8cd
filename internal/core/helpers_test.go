package core

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func bulkCatalog(t *testing.T) *Catalog {
	t.Helper()
	c := NewCatalog()
	rt := *pypiLike()
	if err := c.Register(rt); err != nil {
		t.Fatal(err)
	}
	return c
}

func TestBulkIdentify(t *testing.T) {
	c := bulkCatalog(t)

	urls := []string{
		"https://pypi.example/project/Django/4.2.1/",
		"https://pypi.example/project/requests/",
		"https://pypi.example/project/broken/",
		"https://unknown.example/project/x/",
	}

	var loads atomic.Int32
	loader := func(ctx context.Context, url string) (DOM, error) {
		loads.Add(1)
		switch url {
		case "https://pypi.example/project/requests/":
			return StaticDOM{"h1.package-header__name": "requests 2.31.0"}, nil
		case "https://pypi.example/project/broken/":
			return nil, errors.New("load failed")
		}
		return StaticDOM{}, nil
	}

	results := c.BulkIdentify(context.Background(), urls, loader)

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d: %v", len(results), results)
	}
	if got := results["https://pypi.example/project/requests/"]; got == nil || got.Version() != "2.31.0" {
		t.Errorf("requests = %v", got)
	}
	if got := results["https://pypi.example/project/Django/4.2.1/"]; got == nil || got.Version() != "4.2.1" {
		t.Errorf("Django = %v", got)
	}
	// Unknown registries are never loaded.
	if n := loads.Load(); n != 3 {
		t.Errorf("loader called %d times, want 3", n)
	}
}

func TestBulkIdentifyWithoutLoader(t *testing.T) {
	c := bulkCatalog(t)

	results := c.BulkIdentifyWithConcurrency(context.Background(), []string{
		"https://pypi.example/project/Django/4.2.1/",
		"https://pypi.example/project/requests/",
	}, nil, 0)

	if len(results) != 1 {
		t.Errorf("expected 1 result, got %d", len(results))
	}
}
