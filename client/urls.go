// Package client builds the related URLs of an identified package: its
// registry page, artifact download, documentation and package URL.
package client

import (
	"fmt"
	"strings"

	"github.com/git-pkgs/pagepurl/fetch"
	"github.com/git-pkgs/pagepurl/internal/core"
)

// URLBuilder constructs URLs for a coordinate.
type URLBuilder interface {
	Registry(c *core.Coordinate) string
	Download(c *core.Coordinate) string
	Documentation(c *core.Coordinate) string
	PURL(c *core.Coordinate) string
}

// BaseURLs is a URLBuilder assembled from optional functions.
type BaseURLs struct {
	RegistryFn      func(c *core.Coordinate) string
	DownloadFn      func(c *core.Coordinate) string
	DocumentationFn func(c *core.Coordinate) string
	PURLFn          func(c *core.Coordinate) string
}

func (b *BaseURLs) Registry(c *core.Coordinate) string {
	if b.RegistryFn != nil {
		return b.RegistryFn(c)
	}
	return ""
}

func (b *BaseURLs) Download(c *core.Coordinate) string {
	if b.DownloadFn != nil {
		return b.DownloadFn(c)
	}
	return ""
}

func (b *BaseURLs) Documentation(c *core.Coordinate) string {
	if b.DocumentationFn != nil {
		return b.DocumentationFn(c)
	}
	return ""
}

func (b *BaseURLs) PURL(c *core.Coordinate) string {
	if b.PURLFn != nil {
		return b.PURLFn(c)
	}
	return c.String()
}

// DefaultURLs returns a builder that takes page URLs from catalog and
// download URLs from the artifact resolver.
func DefaultURLs(catalog *core.Catalog) *BaseURLs {
	resolver := fetch.NewResolver(nil)
	return &BaseURLs{
		RegistryFn: catalog.PageURL,
		DownloadFn: func(c *core.Coordinate) string {
			info, err := resolver.Resolve(c)
			if err != nil {
				return ""
			}
			return info.URL
		},
		DocumentationFn: Documentation,
	}
}

// Documentation returns the hosted API documentation for c, or "" when the
// ecosystem has no canonical documentation site.
func Documentation(c *core.Coordinate) string {
	name, version := c.Name(), c.Version()
	switch c.Ecosystem() {
	case core.Cargo:
		return fmt.Sprintf("https://docs.rs/%s/%s", name, version)
	case core.Golang:
		return fmt.Sprintf("https://pkg.go.dev/%s@%s", c.FullName(), version)
	case core.Hex:
		return fmt.Sprintf("https://hexdocs.pm/%s/%s", name, version)
	case core.Pub:
		return fmt.Sprintf("https://pub.dev/documentation/%s/%s/", name, version)
	case core.Gem:
		return fmt.Sprintf("https://www.rubydoc.info/gems/%s/%s", name, version)
	case core.Maven:
		return fmt.Sprintf("https://javadoc.io/doc/%s/%s/%s", c.Namespace(), name, version)
	case core.Hackage:
		return fmt.Sprintf("https://hackage.haskell.org/package/%s-%s/docs", name, version)
	case core.Deno:
		return fmt.Sprintf("https://deno.land/x/%s@%s?doc", name, version)
	case core.CRAN:
		return fmt.Sprintf("https://cran.r-project.org/web/packages/%s/%s.pdf", name, name)
	case core.NuGet:
		return fmt.Sprintf("https://www.fuget.org/packages/%s/%s", name, strings.ToLower(version))
	}
	return ""
}

// BuildURLs returns a map of all non-empty URLs for c.
// Keys are "registry", "download", "docs", and "purl".
func BuildURLs(urls URLBuilder, c *core.Coordinate) map[string]string {
	result := make(map[string]string)
	if v := urls.Registry(c); v != "" {
		result["registry"] = v
	}
	if v := urls.Download(c); v != "" {
		result["download"] = v
	}
	if v := urls.Documentation(c); v != "" {
		result["docs"] = v
	}
	if v := urls.PURL(c); v != "" {
		result["purl"] = v
	}
	return result
}
