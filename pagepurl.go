// Package pagepurl identifies the package a registry web page describes.
//
// Given the URL of a page such as
// https://central.sonatype.com/artifact/org.cyclonedx/cyclonedx-core-java/7.3.2
// and optionally the page's document, it returns a package coordinate
// (ecosystem, namespace, name, version, qualifiers) that renders as a
// Package URL: pkg:maven/org.cyclonedx/cyclonedx-core-java@7.3.2.
//
// Basic usage:
//
//	import (
//		"github.com/git-pkgs/pagepurl"
//		_ "github.com/git-pkgs/pagepurl/all"
//	)
//
//	c, ok := pagepurl.Identify("https://pypi.org/project/Django/4.2.1/", nil)
//	if ok {
//		fmt.Println(c) // pkg:pypi/Django@4.2.1?extension=tar.gz
//	}
//
// Pages whose URL does not carry a version need the rendered document:
//
//	doc, err := pagepurl.ParseHTML(html)
//	c, ok := pagepurl.Identify("https://pypi.org/project/Django/", doc)
//
// Registry sites are registered by importing their packages. Importing
// the all subpackage registers every supported site.
package pagepurl

import (
	"context"
	"io"

	"github.com/git-pkgs/purl"

	"github.com/git-pkgs/pagepurl/client"
	"github.com/git-pkgs/pagepurl/internal/core"
)

// Re-export types from internal/core
type (
	// Coordinate is an immutable package identity.
	Coordinate = core.Coordinate

	// RegistryType describes one recognized registry site.
	RegistryType = core.RegistryType

	// VersionSelector reads a version from a page document.
	VersionSelector = core.VersionSelector

	// PathPattern matches the URL path after a registry prefix.
	PathPattern = core.PathPattern

	// Captures holds the named groups of a path match.
	Captures = core.Captures

	// Fields are the coordinate parts a registry type extracts from a path.
	Fields = core.Fields

	// Catalog is an ordered set of registry types.
	Catalog = core.Catalog

	// DOM gives read access to a page document.
	DOM = core.DOM

	// StaticDOM is a DOM backed by a selector to text map.
	StaticDOM = core.StaticDOM

	// HTMLDocument is a DOM backed by parsed HTML.
	HTMLDocument = core.HTMLDocument

	// PageLoader returns the document for a page URL.
	PageLoader = core.PageLoader
)

// Error types
type (
	ValidationError    = core.ValidationError
	ConfigurationError = core.ConfigurationError
)

// Re-export errors
var (
	ErrNoMatch = core.ErrNoMatch
)

// Normalize strips the query string and fragment from url.
func Normalize(url string) string {
	return core.Normalize(url)
}

// CompilePattern compiles a path pattern for a custom registry type.
func CompilePattern(expr string) (*PathPattern, error) {
	return core.CompilePattern(expr)
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return core.NewCatalog()
}

// DefaultCatalog returns the catalog that site packages register into.
func DefaultCatalog() *Catalog {
	return core.Default()
}

// Register adds a registry type to the default catalog.
func Register(rt RegistryType) error {
	return core.Register(rt)
}

// Registries returns the default catalog's entries in match order.
func Registries() []*RegistryType {
	return core.Default().Entries()
}

// SupportedEcosystems returns the distinct ecosystems of registered sites.
// Note: sites must be imported to be registered.
func SupportedEcosystems() []string {
	return core.Default().Ecosystems()
}

// Match returns the registry type whose prefix matches url.
func Match(url string) (*RegistryType, bool) {
	return core.Default().Match(url)
}

// Extract applies a single registry type to a page.
func Extract(rt *RegistryType, url string, dom DOM) (*Coordinate, bool) {
	return core.Extract(rt, url, dom)
}

// Identify matches url against the default catalog and extracts a coordinate.
// dom may be nil when the page document is unavailable.
func Identify(url string, dom DOM) (*Coordinate, bool) {
	c, err := core.Default().Identify(url, dom)
	return c, err == nil
}

// Build assembles a validated coordinate.
func Build(ecosystem, namespace, name, version string, qualifiers map[string]string) (*Coordinate, error) {
	return core.Build(ecosystem, namespace, name, version, qualifiers)
}

// ParsePURL parses a versioned Package URL into a coordinate.
func ParsePURL(s string) (*Coordinate, error) {
	return core.ParsePURL(s)
}

// PURL represents a parsed Package URL.
type PURL = purl.PURL

// ParsePackageURL parses a Package URL string into its components.
// Unlike ParsePURL it accepts PURLs without a version.
func ParsePackageURL(s string) (*PURL, error) {
	return purl.Parse(s)
}

// ParseHTML parses a page document from a string.
func ParseHTML(html string) (*HTMLDocument, error) {
	return core.ParseHTML(html)
}

// NewHTMLDocument parses a page document from r.
func NewHTMLDocument(r io.Reader) (*HTMLDocument, error) {
	return core.NewHTMLDocument(r)
}

// PageURL returns the canonical registry page for c, or "" if no
// registered site of its ecosystem can render one.
func PageURL(c *Coordinate) string {
	return core.Default().PageURL(c)
}

// BuildURLs returns a map of all non-empty URLs for c.
// Keys are "registry", "download", "docs", and "purl".
func BuildURLs(c *Coordinate) map[string]string {
	return client.BuildURLs(client.DefaultURLs(core.Default()), c)
}

// BulkIdentify identifies many pages in parallel.
// Pages that do not yield a coordinate are omitted from the result.
// loader may be nil to identify from URLs alone.
func BulkIdentify(ctx context.Context, urls []string, loader PageLoader) map[string]*Coordinate {
	return core.Default().BulkIdentify(ctx, urls, loader)
}

// BulkIdentifyWithConcurrency identifies pages with a custom concurrency limit.
func BulkIdentifyWithConcurrency(ctx context.Context, urls []string, loader PageLoader, concurrency int) map[string]*Coordinate {
	return core.Default().BulkIdentifyWithConcurrency(ctx, urls, loader, concurrency)
}
