package fetch

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/git-pkgs/pagepurl/internal/core"
)

var ErrUnsupportedEcosystem = errors.New("unsupported ecosystem")

// Resolver maps coordinates to downloadable artifacts.
type Resolver struct {
	fetcher PageFetcher
}

// NewResolver creates a resolver. f is only needed for Check and may be nil.
func NewResolver(f PageFetcher) *Resolver {
	return &Resolver{fetcher: f}
}

// ArtifactInfo describes a downloadable artifact.
type ArtifactInfo struct {
	URL         string
	Filename    string
	Size        int64 // -1 if unknown or unchecked
	ContentType string
}

// Resolve returns the artifact URL and filename for c without network access.
func (r *Resolver) Resolve(c *core.Coordinate) (*ArtifactInfo, error) {
	name, version := c.Name(), c.Version()
	var url, filename string

	switch c.Ecosystem() {
	case core.NPM:
		url = fmt.Sprintf("https://registry.npmjs.org/%s/-/%s-%s.tgz", c.FullName(), name, version)
		filename = fmt.Sprintf("%s-%s.tgz", name, version)

	case core.Cargo:
		url = fmt.Sprintf("https://static.crates.io/crates/%s/%s-%s.crate", name, name, version)
		filename = fmt.Sprintf("%s-%s.crate", name, version)

	case core.Gem:
		filename = fmt.Sprintf("%s-%s.gem", name, version)
		url = "https://rubygems.org/downloads/" + filename

	case core.Golang:
		url = fmt.Sprintf("https://proxy.golang.org/%s/@v/%s.zip", encodeGoModule(c.FullName()), encodeGoModule(version))
		filename = fmt.Sprintf("%s@%s.zip", name, version)

	case core.Hex:
		filename = fmt.Sprintf("%s-%s.tar", name, version)
		url = "https://repo.hex.pm/tarballs/" + filename

	case core.Pub:
		url = fmt.Sprintf("https://pub.dev/packages/%s/versions/%s.tar.gz", name, version)
		filename = fmt.Sprintf("%s-%s.tar.gz", name, version)

	case core.Maven:
		if c.Namespace() == "" {
			return nil, fmt.Errorf("maven coordinate %s has no group", c)
		}
		filename = mavenFilename(c)
		group := strings.ReplaceAll(c.Namespace(), ".", "/")
		url = fmt.Sprintf("https://repo1.maven.org/maven2/%s/%s/%s/%s", group, name, version, filename)

	case core.NuGet:
		// Package IDs are case-insensitive; the flat container uses lowercase.
		id, v := strings.ToLower(name), strings.ToLower(version)
		filename = fmt.Sprintf("%s.%s.nupkg", id, v)
		url = fmt.Sprintf("https://api.nuget.org/v3-flatcontainer/%s/%s/%s", id, v, filename)

	case core.PyPI:
		ext, ok := c.Qualifier(core.QualifierExtension)
		if !ok {
			ext = "tar.gz"
		}
		filename = fmt.Sprintf("%s-%s.%s", name, version, ext)
		url = fmt.Sprintf("https://files.pythonhosted.org/packages/source/%s/%s/%s", name[:1], name, filename)

	case core.CRAN:
		filename = fmt.Sprintf("%s_%s.tar.gz", name, version)
		url = "https://cran.r-project.org/src/contrib/" + filename

	case core.Hackage:
		filename = fmt.Sprintf("%s-%s.tar.gz", name, version)
		url = fmt.Sprintf("https://hackage.haskell.org/package/%s-%s/%s", name, version, filename)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEcosystem, c.Ecosystem())
	}

	return &ArtifactInfo{URL: url, Filename: filename, Size: -1}, nil
}

// Check resolves c and confirms the artifact exists with a HEAD request.
func (r *Resolver) Check(ctx context.Context, c *core.Coordinate) (*ArtifactInfo, error) {
	info, err := r.Resolve(c)
	if err != nil {
		return nil, err
	}
	if r.fetcher == nil {
		return nil, errors.New("resolver has no fetcher")
	}
	size, contentType, err := r.fetcher.Head(ctx, info.URL)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", info.URL, err)
	}
	info.Size = size
	info.ContentType = contentType
	return info, nil
}

// mavenFilename builds "<artifact>-<version>[-<classifier>].<ext>".
func mavenFilename(c *core.Coordinate) string {
	ext := "jar"
	if t, ok := c.Qualifier("type"); ok {
		switch t {
		case "bundle", "maven-plugin":
		default:
			ext = t
		}
	}
	base := c.Name() + "-" + c.Version()
	if classifier, ok := c.Qualifier("classifier"); ok {
		base += "-" + classifier
	}
	return base + "." + ext
}

// encodeGoModule escapes a module path for the module proxy.
// Capital letters become "!" followed by lowercase.
func encodeGoModule(path string) string {
	var b strings.Builder
	for _, r := range path {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('!')
			b.WriteRune(r + ('a' - 'A'))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
