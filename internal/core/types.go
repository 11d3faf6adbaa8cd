// Package core provides the registry catalog and the coordinate extraction engine.
package core

import (
	"maps"
	"sort"
)

// Coordinate identifies a published package version within an ecosystem.
// Coordinates are immutable; use Build to create one.
type Coordinate struct {
	ecosystem  string
	namespace  string
	name       string
	version    string
	qualifiers map[string]string
}

// Ecosystem returns the PURL type (e.g., "maven", "pypi", "npm").
func (c *Coordinate) Ecosystem() string { return c.ecosystem }

// Namespace returns the namespace: groupId for maven, @scope for npm, vendor for composer.
func (c *Coordinate) Namespace() string { return c.namespace }

func (c *Coordinate) Name() string    { return c.name }
func (c *Coordinate) Version() string { return c.version }

// Qualifiers returns a copy of the coordinate's qualifiers.
func (c *Coordinate) Qualifiers() map[string]string {
	return maps.Clone(c.qualifiers)
}

// Qualifier returns a single qualifier value.
func (c *Coordinate) Qualifier(key string) (string, bool) {
	v, ok := c.qualifiers[key]
	return v, ok
}

// Equal reports whether two coordinates have identical fields.
func (c *Coordinate) Equal(o *Coordinate) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.ecosystem == o.ecosystem &&
		c.namespace == o.namespace &&
		c.name == o.name &&
		c.version == o.version &&
		maps.Equal(c.qualifiers, o.qualifiers)
}

func (c *Coordinate) qualifierKeys() []string {
	keys := make([]string, 0, len(c.qualifiers))
	for k := range c.qualifiers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Fields holds raw values pulled out of a page before they are built into a Coordinate.
type Fields struct {
	Namespace  string
	Name       string
	Version    string
	Qualifiers map[string]string
}

// ResolveFunc maps pattern captures to coordinate fields.
// It returns false when the captures do not describe a package.
type ResolveFunc func(caps Captures) (Fields, bool)

// PageURLFunc renders the canonical page URL for a coordinate.
type PageURLFunc func(c *Coordinate) string

// VersionSelector describes how to recover a version from rendered page text.
// The selected element's text is trimmed and split on whitespace; the
// Token-th field (zero based) is the version, with TrimPrefix removed.
type VersionSelector struct {
	Selector   string
	Token      int
	TrimPrefix string
}

// RegistryType describes one supported registry site.
type RegistryType struct {
	// ID names the site, e.g. "pypiOrg" or "centralSonatypeCom".
	ID string

	// Ecosystem is the PURL type of coordinates extracted from this site.
	Ecosystem string

	// URLPrefix is matched against and stripped from normalized page URLs.
	URLPrefix string

	Pattern *PathPattern

	// VersionSelector is consulted only when the path carries no version.
	VersionSelector *VersionSelector

	// Qualifiers are added to every coordinate from this site.
	Qualifiers map[string]string

	// Resolve overrides the default capture-to-field mapping.
	Resolve ResolveFunc

	// PageURL renders the canonical page for a coordinate. Optional.
	PageURL PageURLFunc

	seq int
}

// DOM is the read-only page capability used for version fallback.
type DOM interface {
	// Text returns the text content of the first element matching selector.
	Text(selector string) (string, bool)
}

// StaticDOM is a DOM backed by a fixed selector to text mapping.
type StaticDOM map[string]string

func (d StaticDOM) Text(selector string) (string, bool) {
	t, ok := d[selector]
	return t, ok
}
