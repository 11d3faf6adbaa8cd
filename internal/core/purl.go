package core

import (
	"fmt"

	packageurl "github.com/package-url/packageurl-go"
)

// PURL returns the coordinate as a packageurl.PackageURL.
func (c *Coordinate) PURL() packageurl.PackageURL {
	qualifiers := make(packageurl.Qualifiers, 0, len(c.qualifiers))
	for _, k := range c.qualifierKeys() {
		qualifiers = append(qualifiers, packageurl.Qualifier{Key: k, Value: c.qualifiers[k]})
	}
	return *packageurl.NewPackageURL(c.ecosystem, c.namespace, c.name, c.version, qualifiers, "")
}

// String returns the package URL, e.g. "pkg:maven/org.cyclonedx/cyclonedx-core-java@7.3.2".
func (c *Coordinate) String() string {
	return c.PURL().String()
}

// FullName returns the package name in the format used by the registry.
// For npm: "@babel/core", for maven: "org.apache.commons:commons-lang3"
func (c *Coordinate) FullName() string {
	if c.namespace == "" {
		return c.name
	}

	switch c.ecosystem {
	case Maven:
		return c.namespace + ":" + c.name
	default:
		// npm keeps @ in the namespace, so "@babel" + "/" + "core" = "@babel/core"
		return c.namespace + "/" + c.name
	}
}

// ParsePURL parses a versioned Package URL into a coordinate.
// Coordinates always carry a version, so "pkg:npm/lodash" is rejected.
func ParsePURL(purl string) (*Coordinate, error) {
	p, err := packageurl.FromString(purl)
	if err != nil {
		return nil, err
	}
	c, err := Build(p.Type, p.Namespace, p.Name, p.Version, p.Qualifiers.Map())
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", purl, err)
	}
	return c, nil
}
