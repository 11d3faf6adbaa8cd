package core

import (
	"maps"
	"strings"
)

// Ecosystem PURL types produced by the built-in registries.
const (
	Maven     = "maven"
	NPM       = "npm"
	PyPI      = "pypi"
	NuGet     = "nuget"
	Gem       = "gem"
	Composer  = "composer"
	CocoaPods = "cocoapods"
	CRAN      = "cran"
	Cargo     = "cargo"
	Golang    = "golang"
	Conda     = "conda"
	Hex       = "hex"
	Pub       = "pub"
	Hackage   = "hackage"
	Deno      = "deno"
)

// QualifierExtension is the file extension qualifier.
const QualifierExtension = "extension"

// defaultQualifiers are applied by Build unless the caller supplies the key.
var defaultQualifiers = map[string]map[string]string{
	PyPI: {QualifierExtension: "tar.gz"},
}

// DefaultQualifiers returns the qualifiers Build applies for an ecosystem.
func DefaultQualifiers(ecosystem string) map[string]string {
	return maps.Clone(defaultQualifiers[ecosystem])
}

// Build assembles a validated, immutable coordinate.
// Empty-valued qualifiers are dropped; qualifiers override ecosystem defaults.
func Build(ecosystem, namespace, name, version string, qualifiers map[string]string) (*Coordinate, error) {
	ecosystem = strings.ToLower(strings.TrimSpace(ecosystem))
	namespace = strings.Trim(strings.TrimSpace(namespace), "/")
	name = strings.TrimSpace(name)
	version = strings.TrimSpace(version)

	if ecosystem == "" {
		return nil, &ValidationError{Field: "ecosystem", Message: "must not be empty"}
	}
	if name == "" {
		return nil, &ValidationError{Field: "name", Message: "must not be empty"}
	}
	if version == "" {
		return nil, &ValidationError{Field: "version", Message: "must not be empty"}
	}

	if ecosystem == Maven {
		namespace = strings.ReplaceAll(namespace, "/", ".")
	}

	q := make(map[string]string)
	for k, v := range defaultQualifiers[ecosystem] {
		q[k] = v
	}
	for k, v := range qualifiers {
		k = strings.ToLower(strings.TrimSpace(k))
		v = strings.TrimSpace(v)
		if k == "" {
			continue
		}
		if v == "" {
			delete(q, k)
			continue
		}
		q[k] = v
	}

	return &Coordinate{
		ecosystem:  ecosystem,
		namespace:  namespace,
		name:       name,
		version:    version,
		qualifiers: q,
	}, nil
}
