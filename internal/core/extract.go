package core

import (
	"errors"
	"maps"
	"strings"
)

// Extract pulls a coordinate out of a page of the given registry type.
// It returns false when the page does not yield a complete coordinate.
func Extract(rt *RegistryType, url string, dom DOM) (*Coordinate, bool) {
	c, err := ExtractErr(rt, url, dom)
	return c, err == nil
}

// ExtractErr is like Extract but reports why extraction failed.
// It returns ErrNoMatch for unrecognized or partial pages, a *ValidationError
// when the extracted fields fail validation, and a *ConfigurationError for an
// unusable registry type.
func ExtractErr(rt *RegistryType, url string, dom DOM) (*Coordinate, error) {
	if rt == nil || rt.Pattern == nil {
		return nil, &ConfigurationError{Err: errors.New("registry type has no path pattern")}
	}

	url = Normalize(url)
	path, ok := strings.CutPrefix(url, rt.URLPrefix)
	if !ok {
		return nil, ErrNoMatch
	}

	caps, ok := rt.Pattern.Match(path)
	if !ok {
		return nil, ErrNoMatch
	}

	resolve := rt.Resolve
	if resolve == nil {
		resolve = DefaultResolve
	}
	fields, ok := resolve(caps)
	if !ok {
		return nil, ErrNoMatch
	}

	if fields.Version == "" && rt.VersionSelector != nil && dom != nil {
		fields.Version = rt.VersionSelector.Read(dom)
	}

	if fields.Name == "" || fields.Version == "" {
		return nil, ErrNoMatch
	}

	qualifiers := maps.Clone(rt.Qualifiers)
	if len(fields.Qualifiers) > 0 {
		if qualifiers == nil {
			qualifiers = make(map[string]string, len(fields.Qualifiers))
		}
		maps.Copy(qualifiers, fields.Qualifiers)
	}

	return Build(rt.Ecosystem, fields.Namespace, fields.Name, fields.Version, qualifiers)
}

// DefaultResolve maps the namespace/groupId, artifactId/name and version groups.
func DefaultResolve(caps Captures) (Fields, bool) {
	return Fields{
		Namespace: caps.Get(GroupNamespace, GroupGroupID),
		Name:      caps.Get(GroupArtifact, GroupName),
		Version:   caps.Get(GroupVersion),
	}, true
}

// Read applies the selector to dom and returns the version token, or "".
func (vs *VersionSelector) Read(dom DOM) string {
	text, ok := dom.Text(vs.Selector)
	if !ok {
		return ""
	}
	tokens := strings.Fields(text)
	if vs.Token >= len(tokens) {
		return ""
	}
	return strings.TrimPrefix(tokens[vs.Token], vs.TrimPrefix)
}
