package core

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
)

// Capture group names understood by the default field mapping.
const (
	GroupNamespace = "namespace"
	GroupGroupID   = "groupId"
	GroupArtifact  = "artifactId"
	GroupName      = "name"
	GroupVersion   = "version"
)

// PathPattern matches the part of a page URL that follows the registry prefix.
type PathPattern struct {
	re *regexp.Regexp
}

// Captures holds the non-empty named groups of a pattern match, percent-decoded.
type Captures map[string]string

// Get returns the first non-empty capture among names.
func (c Captures) Get(names ...string) string {
	for _, n := range names {
		if v := c[n]; v != "" {
			return v
		}
	}
	return ""
}

// CompilePattern compiles a path pattern. The expression must declare at least
// one named capture group.
func CompilePattern(expr string) (*PathPattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &ConfigurationError{Err: fmt.Errorf("invalid path pattern: %w", err)}
	}
	named := false
	for _, n := range re.SubexpNames() {
		if n != "" {
			named = true
			break
		}
	}
	if !named {
		return nil, &ConfigurationError{Err: errors.New("path pattern has no named groups")}
	}
	return &PathPattern{re: re}, nil
}

// MustCompilePattern is like CompilePattern but panics on error.
// It is intended for built-in catalog entries.
func MustCompilePattern(expr string) *PathPattern {
	p, err := CompilePattern(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// HasGroup reports whether the pattern declares the named group.
func (p *PathPattern) HasGroup(name string) bool {
	return p.re.SubexpIndex(name) >= 0
}

func (p *PathPattern) String() string {
	return p.re.String()
}

// Match applies the pattern to path.
func (p *PathPattern) Match(path string) (Captures, bool) {
	m := p.re.FindStringSubmatch(path)
	if m == nil {
		return nil, false
	}
	caps := make(Captures)
	for i, n := range p.re.SubexpNames() {
		if n == "" || m[i] == "" {
			continue
		}
		v := m[i]
		if dec, err := url.PathUnescape(v); err == nil {
			v = dec
		}
		caps[n] = v
	}
	return caps, true
}
