// Package golang registers pkg.go.dev module and package pages.
package golang

import (
	"fmt"
	"strings"

	"github.com/git-pkgs/pagepurl/internal/core"
)

const (
	ID        = "pkgGoDev"
	URLPrefix = "https://pkg.go.dev/"
)

// VersionSelector is the header badge, which reads "Version: v1.8.0".
const VersionSelector = `[data-test-id="UnitHeader-version"] a`

func init() {
	core.MustRegister(RegistryType())
}

// RegistryType returns the catalog entry for pkg.go.dev.
func RegistryType() core.RegistryType {
	return core.RegistryType{
		ID:        ID,
		Ecosystem: core.Golang,
		URLPrefix: URLPrefix,
		// <module>[@<version>[/<package>]]
		Pattern: core.MustCompilePattern(`^(?P<module>[^@]+)(@(?P<version>[^/]+)(/.*)?)?$`),
		Resolve: resolve,
		VersionSelector: &core.VersionSelector{
			Selector: VersionSelector,
			Token:    1,
		},
		PageURL: PageURL,
	}
}

// resolve splits a module path into namespace and name. Paths whose first
// element is not a domain (standard library, site pages such as "search")
// are rejected.
func resolve(caps core.Captures) (core.Fields, bool) {
	module := strings.Trim(caps.Get("module"), "/")
	first, _, _ := strings.Cut(module, "/")
	if !strings.Contains(first, ".") {
		return core.Fields{}, false
	}

	var namespace, name string
	if idx := strings.LastIndex(module, "/"); idx >= 0 {
		namespace, name = module[:idx], module[idx+1:]
	} else {
		name = module
	}

	return core.Fields{
		Namespace: namespace,
		Name:      name,
		Version:   caps.Get(core.GroupVersion),
	}, true
}

func PageURL(c *core.Coordinate) string {
	return fmt.Sprintf("%s%s@%s", URLPrefix, c.FullName(), c.Version())
}
