// Package npm registers npmjs.com package pages.
package npm

import (
	"fmt"

	"github.com/git-pkgs/pagepurl/internal/core"
)

const (
	ID        = "npmJs"
	URLPrefix = "https://www.npmjs.com/package/"
)

// VersionSelector is the line under the package title, which reads
// "<version> • Public • Published ...".
const VersionSelector = "#top > div > span"

func init() {
	core.MustRegister(RegistryType())
}

// RegistryType returns the catalog entry for npmjs.com.
func RegistryType() core.RegistryType {
	return core.RegistryType{
		ID:        ID,
		Ecosystem: core.NPM,
		URLPrefix: URLPrefix,
		// /package/[@scope/]<name>[/v/<version>], scope may arrive percent-encoded.
		Pattern: core.MustCompilePattern(`^((?P<namespace>(@|%40)[^/]+)/)?(?P<name>[^/@]+)(/v/(?P<version>[^/]+))?(/.*)?$`),
		VersionSelector: &core.VersionSelector{
			Selector: VersionSelector,
			Token:    0,
		},
		PageURL: PageURL,
	}
}

// PageURL returns the versioned package page for c.
func PageURL(c *core.Coordinate) string {
	return fmt.Sprintf("%s%s/v/%s", URLPrefix, c.FullName(), c.Version())
}
