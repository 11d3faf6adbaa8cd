// Package pub registers pub.dev package pages.
package pub

import (
	"fmt"

	"github.com/git-pkgs/pagepurl/internal/core"
)

const (
	ID        = "pubDev"
	URLPrefix = "https://pub.dev/packages/"
)

// VersionSelector is the page title, which reads "<name> <version>".
const VersionSelector = "h1.title"

func init() {
	core.MustRegister(RegistryType())
}

// RegistryType returns the catalog entry for pub.dev.
func RegistryType() core.RegistryType {
	return core.RegistryType{
		ID:        ID,
		Ecosystem: core.Pub,
		URLPrefix: URLPrefix,
		// /packages/<name>[/versions/<version>][/changelog|/install|...]
		Pattern: core.MustCompilePattern(`^(?P<name>[^/]+)(/versions/(?P<version>\d[^/]*))?(/.*)?$`),
		VersionSelector: &core.VersionSelector{
			Selector: VersionSelector,
			Token:    1,
		},
		PageURL: PageURL,
	}
}

func PageURL(c *core.Coordinate) string {
	return fmt.Sprintf("%s%s/versions/%s", URLPrefix, c.Name(), c.Version())
}
