// Package pypi registers pypi.org project pages.
package pypi

import (
	"fmt"

	"github.com/git-pkgs/pagepurl/internal/core"
)

const (
	ID        = "pypiOrg"
	URLPrefix = "https://pypi.org/project/"
)

// VersionSelector is the project header, whose text reads "<name> <version>".
const VersionSelector = "#content > div.banner > div > div.package-header__left > h1"

func init() {
	core.MustRegister(RegistryType())
}

// RegistryType returns the catalog entry for pypi.org.
func RegistryType() core.RegistryType {
	return core.RegistryType{
		ID:        ID,
		Ecosystem: core.PyPI,
		URLPrefix: URLPrefix,
		// /project/<name>/ or /project/<name>/<version>/, plus any trailing pages.
		// Tabs such as /history/ leave the version to the DOM.
		Pattern: core.MustCompilePattern(`^(?P<artifactId>[^/]+)(/(?P<version>\d[^/]*))?(/.*)?$`),
		VersionSelector: &core.VersionSelector{
			Selector: VersionSelector,
			Token:    1,
		},
		PageURL: PageURL,
	}
}

// PageURL returns the release page for c.
func PageURL(c *core.Coordinate) string {
	return fmt.Sprintf("%s%s/%s/", URLPrefix, c.Name(), c.Version())
}
