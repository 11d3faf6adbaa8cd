// Package rubygems registers rubygems.org gem pages.
package rubygems

import (
	"fmt"

	"github.com/git-pkgs/pagepurl/internal/core"
)

const (
	ID        = "rubyGemsOrg"
	URLPrefix = "https://rubygems.org/gems/"
)

// VersionSelector is the subheading of the gem title.
const VersionSelector = "h1.page__heading > i.page__subheading"

func init() {
	core.MustRegister(RegistryType())
}

// RegistryType returns the catalog entry for rubygems.org.
func RegistryType() core.RegistryType {
	return core.RegistryType{
		ID:        ID,
		Ecosystem: core.Gem,
		URLPrefix: URLPrefix,
		// /gems/<name>[/versions/<version>]; "/versions" alone is the version list.
		Pattern: core.MustCompilePattern(`^(?P<artifactId>[^/]+)(/versions/(?P<version>[^/]+))?(/.*)?$`),
		VersionSelector: &core.VersionSelector{
			Selector: VersionSelector,
			Token:    0,
		},
		PageURL: PageURL,
	}
}

func PageURL(c *core.Coordinate) string {
	return fmt.Sprintf("%s%s/versions/%s", URLPrefix, c.Name(), c.Version())
}
