// Package packagist registers packagist.org package pages.
package packagist

import (
	"fmt"

	"github.com/git-pkgs/pagepurl/internal/core"
)

const (
	ID        = "packagistOrg"
	URLPrefix = "https://packagist.org/packages/"
)

// VersionSelector is the heading of the selected version's details panel.
// Versions are usually displayed with a leading "v".
const VersionSelector = ".version-details .version-number"

func init() {
	core.MustRegister(RegistryType())
}

// RegistryType returns the catalog entry for packagist.org.
// Package URLs never carry a version; it always comes from the page.
func RegistryType() core.RegistryType {
	return core.RegistryType{
		ID:        ID,
		Ecosystem: core.Composer,
		URLPrefix: URLPrefix,
		Pattern:   core.MustCompilePattern(`^(?P<namespace>[^/]+)/(?P<name>[^/]+)(/.*)?$`),
		VersionSelector: &core.VersionSelector{
			Selector:   VersionSelector,
			Token:      0,
			TrimPrefix: "v",
		},
		PageURL: PageURL,
	}
}

func PageURL(c *core.Coordinate) string {
	return fmt.Sprintf("%s%s/%s", URLPrefix, c.Namespace(), c.Name())
}
