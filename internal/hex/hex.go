// Package hex registers hex.pm package pages.
package hex

import (
	"fmt"

	"github.com/git-pkgs/pagepurl/internal/core"
)

const (
	ID        = "hexPm"
	URLPrefix = "https://hex.pm/packages/"
)

const VersionSelector = ".package-title .version"

func init() {
	core.MustRegister(RegistryType())
}

// RegistryType returns the catalog entry for hex.pm.
func RegistryType() core.RegistryType {
	return core.RegistryType{
		ID:        ID,
		Ecosystem: core.Hex,
		URLPrefix: URLPrefix,
		Pattern:   core.MustCompilePattern(`^(?P<name>[^/]+)(/(?P<version>\d[^/]*))?(/.*)?$`),
		VersionSelector: &core.VersionSelector{
			Selector: VersionSelector,
		},
		PageURL: PageURL,
	}
}

func PageURL(c *core.Coordinate) string {
	return fmt.Sprintf("%s%s/%s", URLPrefix, c.Name(), c.Version())
}
