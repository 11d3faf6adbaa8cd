// Package hackage registers hackage.haskell.org package pages.
package hackage

import (
	"fmt"

	"github.com/git-pkgs/pagepurl/internal/core"
)

const (
	ID        = "hackageHaskellOrg"
	URLPrefix = "https://hackage.haskell.org/package/"
)

// VersionSelector is the highlighted current version in the properties table.
const VersionSelector = "#properties tr:first-child td strong"

func init() {
	core.MustRegister(RegistryType())
}

// RegistryType returns the catalog entry for Hackage.
func RegistryType() core.RegistryType {
	return core.RegistryType{
		ID:        ID,
		Ecosystem: core.Hackage,
		URLPrefix: URLPrefix,
		// Package names may contain hyphens, so the version is the trailing
		// "-<digits>(.<digits>)*" of the first segment.
		Pattern: core.MustCompilePattern(`^(?P<name>[A-Za-z0-9][A-Za-z0-9-]*?)(-(?P<version>\d+(\.\d+)*))?(/.*)?$`),
		VersionSelector: &core.VersionSelector{
			Selector: VersionSelector,
		},
		PageURL: PageURL,
	}
}

func PageURL(c *core.Coordinate) string {
	return fmt.Sprintf("%s%s-%s", URLPrefix, c.Name(), c.Version())
}
