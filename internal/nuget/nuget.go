// Package nuget registers nuget.org package pages.
package nuget

import (
	"fmt"

	"github.com/git-pkgs/pagepurl/internal/core"
)

const (
	ID        = "nugetOrg"
	URLPrefix = "https://www.nuget.org/packages/"
)

// VersionSelector is the version badge next to the package title.
const VersionSelector = ".package-title .version-title"

func init() {
	core.MustRegister(RegistryType())
}

// RegistryType returns the catalog entry for nuget.org.
func RegistryType() core.RegistryType {
	return core.RegistryType{
		ID:        ID,
		Ecosystem: core.NuGet,
		URLPrefix: URLPrefix,
		Pattern:   core.MustCompilePattern(`^(?P<artifactId>[^/]+)(/(?P<version>\d[^/]*))?(/.*)?$`),
		VersionSelector: &core.VersionSelector{
			Selector: VersionSelector,
			Token:    0,
		},
		PageURL: PageURL,
	}
}

func PageURL(c *core.Coordinate) string {
	return fmt.Sprintf("%s%s/%s", URLPrefix, c.Name(), c.Version())
}
