// Package conda registers anaconda.org package pages.
package conda

import (
	"fmt"

	"github.com/git-pkgs/pagepurl/internal/core"
)

const (
	ID             = "condaAnacondaOrg"
	URLPrefix      = "https://anaconda.org/"
	DefaultChannel = "conda-forge"
)

// VersionSelector is the latest-version label in the package summary.
const VersionSelector = "span.long-breadcrumb small"

func init() {
	core.MustRegister(RegistryType())
}

// RegistryType returns the catalog entry for anaconda.org.
// The channel is carried as the namespace.
func RegistryType() core.RegistryType {
	return core.RegistryType{
		ID:        ID,
		Ecosystem: core.Conda,
		URLPrefix: URLPrefix,
		// /<channel>/<name>[/<version>][/files|/labels/...]
		Pattern: core.MustCompilePattern(`^(?P<namespace>[^/]+)/(?P<name>[^/]+)(/(?P<version>\d[^/]*))?(/.*)?$`),
		VersionSelector: &core.VersionSelector{
			Selector: VersionSelector,
			Token:    0,
		},
		PageURL: PageURL,
	}
}

func PageURL(c *core.Coordinate) string {
	channel := c.Namespace()
	if channel == "" {
		channel = DefaultChannel
	}
	return fmt.Sprintf("%s%s/%s/%s", URLPrefix, channel, c.Name(), c.Version())
}
