// Package cargo registers crates.io crate pages.
package cargo

import (
	"fmt"

	"github.com/git-pkgs/pagepurl/internal/core"
)

const (
	ID        = "cratesIo"
	URLPrefix = "https://crates.io/crates/"
)

// VersionSelector is the version shown beside the crate name, e.g. "v1.0.193".
const VersionSelector = "h1 small"

func init() {
	core.MustRegister(RegistryType())
}

// RegistryType returns the catalog entry for crates.io.
func RegistryType() core.RegistryType {
	return core.RegistryType{
		ID:        ID,
		Ecosystem: core.Cargo,
		URLPrefix: URLPrefix,
		// Versions start with a digit, which keeps tabs like "/versions"
		// and "/dependencies" from being read as one.
		Pattern: core.MustCompilePattern(`^(?P<name>[^/]+)(/(?P<version>\d[^/]*))?(/.*)?$`),
		VersionSelector: &core.VersionSelector{
			Selector:   VersionSelector,
			Token:      0,
			TrimPrefix: "v",
		},
		PageURL: PageURL,
	}
}

func PageURL(c *core.Coordinate) string {
	return fmt.Sprintf("%s%s/%s", URLPrefix, c.Name(), c.Version())
}
