// Package deno registers deno.land third-party module pages.
package deno

import (
	"fmt"

	"github.com/git-pkgs/pagepurl/internal/core"
)

const (
	ID        = "denoLand"
	URLPrefix = "https://deno.land/x/"
)

// VersionSelector is the selected entry of the version dropdown.
const VersionSelector = "select#version option[selected]"

func init() {
	core.MustRegister(RegistryType())
}

// RegistryType returns the catalog entry for deno.land/x.
func RegistryType() core.RegistryType {
	return core.RegistryType{
		ID:        ID,
		Ecosystem: core.Deno,
		URLPrefix: URLPrefix,
		// /x/<name>[@<version>][/<file>]
		Pattern: core.MustCompilePattern(`^(?P<name>[^/@]+)(@(?P<version>[^/]+))?(/.*)?$`),
		VersionSelector: &core.VersionSelector{
			Selector: VersionSelector,
		},
		PageURL: PageURL,
	}
}

func PageURL(c *core.Coordinate) string {
	return fmt.Sprintf("%s%s@%s", URLPrefix, c.Name(), c.Version())
}
