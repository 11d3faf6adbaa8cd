// Package cran registers CRAN package index pages.
package cran

import (
	"fmt"

	"github.com/git-pkgs/pagepurl/internal/core"
)

const (
	ID        = "cranRProjectOrg"
	URLPrefix = "https://cran.r-project.org/web/packages/"
)

// VersionSelector is the value cell of the "Version:" row, the first row of
// the package description table.
const VersionSelector = "table:first-of-type tr:first-child td:last-child"

func init() {
	core.MustRegister(RegistryType())
}

// RegistryType returns the catalog entry for cran.r-project.org.
func RegistryType() core.RegistryType {
	return core.RegistryType{
		ID:        ID,
		Ecosystem: core.CRAN,
		URLPrefix: URLPrefix,
		Pattern:   core.MustCompilePattern(`^(?P<name>[^/]+)(/.*)?$`),
		VersionSelector: &core.VersionSelector{
			Selector: VersionSelector,
			Token:    0,
		},
		PageURL: PageURL,
	}
}

func PageURL(c *core.Coordinate) string {
	return fmt.Sprintf("%s%s/index.html", URLPrefix, c.Name())
}
