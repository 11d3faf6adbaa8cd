// Package cocoapods registers cocoapods.org pod pages.
package cocoapods

import (
	"github.com/git-pkgs/pagepurl/internal/core"
)

const (
	ID        = "cocoaPodsOrg"
	URLPrefix = "https://cocoapods.org/pods/"
)

// VersionSelector is the version next to the pod name in the page header.
const VersionSelector = "h1 > span"

func init() {
	core.MustRegister(RegistryType())
}

// RegistryType returns the catalog entry for cocoapods.org.
func RegistryType() core.RegistryType {
	return core.RegistryType{
		ID:        ID,
		Ecosystem: core.CocoaPods,
		URLPrefix: URLPrefix,
		Pattern:   core.MustCompilePattern(`^(?P<name>[^/]+)(/.*)?$`),
		VersionSelector: &core.VersionSelector{
			Selector: VersionSelector,
			Token:    0,
		},
		PageURL: PageURL,
	}
}

// PageURL returns the pod page; pod pages always show the latest version.
func PageURL(c *core.Coordinate) string {
	return URLPrefix + c.Name()
}
