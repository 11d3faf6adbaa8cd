// Package all registers every supported registry site.
//
// Import this package for its side effects:
//
//	import (
//		"github.com/git-pkgs/pagepurl"
//		_ "github.com/git-pkgs/pagepurl/all"
//	)
//
//	// Now every site is recognized
//	ecosystems := pagepurl.SupportedEcosystems()
//	// ["cargo", "cocoapods", "composer", "conda", ...]
package all

import (
	_ "github.com/git-pkgs/pagepurl/internal/cargo"
	_ "github.com/git-pkgs/pagepurl/internal/cocoapods"
	_ "github.com/git-pkgs/pagepurl/internal/conda"
	_ "github.com/git-pkgs/pagepurl/internal/cran"
	_ "github.com/git-pkgs/pagepurl/internal/deno"
	_ "github.com/git-pkgs/pagepurl/internal/golang"
	_ "github.com/git-pkgs/pagepurl/internal/hackage"
	_ "github.com/git-pkgs/pagepurl/internal/hex"
	_ "github.com/git-pkgs/pagepurl/internal/maven"
	_ "github.com/git-pkgs/pagepurl/internal/npm"
	_ "github.com/git-pkgs/pagepurl/internal/nuget"
	_ "github.com/git-pkgs/pagepurl/internal/packagist"
	_ "github.com/git-pkgs/pagepurl/internal/pub"
	_ "github.com/git-pkgs/pagepurl/internal/pypi"
	_ "github.com/git-pkgs/pagepurl/internal/rubygems"
)
