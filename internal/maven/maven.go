// Package maven registers Maven Central artifact pages and repository listings.
package maven

import (
	"fmt"
	"strings"

	"github.com/git-pkgs/pagepurl/internal/core"
)

const (
	CentralSonatypeID    = "centralSonatypeCom"
	SearchMavenID        = "searchMavenOrg"
	MvnRepositoryID      = "mvnRepositoryCom"
	Repo1ID              = "repo1MavenOrg"
	RepoMavenApacheID    = "repoMavenApacheOrg"
	CentralSonatypeURL   = "https://central.sonatype.com/artifact/"
	SearchMavenURL       = "https://search.maven.org/artifact/"
	MvnRepositoryURL     = "https://mvnrepository.com/artifact/"
	Repo1URL             = "https://repo1.maven.org/maven2/"
	RepoMavenApacheURL   = "https://repo.maven.apache.org/maven2/"
	qualifierType        = "type"
	qualifierClassifier  = "classifier"
	groupArtifactVersion = `^(?P<groupId>[^/]+)/(?P<artifactId>[^/]+)/(?P<version>\d[^/]*)(/.*)?$`
)

// packagings are the artifact types recognized in URLs and file names.
var packagings = map[string]bool{
	"jar":          true,
	"pom":          true,
	"war":          true,
	"ear":          true,
	"aar":          true,
	"bundle":       true,
	"maven-plugin": true,
}

func init() {
	for _, rt := range RegistryTypes() {
		core.MustRegister(rt)
	}
}

// RegistryTypes returns the catalog entries for the Maven sites.
func RegistryTypes() []core.RegistryType {
	return []core.RegistryType{
		{
			ID:        CentralSonatypeID,
			Ecosystem: core.Maven,
			URLPrefix: CentralSonatypeURL,
			Pattern:   core.MustCompilePattern(groupArtifactVersion),
			PageURL:   pathURL(CentralSonatypeURL),
		},
		{
			ID:        SearchMavenID,
			Ecosystem: core.Maven,
			URLPrefix: SearchMavenURL,
			Pattern:   core.MustCompilePattern(`^(?P<groupId>[^/]+)/(?P<artifactId>[^/]+)/(?P<version>\d[^/]*)(/(?P<packaging>[^/]+))?(/.*)?$`),
			Resolve:   resolveSearch,
			PageURL:   searchURL,
		},
		{
			ID:        MvnRepositoryID,
			Ecosystem: core.Maven,
			URLPrefix: MvnRepositoryURL,
			Pattern:   core.MustCompilePattern(groupArtifactVersion),
			PageURL:   pathURL(MvnRepositoryURL),
		},
		{
			ID:        Repo1ID,
			Ecosystem: core.Maven,
			URLPrefix: Repo1URL,
			Pattern:   core.MustCompilePattern(`^(?P<path>.+)$`),
			Resolve:   resolveRepository,
			PageURL:   repositoryURL(Repo1URL),
		},
		{
			ID:        RepoMavenApacheID,
			Ecosystem: core.Maven,
			URLPrefix: RepoMavenApacheURL,
			Pattern:   core.MustCompilePattern(`^(?P<path>.+)$`),
			Resolve:   resolveRepository,
			PageURL:   repositoryURL(RepoMavenApacheURL),
		},
	}
}

func pathURL(prefix string) core.PageURLFunc {
	return func(c *core.Coordinate) string {
		return fmt.Sprintf("%s%s/%s/%s", prefix, c.Namespace(), c.Name(), c.Version())
	}
}

func searchURL(c *core.Coordinate) string {
	u := pathURL(SearchMavenURL)(c)
	if t, ok := c.Qualifier(qualifierType); ok {
		u += "/" + t
	}
	return u
}

func repositoryURL(prefix string) core.PageURLFunc {
	return func(c *core.Coordinate) string {
		group := strings.ReplaceAll(c.Namespace(), ".", "/")
		return fmt.Sprintf("%s%s/%s/%s/", prefix, group, c.Name(), c.Version())
	}
}

// resolveSearch keeps the trailing packaging segment only when it names a
// known artifact type, so decorations such as "/versions" are ignored.
func resolveSearch(caps core.Captures) (core.Fields, bool) {
	f, _ := core.DefaultResolve(caps)
	if p := caps.Get("packaging"); packagings[p] {
		f.Qualifiers = map[string]string{qualifierType: p}
	}
	return f, true
}

// resolveRepository reads a repository path such as
// "org/apache/commons/commons-lang3/3.12.0/commons-lang3-3.12.0-sources.jar".
// The group is every segment before the artifact; the version segment must
// start with a digit so directory listings above a version are not mistaken
// for one.
func resolveRepository(caps core.Captures) (core.Fields, bool) {
	var segs []string
	for _, s := range strings.Split(caps.Get("path"), "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}

	var qualifiers map[string]string
	if n := len(segs); n >= 4 {
		artifact, version, file := segs[n-3], segs[n-2], segs[n-1]
		if rest, ok := strings.CutPrefix(file, artifact+"-"+version); ok {
			qualifiers = fileQualifiers(rest)
			segs = segs[:n-1]
		}
	}

	n := len(segs)
	if n < 3 || !startsWithDigit(segs[n-1]) {
		return core.Fields{}, false
	}
	return core.Fields{
		Namespace:  strings.Join(segs[:n-2], "."),
		Name:       segs[n-2],
		Version:    segs[n-1],
		Qualifiers: qualifiers,
	}, true
}

// fileQualifiers reads "-<classifier>.<ext>" or ".<ext>" from the end of an
// artifact file name.
func fileQualifiers(rest string) map[string]string {
	q := make(map[string]string)
	var ext string
	switch {
	case strings.HasPrefix(rest, "-"):
		classifier, e, _ := strings.Cut(rest[1:], ".")
		q[qualifierClassifier] = classifier
		ext = e
	case strings.HasPrefix(rest, "."):
		ext = rest[1:]
	}
	if packagings[ext] {
		q[qualifierType] = ext
	}
	return q
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}
