package maven

import (
	"testing"

	"github.com/git-pkgs/pagepurl/internal/core"
)

func TestCentralSonatype(t *testing.T) {
	base := "https://central.sonatype.com/artifact/org.cyclonedx/cyclonedx-core-java/7.3.2"

	urls := []string{
		base,
		base + "/",
		base + "/versions",
		base + "/versions?something=else",
		base + "/versions#anchor",
		base + "?something=else",
		base + "#anchor",
	}

	for _, u := range urls {
		t.Run(u, func(t *testing.T) {
			c, err := core.Default().Identify(u, nil)
			if err != nil {
				t.Fatalf("Identify(%q) failed: %v", u, err)
			}
			if c.Ecosystem() != "maven" {
				t.Errorf("Ecosystem = %q, want maven", c.Ecosystem())
			}
			if c.Namespace() != "org.cyclonedx" {
				t.Errorf("Namespace = %q, want org.cyclonedx", c.Namespace())
			}
			if c.Name() != "cyclonedx-core-java" {
				t.Errorf("Name = %q, want cyclonedx-core-java", c.Name())
			}
			if c.Version() != "7.3.2" {
				t.Errorf("Version = %q, want 7.3.2", c.Version())
			}
			if len(c.Qualifiers()) != 0 {
				t.Errorf("Qualifiers = %v, want none", c.Qualifiers())
			}
		})
	}
}

func TestCentralSonatypeNoMatch(t *testing.T) {
	for _, u := range []string{
		"https://central.sonatype.com/artifact/org.cyclonedx/cyclonedx-core-java",
		"https://central.sonatype.com/artifact/org.cyclonedx/cyclonedx-core-java/versions",
		"https://central.sonatype.com/artifact/org.cyclonedx/cyclonedx-core-java/dependencies",
		"https://central.sonatype.com/artifact/org.cyclonedx",
		"https://central.sonatype.com/search?q=cyclonedx",
		"https://central.sonatype.com/",
	} {
		if c, err := core.Default().Identify(u, nil); err == nil {
			t.Errorf("Identify(%q) = %s, want no match", u, c)
		}
	}
}

func TestSearchMaven(t *testing.T) {
	tests := []struct {
		url      string
		wantType string
	}{
		{"https://search.maven.org/artifact/com.google.guava/guava/32.1.0-jre/jar", "jar"},
		{"https://search.maven.org/artifact/com.google.guava/guava/32.1.0-jre/bundle", "bundle"},
		{"https://search.maven.org/artifact/com.google.guava/guava/32.1.0-jre", ""},
		{"https://search.maven.org/artifact/com.google.guava/guava/32.1.0-jre/versions", ""},
		{"https://search.maven.org/artifact/com.google.guava/guava/32.1.0-jre/jar?x=1#y", "jar"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			c, err := core.Default().Identify(tt.url, nil)
			if err != nil {
				t.Fatalf("Identify failed: %v", err)
			}
			if c.Namespace() != "com.google.guava" || c.Name() != "guava" || c.Version() != "32.1.0-jre" {
				t.Errorf("unexpected coordinate: %s", c)
			}
			got, _ := c.Qualifier("type")
			if got != tt.wantType {
				t.Errorf("type = %q, want %q", got, tt.wantType)
			}
		})
	}
}

func TestMvnRepository(t *testing.T) {
	c, err := core.Default().Identify("https://mvnrepository.com/artifact/org.apache.commons/commons-lang3/3.12.0/usages", nil)
	if err != nil {
		t.Fatalf("Identify failed: %v", err)
	}
	if c.String() != "pkg:maven/org.apache.commons/commons-lang3@3.12.0" {
		t.Errorf("unexpected coordinate: %s", c)
	}
}

func TestVersionlessTabsNoMatch(t *testing.T) {
	for _, u := range []string{
		"https://mvnrepository.com/artifact/junit/junit/usages",
		"https://mvnrepository.com/artifact/junit/junit/versions",
		"https://search.maven.org/artifact/com.google.guava/guava/versions",
	} {
		if c, err := core.Default().Identify(u, nil); err == nil {
			t.Errorf("Identify(%q) = %s, want no match", u, c)
		}
	}
}

func TestRepositoryListings(t *testing.T) {
	tests := []struct {
		url            string
		wantNS         string
		wantName       string
		wantVer        string
		wantType       string
		wantClassifier string
		wantOK         bool
	}{
		{"https://repo1.maven.org/maven2/org/apache/commons/commons-lang3/3.12.0/", "org.apache.commons", "commons-lang3", "3.12.0", "", "", true},
		{"https://repo1.maven.org/maven2/org/apache/commons/commons-lang3/3.12.0", "org.apache.commons", "commons-lang3", "3.12.0", "", "", true},
		{"https://repo1.maven.org/maven2/org/apache/commons/commons-lang3/3.12.0/commons-lang3-3.12.0.jar", "org.apache.commons", "commons-lang3", "3.12.0", "jar", "", true},
		{"https://repo1.maven.org/maven2/org/apache/commons/commons-lang3/3.12.0/commons-lang3-3.12.0-sources.jar", "org.apache.commons", "commons-lang3", "3.12.0", "jar", "sources", true},
		{"https://repo1.maven.org/maven2/org/apache/commons/commons-lang3/3.12.0/commons-lang3-3.12.0.pom.sha1", "org.apache.commons", "commons-lang3", "3.12.0", "", "", true},
		{"https://repo.maven.apache.org/maven2/junit/junit/4.13.2/", "junit", "junit", "4.13.2", "", "", true},

		// Listings above a version directory.
		{"https://repo1.maven.org/maven2/org/apache/commons/commons-lang3/", "", "", "", "", "", false},
		{"https://repo1.maven.org/maven2/org/apache/", "", "", "", "", "", false},
		{"https://repo1.maven.org/maven2/", "", "", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			c, err := core.Default().Identify(tt.url, nil)
			if (err == nil) != tt.wantOK {
				t.Fatalf("Identify(%q) error = %v, wantOK %v", tt.url, err, tt.wantOK)
			}
			if !tt.wantOK {
				return
			}
			if c.Namespace() != tt.wantNS || c.Name() != tt.wantName || c.Version() != tt.wantVer {
				t.Errorf("unexpected coordinate: %s", c)
			}
			if got, _ := c.Qualifier("type"); got != tt.wantType {
				t.Errorf("type = %q, want %q", got, tt.wantType)
			}
			if got, _ := c.Qualifier("classifier"); got != tt.wantClassifier {
				t.Errorf("classifier = %q, want %q", got, tt.wantClassifier)
			}
		})
	}
}

func TestPageURLs(t *testing.T) {
	c, err := core.Build("maven", "org.apache.commons", "commons-lang3", "3.12.0", map[string]string{"type": "jar"})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		id   string
		want string
	}{
		{CentralSonatypeID, "https://central.sonatype.com/artifact/org.apache.commons/commons-lang3/3.12.0"},
		{SearchMavenID, "https://search.maven.org/artifact/org.apache.commons/commons-lang3/3.12.0/jar"},
		{MvnRepositoryID, "https://mvnrepository.com/artifact/org.apache.commons/commons-lang3/3.12.0"},
		{Repo1ID, "https://repo1.maven.org/maven2/org/apache/commons/commons-lang3/3.12.0/"},
		{RepoMavenApacheID, "https://repo.maven.apache.org/maven2/org/apache/commons/commons-lang3/3.12.0/"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			rt, ok := core.Default().Lookup(tt.id)
			if !ok {
				t.Fatalf("%s not registered", tt.id)
			}
			if got := rt.PageURL(c); got != tt.want {
				t.Errorf("PageURL = %q, want %q", got, tt.want)
			}
		})
	}

	// central.sonatype.com is registered first, so it is the canonical page.
	if got := core.Default().PageURL(c); got != tests[0].want {
		t.Errorf("catalog PageURL = %q, want %q", got, tests[0].want)
	}
}
