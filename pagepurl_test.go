package pagepurl_test

import (
	"context"
	"errors"
	"testing"

	"github.com/git-pkgs/pagepurl"
	_ "github.com/git-pkgs/pagepurl/all"
)

func TestSupportedEcosystems(t *testing.T) {
	ecosystems := pagepurl.SupportedEcosystems()

	expected := []string{"cargo", "cocoapods", "composer", "conda", "cran", "deno", "gem", "golang", "hackage", "hex", "maven", "npm", "nuget", "pub", "pypi"}
	if len(ecosystems) != len(expected) {
		t.Fatalf("expected %d ecosystems, got %d: %v", len(expected), len(ecosystems), ecosystems)
	}
	for i, eco := range expected {
		if ecosystems[i] != eco {
			t.Errorf("expected ecosystem %q at position %d, got %q", eco, i, ecosystems[i])
		}
	}
}

func TestRegistries(t *testing.T) {
	entries := pagepurl.Registries()
	if len(entries) != 19 {
		t.Errorf("len(Registries()) = %d, want 19", len(entries))
	}

	seen := make(map[string]bool)
	for _, rt := range entries {
		if seen[rt.ID] {
			t.Errorf("duplicate id %s", rt.ID)
		}
		seen[rt.ID] = true
	}
	for _, id := range []string{"centralSonatypeCom", "pypiOrg", "npmJs", "pkgGoDev", "condaAnacondaOrg"} {
		if !seen[id] {
			t.Errorf("%s not registered", id)
		}
	}
}

func TestIdentify(t *testing.T) {
	tests := []struct {
		url    string
		dom    pagepurl.DOM
		want   string
		wantOK bool
	}{
		{"https://central.sonatype.com/artifact/org.cyclonedx/cyclonedx-core-java/7.3.2", nil, "pkg:maven/org.cyclonedx/cyclonedx-core-java@7.3.2", true},
		{"https://central.sonatype.com/artifact/org.cyclonedx/cyclonedx-core-java/7.3.2/versions", nil, "pkg:maven/org.cyclonedx/cyclonedx-core-java@7.3.2", true},
		{"https://central.sonatype.com/artifact/org.cyclonedx/cyclonedx-core-java/7.3.2?something=else", nil, "pkg:maven/org.cyclonedx/cyclonedx-core-java@7.3.2", true},
		{"https://central.sonatype.com/artifact/org.cyclonedx/cyclonedx-core-java/7.3.2#anchor", nil, "pkg:maven/org.cyclonedx/cyclonedx-core-java@7.3.2", true},
		{"https://www.npmjs.com/package/lodash/v/4.17.21", nil, "pkg:npm/lodash@4.17.21", true},
		{"https://pypi.org/project/requests/2.31.0/", nil, "pkg:pypi/requests@2.31.0?extension=tar.gz", true},

		{"https://example.com/not/a/registry", nil, "", false},
		{"https://pypi.org/project/", pagepurl.StaticDOM{}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			c, ok := pagepurl.Identify(tt.url, tt.dom)
			if ok != tt.wantOK {
				t.Fatalf("Identify(%q) ok = %v, want %v", tt.url, ok, tt.wantOK)
			}
			if ok && c.String() != tt.want {
				t.Errorf("Identify(%q) = %s, want %s", tt.url, c, tt.want)
			}
		})
	}
}

func TestIdentifyWithHTML(t *testing.T) {
	doc, err := pagepurl.ParseHTML(`<html><body>
<div id="content"><div class="banner"><div><div class="package-header__left">
<h1 class="package-header__name">
  Django 4.2.1
</h1>
</div></div></div></div></body></html>`)
	if err != nil {
		t.Fatal(err)
	}

	c, ok := pagepurl.Identify("https://pypi.org/project/Django/", doc)
	if !ok {
		t.Fatal("Identify failed")
	}
	if c.Name() != "Django" || c.Version() != "4.2.1" {
		t.Errorf("unexpected coordinate: %s", c)
	}
	if ext, _ := c.Qualifier("extension"); ext != "tar.gz" {
		t.Errorf("extension = %q, want tar.gz", ext)
	}
}

func TestMatchAndExtract(t *testing.T) {
	rt, ok := pagepurl.Match("https://crates.io/crates/serde?sort=recent")
	if !ok || rt.ID != "cratesIo" {
		t.Fatalf("Match = %v, %v", rt, ok)
	}
	if _, ok := pagepurl.Extract(rt, "https://crates.io/crates/serde", nil); ok {
		t.Error("Extract without version should fail")
	}
	c, ok := pagepurl.Extract(rt, "https://crates.io/crates/serde", pagepurl.StaticDOM{"h1 small": "v1.0.195"})
	if !ok || c.Version() != "1.0.195" {
		t.Errorf("Extract = %v, %v", c, ok)
	}
}

func TestNormalize(t *testing.T) {
	if got := pagepurl.Normalize("https://pypi.org/project/Django/?a=b#c"); got != "https://pypi.org/project/Django/" {
		t.Errorf("Normalize = %q", got)
	}
}

func TestBuild(t *testing.T) {
	_, err := pagepurl.Build("maven", "org.example", "lib", " ", nil)
	var valErr *pagepurl.ValidationError
	if !errors.As(err, &valErr) || valErr.Field != "version" {
		t.Errorf("Build error = %v, want version ValidationError", err)
	}
}

func TestParsePURL(t *testing.T) {
	c, err := pagepurl.ParsePURL("pkg:maven/org.cyclonedx/cyclonedx-core-java@7.3.2")
	if err != nil {
		t.Fatalf("ParsePURL failed: %v", err)
	}
	if got := pagepurl.PageURL(c); got != "https://central.sonatype.com/artifact/org.cyclonedx/cyclonedx-core-java/7.3.2" {
		t.Errorf("PageURL = %q", got)
	}

	if _, err := pagepurl.ParsePURL("pkg:cargo/serde"); err == nil {
		t.Error("ParsePURL without version should fail")
	}
}

func TestParsePackageURL(t *testing.T) {
	p, err := pagepurl.ParsePackageURL("pkg:cargo/serde")
	if err != nil || p == nil {
		t.Fatalf("ParsePackageURL failed: %v", err)
	}
	if _, err := pagepurl.ParsePackageURL("cargo/serde"); err == nil {
		t.Error("ParsePackageURL without scheme should fail")
	}
}

func TestBuildURLs(t *testing.T) {
	c, _ := pagepurl.Build("cargo", "", "serde", "1.0.193", nil)
	urls := pagepurl.BuildURLs(c)

	want := map[string]string{
		"registry": "https://crates.io/crates/serde/1.0.193",
		"download": "https://static.crates.io/crates/serde/serde-1.0.193.crate",
		"docs":     "https://docs.rs/serde/1.0.193",
		"purl":     "pkg:cargo/serde@1.0.193",
	}
	for k, v := range want {
		if urls[k] != v {
			t.Errorf("%s = %q, want %q", k, urls[k], v)
		}
	}
}

func TestBulkIdentify(t *testing.T) {
	urls := []string{
		"https://crates.io/crates/serde/1.0.193",
		"https://pkg.go.dev/github.com/gorilla/mux@v1.8.0",
		"https://pypi.org/project/Django/",
		"https://example.com/unknown",
	}

	results := pagepurl.BulkIdentifyWithConcurrency(context.Background(), urls, nil, 2)
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2: %v", len(results), results)
	}
	if c := results[urls[1]]; c == nil || c.FullName() != "github.com/gorilla/mux" {
		t.Errorf("golang result = %v", c)
	}

	loader := func(ctx context.Context, url string) (pagepurl.DOM, error) {
		return pagepurl.StaticDOM{"#content > div.banner > div > div.package-header__left > h1": "Django 4.2.1"}, nil
	}
	results = pagepurl.BulkIdentify(context.Background(), urls, loader)
	if c := results[urls[2]]; c == nil || c.Version() != "4.2.1" {
		t.Errorf("pypi result = %v", c)
	}
}
