package core

import (
	"fmt"
	"testing"
)

func BenchmarkCatalogMatch(b *testing.B) {
	c := NewCatalog()
	for i := 0; i < 20; i++ {
		_ = c.Register(RegistryType{
			ID:        fmt.Sprintf("r%d", i),
			Ecosystem: "generic",
			URLPrefix: fmt.Sprintf("https://r%d.example/", i),
			Pattern:   MustCompilePattern(`^(?P<name>[^/]+)/(?P<version>[^/]+)`),
		})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Match("https://r19.example/pkg/1.0?x=y")
	}
}

func BenchmarkExtract(b *testing.B) {
	rt := pypiLike()
	dom := StaticDOM{"h1.package-header__name": "Django 4.2.1"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Extract(rt, "https://pypi.example/project/Django/#history", dom)
	}
}

func BenchmarkBuild(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Build("maven", "org.cyclonedx", "cyclonedx-core-java", "7.3.2", nil)
	}
}
